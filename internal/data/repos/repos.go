package repos

import (
	"gorm.io/gorm"

	"github.com/yungbote/questline-backend/internal/data/repos/quest"
	"github.com/yungbote/questline-backend/internal/data/repos/user"
	domainquest "github.com/yungbote/questline-backend/internal/domain/quest"
	"github.com/yungbote/questline-backend/internal/platform/logger"
)

type UserRepo = user.UserRepo

type CatalogRepo = quest.CatalogRepo
type ProgressRepo = quest.ProgressRepo

func NewUserRepo(db *gorm.DB, baseLog *logger.Logger) UserRepo { return user.NewUserRepo(db, baseLog) }

func NewCatalogRepo(db *gorm.DB, baseLog *logger.Logger, v domainquest.Variant) CatalogRepo {
	return quest.NewCatalogRepo(db, baseLog, v)
}

func NewProgressRepo(db *gorm.DB, baseLog *logger.Logger, v domainquest.Variant) ProgressRepo {
	return quest.NewProgressRepo(db, baseLog, v)
}
