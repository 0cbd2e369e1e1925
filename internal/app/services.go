package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/questline-backend/internal/domain/quest"
	"github.com/yungbote/questline-backend/internal/platform/cache"
	"github.com/yungbote/questline-backend/internal/platform/logger"
	"github.com/yungbote/questline-backend/internal/platform/password"
	"github.com/yungbote/questline-backend/internal/services"
)

type Services struct {
	User          services.UserService
	DistanceQuest services.QuestService
	ImageQuest    services.QuestService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, rs Repos, catalogCache cache.Cache) Services {
	log.Info("Wiring services...")

	stores := make([]services.QuestStores, 0, len(rs.Quests))
	for _, v := range quest.Variants() {
		qr := rs.Quests[v.Name]
		stores = append(stores, services.QuestStores{Catalog: qr.Catalog, Progress: qr.Progress})
	}

	distance := rs.Quests[quest.Distance.Name]
	image := rs.Quests[quest.Image.Name]
	return Services{
		User:          services.NewUserService(db, log, rs.User, password.NewBcrypt(cfg.BcryptCost), stores),
		DistanceQuest: services.NewQuestService(log, distance.Catalog, distance.Progress, catalogCache),
		ImageQuest:    services.NewQuestService(log, image.Catalog, image.Progress, catalogCache),
	}
}
