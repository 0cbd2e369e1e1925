package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/questline-backend/internal/data/repos"
	"github.com/yungbote/questline-backend/internal/domain/quest"
	"github.com/yungbote/questline-backend/internal/platform/logger"
)

type QuestRepos struct {
	Catalog  repos.CatalogRepo
	Progress repos.ProgressRepo
}

type Repos struct {
	User   repos.UserRepo
	Quests map[string]QuestRepos
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	rs := Repos{
		User:   repos.NewUserRepo(db, log),
		Quests: map[string]QuestRepos{},
	}
	for _, v := range quest.Variants() {
		rs.Quests[v.Name] = QuestRepos{
			Catalog:  repos.NewCatalogRepo(db, log, v),
			Progress: repos.NewProgressRepo(db, log, v),
		}
	}
	return rs
}
