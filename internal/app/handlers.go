package app

import (
	httpH "github.com/yungbote/questline-backend/internal/http/handlers"
	"github.com/yungbote/questline-backend/internal/platform/logger"
)

type Handlers struct {
	User          *httpH.UserHandler
	DistanceQuest *httpH.QuestHandler
	ImageQuest    *httpH.QuestHandler
	Health        *httpH.HealthHandler
}

func wireHandlers(log *logger.Logger, svcs Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		User:          httpH.NewUserHandler(svcs.User),
		DistanceQuest: httpH.NewQuestHandler(svcs.DistanceQuest),
		ImageQuest:    httpH.NewQuestHandler(svcs.ImageQuest),
		Health:        httpH.NewHealthHandler(),
	}
}
