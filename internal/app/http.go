package app

import (
	apphttp "github.com/yungbote/questline-backend/internal/http"
	"github.com/yungbote/questline-backend/internal/platform/logger"
)

func wireServer(log *logger.Logger, cfg Config, hs Handlers, mw Middleware) *apphttp.Server {
	return apphttp.NewServer(apphttp.RouterConfig{
		AuthMiddleware:       mw.Auth,
		UserHandler:          hs.User,
		DistanceQuestHandler: hs.DistanceQuest,
		ImageQuestHandler:    hs.ImageQuest,
		HealthHandler:        hs.Health,
		Log:                  log,
		CORSOrigins:          cfg.CORSOrigins,
		ServiceName:          cfg.Otel.ServiceName,
		Tracing:              cfg.Otel.Enabled,
	}, cfg.Addr(), cfg.ShutdownTimeout)
}
