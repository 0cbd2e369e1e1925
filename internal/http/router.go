package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/yungbote/questline-backend/internal/http/handlers"
	httpMW "github.com/yungbote/questline-backend/internal/http/middleware"
	"github.com/yungbote/questline-backend/internal/platform/logger"
)

type RouterConfig struct {
	AuthMiddleware *httpMW.AuthMiddleware

	UserHandler          *httpH.UserHandler
	DistanceQuestHandler *httpH.QuestHandler
	ImageQuestHandler    *httpH.QuestHandler
	HealthHandler        *httpH.HealthHandler

	Log         *logger.Logger
	CORSOrigins []string
	ServiceName string
	Tracing     bool
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.Tracing {
		r.Use(otelgin.Middleware(cfg.ServiceName))
	}
	r.Use(httpMW.AttachTraceContext())
	if cfg.Log != nil {
		r.Use(httpMW.RequestLogger(cfg.Log))
	}
	r.Use(httpMW.CORS(cfg.CORSOrigins))

	var auth []gin.HandlerFunc
	if cfg.AuthMiddleware != nil {
		auth = append(auth, cfg.AuthMiddleware.RequireAuth())
	}
	protected := func(h gin.HandlerFunc) []gin.HandlerFunc {
		return append(append([]gin.HandlerFunc{}, auth...), h)
	}

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/", cfg.HealthHandler.Index)
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	// Users
	if cfg.UserHandler != nil {
		users := r.Group("/users")
		{
			users.GET("", cfg.UserHandler.List)
			users.POST("", cfg.UserHandler.Create)
			users.PUT("", protected(cfg.UserHandler.Update)...)
			users.DELETE("", protected(cfg.UserHandler.Delete)...)
			users.PUT("/distance", protected(cfg.UserHandler.UpdateDistance)...)
			users.GET("/:id", cfg.UserHandler.Get)
			users.GET("/:id/distance", cfg.UserHandler.GetDistance)
		}
	}

	// Quests
	if cfg.DistanceQuestHandler != nil {
		mountQuests(r.Group("/quests"), cfg.DistanceQuestHandler, protected)
	}
	if cfg.ImageQuestHandler != nil {
		mountQuests(r.Group("/imagequests"), cfg.ImageQuestHandler, protected)
	}

	return r
}

func mountQuests(g *gin.RouterGroup, h *httpH.QuestHandler, protected func(gin.HandlerFunc) []gin.HandlerFunc) {
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.GET("/:id/coin_reward", h.CoinReward)
	g.GET("/user/:id", h.ListUserProgress)
	g.POST("/user/:id", protected(h.Enroll)...)
	g.PUT("/user/:id", protected(h.Claim)...)
	if h.Variant().TracksCompletion {
		g.GET("/user/:id/quest/:questId", protected(h.GetUserProgress)...)
		g.PUT("/user/:id/quest/:questId", protected(h.Complete)...)
	}
}
