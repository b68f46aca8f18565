package app

import (
	httpS "github.com/aartrack/aar-backend/internal/http"
	"github.com/aartrack/aar-backend/internal/pkg/logger"
)

func wireServer(log *logger.Logger, cfg Config, h Handlers, mw Middleware) *httpS.Server {
	log.Info("Wiring router...")
	return httpS.NewServer(httpS.RouterConfig{
		Log:         log,
		CORSOrigins: cfg.CORSOrigins,

		AuthMiddleware: mw.Auth,

		AuthHandler:           h.Auth,
		CourseHandler:         h.Course,
		KnowledgePointHandler: h.KnowledgePoint,
		ActionItemHandler:     h.ActionItem,
		ReviewLogHandler:      h.ReviewLog,
		TagHandler:            h.Tag,
		HealthHandler:         h.Health,
	})
}
