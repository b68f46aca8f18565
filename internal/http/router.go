package http

import (
	"github.com/gin-gonic/gin"

	httpH "github.com/aartrack/aar-backend/internal/http/handlers"
	httpMW "github.com/aartrack/aar-backend/internal/http/middleware"
	"github.com/aartrack/aar-backend/internal/pkg/logger"
)

type RouterConfig struct {
	Log         *logger.Logger
	CORSOrigins []string

	AuthMiddleware *httpMW.AuthMiddleware

	AuthHandler           *httpH.AuthHandler
	CourseHandler         *httpH.CourseHandler
	KnowledgePointHandler *httpH.KnowledgePointHandler
	ActionItemHandler     *httpH.ActionItemHandler
	ReviewLogHandler      *httpH.ReviewLogHandler
	TagHandler            *httpH.TagHandler
	HealthHandler         *httpH.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(httpMW.AttachRequestID())
	if cfg.Log != nil {
		r.Use(httpMW.RequestLogger(cfg.Log))
	}
	r.Use(httpMW.CORS(cfg.CORSOrigins))

	api := r.Group("/api")
	{
		// Liveness (public)
		if cfg.HealthHandler != nil {
			api.GET("/health", cfg.HealthHandler.HealthCheck)
		}

		// Auth (public)
		if cfg.AuthHandler != nil {
			api.POST("/auth/register", cfg.AuthHandler.Register)
			api.POST("/auth/login", cfg.AuthHandler.Login)
		}
	}

	protected := api.Group("/")
	{
		if cfg.AuthMiddleware != nil {
			protected.Use(cfg.AuthMiddleware.RequireAuth())
		}

		// Auth (protected)
		if cfg.AuthHandler != nil {
			protected.GET("/auth/me", cfg.AuthHandler.Me)
		}

		// Courses
		if cfg.CourseHandler != nil {
			protected.GET("/courses", cfg.CourseHandler.List)
			protected.POST("/courses", cfg.CourseHandler.Create)
			protected.GET("/courses/stats", cfg.CourseHandler.Stats)
			protected.GET("/courses/:id", cfg.CourseHandler.Get)
			protected.PATCH("/courses/:id", cfg.CourseHandler.Update)
			protected.DELETE("/courses/:id", cfg.CourseHandler.Delete)
		}

		// Knowledge points
		if cfg.KnowledgePointHandler != nil {
			protected.GET("/knowledge-points/course/:course_id", cfg.KnowledgePointHandler.ListByCourse)
			protected.POST("/knowledge-points", cfg.KnowledgePointHandler.Create)
			protected.PATCH("/knowledge-points/:id", cfg.KnowledgePointHandler.Update)
			protected.DELETE("/knowledge-points/:id", cfg.KnowledgePointHandler.Delete)
		}

		// Action items
		if cfg.ActionItemHandler != nil {
			protected.GET("/action-items", cfg.ActionItemHandler.ListByUser)
			protected.GET("/action-items/stats", cfg.ActionItemHandler.Stats)
			protected.GET("/action-items/course/:course_id", cfg.ActionItemHandler.ListByCourse)
			protected.POST("/action-items", cfg.ActionItemHandler.Create)
			protected.PATCH("/action-items/:id", cfg.ActionItemHandler.Update)
			protected.DELETE("/action-items/:id", cfg.ActionItemHandler.Delete)
		}

		// Review logs
		if cfg.ReviewLogHandler != nil {
			protected.GET("/review-logs", cfg.ReviewLogHandler.ListByUser)
			protected.GET("/review-logs/course/:course_id", cfg.ReviewLogHandler.ListByCourse)
			protected.POST("/review-logs", cfg.ReviewLogHandler.Create)
			protected.PATCH("/review-logs/:id", cfg.ReviewLogHandler.Update)
			protected.DELETE("/review-logs/:id", cfg.ReviewLogHandler.Delete)
		}

		// Tags and course-tag links
		if cfg.TagHandler != nil {
			protected.GET("/tags", cfg.TagHandler.List)
			protected.POST("/tags", cfg.TagHandler.Create)
			protected.DELETE("/tags/:id", cfg.TagHandler.Delete)
			protected.GET("/tags/course/:course_id", cfg.TagHandler.ListCourseTags)
			protected.POST("/tags/course", cfg.TagHandler.AddTagToCourse)
			protected.DELETE("/tags/course/:course_id/tag/:tag_id", cfg.TagHandler.RemoveTagFromCourse)
		}
	}

	return r
}
