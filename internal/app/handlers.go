package app

import (
	httpH "github.com/aartrack/aar-backend/internal/http/handlers"
	"github.com/aartrack/aar-backend/internal/pkg/logger"
)

type Handlers struct {
	Auth           *httpH.AuthHandler
	Course         *httpH.CourseHandler
	KnowledgePoint *httpH.KnowledgePointHandler
	ActionItem     *httpH.ActionItemHandler
	ReviewLog      *httpH.ReviewLogHandler
	Tag            *httpH.TagHandler
	Health         *httpH.HealthHandler
}

func wireHandlers(log *logger.Logger, s Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Auth:           httpH.NewAuthHandler(s.Auth),
		Course:         httpH.NewCourseHandler(s.Course),
		KnowledgePoint: httpH.NewKnowledgePointHandler(s.KnowledgePoint),
		ActionItem:     httpH.NewActionItemHandler(s.ActionItem),
		ReviewLog:      httpH.NewReviewLogHandler(s.ReviewLog),
		Tag:            httpH.NewTagHandler(s.Tag),
		Health:         httpH.NewHealthHandler(),
	}
}
