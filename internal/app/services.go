package app

import (
	"gorm.io/gorm"

	"github.com/aartrack/aar-backend/internal/pkg/logger"
	"github.com/aartrack/aar-backend/internal/services"
)

type Services struct {
	Auth           services.AuthService
	Course         services.CourseService
	KnowledgePoint services.KnowledgePointService
	ActionItem     services.ActionItemService
	ReviewLog      services.ReviewLogService
	Tag            services.TagService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, r Repos) Services {
	log.Info("Wiring services...")
	return Services{
		Auth:           services.NewAuthService(db, log, r.User, cfg.JWTSecret, cfg.TokenTTL),
		Course:         services.NewCourseService(db, log, r.Course, r.KnowledgePoint, r.ActionItem, r.ReviewLog, r.CourseTag),
		KnowledgePoint: services.NewKnowledgePointService(db, log, r.KnowledgePoint, r.ActionItem),
		ActionItem:     services.NewActionItemService(db, log, r.ActionItem, r.Course),
		ReviewLog:      services.NewReviewLogService(db, log, r.ReviewLog, r.Course),
		Tag:            services.NewTagService(db, log, r.Tag, r.CourseTag),
	}
}
