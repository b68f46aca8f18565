package app

import (
	"gorm.io/gorm"

	reviewrepo "github.com/aartrack/aar-backend/internal/data/repos/review"
	userrepo "github.com/aartrack/aar-backend/internal/data/repos/user"
	"github.com/aartrack/aar-backend/internal/pkg/logger"
)

type Repos struct {
	User           userrepo.UserRepo
	Course         reviewrepo.CourseRepo
	KnowledgePoint reviewrepo.KnowledgePointRepo
	ActionItem     reviewrepo.ActionItemRepo
	ReviewLog      reviewrepo.ReviewLogRepo
	Tag            reviewrepo.TagRepo
	CourseTag      reviewrepo.CourseTagRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		User:           userrepo.NewUserRepo(db, log),
		Course:         reviewrepo.NewCourseRepo(db, log),
		KnowledgePoint: reviewrepo.NewKnowledgePointRepo(db, log),
		ActionItem:     reviewrepo.NewActionItemRepo(db, log),
		ReviewLog:      reviewrepo.NewReviewLogRepo(db, log),
		Tag:            reviewrepo.NewTagRepo(db, log),
		CourseTag:      reviewrepo.NewCourseTagRepo(db, log),
	}
}
