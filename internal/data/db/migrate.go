package db

import (
	types "github.com/aartrack/aar-backend/internal/domain"
	"gorm.io/gorm"
)

// AutoMigrateAll creates the schema at startup when absent. Order matters:
// parents before children so foreign keys resolve.
func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(
		&types.User{},
		&types.Course{},
		&types.KnowledgePoint{},
		&types.ActionItem{},
		&types.ReviewLog{},
		&types.Tag{},
		&types.CourseTag{},
	)
}
