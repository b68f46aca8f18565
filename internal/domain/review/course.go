package review

import (
	"time"

	"github.com/aartrack/aar-backend/internal/domain/user"
)

const (
	CourseStatusNotStarted = "not-started"
	CourseStatusInProgress = "in-progress"
	CourseStatusCompleted  = "completed"

	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

type Course struct {
	ID     uint       `gorm:"primaryKey" json:"id"`
	UserID uint       `gorm:"not null;index" json:"user_id"`
	User   *user.User `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"-"`

	Title        string     `gorm:"size:255;not null;column:title" json:"title"`
	Platform     *string    `gorm:"size:100;column:platform" json:"platform"`
	Instructor   *string    `gorm:"size:100;column:instructor" json:"instructor"`
	Description  *string    `gorm:"type:text;column:description" json:"description"`
	CourseURL    *string    `gorm:"size:500;column:course_url" json:"course_url"`
	PurchaseDate *time.Time `gorm:"column:purchase_date" json:"purchase_date"`

	Status             string  `gorm:"size:20;not null;default:'not-started'" json:"status"`
	ProgressPercentage float64 `gorm:"type:numeric(5,2);not null;default:0" json:"progress_percentage"`
	CompletedChapters  int     `gorm:"not null;default:0" json:"completed_chapters"`
	TotalChapters      int     `gorm:"not null;default:0" json:"total_chapters"`
	Priority           string  `gorm:"size:10;not null;default:'medium'" json:"priority"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Course) TableName() string { return "courses" }
