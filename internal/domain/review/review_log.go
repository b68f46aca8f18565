package review

import (
	"time"

	"github.com/aartrack/aar-backend/internal/domain/user"
)

type ReviewLog struct {
	ID       uint       `gorm:"primaryKey" json:"id"`
	CourseID uint       `gorm:"not null;index" json:"course_id"`
	Course   *Course    `gorm:"constraint:OnDelete:CASCADE;foreignKey:CourseID;references:ID" json:"-"`
	UserID   uint       `gorm:"not null;index" json:"user_id"`
	User     *user.User `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"-"`

	Title               string  `gorm:"size:255;not null;column:title" json:"title"`
	Reflection          *string `gorm:"type:text;column:reflection" json:"reflection"`
	ApplicationInsights *string `gorm:"type:text;column:application_insights" json:"application_insights"`
	KeyTakeaways        *string `gorm:"type:text;column:key_takeaways" json:"key_takeaways"`

	// 1-5 scale
	EmotionalIndicator int       `gorm:"not null;default:3" json:"emotional_indicator"`
	ReviewDate         time.Time `gorm:"not null;index" json:"review_date"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (ReviewLog) TableName() string { return "review_logs" }
