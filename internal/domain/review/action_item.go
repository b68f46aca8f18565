package review

import (
	"time"

	"github.com/aartrack/aar-backend/internal/domain/user"
)

type ActionItem struct {
	ID               uint            `gorm:"primaryKey" json:"id"`
	CourseID         uint            `gorm:"not null;index" json:"course_id"`
	Course           *Course         `gorm:"constraint:OnDelete:CASCADE;foreignKey:CourseID;references:ID" json:"-"`
	KnowledgePointID *uint           `gorm:"index" json:"knowledge_point_id"`
	KnowledgePoint   *KnowledgePoint `gorm:"constraint:OnDelete:SET NULL;foreignKey:KnowledgePointID;references:ID" json:"-"`
	UserID           uint            `gorm:"not null;index" json:"user_id"`
	User             *user.User      `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"-"`

	Title       string     `gorm:"size:255;not null;column:title" json:"title"`
	Description *string    `gorm:"type:text;column:description" json:"description"`
	Priority    string     `gorm:"size:10;not null;default:'medium'" json:"priority"`
	Completed   bool       `gorm:"not null;default:false" json:"completed"`
	DueDate     *time.Time `gorm:"column:due_date" json:"due_date"`
	CompletedAt *time.Time `gorm:"column:completed_at" json:"completed_at"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (ActionItem) TableName() string { return "action_items" }
