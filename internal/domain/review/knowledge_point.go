package review

import (
	"time"
)

type KnowledgePoint struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	CourseID uint    `gorm:"not null;index" json:"course_id"`
	Course   *Course `gorm:"constraint:OnDelete:CASCADE;foreignKey:CourseID;references:ID" json:"-"`

	Title         string  `gorm:"size:255;not null;column:title" json:"title"`
	Content       *string `gorm:"type:text;column:content" json:"content"`
	Summary       *string `gorm:"type:text;column:summary" json:"summary"`
	PersonalNotes *string `gorm:"type:text;column:personal_notes" json:"personal_notes"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (KnowledgePoint) TableName() string { return "knowledge_points" }
