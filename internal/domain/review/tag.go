package review

import (
	"time"

	"github.com/aartrack/aar-backend/internal/domain/user"
)

type Tag struct {
	ID     uint       `gorm:"primaryKey" json:"id"`
	UserID uint       `gorm:"not null;index" json:"user_id"`
	User   *user.User `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"-"`

	Name     string  `gorm:"size:50;not null;column:name" json:"name"`
	Color    *string `gorm:"size:20;column:color" json:"color"`
	Category *string `gorm:"size:50;column:category" json:"category"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (Tag) TableName() string { return "tags" }
