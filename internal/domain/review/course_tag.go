package review

type CourseTag struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	CourseID uint    `gorm:"not null;index" json:"course_id"`
	Course   *Course `gorm:"constraint:OnDelete:CASCADE;foreignKey:CourseID;references:ID" json:"-"`
	TagID    uint    `gorm:"not null;index" json:"tag_id"`
	Tag      *Tag    `gorm:"constraint:OnDelete:CASCADE;foreignKey:TagID;references:ID" json:"tag,omitempty"`
}

func (CourseTag) TableName() string { return "course_tags" }
