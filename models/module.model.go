package models

import "gorm.io/gorm"

// Module is an ordered content unit of a course.
type Module struct {
	gorm.Model
	CourseID    uint   `gorm:"index;not null"`
	Title       string `gorm:"size:200;not null"`
	Description string `gorm:"type:text"`
	Order       int    `gorm:"column:position;default:0"`
}
