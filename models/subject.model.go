package models

import "gorm.io/gorm"

// Subject is a classification label for courses.
type Subject struct {
	gorm.Model
	Title   string `gorm:"size:200;not null"`
	Slug    string `gorm:"size:200;uniqueIndex;not null"`
	Courses []Course
}
