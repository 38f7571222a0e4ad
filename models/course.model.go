package models

import (
	"time"

	"gorm.io/gorm"
)

type Course struct {
	gorm.Model
	OwnerID   uint    `gorm:"index;not null"`
	Owner     User    `gorm:"foreignKey:OwnerID"`
	SubjectID uint    `gorm:"index;not null"`
	Subject   Subject `gorm:"foreignKey:SubjectID"`
	Title     string  `gorm:"size:200;not null"`
	Overview  string  `gorm:"type:text"`
	Students  []User  `gorm:"many2many:course_students;"`
	Modules   []Module
}

// CourseStudent is the join row of the Course.Students set. The composite
// primary key makes a second insert for the same pair a conflict.
type CourseStudent struct {
	CourseID  uint `gorm:"primaryKey"`
	UserID    uint `gorm:"primaryKey"`
	CreatedAt time.Time
}

func (CourseStudent) TableName() string {
	return "course_students"
}
