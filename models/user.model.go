package models

import (
	"gorm.io/gorm"
)

// Role is the account kind checked at every authorization boundary.
type Role string

const (
	RoleTeacher Role = "teacher"
	RoleStudent Role = "student"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleTeacher || r == RoleStudent
}

type User struct {
	gorm.Model
	Name     string `gorm:"default:''"`
	Email    string `gorm:"unique;not null"`
	Phone    string `gorm:"default:''"`
	Role     Role   `gorm:"type:varchar(16);default:'teacher'"`
	Password string `gorm:"not null"`
	IsActive bool   `gorm:"default:false"` // flipped by OTP verification
	Profile  *Profile
}
