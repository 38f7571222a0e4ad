package models

import (
	"time"

	"gorm.io/gorm"
)

type OTP struct {
	gorm.Model
	UserID      uint      `gorm:"not null;index"`
	Email       string    `gorm:"size:100;index"`
	Code        string    `gorm:"size:6;not null"`
	ExpiresAt   time.Time `gorm:"not null"`
	IsUsed      bool      `gorm:"default:false"`
	Description string    `gorm:"size:255"`
}

// Expired reports whether the code can no longer be redeemed at now.
func (o *OTP) Expired(now time.Time) bool {
	return !o.ExpiresAt.After(now)
}
