package services

import (
	"eduak/models"
	"eduak/policies"
	"eduak/utils"
	"errors"
	"time"

	"gorm.io/gorm"
)

const verificationOTP = "Email Verification OTP"

// FindUserByEmail returns policies.ErrUserNotFound when no account matches.
func FindUserByEmail(db *gorm.DB, email string) (*models.User, error) {
	var user models.User
	err := db.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, policies.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// IssueOTP stores a fresh code for user. Every earlier unused code for the
// same email is invalidated in the same transaction.
func IssueOTP(db *gorm.DB, user *models.User, now time.Time, ttl time.Duration) (*models.OTP, error) {
	code, err := utils.GenerateOTP()
	if err != nil {
		return nil, err
	}

	otp := models.OTP{
		UserID:      user.ID,
		Email:       user.Email,
		Code:        code,
		ExpiresAt:   now.Add(ttl),
		Description: verificationOTP,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.OTP{}).
			Where("email = ? AND is_used = ?", user.Email, false).
			Update("is_used", true).Error; err != nil {
			return err
		}
		return tx.Create(&otp).Error
	})
	if err != nil {
		return nil, err
	}
	return &otp, nil
}

// VerifyOTP redeems code against the most recent unused OTP for email and
// activates the account.
func VerifyOTP(db *gorm.DB, email, code string, now time.Time) (*models.User, error) {
	var user models.User
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("email = ?", email).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return policies.ErrInvalidOTP
			}
			return err
		}

		var otp models.OTP
		err := tx.Where("email = ? AND is_used = ?", email, false).
			Order("created_at desc").Order("id desc").
			First(&otp).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return policies.ErrInvalidOTP
		}
		if err != nil {
			return err
		}

		if otp.Code != code || otp.Expired(now) {
			return policies.ErrInvalidOTP
		}

		if err := tx.Model(&otp).Update("is_used", true).Error; err != nil {
			return err
		}
		user.IsActive = true
		return tx.Model(&user).Update("is_active", true).Error
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}
