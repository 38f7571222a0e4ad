package services

import (
	"eduak/models"
	"eduak/policies"
	"errors"

	"gorm.io/gorm"
)

// CreateAccount stores user together with an empty profile. A unique
// violation on email is reported as policies.ErrEmailTaken, which covers two
// registrations racing past the caller's existence check.
func CreateAccount(db *gorm.DB, user *models.User) error {
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		profile := models.Profile{UserID: user.ID}
		if err := tx.Create(&profile).Error; err != nil {
			return err
		}
		user.Profile = &profile
		return nil
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return policies.ErrEmailTaken
	}
	return err
}
