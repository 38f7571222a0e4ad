package userController

import (
	"eduak/database"
	"eduak/middleware"
	"eduak/models"
	"eduak/responses"
	userValidator "eduak/validators/userValidator"
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// loadProfile returns the profile of userID, creating an empty one for
// accounts that predate profiles.
func loadProfile(tx *gorm.DB, userID uint) (*models.Profile, error) {
	var profile models.Profile
	err := tx.Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		profile = models.Profile{UserID: userID}
		err = tx.Create(&profile).Error
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func GetProfile(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	profile, err := loadProfile(database.Database.Db, user.ID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	user.Profile = profile

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User profile.", responses.User(user))
}

func UpdateProfile(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedProfile").(*userValidator.UpdateProfileRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	user, err := middleware.CurrentUser(c)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	err = database.Database.Db.Transaction(func(tx *gorm.DB) error {
		userUpdates := map[string]interface{}{}
		if reqData.Name != nil {
			userUpdates["name"] = *reqData.Name
		}
		if reqData.Phone != nil {
			userUpdates["phone"] = *reqData.Phone
		}
		if len(userUpdates) > 0 {
			if err := tx.Model(user).Updates(userUpdates).Error; err != nil {
				return err
			}
			if reqData.Name != nil {
				user.Name = *reqData.Name
			}
			if reqData.Phone != nil {
				user.Phone = *reqData.Phone
			}
		}

		profile, err := loadProfile(tx, user.ID)
		if err != nil {
			return err
		}
		if reqData.Bio != nil {
			profile.Bio = *reqData.Bio
		}
		if reqData.Avatar != nil {
			profile.Avatar = *reqData.Avatar
		}
		if reqData.Links != nil {
			profile.Links = datatypes.JSONMap(reqData.Links)
		}
		if err := tx.Save(profile).Error; err != nil {
			return err
		}
		user.Profile = profile
		return nil
	})
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile updated successfully.", responses.User(user))
}
