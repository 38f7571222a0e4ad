package authController

import (
	"context"
	"eduak/config"
	"eduak/database"
	"eduak/logger"
	"eduak/mailer"
	"eduak/middleware"
	"eduak/models"
	"eduak/policies"
	"eduak/responses"
	"eduak/services"
	"eduak/utils"
	authValidator "eduak/validators/auth"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const mailTimeout = 15 * time.Second

func Register(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedUser").(*authValidator.RegisterRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// Check if email already exists
	var existing int64
	if err := db.Model(&models.User{}).Where("email = ?", reqData.Email).Count(&existing).Error; err != nil {
		return middleware.ErrorResponse(c, err)
	}
	if existing > 0 {
		return middleware.ErrorResponse(c, policies.ErrEmailTaken)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	role := models.Role(reqData.Role)
	if role == "" {
		role = models.RoleTeacher
	}

	newUser := models.User{
		Name:     reqData.Name,
		Email:    reqData.Email,
		Phone:    reqData.Phone,
		Role:     role,
		Password: string(hashedPassword),
		IsActive: false,
	}

	if err := services.CreateAccount(db, &newUser); err != nil {
		return middleware.ErrorResponse(c, err)
	}

	logger.Log.Info("user registered", zap.Uint("userId", newUser.ID), zap.String("role", string(newUser.Role)))
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User registered successfully.", responses.User(&newUser))
}

func Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedUser").(*authValidator.LoginRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Preload("Profile").Where("email = ?", reqData.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.ErrorResponse(c, policies.ErrBadCredentials)
		}
		return middleware.ErrorResponse(c, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)); err != nil {
		return middleware.ErrorResponse(c, policies.ErrBadCredentials)
	}
	if !user.IsActive {
		return middleware.ErrorResponse(c, policies.ErrInactiveAccount)
	}

	loginTracking := models.LoginTracking{
		UserID:    user.ID,
		IPAddress: c.IP(),
		Device:    c.Get("User-Agent"),
		Timestamp: time.Now(),
	}
	if err := db.Create(&loginTracking).Error; err != nil {
		logger.Log.Warn("Error saving login tracking details", zap.Uint("userId", user.ID), zap.Error(err))
	}

	token, err := middleware.GenerateJWT(user.ID, user.Role, user.Email)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful.", fiber.Map{
		"user":  responses.User(&user),
		"token": token,
	})
}

func LoginHistoryList(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	page := utils.ParsePage(c)
	q := database.Database.Db.Model(&models.LoginTracking{}).Where("user_id = ?", user.ID).Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return middleware.ErrorResponse(c, err)
	}

	var history []models.LoginTracking
	if err := q.Order("created_at desc").Order("id desc").Limit(page.Limit).Offset(page.Offset).Find(&history).Error; err != nil {
		return middleware.ErrorResponse(c, err)
	}

	results := make([]fiber.Map, 0, len(history))
	for _, h := range history {
		results = append(results, fiber.Map{
			"ip_address": h.IPAddress,
			"device":     h.Device,
			"timestamp":  h.Timestamp,
		})
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login History List.", utils.Paginated(total, page, results))
}

func SendOTP(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedUser").(*authValidator.SendOTPRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	user, err := services.FindUserByEmail(db, reqData.Email)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	otp, err := services.IssueOTP(db, user, time.Now(), config.AppConfig.OTPExpiry)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), mailTimeout)
	defer cancel()
	subject, body := mailer.OTPEmail(otp.Code, config.AppConfig.OTPExpiry)
	if err := mailer.Default.Send(ctx, []string{user.Email}, subject, body); err != nil {
		// the code is stored either way; the caller can ask for a new one
		logger.Log.Error("Failed to send OTP email", zap.String("email", user.Email), zap.Error(err))
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "OTP sent successfully.", nil)
}

func VerifyOTP(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedUser").(*authValidator.VerifyOTPRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	user, err := services.VerifyOTP(database.Database.Db, reqData.Email, reqData.Code, time.Now())
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	logger.Log.Info("account activated", zap.Uint("userId", user.ID))
	return middleware.JsonResponse(c, fiber.StatusOK, true, "OTP verified successfully!", responses.User(user))
}
