package middleware

import (
	"eduak/config"
	"eduak/database"
	"eduak/models"
	"eduak/policies"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GenerateJWT generates a JWT token for the user
func GenerateJWT(userID uint, role models.Role, email string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"userId": userID,
		"role":   string(role),
		"email":  email,
		"jti":    uuid.NewString(),
		"iat":    now.Unix(),
		"exp":    now.Add(config.AppConfig.JWTExpiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	jwtSecret := []byte(config.AppConfig.JWTKey)

	return token.SignedString(jwtSecret)
}

var (
	errMissingHeader = errors.New("Missing or invalid Authorization header")
	errHeaderFormat  = errors.New("Invalid Authorization header format")
	errBadToken      = errors.New("Invalid or expired token")
	errBadPayload    = errors.New("Invalid token payload")
)

// parseBearer extracts the user id from the Authorization header.
func parseBearer(authHeader string) (uint, error) {
	if authHeader == "" {
		return 0, errMissingHeader
	}
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return 0, errHeaderFormat
	}
	tokenString := authHeader[len("Bearer "):]

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.AppConfig.JWTKey), nil
	})
	if err != nil || !token.Valid {
		return 0, errBadToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, errBadPayload
	}
	// JWT numbers decode as float64
	userID, ok := claims["userId"].(float64)
	if !ok || userID <= 0 {
		return 0, errBadPayload
	}
	return uint(userID), nil
}

// JWTMiddleware is a middleware to check for valid JWT token in the request
func JWTMiddleware(c *fiber.Ctx) error {
	userID, err := parseBearer(c.Get("Authorization"))
	if err != nil {
		return JsonResponse(c, fiber.StatusUnauthorized, false, err.Error(), nil)
	}
	c.Locals("userId", userID)
	return c.Next()
}

// OptionalJWTMiddleware sets userId when a token is present. A malformed or
// expired token is still rejected.
func OptionalJWTMiddleware(c *fiber.Ctx) error {
	header := c.Get("Authorization")
	if header == "" {
		return c.Next()
	}
	userID, err := parseBearer(header)
	if err != nil {
		return JsonResponse(c, fiber.StatusUnauthorized, false, err.Error(), nil)
	}
	c.Locals("userId", userID)
	return c.Next()
}

// CurrentUser loads the authenticated user once per request.
func CurrentUser(c *fiber.Ctx) (*models.User, error) {
	if user, ok := c.Locals("user").(*models.User); ok {
		return user, nil
	}
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return nil, policies.ErrUnauthenticated
	}

	var user models.User
	err := database.Database.Db.Where("id = ? AND is_active = ?", userID, true).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, policies.ErrUnauthenticated
	}
	if err != nil {
		return nil, err
	}
	c.Locals("user", &user)
	return &user, nil
}
