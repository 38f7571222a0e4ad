// Package testutil wires an in-memory database and fixtures for tests.
package testutil

import (
	"eduak/config"
	"eduak/database"
	"eduak/middleware"
	"eduak/models"
	"fmt"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Password is the plain-text password of every fixture user.
const Password = "secret-pass"

// Config returns settings suitable for tests.
func Config() *config.Config {
	return &config.Config{
		Port:        "0",
		AppEnv:      "test",
		DBEngine:    "sqlite",
		JWTKey:      "test-secret",
		JWTExpiry:   time.Hour,
		SaltRound:   bcrypt.MinCost,
		OTPExpiry:   5 * time.Minute,
		OTPCleanup:  "@hourly",
		CORSOrigins: "*",
		ProxyHeader: fiber.HeaderXForwardedFor,
	}
}

// NewTestDB opens a private in-memory sqlite database, migrates it and
// installs it as the global handle together with a test configuration.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	config.AppConfig = Config()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// one connection keeps the in-memory database alive and serializes writers
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.RunMigrations(db))
	database.Use(db)
	return db
}

// CreateUser stores a user with a profile. Email is derived from name.
func CreateUser(t *testing.T, db *gorm.DB, name string, role models.Role, active bool) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(Password), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.User{
		Name:     name,
		Email:    name + "@example.com",
		Role:     role,
		Password: string(hash),
	}
	require.NoError(t, db.Create(user).Error)
	if active {
		require.NoError(t, db.Model(user).Update("is_active", true).Error)
		user.IsActive = true
	}
	profile := &models.Profile{UserID: user.ID}
	require.NoError(t, db.Create(profile).Error)
	user.Profile = profile
	return user
}

func CreateSubject(t *testing.T, db *gorm.DB, title, slug string) *models.Subject {
	t.Helper()
	subject := &models.Subject{Title: title, Slug: slug}
	require.NoError(t, db.Create(subject).Error)
	return subject
}

func CreateCourse(t *testing.T, db *gorm.DB, owner *models.User, subject *models.Subject, title, overview string) *models.Course {
	t.Helper()
	course := &models.Course{
		OwnerID:   owner.ID,
		SubjectID: subject.ID,
		Title:     title,
		Overview:  overview,
	}
	require.NoError(t, db.Create(course).Error)
	return course
}

func CreateModule(t *testing.T, db *gorm.DB, course *models.Course, title string, order int) *models.Module {
	t.Helper()
	module := &models.Module{CourseID: course.ID, Title: title, Order: order}
	require.NoError(t, db.Create(module).Error)
	return module
}

// Enroll adds student to course directly.
func Enroll(t *testing.T, db *gorm.DB, course *models.Course, student *models.User) {
	t.Helper()
	require.NoError(t, db.Create(&models.CourseStudent{CourseID: course.ID, UserID: student.ID}).Error)
}

// AuthHeader returns a bearer Authorization value for user.
func AuthHeader(t *testing.T, user *models.User) string {
	t.Helper()
	token, err := middleware.GenerateJWT(user.ID, user.Role, user.Email)
	require.NoError(t, err)
	return "Bearer " + token
}
