package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port   string
	AppEnv string

	DBEngine    string // postgres, mysql or sqlite
	DatabaseURL string
	DBHost      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBPort      string

	JWTKey      string
	JWTExpiry   time.Duration
	SaltRound   int
	OTPExpiry   time.Duration
	OTPCleanup  string // cron spec for purging stale OTP rows
	CORSOrigins string

	// ProxyHeader is read for the client IP only when the peer is in TrustedProxies
	ProxyHeader    string
	TrustedProxies []string

	EmailHost         string
	EmailPort         int
	EmailHostUser     string
	EmailHostPassword string
	DefaultFromEmail  string
	SendGridAPIKey    string
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:   getEnv("PORT", "3000"),
		AppEnv: getEnv("APP_ENV", "development"),

		DBEngine:    strings.ToLower(getEnv("DB_ENGINE", "postgres")),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBUser:      getEnv("DB_USER", "eduak_user"),
		DBPassword:  getEnv("DB_PASSWORD", ""),
		DBName:      getEnv("DB_NAME", "eduak_db"),
		DBPort:      getEnv("DB_PORT", "5432"),

		JWTKey:      getEnv("JWT_SECRET_KEY", "defaultSecret"),
		JWTExpiry:   time.Duration(getEnvInt("JWT_EXPIRY_HOURS", 24)) * time.Hour,
		SaltRound:   getEnvInt("SALT_ROUND", 10),
		OTPExpiry:   time.Duration(getEnvInt("OTP_EXPIRY_MINUTES", 5)) * time.Minute,
		OTPCleanup:  getEnv("OTP_CLEANUP_SPEC", "@hourly"),
		CORSOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),

		ProxyHeader:    getEnv("PROXY_HEADER", fiber.HeaderXForwardedFor),
		TrustedProxies: getEnvList("TRUSTED_PROXIES"),

		EmailHost:         getEnv("EMAIL_HOST", "smtp.gmail.com"),
		EmailPort:         getEnvInt("EMAIL_PORT", 587),
		EmailHostUser:     getEnv("EMAIL_HOST_USER", ""),
		EmailHostPassword: getEnv("EMAIL_HOST_PASSWORD", ""),
		DefaultFromEmail:  getEnv("DEFAULT_FROM_EMAIL", "no-reply@eduak.local"),
		SendGridAPIKey:    getEnv("SENDGRID_API_KEY", ""),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
	if AppConfig.DBEngine == "postgres" && AppConfig.DatabaseURL == "" && AppConfig.DBPassword == "" {
		log.Println("Warning: DB_PASSWORD is empty. Update it in your environment.")
	}
}

// IsProduction reports whether the service runs with production settings.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvList splits a comma separated variable, dropping empty items
func getEnvList(key string) []string {
	var out []string
	for _, item := range strings.Split(os.Getenv(key), ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}
