package database

import (
	"eduak/config"
	"eduak/logger"
	"eduak/models"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// DbInstance struct holds the database connection instance
type DbInstance struct {
	Db *gorm.DB
}

// Database is the global database instance
var Database DbInstance

// ConnectDb opens the configured database, migrates it and stores it globally.
func ConnectDb() {
	db, err := Open(config.AppConfig)
	if err != nil {
		logger.Log.Fatal("Failed to connect to database", zap.String("engine", config.AppConfig.DBEngine), zap.Error(err))
	}

	// Set up connection pooling
	sqlDB, err := db.DB()
	if err != nil {
		logger.Log.Fatal("Failed to get database instance", zap.Error(err))
	}
	sqlDB.SetMaxOpenConns(10)   // Maximum open connections
	sqlDB.SetMaxIdleConns(5)    // Maximum idle connections
	sqlDB.SetConnMaxLifetime(0) // No timeout

	if err := RunMigrations(db); err != nil {
		logger.Log.Fatal("Migration failed", zap.Error(err))
	}

	Database = DbInstance{Db: db}
}

// Use installs db as the global instance. Tests call it with a sqlite handle.
func Use(db *gorm.DB) {
	Database = DbInstance{Db: db}
}

// Open returns a gorm handle for the engine named in cfg.
func Open(cfg *config.Config) (*gorm.DB, error) {
	dialector, err := dialectorFor(cfg)
	if err != nil {
		return nil, err
	}

	// unique violations come back as gorm.ErrDuplicatedKey
	gormCfg := &gorm.Config{TranslateError: true}
	if cfg.IsProduction() {
		gormCfg.Logger = gormlogger.Default.LogMode(gormlogger.Silent)
	}
	return gorm.Open(dialector, gormCfg)
}

func dialectorFor(cfg *config.Config) (gorm.Dialector, error) {
	switch cfg.DBEngine {
	case "postgres", "postgresql", "":
		dsn := cfg.DatabaseURL
		if dsn == "" {
			dsn = fmt.Sprintf(
				"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
				cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort,
			)
		}
		return postgres.Open(dsn), nil
	case "mysql":
		dsn := cfg.DatabaseURL
		if dsn == "" {
			dsn = fmt.Sprintf(
				"%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
				cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName,
			)
		}
		return mysql.Open(dsn), nil
	case "sqlite":
		return sqlite.Open(cfg.DBName), nil
	default:
		return nil, fmt.Errorf("unsupported DB_ENGINE %q", cfg.DBEngine)
	}
}

// RunMigrations performs database migrations
func RunMigrations(db *gorm.DB) error {
	logger.Log.Info("Running Migrations...")

	if err := db.SetupJoinTable(&models.Course{}, "Students", &models.CourseStudent{}); err != nil {
		return err
	}

	err := db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.OTP{},
		&models.LoginTracking{},
		&models.Subject{},
		&models.Course{},
		&models.CourseStudent{},
		&models.Module{},
	)
	if err != nil {
		return err
	}

	logger.Log.Info("Migrations completed successfully.")
	return nil
}
