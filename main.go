package main

import (
	"eduak/config"
	"eduak/database"
	"eduak/logger"
	"eduak/mailer"
	"eduak/routers"
	"eduak/utils"
	"log"

	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	if err := logger.Init(config.AppConfig.IsProduction()); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	database.ConnectDb()
	mailer.Default = mailer.New(config.AppConfig)

	scheduler, err := utils.InitializeOTPCleanupScheduler(database.Database.Db, config.AppConfig.OTPCleanup)
	if err != nil {
		logger.Log.Fatal("Failed to start OTP cleanup scheduler", zap.Error(err))
	}
	defer scheduler.Stop()

	app := routers.NewApp(false)

	logger.Log.Info("Server is running", zap.String("port", config.AppConfig.Port))
	if err := app.Listen(":" + config.AppConfig.Port); err != nil {
		logger.Log.Fatal("Server stopped", zap.Error(err))
	}
}
