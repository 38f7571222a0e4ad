package main

import (
	"eduak/config"
	"eduak/database"
	"eduak/logger"
	"eduak/services"
	"flag"
	"log"
	"os"

	"go.uber.org/zap"
)

func main() {
	path := flag.String("file", "subjects.csv", "CSV file with title and slug columns")
	flag.Parse()

	// Load config and connect to database
	config.LoadConfig()
	if err := logger.Init(config.AppConfig.IsProduction()); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	database.ConnectDb()

	file, err := os.Open(*path)
	if err != nil {
		logger.Log.Fatal("Failed to open CSV file", zap.String("file", *path), zap.Error(err))
	}
	defer file.Close()

	result, err := services.ImportSubjects(database.Database.Db, file)
	if err != nil {
		logger.Log.Fatal("Import failed", zap.Error(err))
	}

	logger.Log.Info("Import completed",
		zap.Int("upserted", result.Upserted),
		zap.Int("skipped", result.Skipped))
}
