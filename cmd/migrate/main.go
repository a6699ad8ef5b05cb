package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"chitrashala_backend/internal/config" // Custom import path (Config)
	"chitrashala_backend/internal/db"     // Custom import path (Database)
)

// Main entry point for index bootstrap
func main() {
	cfg := config.LoadConfig() // Load configuration

	client, err := db.Connect(cfg.MongoURI)
	if err != nil {
		logrus.Fatalf("failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(context.Background())

	if err := db.EnsureIndexes(context.Background(), client.Database(cfg.MongoDB)); err != nil {
		logrus.Fatalf("index bootstrap failed: %v", err)
	}
}
