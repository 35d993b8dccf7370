package main

import (
	"wallpost/pkg/config"
	"wallpost/pkg/database"
	"wallpost/pkg/logger"
)

// init-db drops and recreates the wallpost tables. Destructive; meant for
// provisioning and test environments.
func main() {
	cfg := config.NewConfig()
	logger.InitLogger(cfg)

	logger.Info("creating db")

	db, err := database.NewPgDB(cfg)
	if err != nil {
		logger.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	err = database.InitSchema(db)
	if err != nil {
		logger.Fatalf("failed to initialize schema: %v", err)
	}

	logger.Info("done")
}
