package main

import (
	"wallpost/internal/app"
	"wallpost/pkg/config"
	"wallpost/pkg/logger"
)

func main() {
	// Initialize configuration
	cfg := config.NewConfig()

	// Initialize logger
	logger.InitLogger(cfg)

	// Create and start the application server
	server := app.NewAppServer(cfg)
	server.Serve()
}
