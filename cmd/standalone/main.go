package main

import (
	"os"
	"path/filepath"
	"time"
	"wallpost/internal/app"
	"wallpost/pkg/config"
	"wallpost/pkg/database"
	"wallpost/pkg/logger"
)

// standalone runs the API against an embedded PostgreSQL instance, no
// external services required. The schema is recreated on every start.
func main() {
	cfg := standaloneConfig()
	logger.InitLogger(cfg)

	logger.Info("starting wallpost standalone...")

	port, err := database.FindAvailablePort(15432)
	if err != nil {
		logger.Fatalf("no port for embedded PostgreSQL: %v", err)
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		logger.Fatalf("failed to get user home directory: %v", err)
	}

	embedded, err := database.StartEmbedded(port, filepath.Join(homeDir, ".wallpost"))
	if err != nil {
		logger.Fatalf("failed to start embedded PostgreSQL: %v", err)
	}
	defer embedded.Stop()

	logger.Infof("embedded PostgreSQL ready on port %d", port)

	cfg.Database.URL = embedded.DSN()
	server := app.NewAppServerWithDB(cfg, embedded.DB)
	server.Serve()
}

func standaloneConfig() *config.Config {
	return &config.Config{
		Port: "8080",
		Database: config.DatabaseConfig{
			MaxOpenConns:    25,
			MaxIdleConns:    25,
			ConnMaxLifetime: 5 * time.Minute,
		},
		Log: config.LogConfig{
			Level:  logger.InfoLevel,
			Format: logger.ConsoleFormat,
		},
		CORS: config.CORSConfig{
			AllowedOrigins: []string{"*"},
		},
	}
}
