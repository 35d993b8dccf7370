package database

import (
	"context"
	"database/sql"
	"time"
	"wallpost/pkg/config"

	_ "github.com/lib/pq"
)

// NewPgDB opens a pooled connection to PostgreSQL using the configured
// connection string. Connections are acquired per statement and released
// unconditionally by database/sql, on every exit path.
func NewPgDB(cfg *config.Config) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.Database.URL)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// ping db to ensure the connection is alive and working
	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	err = db.PingContext(ctx)
	if err != nil {
		return nil, err
	}

	return db, nil
}
