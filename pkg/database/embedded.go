package database

import (
	"database/sql"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"time"

	embeddedpostgres "github.com/fergusstrange/embedded-postgres"
	_ "github.com/lib/pq"
)

// EmbeddedDB is a self-contained PostgreSQL instance, used by the standalone
// binary and by database-backed tests.
type EmbeddedDB struct {
	pg   *embeddedpostgres.EmbeddedPostgres
	DB   *sql.DB
	Port uint32
}

// DSN returns the connection string for the embedded instance.
func (e *EmbeddedDB) DSN() string {
	return fmt.Sprintf(
		"host=localhost port=%d user=postgres password=postgres dbname=wallpost sslmode=disable",
		e.Port,
	)
}

// Stop closes the pool and shuts the instance down.
func (e *EmbeddedDB) Stop() error {
	if e.DB != nil {
		e.DB.Close()
	}
	if e.pg != nil {
		return e.pg.Stop()
	}
	return nil
}

// FindAvailablePort finds an available TCP port starting from the given port.
func FindAvailablePort(startPort uint32) (uint32, error) {
	for port := startPort; port < startPort+100; port++ {
		ln, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
		if err == nil {
			ln.Close()
			return port, nil
		}
	}
	return 0, fmt.Errorf("could not find an available port starting from %d", startPort)
}

// StartEmbedded boots an embedded PostgreSQL under baseDir, waits for it to
// accept connections, and initializes the wallpost schema.
func StartEmbedded(port uint32, baseDir string) (*EmbeddedDB, error) {
	dataDir := filepath.Join(baseDir, "data")
	runtimeDir := filepath.Join(baseDir, "runtime")
	binariesDir := filepath.Join(baseDir, "binaries")

	for _, dir := range []string{dataDir, runtimeDir, binariesDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	// clean up any existing data to avoid conflicts
	if err := os.RemoveAll(dataDir); err != nil {
		return nil, fmt.Errorf("failed to clean up data directory: %w", err)
	}
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to recreate data directory: %w", err)
	}

	pg := embeddedpostgres.NewDatabase(embeddedpostgres.DefaultConfig().
		Username("postgres").
		Password("postgres").
		Database("wallpost").
		Port(port).
		RuntimePath(runtimeDir).
		DataPath(dataDir).
		BinariesPath(binariesDir))

	if err := pg.Start(); err != nil {
		return nil, fmt.Errorf("failed to start embedded PostgreSQL: %w", err)
	}

	embedded := &EmbeddedDB{pg: pg, Port: port}

	db, err := waitForReady(embedded.DSN(), 30)
	if err != nil {
		pg.Stop()
		return nil, err
	}
	embedded.DB = db

	if err := InitSchema(db); err != nil {
		embedded.Stop()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return embedded, nil
}

// waitForReady retries pinging the database once per second.
func waitForReady(dsn string, attempts int) (*sql.DB, error) {
	for i := 0; i < attempts; i++ {
		db, err := sql.Open("postgres", dsn)
		if err == nil {
			if err := db.Ping(); err == nil {
				return db, nil
			}
			db.Close()
		}
		time.Sleep(1 * time.Second)
	}

	return nil, fmt.Errorf("embedded PostgreSQL failed to start after %d seconds", attempts)
}
