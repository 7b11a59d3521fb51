package postgres

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/buildtrack/construction-api/config"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// NewConnection opens a bounded database/sql pool over the pgx driver.
// Requests beyond MaxOpenConns queue for a free connection.
func NewConnection(cfg *config.DatabaseConfig) (*sql.DB, error) {
	dsn := DSN(cfg)

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxIdleTime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}
