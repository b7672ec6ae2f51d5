// Package database provides the SQL persistence layer: the append-only
// feedback log and the adjustment-state snapshot that survives restarts.
package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	// Database drivers, selected via Config.Driver.
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// Config holds database connection settings.
type Config struct {
	Driver          string        `env:"DB_DRIVER" yaml:"driver"`
	DSN             string        `env:"DB_DSN"    yaml:"dsn"`
	MaxConnections  int           `yaml:"max_connections"`
	MaxIdleConns    int           `yaml:"max_idle_connections"`
	ConnMaxLifetime time.Duration `yaml:"connection_max_lifetime"`
}

// Connect opens and pings the configured database.
func Connect(ctx context.Context, cfg Config) (*sqlx.DB, error) {
	switch cfg.Driver {
	case "sqlite3", "postgres":
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	db, err := sqlx.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxConnections)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return db, nil
}

// Store bundles the repositories behind the feedback adjuster's Store
// interface.
type Store struct {
	*FeedbackRepository
	*AdjustmentRepository
}

// NewStore creates the combined store over one connection.
func NewStore(db *sqlx.DB) *Store {
	return &Store{
		FeedbackRepository:   NewFeedbackRepository(db),
		AdjustmentRepository: NewAdjustmentRepository(db),
	}
}

// Migrate creates the schema if it does not exist. The DDL is portable
// between sqlite and postgres.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS feedback_records (
			id              TEXT PRIMARY KEY,
			query_text      TEXT NOT NULL,
			query_signature TEXT NOT NULL,
			domain          TEXT NOT NULL,
			subdomain       TEXT NOT NULL,
			confidence      REAL NOT NULL,
			feedback_text   TEXT NOT NULL,
			rating          INTEGER,
			polarity        TEXT NOT NULL,
			applied         BOOLEAN NOT NULL,
			step            REAL NOT NULL,
			created_at      TIMESTAMP NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_feedback_signature ON feedback_records (query_signature)`,
		`CREATE INDEX IF NOT EXISTS idx_feedback_domain ON feedback_records (domain, subdomain)`,
		`CREATE TABLE IF NOT EXISTS confidence_adjustments (
			key        TEXT PRIMARY KEY,
			delta      REAL NOT NULL,
			updated_at TIMESTAMP NOT NULL
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
