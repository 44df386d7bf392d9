// Package database provides database connection management.
package database

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/sandeshlim1992/dictionary-api/internal/config"
)

// Opener opens a fresh store connection. The dictionary store acquires one
// connection per request and releases it on every exit path, so callers
// own the returned handle and must close it.
type Opener func() (*sqlx.DB, error)

// NewOpener returns an Opener for the SQLite file in cfg.
func NewOpener(cfg config.DatabaseConfig) Opener {
	return func() (*sqlx.DB, error) {
		return Open(cfg)
	}
}

// Open opens the SQLite database read-only. The service never writes, and
// a read-only open fails instead of silently creating an empty file when
// the database is missing.
func Open(cfg config.DatabaseConfig) (*sqlx.DB, error) {
	dsn := fmt.Sprintf("file:%s?mode=ro", cfg.Path)
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database connection: %w", err)
	}

	// one request, one connection
	db.SetMaxOpenConns(1)

	return db, nil
}
