package database

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandeshlim1992/dictionary-api/internal/config"
)

func TestOpen(t *testing.T) {
	t.Run("opens an existing database file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "dictionary.db")
		require.NoError(t, os.WriteFile(path, nil, 0o644))

		db, err := Open(config.DatabaseConfig{Path: path, Table: "translations"})
		require.NoError(t, err)
		defer db.Close()

		assert.Equal(t, "sqlite", db.DriverName())
		assert.NoError(t, db.PingContext(context.Background()))
	})

	t.Run("read-only open does not create a missing database", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing.db")

		db, err := Open(config.DatabaseConfig{Path: path, Table: "translations"})
		require.NoError(t, err)
		defer db.Close()

		assert.Error(t, db.PingContext(context.Background()))
		assert.NoFileExists(t, path)
	})
}

func TestNewOpener(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dictionary.db")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	open := NewOpener(config.DatabaseConfig{Path: path, Table: "translations"})

	db, err := open()
	require.NoError(t, err)
	require.NoError(t, db.PingContext(context.Background()))
	require.NoError(t, db.Close())

	// every call hands out a fresh connection
	db2, err := open()
	require.NoError(t, err)
	assert.NotSame(t, db, db2)
	require.NoError(t, db2.Close())
}
