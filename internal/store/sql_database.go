package store

import (
	"database/sql"

	"github.com/MKhiriev/go-mission-hub/internal/logger"
	"github.com/MKhiriev/go-mission-hub/migrations"
)

const (
	dialectPostgres = "postgres"
	dialectSQLite   = "sqlite3"
)

// DB wraps a *sql.DB together with the dialect-specific pieces the user
// repository needs.
type DB struct {
	*sql.DB
	dialect            string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies the embedded schema migrations for the connection dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}
