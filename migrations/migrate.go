// Package migrations brings the contacts database up to the latest
// schema version on startup. The SQL files are embedded so the server
// binary carries its own schema.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var contactSchema embed.FS

// ErrNilDB is returned when Migrate is handed no database connection,
// which happens when the contacts DSN is left unset.
var ErrNilDB = errors.New("no database connection for migrations")

// Migrate applies every pending contactos/conversation_logs migration.
func Migrate(db *sql.DB) error {
	if db == nil {
		return ErrNilDB
	}

	goose.SetBaseFS(contactSchema)

	if err := goose.SetDialect("pgx"); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
