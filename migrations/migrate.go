// Package migrations embeds the SQL schema of the identity store and applies
// it with goose.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"sync"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var embedMigrations embed.FS

// Supported goose dialects.
const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite3"
)

var ErrNilDB = errors.New("db is nil")

// goose keeps its base FS and dialect in package globals.
var mu sync.Mutex

// Migrate applies every pending migration to db using the given dialect.
func Migrate(db *sql.DB, dialect string) error {
	if db == nil {
		return fmt.Errorf("migration error: %w", ErrNilDB)
	}

	mu.Lock()
	defer mu.Unlock()

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
