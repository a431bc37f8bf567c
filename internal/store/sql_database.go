package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-foodmap/internal/config"
	"github.com/MKhiriev/go-foodmap/internal/logger"
	"github.com/MKhiriev/go-foodmap/migrations"
	sq "github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
)

// DSN prefixes that select the SQLite driver.
const (
	sqlitePrefix     = "sqlite://"
	sqliteFilePrefix = "file:"
)

// DB is a database/sql pool together with the dialect-specific pieces the
// repositories need: the goose dialect and a squirrel builder using the
// driver's placeholder format.
type DB struct {
	*sql.DB
	dialect string
	builder sq.StatementBuilderType
	logger  *logger.Logger
}

// driverSpec describes how to open a given DSN.
type driverSpec struct {
	driver      string
	dsn         string
	dialect     string
	placeholder sq.PlaceholderFormat
}

// resolveDriver picks SQLite for "sqlite://" and "file:" DSNs and
// PostgreSQL (pgx) for everything else.
func resolveDriver(dsn string) driverSpec {
	switch {
	case strings.HasPrefix(dsn, sqlitePrefix):
		return driverSpec{
			driver:      "sqlite3",
			dsn:         strings.TrimPrefix(dsn, sqlitePrefix),
			dialect:     migrations.DialectSQLite,
			placeholder: sq.Question,
		}
	case strings.HasPrefix(dsn, sqliteFilePrefix):
		return driverSpec{
			driver:      "sqlite3",
			dsn:         dsn,
			dialect:     migrations.DialectSQLite,
			placeholder: sq.Question,
		}
	default:
		return driverSpec{
			driver:      "pgx",
			dsn:         dsn,
			dialect:     migrations.DialectPostgres,
			placeholder: sq.Dollar,
		}
	}
}

// NewDB opens and pings the database named by cfg.DSN.
func NewDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	spec := resolveDriver(cfg.DSN)

	// establish connection
	conn, err := sql.Open(spec.driver, spec.dsn)
	if err != nil {
		log.Err(err).Str("func", "NewDB").Str("driver", spec.driver).Msg("error occured during database connection")
		return nil, fmt.Errorf("%w: %w", ErrConnectingDB, err)
	}

	// setup connections
	if spec.driver == "sqlite3" {
		// sqlite allows a single writer
		conn.SetMaxOpenConns(1)
	} else {
		conn.SetMaxOpenConns(10)
		conn.SetMaxIdleConns(4)
		conn.SetConnMaxLifetime(30 * time.Minute)
	}

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewDB").Str("driver", spec.driver).Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, fmt.Errorf("%w: %w", ErrConnectingDB, err)
	}
	log.Info().Str("func", "NewDB").Str("driver", spec.driver).Msg("connected to database successfully")

	return newDB(conn, spec, log), nil
}

func newDB(conn *sql.DB, spec driverSpec, log *logger.Logger) *DB {
	return &DB{
		DB:      conn,
		dialect: spec.dialect,
		builder: sq.StatementBuilder.PlaceholderFormat(spec.placeholder),
		logger:  log,
	}
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}
