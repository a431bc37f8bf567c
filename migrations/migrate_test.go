// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"errors"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	_ = mock // goose talks to the db on its own; no expectations means every query fails

	err = Migrate(db, DialectPostgres)
	if err == nil {
		t.Fatal("expected error from Migrate, got nil")
	}

	if !strings.Contains(err.Error(), "migration error") {
		t.Errorf("expected wrapped migration error, got: %v", err)
	}
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(db, DialectPostgres)
	if err == nil {
		t.Fatal("expected error when db is nil, got nil")
	}

	if !errors.Is(err, ErrNilDB) {
		t.Errorf("expected ErrNilDB, got: %v", err)
	}
}

func TestMigrate_UnknownDialect(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	err = Migrate(db, "oracle-of-delphi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "setting dialect")
}

func TestMigrate_SQLiteSchema(t *testing.T) {
	db, err := sql.Open("sqlite3", "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	defer db.Close()
	db.SetMaxOpenConns(1)

	require.NoError(t, Migrate(db, DialectSQLite))
	// second run is a no-op
	require.NoError(t, Migrate(db, DialectSQLite))

	_, err = db.Exec(`INSERT INTO identities (id, first_name, last_name, email, password_hash, created_at)
		VALUES ('1', 'a', 'b', 'a@x.com', 'h', CURRENT_TIMESTAMP)`)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO identities (id, first_name, last_name, email, password_hash, created_at)
		VALUES ('2', 'c', 'd', 'a@x.com', 'h', CURRENT_TIMESTAMP)`)
	require.Error(t, err, "email must be unique")
}
