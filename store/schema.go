// SPDX-License-Identifier: MIT
package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite" // register pure-Go SQLite driver
)

// DriverName is the database/sql driver registered by modernc.org/sqlite.
const DriverName = "sqlite"

// Open opens a SQLite database using the modernc.org/sqlite driver.
//
// For file-based databases, pass a path like "./matrices.sqlite". For an
// in-memory database, pass ":memory:"; the pool is then limited to a single
// connection because every new connection would see a different empty database.
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open(DriverName, dsn)
	if err != nil {
		return nil, err
	}
	if dsn == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	return db, nil
}

// schemaDDL returns the CREATE TABLE statement for the given table.
func schemaDDL(table string) string {
	return `CREATE TABLE IF NOT EXISTS ` + table + ` (
    name    TEXT PRIMARY KEY,
    n_rows  INTEGER NOT NULL,
    n_cols  INTEGER NOT NULL,
    payload BLOB NOT NULL
);`
}

// EnsureSchema creates the matrix table if it does not already exist.
func EnsureSchema(ctx context.Context, db *sql.DB, table string) error {
	if !tableName.MatchString(table) {
		return fmt.Errorf("store: %q: %w", table, ErrInvalidTable)
	}
	_, err := db.ExecContext(ctx, schemaDDL(table))

	return err
}
