// SPDX-License-Identifier: MIT
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/katalvlaran/lvmath/linalg"
)

// SQLiteStore keeps named matrices in a SQLite table. It holds only a
// *sql.DB and is safe for concurrent use.
type SQLiteStore struct {
	db    *sql.DB
	table string
}

// NewSQLiteStore creates a store over db and ensures its table exists.
func NewSQLiteStore(db *sql.DB, opts ...Option) (*SQLiteStore, error) {
	if db == nil {
		return nil, ErrNilDB
	}
	o := gatherOptions(opts...)
	if err := EnsureSchema(context.Background(), db, o.table); err != nil {
		return nil, err
	}

	return &SQLiteStore{db: db, table: o.table}, nil
}

// Put inserts or replaces the matrix stored under name. The payload is the
// logical view encoded by (*linalg.Matrix).Bytes.
func (s *SQLiteStore) Put(ctx context.Context, name string, m *linalg.Matrix) error {
	if name == "" {
		return ErrEmptyName
	}
	if m == nil {
		return ErrNilMatrix
	}
	payload, err := m.Bytes()
	if err != nil {
		return fmt.Errorf("store: encode %q: %w", name, err)
	}
	rows, cols := m.Shape()
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO `+s.table+`(name, n_rows, n_cols, payload) VALUES(?, ?, ?, ?)
ON CONFLICT(name) DO UPDATE SET n_rows = excluded.n_rows, n_cols = excluded.n_cols, payload = excluded.payload`,
		name, rows, cols, payload)

	return err
}

// Get loads and decodes the matrix stored under name.
func (s *SQLiteStore) Get(ctx context.Context, name string) (*linalg.Matrix, error) {
	payload, err := s.Payload(ctx, name)
	if err != nil {
		return nil, err
	}
	m, err := linalg.NewBytes(payload)
	if err != nil {
		return nil, fmt.Errorf("store: decode %q: %w", name, err)
	}

	return m, nil
}

// Payload returns the raw codec bytes stored under name without decoding
// them, ready for a GPU buffer upload.
func (s *SQLiteStore) Payload(ctx context.Context, name string) ([]byte, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	var payload []byte
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM `+s.table+` WHERE name = ?`, name).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("store: %q: %w", name, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	return payload, nil
}

// Delete removes the matrix stored under name.
func (s *SQLiteStore) Delete(ctx context.Context, name string) error {
	if name == "" {
		return ErrEmptyName
	}
	res, err := s.db.ExecContext(ctx, `DELETE FROM `+s.table+` WHERE name = ?`, name)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("store: %q: %w", name, ErrNotFound)
	}

	return nil
}

// Names lists stored matrix names in ascending order.
func (s *SQLiteStore) Names(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name FROM `+s.table+` ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		out = append(out, name)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return out, nil
}
