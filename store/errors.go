// SPDX-License-Identifier: MIT
package store

import "errors"

var (
	// ErrNilDB is returned by NewSQLiteStore when db is nil.
	ErrNilDB = errors.New("store: db is nil")

	// ErrEmptyName is returned when a matrix name is empty.
	ErrEmptyName = errors.New("store: empty matrix name")

	// ErrNilMatrix is returned by Put for a nil matrix.
	ErrNilMatrix = errors.New("store: nil matrix")

	// ErrNotFound is returned by Get and Delete for an unknown name.
	ErrNotFound = errors.New("store: matrix not found")

	// ErrInvalidTable is returned when a table name is not a plain identifier.
	ErrInvalidTable = errors.New("store: invalid table name")
)
