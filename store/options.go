// SPDX-License-Identifier: MIT
package store

import "regexp"

// DefaultTable is the table used when WithTable is not supplied.
const DefaultTable = "matrices"

// tableName accepts plain SQL identifiers only, since the table name is
// interpolated into DDL and statements.
var tableName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Option configures a SQLiteStore.
type Option func(*Options)

// Options is the resolved store configuration.
type Options struct {
	table string
}

// WithTable stores matrices in the given table instead of DefaultTable.
func WithTable(name string) Option {
	return func(o *Options) { o.table = name }
}

func gatherOptions(user ...Option) Options {
	o := Options{table: DefaultTable}
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
