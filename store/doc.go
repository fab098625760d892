// Package store persists linalg matrices in SQLite.
//
// Each matrix is stored under a unique name as the exact BLOB produced by
// (*linalg.Matrix).Bytes, alongside its logical row and column counts, so a
// payload read back from the table can be handed straight to a GPU buffer
// loader or decoded with linalg.NewBytes.
//
// Open registers and uses the pure-Go modernc.org/sqlite driver; any other
// *sql.DB can be passed to NewSQLiteStore as long as it speaks SQLite syntax.
package store
