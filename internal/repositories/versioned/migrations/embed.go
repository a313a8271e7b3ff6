// Package migrations holds the SQLite schema for versioned storage
package migrations

import "embed"

// FS contains the embedded schema files, applied in name order
//
//go:embed *.sql
var FS embed.FS
