package migrations

import "embed"

// FS contains embedded SQLite migrations for save and result storage.
//
//go:embed *.sql
var FS embed.FS
