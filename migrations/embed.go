package migrations

import "embed"

// FS SQL-миграции goose, встраиваются в бинарник cmd/migrate.
//
//go:embed *.sql
var FS embed.FS
