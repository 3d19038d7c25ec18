package migrations

import "embed"

// Files — SQL миграции, применяются по имени файла в лексикографическом порядке
//
//go:embed *.sql
var Files embed.FS
