// Package db embeds the PostgreSQL schema.
package db

import _ "embed"

// Schema creates the catalog tables and the key-value table. Every statement
// is idempotent.
//
//go:embed migrations/001_schema.sql
var Schema string
