// Package lugo exposes repository-level assets embedded into the binary.
package lugo

import "embed"

// Migrations holds the goose SQL migration files applied by the migrate command.
//
//go:embed migrations/*.sql
var Migrations embed.FS
