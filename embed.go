// Package rrer exposes repository-level assets embedded into the binary.
package rrer

import "embed"

// Migrations holds the goose SQL migrations applied by the migrate command and
// the storage integration tests.
//
//go:embed migrations/*.sql
var Migrations embed.FS
