// Package store loads the type-element database from one of three backends:
// JSON files, SQLite, or Postgres. Every backend produces the same in-memory
// typeelement.Bindings, which stays read-only for the lifetime of a
// resolution session.
package store

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/buildsim/archetype-cli/internal/typeelement"
)

// Store is a type-element database backend.
type Store interface {
	// Load reads the full database into immutable bindings.
	Load(ctx context.Context) (*typeelement.Bindings, error)
	Close() error
}

// Options selects and configures a backend.
type Options struct {
	Driver        string // "json", "sqlite" or "postgres"
	DSN           string // sqlite path or postgres connection string
	ElementsPath  string // json backend: type-element file
	MaterialsPath string // json backend: material file
}

// Open creates the backend named by opts.Driver.
func Open(ctx context.Context, opts Options) (Store, error) {
	switch opts.Driver {
	case "json":
		return NewJSONStore(opts.ElementsPath, opts.MaterialsPath), nil
	case "sqlite":
		return NewSQLite(opts.DSN)
	case "postgres":
		return NewPostgres(ctx, opts.DSN)
	default:
		return nil, eris.Errorf("store: unknown driver %q", opts.Driver)
	}
}
