// Package kvstore is the persistence port: a key-value store holding
// JSON-encoded snapshots. Repositories write a full snapshot on every
// mutation and read each key once at startup, falling back to compiled-in
// defaults when the key is absent.
package kvstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/digimarketpro/digimarket-backend/config"
)

// ErrKeyNotFound is returned by Load when a key has never been saved.
// Callers treat it as "use the default value", never as a failure.
var ErrKeyNotFound = errors.New("key not found")

// Store is the key-value persistence boundary
type Store interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
	// Keys lists every key currently present (used by the backup job)
	Keys(ctx context.Context) ([]string, error)
	Close() error
}

// New builds the store selected by configuration
func New(cfg *config.StoreConfig) (Store, error) {
	switch cfg.Backend {
	case "file", "":
		return NewFileStore(cfg.DataDir)
	case "redis":
		return NewRedisStore(&cfg.Redis)
	case "postgres":
		return NewGormStore(cfg.Database.DSN())
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}
}
