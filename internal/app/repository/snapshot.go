// Package repository holds one repository per entity type. Each repository
// serves reads from an in-memory list loaded once at startup and ends every
// mutation with a full-snapshot write to the key-value store. A failed write
// is logged and the repository keeps operating on the in-memory state.
package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/digimarketpro/digimarket-backend/internal/kvstore"
	"github.com/digimarketpro/digimarket-backend/pkg/logger"
)

// ErrNotFound is returned when an entity id is not present in its list
var ErrNotFound = errors.New("record not found")

// Persistence keys
const (
	KeyProducts  = "products"
	KeyPages     = "pages"
	KeyPosts     = "posts"
	KeyCustomers = "customers"
	KeySettings  = "settings"
	KeyWishlist  = "wishlist" // per-owner: wishlist:<owner>
	KeyHistory   = "history"  // per-owner: history:<owner>
)

// loadList reads a JSON list snapshot, returning fallback when the key has
// never been written. A corrupt or unreadable snapshot also falls back, so
// a bad write can never brick the service.
func loadList[T any](ctx context.Context, store kvstore.Store, key string, fallback []T) []T {
	data, err := store.Load(ctx, key)
	if err != nil {
		if !errors.Is(err, kvstore.ErrKeyNotFound) {
			logger.Warn("Failed to load snapshot, using defaults", map[string]interface{}{
				"key":   key,
				"error": err.Error(),
			})
		}
		return fallback
	}

	var list []T
	if err := json.Unmarshal(data, &list); err != nil {
		logger.Warn("Corrupt snapshot, using defaults", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
		return fallback
	}
	return list
}

// persist writes a full snapshot. Failures are logged and swallowed: the
// caller keeps serving the in-memory state (memory-only degraded mode).
func persist(ctx context.Context, store kvstore.Store, key string, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		logger.Error("Failed to encode snapshot", err, map[string]interface{}{
			"key": key,
		})
		return
	}

	if err := store.Save(ctx, key, data); err != nil {
		logger.Warn("Failed to persist snapshot, continuing in memory", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
	}
}
