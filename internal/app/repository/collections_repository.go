package repository

import (
	"context"
	"sync"

	"github.com/digimarketpro/digimarket-backend/internal/app/model"
	"github.com/digimarketpro/digimarket-backend/internal/kvstore"
)

// CollectionRepository stores per-owner product lists such as wishlists and
// recently viewed history. Lists are keyed "<kind>:<owner>" and loaded lazily
// on first access.
type CollectionRepository interface {
	Get(ctx context.Context, kind, owner string) []model.Product
	Put(ctx context.Context, kind, owner string, products []model.Product)
}

type collectionRepository struct {
	store kvstore.Store
	mu    sync.RWMutex
	lists map[string][]model.Product
}

func NewCollectionRepository(store kvstore.Store) CollectionRepository {
	return &collectionRepository{
		store: store,
		lists: make(map[string][]model.Product),
	}
}

func collectionKey(kind, owner string) string {
	return kind + ":" + owner
}

func (r *collectionRepository) Get(ctx context.Context, kind, owner string) []model.Product {
	key := collectionKey(kind, owner)

	r.mu.RLock()
	list, ok := r.lists[key]
	r.mu.RUnlock()
	if ok {
		out := make([]model.Product, len(list))
		copy(out, list)
		return out
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if list, ok := r.lists[key]; ok {
		out := make([]model.Product, len(list))
		copy(out, list)
		return out
	}

	loaded := loadList(ctx, r.store, key, []model.Product{})
	r.lists[key] = loaded

	out := make([]model.Product, len(loaded))
	copy(out, loaded)
	return out
}

func (r *collectionRepository) Put(ctx context.Context, kind, owner string, products []model.Product) {
	key := collectionKey(kind, owner)

	stored := make([]model.Product, len(products))
	copy(stored, products)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.lists[key] = stored
	persist(ctx, r.store, key, stored)
}
