package repository

import (
	"context"
	"sync"

	"github.com/digimarketpro/digimarket-backend/internal/app/model"
	"github.com/digimarketpro/digimarket-backend/internal/kvstore"
	"github.com/digimarketpro/digimarket-backend/pkg/logger"
)

type ProductRepository interface {
	List(ctx context.Context) []model.Product
	FindByID(ctx context.Context, id string) (*model.Product, error)
	Create(ctx context.Context, product model.Product) error
	Update(ctx context.Context, product model.Product) error
	Delete(ctx context.Context, id string) error
}

type productRepository struct {
	store    kvstore.Store
	mu       sync.RWMutex
	products []model.Product
}

func NewProductRepository(ctx context.Context, store kvstore.Store) ProductRepository {
	products := loadList(ctx, store, KeyProducts, model.DefaultProducts())
	logger.Info("Product repository loaded", map[string]interface{}{
		"count": len(products),
	})
	return &productRepository{store: store, products: products}
}

func (r *productRepository) List(_ context.Context) []model.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Product, len(r.products))
	copy(out, r.products)
	return out
}

func (r *productRepository) FindByID(_ context.Context, id string) (*model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.products {
		if p.ID == id {
			found := p
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (r *productRepository) Create(ctx context.Context, product model.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.products = append(r.products, product)
	persist(ctx, r.store, KeyProducts, r.products)

	logger.Debug("Product stored", map[string]interface{}{
		"product_id": product.ID,
		"name":       product.Name,
	})
	return nil
}

func (r *productRepository) Update(ctx context.Context, product model.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.products {
		if p.ID == product.ID {
			r.products[i] = product
			persist(ctx, r.store, KeyProducts, r.products)
			return nil
		}
	}
	return ErrNotFound
}

func (r *productRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.products {
		if p.ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			persist(ctx, r.store, KeyProducts, r.products)
			return nil
		}
	}
	return ErrNotFound
}
