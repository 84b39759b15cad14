package service

import (
	"context"
	"errors"

	"github.com/digimarketpro/digimarket-backend/internal/app/model"
	"github.com/digimarketpro/digimarket-backend/internal/app/repository"
	"github.com/digimarketpro/digimarket-backend/pkg/logger"
)

// HistoryLimit caps the recently-viewed list per owner
const HistoryLimit = 4

// WishlistService manages per-owner wishlists and recently-viewed history.
// Both store product snapshots, so catalog edits never rewrite them.
type WishlistService interface {
	Wishlist(ctx context.Context, owner string) []model.Product
	// Toggle adds the product when absent and removes it when present
	Toggle(ctx context.Context, owner, productID string) ([]model.Product, error)

	History(ctx context.Context, owner string) []model.Product
	// RecordView prepends the product, dedupes by id, and trims to
	// HistoryLimit
	RecordView(ctx context.Context, owner, productID string) error
}

type wishlistService struct {
	collections repository.CollectionRepository
	productRepo repository.ProductRepository
}

func NewWishlistService(collections repository.CollectionRepository, productRepo repository.ProductRepository) WishlistService {
	return &wishlistService{
		collections: collections,
		productRepo: productRepo,
	}
}

func (s *wishlistService) Wishlist(ctx context.Context, owner string) []model.Product {
	return s.collections.Get(ctx, repository.KeyWishlist, owner)
}

func (s *wishlistService) Toggle(ctx context.Context, owner, productID string) ([]model.Product, error) {
	logger.Info("Toggling wishlist entry", map[string]interface{}{
		"owner":      owner,
		"product_id": productID,
	})

	list := s.collections.Get(ctx, repository.KeyWishlist, owner)

	for i, p := range list {
		if p.ID == productID {
			list = append(list[:i], list[i+1:]...)
			s.collections.Put(ctx, repository.KeyWishlist, owner, list)
			return list, nil
		}
	}

	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	list = append(list, *product)
	s.collections.Put(ctx, repository.KeyWishlist, owner, list)
	return list, nil
}

func (s *wishlistService) History(ctx context.Context, owner string) []model.Product {
	return s.collections.Get(ctx, repository.KeyHistory, owner)
}

func (s *wishlistService) RecordView(ctx context.Context, owner, productID string) error {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrProductNotFound
		}
		return err
	}

	history := s.collections.Get(ctx, repository.KeyHistory, owner)

	next := make([]model.Product, 0, HistoryLimit)
	next = append(next, *product)
	for _, p := range history {
		if p.ID == productID {
			continue
		}
		next = append(next, p)
		if len(next) == HistoryLimit {
			break
		}
	}

	s.collections.Put(ctx, repository.KeyHistory, owner, next)
	return nil
}
