package service

import (
	"context"
	"errors"
	"math"
	"sync"

	"github.com/digimarketpro/digimarket-backend/internal/app/model"
	"github.com/digimarketpro/digimarket-backend/internal/app/repository"
	"github.com/digimarketpro/digimarket-backend/pkg/logger"
)

var ErrCartItemNotFound = errors.New("cart item not found")

// CartService keeps one cart per owner in process memory. Carts are
// deliberately not persisted: a restart empties them. Each line holds a
// snapshot of the product as it was when added.
type CartService interface {
	Items(ctx context.Context, owner string) []model.CartItem
	Add(ctx context.Context, owner, productID string) ([]model.CartItem, error)
	// UpdateQuantity applies a delta; the result never drops below 1.
	// Use Remove to take a line out of the cart.
	UpdateQuantity(ctx context.Context, owner, productID string, delta int) ([]model.CartItem, error)
	Remove(ctx context.Context, owner, productID string) []model.CartItem
	Clear(ctx context.Context, owner string)
	// Total converts the base-currency sum with the given rate and rounds
	// to cents
	Total(ctx context.Context, owner string, rate float64) float64
}

type cartService struct {
	productRepo repository.ProductRepository
	mu          sync.Mutex
	carts       map[string][]model.CartItem
}

func NewCartService(productRepo repository.ProductRepository) CartService {
	return &cartService{
		productRepo: productRepo,
		carts:       make(map[string][]model.CartItem),
	}
}

func (s *cartService) Items(_ context.Context, owner string) []model.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyCart(s.carts[owner])
}

func (s *cartService) Add(ctx context.Context, owner, productID string) ([]model.CartItem, error) {
	logger.Info("Adding item to cart", map[string]interface{}{
		"owner":      owner,
		"product_id": productID,
	})

	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			logger.Warn("Cannot add to cart: product not found", map[string]interface{}{
				"owner":      owner,
				"product_id": productID,
			})
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.carts[owner]
	for i, item := range cart {
		if item.ID == productID {
			cart[i].Quantity++
			return copyCart(cart), nil
		}
	}

	cart = append(cart, model.CartItem{Product: *product, Quantity: 1})
	s.carts[owner] = cart
	return copyCart(cart), nil
}

func (s *cartService) UpdateQuantity(_ context.Context, owner, productID string, delta int) ([]model.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.carts[owner]
	for i, item := range cart {
		if item.ID == productID {
			next := item.Quantity + delta
			if next < 1 {
				next = 1
			}
			cart[i].Quantity = next
			return copyCart(cart), nil
		}
	}

	logger.Warn("Cart item not found for quantity update", map[string]interface{}{
		"owner":      owner,
		"product_id": productID,
	})
	return nil, ErrCartItemNotFound
}

func (s *cartService) Remove(_ context.Context, owner, productID string) []model.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.carts[owner]
	for i, item := range cart {
		if item.ID == productID {
			cart = append(cart[:i], cart[i+1:]...)
			s.carts[owner] = cart
			break
		}
	}
	return copyCart(cart)
}

func (s *cartService) Clear(_ context.Context, owner string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, owner)
}

func (s *cartService) Total(_ context.Context, owner string, rate float64) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total float64
	for _, item := range s.carts[owner] {
		total += item.Price * float64(item.Quantity)
	}
	return math.Round(total*rate*100) / 100
}

func copyCart(cart []model.CartItem) []model.CartItem {
	out := make([]model.CartItem, len(cart))
	copy(out, cart)
	return out
}
