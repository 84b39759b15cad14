package repository

import (
	"context"
	"sync"

	"github.com/digimarketpro/digimarket-backend/internal/app/model"
	"github.com/digimarketpro/digimarket-backend/internal/kvstore"
	"github.com/digimarketpro/digimarket-backend/pkg/logger"
)

type CustomerRepository interface {
	List(ctx context.Context) []model.Customer
	FindByID(ctx context.Context, id string) (*model.Customer, error)
	// FindByEmail matches the email exactly (case-sensitive)
	FindByEmail(ctx context.Context, email string) (*model.Customer, error)
	Create(ctx context.Context, customer model.Customer) error
	Update(ctx context.Context, customer model.Customer) error
}

type customerRepository struct {
	store     kvstore.Store
	mu        sync.RWMutex
	customers []model.Customer
}

func NewCustomerRepository(ctx context.Context, store kvstore.Store) CustomerRepository {
	rows := loadList(ctx, store, KeyCustomers, []model.CustomerSnapshot{})
	customers := model.RestoreCustomers(rows)
	logger.Info("Customer repository loaded", map[string]interface{}{
		"count": len(customers),
	})
	return &customerRepository{store: store, customers: customers}
}

func (r *customerRepository) List(_ context.Context) []model.Customer {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Customer, len(r.customers))
	copy(out, r.customers)
	return out
}

func (r *customerRepository) FindByID(_ context.Context, id string) (*model.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.customers {
		if c.ID == id {
			found := c
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (r *customerRepository) FindByEmail(_ context.Context, email string) (*model.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.customers {
		if c.Email == email {
			found := c
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (r *customerRepository) Create(ctx context.Context, customer model.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.customers = append(r.customers, customer)
	persist(ctx, r.store, KeyCustomers, model.SnapshotCustomers(r.customers))

	logger.Debug("Customer stored", map[string]interface{}{
		"customer_id": customer.ID,
		"email":       customer.Email,
	})
	return nil
}

func (r *customerRepository) Update(ctx context.Context, customer model.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, c := range r.customers {
		if c.ID == customer.ID {
			r.customers[i] = customer
			persist(ctx, r.store, KeyCustomers, model.SnapshotCustomers(r.customers))
			return nil
		}
	}
	return ErrNotFound
}
