package service

import (
	"context"
	"errors"
	"time"

	"github.com/digimarketpro/digimarket-backend/internal/app/model"
	"github.com/digimarketpro/digimarket-backend/internal/app/repository"
	"github.com/digimarketpro/digimarket-backend/pkg/logger"
	"github.com/digimarketpro/digimarket-backend/pkg/util"
)

var (
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrCustomerNotFound   = errors.New("customer not found")
)

type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*model.Customer, *util.TokenPair, error)
	Login(ctx context.Context, email, password string) (*model.Customer, *util.TokenPair, error)
	GetCustomerByID(ctx context.Context, id string) (*model.Customer, error)
	ListCustomers(ctx context.Context) []model.Customer
	// EnsureAdmin creates the admin account when it does not exist yet.
	// Called once at startup with credentials from the environment.
	EnsureAdmin(ctx context.Context, name, email, password string) error
}

type authService struct {
	customerRepo  repository.CustomerRepository
	jwtSecret     string
	accessExpiry  time.Duration
	refreshExpiry time.Duration
}

func NewAuthService(
	customerRepo repository.CustomerRepository,
	jwtSecret string,
	accessExpiry, refreshExpiry time.Duration,
) AuthService {
	return &authService{
		customerRepo:  customerRepo,
		jwtSecret:     jwtSecret,
		accessExpiry:  accessExpiry,
		refreshExpiry: refreshExpiry,
	}
}

func (s *authService) Register(ctx context.Context, name, email, password string) (*model.Customer, *util.TokenPair, error) {
	logger.Info("Attempting customer registration", map[string]interface{}{
		"email": email,
		"name":  name,
	})

	existing, err := s.customerRepo.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		logger.Error("Failed to check existing customer", err, map[string]interface{}{
			"email": email,
		})
		return nil, nil, err
	}
	if existing != nil {
		logger.Warn("Registration failed: email already exists", map[string]interface{}{
			"email": email,
		})
		return nil, nil, ErrEmailAlreadyExists
	}

	hashedPassword, err := util.HashPassword(password)
	if err != nil {
		logger.Error("Failed to hash password", err, map[string]interface{}{
			"email": email,
		})
		return nil, nil, err
	}

	customer := model.Customer{
		ID:           util.NewID("cust"),
		Name:         name,
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         model.RoleCustomer,
		JoinDate:     time.Now().UTC().Format(time.RFC3339),
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		logger.Error("Failed to store customer", err, map[string]interface{}{
			"email": email,
		})
		return nil, nil, err
	}

	tokens, err := util.GenerateTokenPair(
		customer.ID,
		customer.Email,
		string(customer.Role),
		s.jwtSecret,
		s.accessExpiry,
		s.refreshExpiry,
	)
	if err != nil {
		logger.Error("Failed to generate tokens", err, map[string]interface{}{
			"customer_id": customer.ID,
		})
		return nil, nil, err
	}

	logger.Info("Customer registered successfully", map[string]interface{}{
		"customer_id": customer.ID,
		"email":       email,
	})
	return &customer, tokens, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*model.Customer, *util.TokenPair, error) {
	logger.Info("Login attempt", map[string]interface{}{
		"email": email,
	})

	customer, err := s.customerRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			logger.Warn("Login failed: customer not found", map[string]interface{}{
				"email": email,
			})
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if !util.VerifyPassword(customer.PasswordHash, password) {
		logger.Warn("Login failed: invalid password", map[string]interface{}{
			"email": email,
		})
		return nil, nil, ErrInvalidCredentials
	}

	tokens, err := util.GenerateTokenPair(
		customer.ID,
		customer.Email,
		string(customer.Role),
		s.jwtSecret,
		s.accessExpiry,
		s.refreshExpiry,
	)
	if err != nil {
		logger.Error("Failed to generate tokens", err, map[string]interface{}{
			"customer_id": customer.ID,
		})
		return nil, nil, err
	}

	logger.Info("Login successful", map[string]interface{}{
		"customer_id": customer.ID,
		"role":        customer.Role,
	})
	return customer, tokens, nil
}

func (s *authService) GetCustomerByID(ctx context.Context, id string) (*model.Customer, error) {
	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}
	return customer, nil
}

func (s *authService) ListCustomers(ctx context.Context) []model.Customer {
	return s.customerRepo.List(ctx)
}

func (s *authService) EnsureAdmin(ctx context.Context, name, email, password string) error {
	if email == "" || password == "" {
		logger.Warn("Admin bootstrap skipped: credentials not configured", nil)
		return nil
	}

	_, err := s.customerRepo.FindByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return err
	}

	hashedPassword, err := util.HashPassword(password)
	if err != nil {
		return err
	}

	admin := model.Customer{
		ID:           util.NewID("cust"),
		Name:         name,
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         model.RoleAdmin,
		JoinDate:     time.Now().UTC().Format(time.RFC3339),
	}

	if err := s.customerRepo.Create(ctx, admin); err != nil {
		return err
	}

	logger.Info("Admin account bootstrapped", map[string]interface{}{
		"email": email,
	})
	return nil
}
