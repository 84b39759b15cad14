package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digimarketpro/digimarket-backend/internal/app/model"
	"github.com/digimarketpro/digimarket-backend/internal/app/repository"
	"github.com/digimarketpro/digimarket-backend/pkg/util"
)

const testJWTSecret = "test-secret-key"

func authFixture(t *testing.T) AuthService {
	t.Helper()
	repo := repository.NewCustomerRepository(context.Background(), newTestStore(t))
	return NewAuthService(repo, testJWTSecret, 15*time.Minute, 7*24*time.Hour)
}

func TestRegisterAndLogin(t *testing.T) {
	svc := authFixture(t)
	ctx := context.Background()

	customer, tokens, err := svc.Register(ctx, "Sam Alder", "sam@example.com", "hunter22")
	require.NoError(t, err)
	require.NotNil(t, customer)
	require.NotNil(t, tokens)

	assert.NotEmpty(t, customer.ID)
	assert.Equal(t, model.RoleCustomer, customer.Role)
	assert.NotEmpty(t, customer.JoinDate)
	assert.NotEqual(t, "hunter22", customer.PasswordHash)

	claims, err := util.ValidateToken(tokens.AccessToken, testJWTSecret)
	require.NoError(t, err)
	assert.Equal(t, customer.ID, claims.UserID)
	assert.Equal(t, string(model.RoleCustomer), claims.Role)

	loggedIn, tokens, err := svc.Login(ctx, "sam@example.com", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, customer.ID, loggedIn.ID)
	assert.NotEmpty(t, tokens.RefreshToken)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := authFixture(t)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "Sam", "sam@example.com", "hunter22")
	require.NoError(t, err)

	_, _, err = svc.Register(ctx, "Other Sam", "sam@example.com", "different")
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestLoginFailures(t *testing.T) {
	svc := authFixture(t)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "Sam", "sam@example.com", "hunter22")
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "sam@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// unknown accounts and bad passwords are indistinguishable
	_, _, err = svc.Login(ctx, "nobody@example.com", "hunter22")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestGetCustomerByID(t *testing.T) {
	svc := authFixture(t)
	ctx := context.Background()

	customer, _, err := svc.Register(ctx, "Sam", "sam@example.com", "hunter22")
	require.NoError(t, err)

	found, err := svc.GetCustomerByID(ctx, customer.ID)
	require.NoError(t, err)
	assert.Equal(t, "sam@example.com", found.Email)

	_, err = svc.GetCustomerByID(ctx, "cust_missing")
	assert.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestEnsureAdminIsIdempotent(t *testing.T) {
	repo := repository.NewCustomerRepository(context.Background(), newTestStore(t))
	svc := NewAuthService(repo, testJWTSecret, 15*time.Minute, 7*24*time.Hour)
	ctx := context.Background()

	require.NoError(t, svc.EnsureAdmin(ctx, "Admin", "admin@example.com", "s3cret"))
	require.NoError(t, svc.EnsureAdmin(ctx, "Admin", "admin@example.com", "s3cret"))

	admins := 0
	for _, c := range repo.List(ctx) {
		if c.Role == model.RoleAdmin {
			admins++
		}
	}
	assert.Equal(t, 1, admins)

	admin, tokens, err := svc.Login(ctx, "admin@example.com", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, admin.Role)

	claims, err := util.ValidateToken(tokens.AccessToken, testJWTSecret)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Role)
}

func TestEnsureAdminSkipsWithoutCredentials(t *testing.T) {
	repo := repository.NewCustomerRepository(context.Background(), newTestStore(t))
	svc := NewAuthService(repo, testJWTSecret, 15*time.Minute, 7*24*time.Hour)

	require.NoError(t, svc.EnsureAdmin(context.Background(), "Admin", "", ""))
	assert.Empty(t, repo.List(context.Background()))
}
