package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digimarketpro/digimarket-backend/internal/app/model"
)

func cartFixture(t *testing.T) CartService {
	t.Helper()
	repo := seedProducts(t, newTestStore(t), []model.Product{
		{ID: "prod_1", Name: "Alpha Cache", Price: 45, Category: "Performance"},
		{ID: "prod_2", Name: "Mega Builder", Price: 20, Category: "Builders & Addons"},
	})
	return NewCartService(repo)
}

func TestCartAddMergesByProduct(t *testing.T) {
	svc := cartFixture(t)
	ctx := context.Background()

	cart, err := svc.Add(ctx, "cust_1", "prod_1")
	require.NoError(t, err)
	require.Len(t, cart, 1)
	assert.Equal(t, 1, cart[0].Quantity)

	cart, err = svc.Add(ctx, "cust_1", "prod_1")
	require.NoError(t, err)
	require.Len(t, cart, 1)
	assert.Equal(t, 2, cart[0].Quantity)

	cart, err = svc.Add(ctx, "cust_1", "prod_2")
	require.NoError(t, err)
	assert.Len(t, cart, 2)
}

func TestCartAddUnknownProduct(t *testing.T) {
	svc := cartFixture(t)

	_, err := svc.Add(context.Background(), "cust_1", "prod_missing")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestCartQuantityNeverDropsBelowOne(t *testing.T) {
	svc := cartFixture(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, "cust_1", "prod_1")
	require.NoError(t, err)

	cart, err := svc.UpdateQuantity(ctx, "cust_1", "prod_1", 3)
	require.NoError(t, err)
	assert.Equal(t, 4, cart[0].Quantity)

	cart, err = svc.UpdateQuantity(ctx, "cust_1", "prod_1", -100)
	require.NoError(t, err)
	assert.Equal(t, 1, cart[0].Quantity)

	_, err = svc.UpdateQuantity(ctx, "cust_1", "prod_2", 1)
	assert.ErrorIs(t, err, ErrCartItemNotFound)
}

func TestCartRemoveAndClear(t *testing.T) {
	svc := cartFixture(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, "cust_1", "prod_1")
	require.NoError(t, err)
	_, err = svc.Add(ctx, "cust_1", "prod_2")
	require.NoError(t, err)

	cart := svc.Remove(ctx, "cust_1", "prod_1")
	require.Len(t, cart, 1)
	assert.Equal(t, "prod_2", cart[0].ID)

	// removing an absent line is a no-op
	cart = svc.Remove(ctx, "cust_1", "prod_missing")
	assert.Len(t, cart, 1)

	svc.Clear(ctx, "cust_1")
	assert.Empty(t, svc.Items(ctx, "cust_1"))
}

func TestCartTotalAppliesRate(t *testing.T) {
	svc := cartFixture(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, "cust_1", "prod_1")
	require.NoError(t, err)
	_, err = svc.Add(ctx, "cust_1", "prod_1")
	require.NoError(t, err)

	assert.Equal(t, 90.0, svc.Total(ctx, "cust_1", 1))
	assert.Equal(t, 82.8, svc.Total(ctx, "cust_1", 0.92))
	assert.Equal(t, 0.0, svc.Total(ctx, "cust_2", 1))
}

func TestCartsAreIsolatedPerOwner(t *testing.T) {
	svc := cartFixture(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, "cust_1", "prod_1")
	require.NoError(t, err)

	assert.Empty(t, svc.Items(ctx, "guest_abc"))

	_, err = svc.Add(ctx, "guest_abc", "prod_2")
	require.NoError(t, err)
	assert.Len(t, svc.Items(ctx, "cust_1"), 1)
	assert.Len(t, svc.Items(ctx, "guest_abc"), 1)
}

func TestCartSnapshotsProductAtAddTime(t *testing.T) {
	store := newTestStore(t)
	repo := seedProducts(t, store, []model.Product{
		{ID: "prod_1", Name: "Alpha Cache", Price: 45, Category: "Performance"},
	})
	svc := NewCartService(repo)
	ctx := context.Background()

	_, err := svc.Add(ctx, "cust_1", "prod_1")
	require.NoError(t, err)

	// a later catalog edit does not reprice lines already in the cart
	require.NoError(t, repo.Update(ctx, model.Product{
		ID: "prod_1", Name: "Alpha Cache", Price: 99, Category: "Performance",
	}))

	items := svc.Items(ctx, "cust_1")
	require.Len(t, items, 1)
	assert.Equal(t, 45.0, items[0].Price)
}
