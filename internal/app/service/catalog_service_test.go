package service

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digimarketpro/digimarket-backend/internal/app/model"
	"github.com/digimarketpro/digimarket-backend/internal/app/repository"
	"github.com/digimarketpro/digimarket-backend/internal/kvstore"
)

func newTestStore(t *testing.T) kvstore.Store {
	t.Helper()
	store, err := kvstore.NewFileStore(t.TempDir())
	require.NoError(t, err)
	return store
}

// seedProducts pre-loads the store so the repository starts from a known
// catalog instead of the compiled-in defaults.
func seedProducts(t *testing.T, store kvstore.Store, products []model.Product) repository.ProductRepository {
	t.Helper()
	data, err := json.Marshal(products)
	require.NoError(t, err)
	require.NoError(t, store.Save(context.Background(), repository.KeyProducts, data))
	return repository.NewProductRepository(context.Background(), store)
}

func catalogFixture(t *testing.T) CatalogService {
	t.Helper()
	repo := seedProducts(t, newTestStore(t), []model.Product{
		{ID: "prod_1", Name: "Zip Forms", Price: 30, Category: "Forms & Leads", Description: "drag and drop forms"},
		{ID: "prod_2", Name: "Alpha Cache", Price: 10, Category: "Performance", Description: "page cache"},
		{ID: "prod_3", Name: "Mega Builder", Price: 20, Category: "Builders & Addons", Description: "site builder"},
	})
	return NewCatalogService(repo)
}

func TestCatalogListDefaultKeepsStoredOrder(t *testing.T) {
	svc := catalogFixture(t)

	for _, category := range []string{"", CategoryAll} {
		page := svc.List(context.Background(), CatalogQuery{Category: category, Page: 1})
		require.Len(t, page.Products, 3)
		assert.Equal(t, "prod_1", page.Products[0].ID)
		assert.Equal(t, "prod_2", page.Products[1].ID)
		assert.Equal(t, "prod_3", page.Products[2].ID)
	}
}

func TestCatalogListFiltersByCategoryAndSearch(t *testing.T) {
	svc := catalogFixture(t)
	ctx := context.Background()

	page := svc.List(ctx, CatalogQuery{Category: "Performance", Page: 1})
	require.Len(t, page.Products, 1)
	assert.Equal(t, "Alpha Cache", page.Products[0].Name)

	// search matches name or description, case-insensitively
	page = svc.List(ctx, CatalogQuery{Search: "BUILDER", Page: 1})
	require.Len(t, page.Products, 1)
	assert.Equal(t, "Mega Builder", page.Products[0].Name)

	page = svc.List(ctx, CatalogQuery{Search: "page cache", Page: 1})
	require.Len(t, page.Products, 1)
	assert.Equal(t, "Alpha Cache", page.Products[0].Name)

	// filters combine with AND
	page = svc.List(ctx, CatalogQuery{Category: "Performance", Search: "builder", Page: 1})
	assert.Empty(t, page.Products)
	assert.Equal(t, 0, page.Total)
}

func TestCatalogListSorts(t *testing.T) {
	svc := catalogFixture(t)
	ctx := context.Background()

	names := func(page CatalogPage) []string {
		out := make([]string, len(page.Products))
		for i, p := range page.Products {
			out[i] = p.Name
		}
		return out
	}

	assert.Equal(t, []string{"Alpha Cache", "Mega Builder", "Zip Forms"},
		names(svc.List(ctx, CatalogQuery{Sort: SortPriceLow, Page: 1})))
	assert.Equal(t, []string{"Zip Forms", "Mega Builder", "Alpha Cache"},
		names(svc.List(ctx, CatalogQuery{Sort: SortPriceHigh, Page: 1})))
	assert.Equal(t, []string{"Alpha Cache", "Mega Builder", "Zip Forms"},
		names(svc.List(ctx, CatalogQuery{Sort: SortNameAsc, Page: 1})))
	assert.Equal(t, []string{"Zip Forms", "Mega Builder", "Alpha Cache"},
		names(svc.List(ctx, CatalogQuery{Sort: SortNameDesc, Page: 1})))
}

func TestCatalogListPaginates(t *testing.T) {
	products := make([]model.Product, 0, PageSize+5)
	for i := 0; i < PageSize+5; i++ {
		products = append(products, model.Product{
			ID:       fmt.Sprintf("prod_%d", i+1),
			Name:     fmt.Sprintf("Item %d", i+1),
			Price:    1,
			Category: model.DefaultCategory,
		})
	}
	repo := seedProducts(t, newTestStore(t), products)
	svc := NewCatalogService(repo)
	ctx := context.Background()

	first := svc.List(ctx, CatalogQuery{Page: 1})
	assert.Len(t, first.Products, PageSize)
	assert.Equal(t, PageSize+5, first.Total)
	assert.Equal(t, 2, first.TotalPages)

	second := svc.List(ctx, CatalogQuery{Page: 2})
	assert.Len(t, second.Products, 5)

	// page numbers below 1 clamp to the first page
	clamped := svc.List(ctx, CatalogQuery{Page: 0})
	assert.Equal(t, 1, clamped.Page)
	assert.Len(t, clamped.Products, PageSize)

	// past the last page returns an empty slice, not an error
	beyond := svc.List(ctx, CatalogQuery{Page: 9})
	assert.Empty(t, beyond.Products)
}

func TestCatalogCategoriesStartsWithAll(t *testing.T) {
	svc := catalogFixture(t)

	categories := svc.Categories(context.Background())
	require.NotEmpty(t, categories)
	assert.Equal(t, CategoryAll, categories[0])
	assert.Contains(t, categories, "Performance")
	assert.Contains(t, categories, "Forms & Leads")
}

func TestCreateProductFillsDefaults(t *testing.T) {
	repo := seedProducts(t, newTestStore(t), []model.Product{})
	svc := NewCatalogService(repo)

	created, err := svc.CreateProduct(context.Background(), model.Product{
		Name:  "Elementor Pro",
		Price: 49,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, model.DefaultCategory, created.Category)
	assert.Contains(t, created.Image, "placehold.co")
	assert.Contains(t, created.Image, "Elementor")
}

func TestUpdateProductPreservesReviews(t *testing.T) {
	repo := seedProducts(t, newTestStore(t), []model.Product{
		{ID: "prod_1", Name: "Alpha Cache", Price: 10, Category: "Performance",
			Reviews: []model.Review{{ID: "rev_1", ProductID: "prod_1", Rating: 5}}},
	})
	svc := NewCatalogService(repo)
	ctx := context.Background()

	updated, err := svc.UpdateProduct(ctx, model.Product{
		ID: "prod_1", Name: "Alpha Cache v2", Price: 12, Category: "Performance",
	})
	require.NoError(t, err)
	require.Len(t, updated.Reviews, 1)
	assert.Equal(t, "rev_1", updated.Reviews[0].ID)
}

func TestAddReviewPrependsNewest(t *testing.T) {
	svc := catalogFixture(t)
	ctx := context.Background()

	_, err := svc.AddReview(ctx, "prod_1", "Sam", 4, "solid")
	require.NoError(t, err)
	_, err = svc.AddReview(ctx, "prod_1", "Alex", 5, "great")
	require.NoError(t, err)

	product, err := svc.GetProduct(ctx, "prod_1")
	require.NoError(t, err)
	require.Len(t, product.Reviews, 2)
	assert.Equal(t, "Alex", product.Reviews[0].CustomerName)
	assert.Equal(t, "Sam", product.Reviews[1].CustomerName)
}

func TestAddReviewValidation(t *testing.T) {
	svc := catalogFixture(t)
	ctx := context.Background()

	_, err := svc.AddReview(ctx, "prod_1", "Sam", 0, "bad rating")
	assert.ErrorIs(t, err, ErrInvalidReview)

	_, err = svc.AddReview(ctx, "prod_1", "  ", 3, "no name")
	assert.ErrorIs(t, err, ErrInvalidReview)

	_, err = svc.AddReview(ctx, "prod_missing", "Sam", 3, "gone")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestProductLookupErrors(t *testing.T) {
	svc := catalogFixture(t)
	ctx := context.Background()

	_, err := svc.GetProduct(ctx, "prod_missing")
	assert.ErrorIs(t, err, ErrProductNotFound)

	_, err = svc.UpdateProduct(ctx, model.Product{ID: "prod_missing"})
	assert.ErrorIs(t, err, ErrProductNotFound)

	err = svc.DeleteProduct(ctx, "prod_missing")
	assert.ErrorIs(t, err, ErrProductNotFound)
}
