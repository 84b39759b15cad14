package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digimarketpro/digimarket-backend/internal/app/model"
	"github.com/digimarketpro/digimarket-backend/internal/app/repository"
	"github.com/digimarketpro/digimarket-backend/internal/kvstore"
)

func settingsFixture(t *testing.T, store kvstore.Store) SettingsService {
	t.Helper()
	ctx := context.Background()
	return NewSettingsService(
		repository.NewSettingsRepository(ctx, store),
		repository.NewProductRepository(ctx, store),
		repository.NewPageRepository(ctx, store),
		repository.NewPostRepository(ctx, store),
	)
}

func TestSettingsUpdateSurvivesRestart(t *testing.T) {
	store := newTestStore(t)
	svc := settingsFixture(t, store)
	ctx := context.Background()

	settings := svc.Get(ctx)
	settings.StoreName = "Acme"
	_, err := svc.Update(ctx, settings)
	require.NoError(t, err)

	// a fresh service over the same store sees the override merged with
	// the untouched defaults
	reloaded := settingsFixture(t, store)
	got := reloaded.Get(ctx)
	assert.Equal(t, "Acme", got.StoreName)
	assert.Equal(t, model.DefaultSettings().SupportEmail, got.SupportEmail)
}

func TestResolveSEOStaticViews(t *testing.T) {
	store := newTestStore(t)
	svc := settingsFixture(t, store)
	ctx := context.Background()
	defaults := model.DefaultSettings()

	tests := []struct {
		view  string
		title string
	}{
		{"home", defaults.SEOTitle},
		{"", defaults.SEOTitle},
		{"shop", "Shop | " + defaults.StoreName},
		{"contact", "Contact | " + defaults.StoreName},
		{"about", "About Us | " + defaults.StoreName},
		{"blog", "Blog | " + defaults.StoreName},
	}
	for _, tt := range tests {
		meta, err := svc.ResolveSEO(ctx, tt.view, "")
		require.NoError(t, err, tt.view)
		assert.Equal(t, tt.title, meta.Title, tt.view)
	}

	_, err := svc.ResolveSEO(ctx, "dashboard", "")
	assert.ErrorIs(t, err, ErrUnknownView)
}

func TestResolveSEOUsesPerViewOverrides(t *testing.T) {
	store := newTestStore(t)
	svc := settingsFixture(t, store)
	ctx := context.Background()

	settings := svc.Get(ctx)
	settings.ShopSEOTitle = "Browse Everything"
	settings.ContactSEODescription = "Write to us"
	_, err := svc.Update(ctx, settings)
	require.NoError(t, err)

	meta, err := svc.ResolveSEO(ctx, "shop", "")
	require.NoError(t, err)
	assert.Equal(t, "Browse Everything", meta.Title)

	meta, err = svc.ResolveSEO(ctx, "contact", "")
	require.NoError(t, err)
	assert.Equal(t, "Write to us", meta.Description)
}

func TestResolveSEOProduct(t *testing.T) {
	store := newTestStore(t)
	longDescription := strings.Repeat("x", 200)
	productRepo := seedProducts(t, store, []model.Product{
		{ID: "prod_1", Name: "Alpha Cache", Price: 10, Category: "Performance", Description: longDescription},
		{ID: "prod_2", Name: "Mega Builder", Price: 20, Category: "Builders & Addons",
			SEOTitle: "Mega Builder Deal", SEODescription: "Best builder."},
	})
	ctx := context.Background()
	svc := NewSettingsService(
		repository.NewSettingsRepository(ctx, store),
		productRepo,
		repository.NewPageRepository(ctx, store),
		repository.NewPostRepository(ctx, store),
	)
	storeName := model.DefaultSettings().StoreName

	meta, err := svc.ResolveSEO(ctx, "product", "prod_1")
	require.NoError(t, err)
	assert.Equal(t, "Alpha Cache | "+storeName, meta.Title)
	assert.Len(t, meta.Description, 160)

	meta, err = svc.ResolveSEO(ctx, "product", "prod_2")
	require.NoError(t, err)
	assert.Equal(t, "Mega Builder Deal", meta.Title)
	assert.Equal(t, "Best builder.", meta.Description)

	_, err = svc.ResolveSEO(ctx, "product", "prod_missing")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestResolveSEOContentViews(t *testing.T) {
	store := newTestStore(t)
	svc := settingsFixture(t, store)
	ctx := context.Background()
	storeName := model.DefaultSettings().StoreName

	pageRepo := repository.NewPageRepository(ctx, store)
	pages := pageRepo.List(ctx)
	require.NotEmpty(t, pages)

	meta, err := svc.ResolveSEO(ctx, "page", pages[0].Slug)
	require.NoError(t, err)
	assert.Equal(t, pages[0].Title+" | "+storeName, meta.Title)

	postRepo := repository.NewPostRepository(ctx, store)
	posts := postRepo.List(ctx)
	require.NotEmpty(t, posts)

	meta, err = svc.ResolveSEO(ctx, "blog-post", posts[0].Slug)
	require.NoError(t, err)
	assert.Contains(t, meta.Title, posts[0].Title)
	if posts[0].Excerpt != "" {
		assert.Equal(t, posts[0].Excerpt, meta.Description)
	}

	_, err = svc.ResolveSEO(ctx, "page", "no-such-slug")
	assert.ErrorIs(t, err, ErrPageNotFound)
	_, err = svc.ResolveSEO(ctx, "blog-post", "no-such-slug")
	assert.ErrorIs(t, err, ErrPostNotFound)
}
