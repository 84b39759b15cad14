package service

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digimarketpro/digimarket-backend/internal/app/model"
	"github.com/digimarketpro/digimarket-backend/internal/app/repository"
	"github.com/digimarketpro/digimarket-backend/internal/kvstore"
)

func seedJSON(t *testing.T, store kvstore.Store, key string, value interface{}) {
	t.Helper()
	data, err := json.Marshal(value)
	require.NoError(t, err)
	require.NoError(t, store.Save(context.Background(), key, data))
}

func sitemapFixture(t *testing.T) *sitemapService {
	t.Helper()
	store := newTestStore(t)
	ctx := context.Background()

	seedJSON(t, store, repository.KeyProducts, []model.Product{
		{ID: "prod_1", Name: "Alpha Cache Pro!", Price: 10, Category: "Performance"},
		{ID: "prod_2", Name: "Mega Builder", Price: 20, Category: "Builders & Addons"},
	})
	seedJSON(t, store, repository.KeyPages, []model.Page{
		{ID: "page_1", Title: "Privacy", Slug: "privacy-policy"},
	})
	seedJSON(t, store, repository.KeyPosts, []model.BlogPost{
		{ID: "post_1", Title: "Hello", Slug: "hello-world", Date: "2026-02-14"},
	})

	svc := NewSitemapService(
		repository.NewSettingsRepository(ctx, store),
		repository.NewProductRepository(ctx, store),
		repository.NewPageRepository(ctx, store),
		repository.NewPostRepository(ctx, store),
	).(*sitemapService)
	svc.now = func() time.Time {
		return time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	}
	return svc
}

func TestSitemapContainsEveryRoute(t *testing.T) {
	svc := sitemapFixture(t)
	xml := svc.Generate(context.Background())

	base := model.DefaultSettings().SiteURL

	// five fixed routes plus one page, one post, two products
	assert.Equal(t, 9, strings.Count(xml, "<url>"))
	assert.Equal(t, 9, strings.Count(xml, "</url>"))

	assert.Contains(t, xml, "<loc>"+base+"/</loc>")
	assert.Contains(t, xml, "<loc>"+base+"/shop</loc>")
	assert.Contains(t, xml, "<loc>"+base+"/contact</loc>")
	assert.Contains(t, xml, "<loc>"+base+"/about</loc>")
	assert.Contains(t, xml, "<loc>"+base+"/blog</loc>")
	assert.Contains(t, xml, "<loc>"+base+"/page/privacy-policy</loc>")
	assert.Contains(t, xml, "<loc>"+base+"/blog/hello-world</loc>")
	assert.Contains(t, xml, "<loc>"+base+"/product/alpha-cache-pro</loc>")
	assert.Contains(t, xml, "<loc>"+base+"/product/mega-builder</loc>")
}

func TestSitemapHeaderAndFrequencies(t *testing.T) {
	svc := sitemapFixture(t)
	xml := svc.Generate(context.Background())

	assert.True(t, strings.HasPrefix(xml, `<?xml version="1.0" encoding="UTF-8"?>`))
	assert.Contains(t, xml, `<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`)
	assert.True(t, strings.HasSuffix(xml, "</urlset>\n"))

	assert.Contains(t, xml, "<priority>1.0</priority>")
	assert.Contains(t, xml, "<changefreq>weekly</changefreq>")
}

func TestSitemapBlogPostUsesPublicationDate(t *testing.T) {
	svc := sitemapFixture(t)
	xml := svc.Generate(context.Background())

	assert.Contains(t, xml, "<lastmod>2026-02-14</lastmod>")
	// static routes carry the generation date
	assert.Contains(t, xml, "<lastmod>2026-08-28</lastmod>")
}

func TestSitemapTrimsTrailingSlashFromSiteURL(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	seedJSON(t, store, repository.KeySettings, map[string]string{"siteUrl": "https://example.com/"})
	seedJSON(t, store, repository.KeyPages, []model.Page{})
	seedJSON(t, store, repository.KeyPosts, []model.BlogPost{})
	seedJSON(t, store, repository.KeyProducts, []model.Product{})

	svc := NewSitemapService(
		repository.NewSettingsRepository(ctx, store),
		repository.NewProductRepository(ctx, store),
		repository.NewPageRepository(ctx, store),
		repository.NewPostRepository(ctx, store),
	)
	xml := svc.Generate(ctx)

	assert.Contains(t, xml, "<loc>https://example.com/</loc>")
	assert.NotContains(t, xml, "https://example.com//")
}
