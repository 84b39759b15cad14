package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/digimarketpro/digimarket-backend/internal/app/repository"
	"github.com/digimarketpro/digimarket-backend/pkg/logger"
	"github.com/digimarketpro/digimarket-backend/pkg/util"
)

// SitemapService renders the storefront sitemap from the live catalog and
// content lists.
type SitemapService interface {
	Generate(ctx context.Context) string
}

type sitemapService struct {
	settingsRepo repository.SettingsRepository
	productRepo  repository.ProductRepository
	pageRepo     repository.PageRepository
	postRepo     repository.PostRepository
	now          func() time.Time
}

func NewSitemapService(
	settingsRepo repository.SettingsRepository,
	productRepo repository.ProductRepository,
	pageRepo repository.PageRepository,
	postRepo repository.PostRepository,
) SitemapService {
	return &sitemapService{
		settingsRepo: settingsRepo,
		productRepo:  productRepo,
		pageRepo:     pageRepo,
		postRepo:     postRepo,
		now:          time.Now,
	}
}

type sitemapEntry struct {
	loc        string
	lastmod    string
	changefreq string
	priority   string
}

// Generate renders five fixed storefront routes followed by every page,
// post, and product. Blog posts use their publication date as lastmod;
// everything else uses today.
func (s *sitemapService) Generate(ctx context.Context) string {
	settings := s.settingsRepo.Get(ctx)
	baseURL := strings.TrimRight(settings.SiteURL, "/")
	today := s.now().UTC().Format("2006-01-02")

	entries := []sitemapEntry{
		{baseURL + "/", today, "daily", "1.0"},
		{baseURL + "/shop", today, "daily", "0.8"},
		{baseURL + "/contact", today, "monthly", "0.5"},
		{baseURL + "/about", today, "monthly", "0.5"},
		{baseURL + "/blog", today, "daily", "0.7"},
	}

	for _, page := range s.pageRepo.List(ctx) {
		entries = append(entries, sitemapEntry{
			loc:        baseURL + "/page/" + page.Slug,
			lastmod:    today,
			changefreq: "monthly",
			priority:   "0.6",
		})
	}

	for _, post := range s.postRepo.List(ctx) {
		entries = append(entries, sitemapEntry{
			loc:        baseURL + "/blog/" + post.Slug,
			lastmod:    post.Date,
			changefreq: "monthly",
			priority:   "0.6",
		})
	}

	for _, product := range s.productRepo.List(ctx) {
		entries = append(entries, sitemapEntry{
			loc:        baseURL + "/product/" + util.Slugify(product.Name),
			lastmod:    today,
			changefreq: "weekly",
			priority:   "0.7",
		})
	}

	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString(`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">` + "\n")
	for _, e := range entries {
		fmt.Fprintf(&b, "  <url>\n    <loc>%s</loc>\n    <lastmod>%s</lastmod>\n    <changefreq>%s</changefreq>\n    <priority>%s</priority>\n  </url>\n",
			e.loc, e.lastmod, e.changefreq, e.priority)
	}
	b.WriteString("</urlset>\n")

	logger.Info("Sitemap generated", map[string]interface{}{
		"urls": len(entries),
	})
	return b.String()
}
