package service

import (
	"context"
	"errors"

	"github.com/digimarketpro/digimarket-backend/internal/app/model"
	"github.com/digimarketpro/digimarket-backend/internal/app/repository"
	"github.com/digimarketpro/digimarket-backend/pkg/logger"
)

var ErrUnknownView = errors.New("unknown view")

// PageMeta is the resolved document metadata for one storefront view
type PageMeta struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// SettingsService owns the store configuration singleton and resolves
// per-view document metadata from it.
type SettingsService interface {
	Get(ctx context.Context) model.StoreSettings
	Update(ctx context.Context, settings model.StoreSettings) (model.StoreSettings, error)
	// ResolveSEO computes title and meta description for a view. The id is
	// a product id for "product", a slug for "page" and "blog-post", and
	// ignored otherwise.
	ResolveSEO(ctx context.Context, view, id string) (PageMeta, error)
}

type settingsService struct {
	settingsRepo repository.SettingsRepository
	productRepo  repository.ProductRepository
	pageRepo     repository.PageRepository
	postRepo     repository.PostRepository
}

func NewSettingsService(
	settingsRepo repository.SettingsRepository,
	productRepo repository.ProductRepository,
	pageRepo repository.PageRepository,
	postRepo repository.PostRepository,
) SettingsService {
	return &settingsService{
		settingsRepo: settingsRepo,
		productRepo:  productRepo,
		pageRepo:     pageRepo,
		postRepo:     postRepo,
	}
}

func (s *settingsService) Get(ctx context.Context) model.StoreSettings {
	return s.settingsRepo.Get(ctx)
}

func (s *settingsService) Update(ctx context.Context, settings model.StoreSettings) (model.StoreSettings, error) {
	logger.Info("Updating store settings", map[string]interface{}{
		"store_name": settings.StoreName,
	})

	if err := s.settingsRepo.Replace(ctx, settings); err != nil {
		logger.Error("Failed to update settings", err, nil)
		return model.StoreSettings{}, err
	}
	return settings, nil
}

func (s *settingsService) ResolveSEO(ctx context.Context, view, id string) (PageMeta, error) {
	settings := s.settingsRepo.Get(ctx)

	title := settings.SEOTitle
	if title == "" {
		title = settings.StoreName
	}
	description := settings.SEODescription

	switch view {
	case "home", "":
		// defaults above

	case "shop":
		title = fallback(settings.ShopSEOTitle, "Shop | "+settings.StoreName)
		description = fallback(settings.ShopSEODescription, description)

	case "contact":
		title = fallback(settings.ContactSEOTitle, "Contact | "+settings.StoreName)
		description = fallback(settings.ContactSEODescription, description)

	case "about":
		title = "About Us | " + settings.StoreName

	case "blog":
		title = "Blog | " + settings.StoreName

	case "blog-post":
		post, err := s.postRepo.FindBySlug(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return PageMeta{}, ErrPostNotFound
			}
			return PageMeta{}, err
		}
		title = fallback(post.SEOTitle, post.Title+" | "+settings.StoreName)
		description = fallback(post.SEODescription, fallback(post.Excerpt, description))

	case "product":
		product, err := s.productRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return PageMeta{}, ErrProductNotFound
			}
			return PageMeta{}, err
		}
		title = fallback(product.SEOTitle, product.Name+" | "+settings.StoreName)
		description = fallback(product.SEODescription,
			fallback(truncate(product.Description, 160), settings.SEODescription))

	case "page":
		page, err := s.pageRepo.FindBySlug(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return PageMeta{}, ErrPageNotFound
			}
			return PageMeta{}, err
		}
		title = page.Title + " | " + settings.StoreName

	default:
		return PageMeta{}, ErrUnknownView
	}

	return PageMeta{Title: title, Description: description}, nil
}

func fallback(value, alt string) string {
	if value != "" {
		return value
	}
	return alt
}

func truncate(value string, limit int) string {
	if len(value) <= limit {
		return value
	}
	return value[:limit]
}
