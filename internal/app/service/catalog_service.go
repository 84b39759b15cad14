package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/digimarketpro/digimarket-backend/internal/app/model"
	"github.com/digimarketpro/digimarket-backend/internal/app/repository"
	"github.com/digimarketpro/digimarket-backend/pkg/logger"
	"github.com/digimarketpro/digimarket-backend/pkg/util"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrInvalidReview   = errors.New("invalid review")
)

// CategoryAll disables category filtering
const CategoryAll = "All"

// PageSize is the fixed catalog page length
const PageSize = 30

// Sort keys accepted by the catalog listing. Any other value keeps the
// stored order.
const (
	SortDefault   = "default"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortNameAsc   = "name-asc"
	SortNameDesc  = "name-desc"
	SortPopular   = "popular"
)

// CatalogQuery is the storefront listing request
type CatalogQuery struct {
	Category string
	Search   string
	Sort     string
	Page     int // 1-based; values < 1 are treated as 1
}

// CatalogPage is one page of filtered, sorted products
type CatalogPage struct {
	Products   []model.Product `json:"products"`
	Total      int             `json:"total"`
	Page       int             `json:"page"`
	TotalPages int             `json:"totalPages"`
}

type CatalogService interface {
	List(ctx context.Context, query CatalogQuery) CatalogPage
	Categories(ctx context.Context) []string
	GetProduct(ctx context.Context, id string) (*model.Product, error)
	CreateProduct(ctx context.Context, product model.Product) (*model.Product, error)
	UpdateProduct(ctx context.Context, product model.Product) (*model.Product, error)
	DeleteProduct(ctx context.Context, id string) error
	AddReview(ctx context.Context, productID, customerName string, rating int, comment string) (*model.Review, error)
}

type catalogService struct {
	productRepo repository.ProductRepository
	collator    *collate.Collator
}

func NewCatalogService(productRepo repository.ProductRepository) CatalogService {
	return &catalogService{
		productRepo: productRepo,
		collator:    collate.New(language.English),
	}
}

func (s *catalogService) List(ctx context.Context, query CatalogQuery) CatalogPage {
	logger.Debug("Listing catalog", map[string]interface{}{
		"category": query.Category,
		"search":   query.Search,
		"sort":     query.Sort,
		"page":     query.Page,
	})

	products := s.productRepo.List(ctx)

	filtered := make([]model.Product, 0, len(products))
	needle := strings.ToLower(query.Search)
	for _, p := range products {
		if query.Category != "" && query.Category != CategoryAll && p.Category != query.Category {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(p.Name), needle) &&
			!strings.Contains(strings.ToLower(p.Description), needle) {
			continue
		}
		filtered = append(filtered, p)
	}

	s.sortProducts(filtered, query.Sort)

	total := len(filtered)
	totalPages := (total + PageSize - 1) / PageSize
	page := query.Page
	if page < 1 {
		page = 1
	}

	start := (page - 1) * PageSize
	if start > total {
		start = total
	}
	end := start + PageSize
	if end > total {
		end = total
	}

	return CatalogPage{
		Products:   filtered[start:end],
		Total:      total,
		Page:       page,
		TotalPages: totalPages,
	}
}

// sortProducts orders in place. Name sorts are locale-aware. "popular" has
// no sales data behind it yet and falls back to reverse category order.
func (s *catalogService) sortProducts(products []model.Product, key string) {
	switch key {
	case SortPriceLow:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case SortPriceHigh:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	case SortNameAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return s.collator.CompareString(products[i].Name, products[j].Name) < 0
		})
	case SortNameDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return s.collator.CompareString(products[j].Name, products[i].Name) < 0
		})
	case SortPopular:
		sort.SliceStable(products, func(i, j int) bool {
			return s.collator.CompareString(products[j].Category, products[i].Category) < 0
		})
	}
}

func (s *catalogService) Categories(ctx context.Context) []string {
	products := s.productRepo.List(ctx)

	seen := make(map[string]bool)
	categories := []string{CategoryAll}
	for _, p := range products {
		if !seen[p.Category] {
			seen[p.Category] = true
			categories = append(categories, p.Category)
		}
	}
	return categories
}

func (s *catalogService) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

func (s *catalogService) CreateProduct(ctx context.Context, product model.Product) (*model.Product, error) {
	logger.Info("Creating product", map[string]interface{}{
		"name":     product.Name,
		"category": product.Category,
	})

	product.ID = util.NewID("prod")
	if product.Category == "" {
		product.Category = model.DefaultCategory
	}
	if product.Image == "" {
		product.Image = model.PlaceholderImage(product.Name, product.Category)
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		logger.Error("Failed to create product", err, map[string]interface{}{
			"name": product.Name,
		})
		return nil, err
	}

	logger.Info("Product created", map[string]interface{}{
		"product_id": product.ID,
	})
	return &product, nil
}

func (s *catalogService) UpdateProduct(ctx context.Context, product model.Product) (*model.Product, error) {
	logger.Info("Updating product", map[string]interface{}{
		"product_id": product.ID,
	})

	existing, err := s.productRepo.FindByID(ctx, product.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	// reviews are append-only and cannot be replaced through an update
	product.Reviews = existing.Reviews

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *catalogService) DeleteProduct(ctx context.Context, id string) error {
	logger.Info("Deleting product", map[string]interface{}{
		"product_id": id,
	})

	if err := s.productRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrProductNotFound
		}
		return err
	}
	return nil
}

func (s *catalogService) AddReview(ctx context.Context, productID, customerName string, rating int, comment string) (*model.Review, error) {
	logger.Info("Adding review", map[string]interface{}{
		"product_id": productID,
		"rating":     rating,
	})

	if rating < 1 || rating > 5 || strings.TrimSpace(customerName) == "" {
		return nil, ErrInvalidReview
	}

	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	review := model.Review{
		ID:           util.NewID("rev"),
		ProductID:    productID,
		CustomerName: customerName,
		Rating:       rating,
		Comment:      comment,
		Date:         time.Now().UTC().Format(time.RFC3339),
	}

	// newest first
	product.Reviews = append([]model.Review{review}, product.Reviews...)

	if err := s.productRepo.Update(ctx, *product); err != nil {
		logger.Error("Failed to store review", err, map[string]interface{}{
			"product_id": productID,
		})
		return nil, err
	}

	return &review, nil
}
