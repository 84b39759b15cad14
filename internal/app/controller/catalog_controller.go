package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/digimarketpro/digimarket-backend/internal/app/model"
	"github.com/digimarketpro/digimarket-backend/internal/app/service"
	apperrors "github.com/digimarketpro/digimarket-backend/internal/errors"
	"github.com/digimarketpro/digimarket-backend/internal/middleware"
)

type CatalogController struct {
	catalogService service.CatalogService
}

func NewCatalogController(catalogService service.CatalogService) *CatalogController {
	return &CatalogController{catalogService: catalogService}
}

type AddReviewRequest struct {
	CustomerName string `json:"customerName" binding:"required"`
	Rating       int    `json:"rating" binding:"required,min=1,max=5"`
	Comment      string `json:"comment"`
}

// currencyFromQuery resolves the display currency, defaulting to the base
func currencyFromQuery(c *gin.Context) (model.Currency, bool) {
	code := c.DefaultQuery("currency", "USD")
	currency, ok := model.CurrencyByCode(code)
	if !ok {
		apperrors.BadRequest(c, apperrors.CurrencyNotFound, "Unsupported currency: "+code)
		return model.Currency{}, false
	}
	return currency, true
}

// ListProducts returns a filtered, sorted catalog page
// GET /api/v1/products?category=&search=&sort=&page=
func (ctrl *CatalogController) ListProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	result := ctrl.catalogService.List(c.Request.Context(), service.CatalogQuery{
		Category: c.Query("category"),
		Search:   c.Query("search"),
		Sort:     c.DefaultQuery("sort", service.SortDefault),
		Page:     page,
	})

	c.JSON(http.StatusOK, result)
}

// ListCategories returns the distinct category list, "All" first
// GET /api/v1/products/categories
func (ctrl *CatalogController) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"categories": ctrl.catalogService.Categories(c.Request.Context()),
	})
}

// GetProduct returns a single product
// GET /api/v1/products/:id
func (ctrl *CatalogController) GetProduct(c *gin.Context) {
	product, err := ctrl.catalogService.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			apperrors.NotFound(c, apperrors.ProductNotFound, "Product not found")
			return
		}
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"product": product})
}

// AddReview appends a customer review to a product
// POST /api/v1/products/:id/reviews
func (ctrl *CatalogController) AddReview(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req AddReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ReviewInvalidRating, "A name and a rating between 1 and 5 are required")
		return
	}

	review, err := ctrl.catalogService.AddReview(c.Request.Context(), c.Param("id"), req.CustomerName, req.Rating, req.Comment)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProductNotFound):
			apperrors.NotFound(c, apperrors.ProductNotFound, "Product not found")
		case errors.Is(err, service.ErrInvalidReview):
			apperrors.BadRequest(c, apperrors.ReviewInvalidRating, "A name and a rating between 1 and 5 are required")
		default:
			log.Error("Failed to add review", err, map[string]interface{}{
				"product_id": c.Param("id"),
			})
			apperrors.InternalError(c, "")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"review": review})
}

// ListCurrencies returns the supported display currencies
// GET /api/v1/currencies
func (ctrl *CatalogController) ListCurrencies(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"currencies": model.Currencies})
}
