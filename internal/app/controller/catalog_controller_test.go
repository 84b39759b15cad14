package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digimarketpro/digimarket-backend/internal/app/model"
	"github.com/digimarketpro/digimarket-backend/internal/app/repository"
	"github.com/digimarketpro/digimarket-backend/internal/app/service"
	"github.com/digimarketpro/digimarket-backend/internal/kvstore"
)

func seedProductRepo(t *testing.T, products []model.Product) repository.ProductRepository {
	t.Helper()

	store, err := kvstore.NewFileStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	data, err := json.Marshal(products)
	require.NoError(t, err)
	require.NoError(t, store.Save(context.Background(), repository.KeyProducts, data))

	return repository.NewProductRepository(context.Background(), store)
}

func catalogTestProducts() []model.Product {
	return []model.Product{
		{ID: "prod_1", Name: "Zip Forms", Price: 30, Category: "Forms & Leads", Reviews: []model.Review{}},
		{ID: "prod_2", Name: "Alpha Cache", Price: 10, Category: "Performance", Reviews: []model.Review{}},
		{ID: "prod_3", Name: "Mega Builder", Price: 20, Category: "Builders & Addons", Reviews: []model.Review{}},
	}
}

func setupCatalogControllerTest(t *testing.T) *gin.Engine {
	t.Helper()

	productRepo := seedProductRepo(t, catalogTestProducts())
	catalogService := service.NewCatalogService(productRepo)
	catalogController := NewCatalogController(catalogService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/products", catalogController.ListProducts)
	router.GET("/products/categories", catalogController.ListCategories)
	router.GET("/products/:id", catalogController.GetProduct)
	router.POST("/products/:id/reviews", catalogController.AddReview)
	router.GET("/currencies", catalogController.ListCurrencies)

	return router
}

func TestCatalogController_ListProducts(t *testing.T) {
	router := setupCatalogControllerTest(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/products", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Products   []model.Product `json:"products"`
		Total      int             `json:"total"`
		Page       int             `json:"page"`
		TotalPages int             `json:"totalPages"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Products, 3)
	assert.Equal(t, 3, resp.Total)
	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, 1, resp.TotalPages)
}

func TestCatalogController_ListProducts_FilterAndSort(t *testing.T) {
	router := setupCatalogControllerTest(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/products?sort=price-low", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Products []model.Product `json:"products"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Products, 3)
	assert.Equal(t, "prod_2", resp.Products[0].ID)
	assert.Equal(t, "prod_3", resp.Products[1].ID)
	assert.Equal(t, "prod_1", resp.Products[2].ID)
}

func TestCatalogController_GetProduct_NotFound(t *testing.T) {
	router := setupCatalogControllerTest(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/products/prod_999", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "PRODUCT_NOT_FOUND")
}

func TestCatalogController_AddReview(t *testing.T) {
	router := setupCatalogControllerTest(t)

	body, _ := json.Marshal(AddReviewRequest{
		CustomerName: "Dana",
		Rating:       5,
		Comment:      "Saved me hours.",
	})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/products/prod_1/reviews", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Review model.Review `json:"review"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Dana", resp.Review.CustomerName)
	assert.Equal(t, 5, resp.Review.Rating)
	assert.NotEmpty(t, resp.Review.ID)
}

func TestCatalogController_AddReview_InvalidRating(t *testing.T) {
	router := setupCatalogControllerTest(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/products/prod_1/reviews",
		bytes.NewBufferString(`{"customerName":"Dana","rating":9}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "REVIEW_INVALID_RATING")
}

func TestCatalogController_ListCurrencies(t *testing.T) {
	router := setupCatalogControllerTest(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/currencies", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Currencies []model.Currency `json:"currencies"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Currencies)
	assert.Equal(t, "USD", resp.Currencies[0].Code)
}
