package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/digimarketpro/digimarket-backend/internal/app/model"
	"github.com/digimarketpro/digimarket-backend/internal/app/service"
	apperrors "github.com/digimarketpro/digimarket-backend/internal/errors"
	"github.com/digimarketpro/digimarket-backend/internal/middleware"
)

// AdminController groups the back-office operations: catalog and content
// CRUD, the customer list, sitemap generation, and spreadsheet exports.
type AdminController struct {
	catalogService service.CatalogService
	contentService service.ContentService
	authService    service.AuthService
	sitemapService service.SitemapService
	exportService  service.ExportService
}

func NewAdminController(
	catalogService service.CatalogService,
	contentService service.ContentService,
	authService service.AuthService,
	sitemapService service.SitemapService,
	exportService service.ExportService,
) *AdminController {
	return &AdminController{
		catalogService: catalogService,
		contentService: contentService,
		authService:    authService,
		sitemapService: sitemapService,
		exportService:  exportService,
	}
}

type ProductRequest struct {
	Name           string  `json:"name" binding:"required"`
	Price          float64 `json:"price" binding:"required,gt=0"`
	Category       string  `json:"category"`
	Description    string  `json:"description"`
	Image          string  `json:"image"`
	SEOTitle       string  `json:"seoTitle"`
	SEODescription string  `json:"seoDescription"`
}

func (r *ProductRequest) toModel(id string) model.Product {
	return model.Product{
		ID:             id,
		Name:           r.Name,
		Price:          r.Price,
		Category:       r.Category,
		Description:    r.Description,
		Image:          r.Image,
		SEOTitle:       r.SEOTitle,
		SEODescription: r.SEODescription,
	}
}

type PageRequest struct {
	Title   string `json:"title" binding:"required"`
	Slug    string `json:"slug"`
	Content string `json:"content"`
}

type PostRequest struct {
	Title          string `json:"title" binding:"required"`
	Slug           string `json:"slug"`
	Excerpt        string `json:"excerpt"`
	Content        string `json:"content"`
	Author         string `json:"author"`
	Date           string `json:"date"`
	Image          string `json:"image"`
	Category       string `json:"category"`
	SEOTitle       string `json:"seoTitle"`
	SEODescription string `json:"seoDescription"`
}

func (r *PostRequest) toModel(id string) model.BlogPost {
	return model.BlogPost{
		ID:             id,
		Title:          r.Title,
		Slug:           r.Slug,
		Excerpt:        r.Excerpt,
		Content:        r.Content,
		Author:         r.Author,
		Date:           r.Date,
		Image:          r.Image,
		Category:       r.Category,
		SEOTitle:       r.SEOTitle,
		SEODescription: r.SEODescription,
	}
}

// CreateProduct adds a catalog product, deriving category and placeholder
// image when absent
// POST /api/v1/admin/products
func (ctrl *AdminController) CreateProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Name and a positive price are required")
		return
	}

	product, err := ctrl.catalogService.CreateProduct(c.Request.Context(), req.toModel(""))
	if err != nil {
		apperrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"product": product})
}

// UpdateProduct replaces a product's editable fields
// PUT /api/v1/admin/products/:id
func (ctrl *AdminController) UpdateProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Name and a positive price are required")
		return
	}

	product, err := ctrl.catalogService.UpdateProduct(c.Request.Context(), req.toModel(c.Param("id")))
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

// DeleteProduct removes a product from the catalog
// DELETE /api/v1/admin/products/:id
func (ctrl *AdminController) DeleteProduct(c *gin.Context) {
	if err := ctrl.catalogService.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			apperrors.NotFound(c, apperrors.ProductNotFound, "Product not found")
			return
		}
		apperrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// CreatePage adds a static page
// POST /api/v1/admin/pages
func (ctrl *AdminController) CreatePage(c *gin.Context) {
	var req PageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Title is required")
		return
	}

	page, err := ctrl.contentService.CreatePage(c.Request.Context(), model.Page{
		Title:   req.Title,
		Slug:    req.Slug,
		Content: req.Content,
	})
	if err != nil {
		apperrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"page": page})
}

// UpdatePage replaces a page
// PUT /api/v1/admin/pages/:id
func (ctrl *AdminController) UpdatePage(c *gin.Context) {
	var req PageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Title is required")
		return
	}

	page, err := ctrl.contentService.UpdatePage(c.Request.Context(), model.Page{
		ID:      c.Param("id"),
		Title:   req.Title,
		Slug:    req.Slug,
		Content: req.Content,
	})
	if err != nil {
		if errors.Is(err, service.ErrPageNotFound) {
			apperrors.NotFound(c, apperrors.PageNotFound, "Page not found")
			return
		}
		apperrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"page": page})
}

// DeletePage removes a page
// DELETE /api/v1/admin/pages/:id
func (ctrl *AdminController) DeletePage(c *gin.Context) {
	if err := ctrl.contentService.DeletePage(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrPageNotFound) {
			apperrors.NotFound(c, apperrors.PageNotFound, "Page not found")
			return
		}
		apperrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// CreatePost adds a blog post
// POST /api/v1/admin/posts
func (ctrl *AdminController) CreatePost(c *gin.Context) {
	var req PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Title is required")
		return
	}

	post, err := ctrl.contentService.CreatePost(c.Request.Context(), req.toModel(""))
	if err != nil {
		apperrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"post": post})
}

// UpdatePost replaces a blog post
// PUT /api/v1/admin/posts/:id
func (ctrl *AdminController) UpdatePost(c *gin.Context) {
	var req PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Title is required")
		return
	}

	post, err := ctrl.contentService.UpdatePost(c.Request.Context(), req.toModel(c.Param("id")))
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			apperrors.NotFound(c, apperrors.PostNotFound, "Blog post not found")
			return
		}
		apperrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"post": post})
}

// DeletePost removes a blog post
// DELETE /api/v1/admin/posts/:id
func (ctrl *AdminController) DeletePost(c *gin.Context) {
	if err := ctrl.contentService.DeletePost(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			apperrors.NotFound(c, apperrors.PostNotFound, "Blog post not found")
			return
		}
		apperrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// ListCustomers returns every registered account
// GET /api/v1/admin/customers
func (ctrl *AdminController) ListCustomers(c *gin.Context) {
	customers := ctrl.authService.ListCustomers(c.Request.Context())

	out := make([]gin.H, len(customers))
	for i := range customers {
		out[i] = customerJSON(&customers[i])
	}
	c.JSON(http.StatusOK, gin.H{"customers": out})
}

// GetSitemap renders sitemap.xml from the live catalog and content
// GET /api/v1/admin/sitemap.xml
func (ctrl *AdminController) GetSitemap(c *gin.Context) {
	xml := ctrl.sitemapService.Generate(c.Request.Context())

	c.Header("Content-Disposition", `attachment; filename="sitemap.xml"`)
	c.Data(http.StatusOK, "text/xml; charset=utf-8", []byte(xml))
}

// ExportProducts downloads the catalog as an XLSX workbook
// GET /api/v1/admin/exports/products
func (ctrl *AdminController) ExportProducts(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	data, err := ctrl.exportService.ExportProducts(c.Request.Context())
	if err != nil {
		log.Error("Product export failed", err, nil)
		apperrors.InternalError(c, "")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="products.xlsx"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

// ExportCustomers downloads the customer list as an XLSX workbook
// GET /api/v1/admin/exports/customers
func (ctrl *AdminController) ExportCustomers(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	data, err := ctrl.exportService.ExportCustomers(c.Request.Context())
	if err != nil {
		log.Error("Customer export failed", err, nil)
		apperrors.InternalError(c, "")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="customers.xlsx"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
