package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/digimarketpro/digimarket-backend/internal/app/service"
	apperrors "github.com/digimarketpro/digimarket-backend/internal/errors"
)

type ContentController struct {
	contentService service.ContentService
}

func NewContentController(contentService service.ContentService) *ContentController {
	return &ContentController{contentService: contentService}
}

// ListPages returns every static page
// GET /api/v1/pages
func (ctrl *ContentController) ListPages(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"pages": ctrl.contentService.ListPages(c.Request.Context()),
	})
}

// GetPage returns one page by slug
// GET /api/v1/pages/:slug
func (ctrl *ContentController) GetPage(c *gin.Context) {
	page, err := ctrl.contentService.GetPageBySlug(c.Request.Context(), c.Param("slug"))
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

// ListPosts returns every blog post
// GET /api/v1/blog
func (ctrl *ContentController) ListPosts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"posts": ctrl.contentService.ListPosts(c.Request.Context()),
	})
}

// GetPost returns one blog post by slug
// GET /api/v1/blog/:slug
func (ctrl *ContentController) GetPost(c *gin.Context) {
	post, err := ctrl.contentService.GetPostBySlug(c.Request.Context(), c.Param("slug"))
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
