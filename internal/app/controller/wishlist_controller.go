package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/digimarketpro/digimarket-backend/internal/app/service"
	apperrors "github.com/digimarketpro/digimarket-backend/internal/errors"
)

type WishlistController struct {
	wishlistService service.WishlistService
}

func NewWishlistController(wishlistService service.WishlistService) *WishlistController {
	return &WishlistController{wishlistService: wishlistService}
}

type ToggleWishlistRequest struct {
	ProductID string `json:"productId" binding:"required"`
}

type RecordViewRequest struct {
	ProductID string `json:"productId" binding:"required"`
}

// GetWishlist returns the owner's wishlist
// GET /api/v1/wishlist
func (ctrl *WishlistController) GetWishlist(c *gin.Context) {
	owner, ok := requireOwner(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"products": ctrl.wishlistService.Wishlist(c.Request.Context(), owner),
	})
}

// Toggle adds or removes a product from the wishlist
// POST /api/v1/wishlist/toggle
func (ctrl *WishlistController) Toggle(c *gin.Context) {
	owner, ok := requireOwner(c)
	if !ok {
		return
	}

	var req ToggleWishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "productId is required")
		return
	}

	products, err := ctrl.wishlistService.Toggle(c.Request.Context(), owner, req.ProductID)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			apperrors.NotFound(c, apperrors.ProductNotFound, "Product not found")
			return
		}
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": products})
}

// GetHistory returns the owner's recently viewed products, newest first
// GET /api/v1/history
func (ctrl *WishlistController) GetHistory(c *gin.Context) {
	owner, ok := requireOwner(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"products": ctrl.wishlistService.History(c.Request.Context(), owner),
	})
}

// RecordView records a product view in the owner's history
// POST /api/v1/history
func (ctrl *WishlistController) RecordView(c *gin.Context) {
	owner, ok := requireOwner(c)
	if !ok {
		return
	}

	var req RecordViewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "productId is required")
		return
	}

	if err := ctrl.wishlistService.RecordView(c.Request.Context(), owner, req.ProductID); err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			apperrors.NotFound(c, apperrors.ProductNotFound, "Product not found")
			return
		}
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"products": ctrl.wishlistService.History(c.Request.Context(), owner),
	})
}
