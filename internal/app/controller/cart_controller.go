package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/digimarketpro/digimarket-backend/internal/app/service"
	apperrors "github.com/digimarketpro/digimarket-backend/internal/errors"
	"github.com/digimarketpro/digimarket-backend/internal/middleware"
)

type CartController struct {
	cartService service.CartService
}

func NewCartController(cartService service.CartService) *CartController {
	return &CartController{cartService: cartService}
}

type AddToCartRequest struct {
	ProductID string `json:"productId" binding:"required"`
}

type UpdateQuantityRequest struct {
	Delta int `json:"delta" binding:"required"`
}

// requireOwner resolves the cart owner or writes a 400
func requireOwner(c *gin.Context) (string, bool) {
	owner, ok := middleware.GetOwner(c)
	if !ok {
		apperrors.BadRequest(c, apperrors.ValidationRequired, "Sign in or provide the X-Guest-ID header")
		return "", false
	}
	return owner, true
}

// GetCart returns the owner's cart with the converted total
// GET /api/v1/cart?currency=USD
func (ctrl *CartController) GetCart(c *gin.Context) {
	owner, ok := requireOwner(c)
	if !ok {
		return
	}
	currency, ok := currencyFromQuery(c)
	if !ok {
		return
	}

	items := ctrl.cartService.Items(c.Request.Context(), owner)
	c.JSON(http.StatusOK, gin.H{
		"items":    items,
		"total":    ctrl.cartService.Total(c.Request.Context(), owner, currency.Rate),
		"currency": currency,
	})
}

// AddItem puts a product in the cart, merging by product id
// POST /api/v1/cart/items
func (ctrl *CartController) AddItem(c *gin.Context) {
	owner, ok := requireOwner(c)
	if !ok {
		return
	}

	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "productId is required")
		return
	}

	items, err := ctrl.cartService.Add(c.Request.Context(), owner, req.ProductID)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			apperrors.NotFound(c, apperrors.ProductNotFound, "Product not found")
			return
		}
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

// UpdateQuantity applies a delta to a cart line, flooring at 1
// PATCH /api/v1/cart/items/:productId
func (ctrl *CartController) UpdateQuantity(c *gin.Context) {
	owner, ok := requireOwner(c)
	if !ok {
		return
	}

	var req UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "A non-zero delta is required")
		return
	}

	items, err := ctrl.cartService.UpdateQuantity(c.Request.Context(), owner, c.Param("productId"), req.Delta)
	if err != nil {
		if errors.Is(err, service.ErrCartItemNotFound) {
			apperrors.NotFound(c, apperrors.CartItemNotFound, "Item is not in the cart")
			return
		}
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

// RemoveItem deletes a cart line
// DELETE /api/v1/cart/items/:productId
func (ctrl *CartController) RemoveItem(c *gin.Context) {
	owner, ok := requireOwner(c)
	if !ok {
		return
	}

	items := ctrl.cartService.Remove(c.Request.Context(), owner, c.Param("productId"))
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// ClearCart empties the cart
// DELETE /api/v1/cart
func (ctrl *CartController) ClearCart(c *gin.Context) {
	owner, ok := requireOwner(c)
	if !ok {
		return
	}

	ctrl.cartService.Clear(c.Request.Context(), owner)
	c.JSON(http.StatusOK, gin.H{"items": []interface{}{}})
}
