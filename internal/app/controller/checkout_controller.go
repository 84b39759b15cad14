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

type CheckoutController struct {
	checkoutService service.CheckoutService
}

func NewCheckoutController(checkoutService service.CheckoutService) *CheckoutController {
	return &CheckoutController{checkoutService: checkoutService}
}

// PlaceOrder validates the billing form and completes the checkout.
// Field validation failures come back as a 400 with one message per field
// so the storefront can highlight them inline.
// POST /api/v1/checkout?currency=USD
func (ctrl *CheckoutController) PlaceOrder(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	owner, ok := requireOwner(c)
	if !ok {
		return
	}
	currency, ok := currencyFromQuery(c)
	if !ok {
		return
	}

	var details model.BillingDetails
	if err := c.ShouldBindJSON(&details); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Billing details are required")
		return
	}

	confirmation, fieldErrors, err := ctrl.checkoutService.PlaceOrder(c.Request.Context(), owner, details, currency)
	if err != nil {
		if errors.Is(err, service.ErrEmptyCart) {
			apperrors.BadRequest(c, apperrors.CartEmpty, "Your cart is empty")
			return
		}
		log.Error("Checkout failed", err, map[string]interface{}{
			"owner": owner,
		})
		apperrors.InternalError(c, "")
		return
	}
	if len(fieldErrors) > 0 {
		apperrors.RespondWithValidationError(c, fieldErrors)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"order": confirmation})
}
