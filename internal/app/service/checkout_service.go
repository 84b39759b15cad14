package service

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/digimarketpro/digimarket-backend/internal/app/model"
	"github.com/digimarketpro/digimarket-backend/pkg/logger"
	"github.com/digimarketpro/digimarket-backend/pkg/util"
)

var ErrEmptyCart = errors.New("cart is empty")

// matches any "x@y.z" shape; stricter validation is the payment
// provider's job
var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// OrderConfirmation is returned once a checkout passes validation
type OrderConfirmation struct {
	OrderID  string           `json:"orderId"`
	Email    string           `json:"email"`
	Items    []model.CartItem `json:"items"`
	Total    float64          `json:"total"`
	Currency string           `json:"currency"`
	Date     string           `json:"date"`
}

type CheckoutService interface {
	// Validate returns one message per failing field; an empty map means
	// the form is acceptable
	Validate(details model.BillingDetails) map[string]string
	// PlaceOrder validates, then empties the cart and returns a
	// confirmation. Validation failures come back as the map with a nil
	// confirmation and nil error.
	PlaceOrder(ctx context.Context, owner string, details model.BillingDetails, currency model.Currency) (*OrderConfirmation, map[string]string, error)
}

type checkoutService struct {
	cart CartService
}

func NewCheckoutService(cart CartService) CheckoutService {
	return &checkoutService{cart: cart}
}

func (s *checkoutService) Validate(details model.BillingDetails) map[string]string {
	fieldErrors := make(map[string]string)

	required := map[string]string{
		"firstName": details.FirstName,
		"lastName":  details.LastName,
		"phone":     details.Phone,
		"country":   details.Country,
		"city":      details.City,
		"zip":       details.Zip,
	}
	for field, value := range required {
		if strings.TrimSpace(value) == "" {
			fieldErrors[field] = "Required"
		}
	}

	// address is intentionally optional
	if !emailPattern.MatchString(details.Email) {
		fieldErrors["email"] = "Valid email required"
	}

	return fieldErrors
}

func (s *checkoutService) PlaceOrder(ctx context.Context, owner string, details model.BillingDetails, currency model.Currency) (*OrderConfirmation, map[string]string, error) {
	logger.Info("Placing order", map[string]interface{}{
		"owner":    owner,
		"currency": currency.Code,
	})

	if fieldErrors := s.Validate(details); len(fieldErrors) > 0 {
		logger.Warn("Checkout validation failed", map[string]interface{}{
			"owner":  owner,
			"fields": len(fieldErrors),
		})
		return nil, fieldErrors, nil
	}

	items := s.cart.Items(ctx, owner)
	if len(items) == 0 {
		logger.Warn("Checkout rejected: empty cart", map[string]interface{}{
			"owner": owner,
		})
		return nil, nil, ErrEmptyCart
	}

	confirmation := &OrderConfirmation{
		OrderID:  util.NewID("order"),
		Email:    details.Email,
		Items:    items,
		Total:    s.cart.Total(ctx, owner, currency.Rate),
		Currency: currency.Code,
		Date:     time.Now().UTC().Format(time.RFC3339),
	}

	s.cart.Clear(ctx, owner)

	logger.Info("Order placed", map[string]interface{}{
		"order_id": confirmation.OrderID,
		"total":    confirmation.Total,
		"currency": confirmation.Currency,
	})
	return confirmation, nil, nil
}
