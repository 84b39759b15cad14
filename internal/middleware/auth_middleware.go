package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/digimarketpro/digimarket-backend/internal/app/model"
	"github.com/digimarketpro/digimarket-backend/internal/errors"
	"github.com/digimarketpro/digimarket-backend/pkg/util"
)

// Context keys for customer information
const (
	CustomerIDKey    = "customer_id"
	CustomerEmailKey = "customer_email"
	CustomerRoleKey  = "customer_role"
)

// GuestIDHeader carries an anonymous owner id for carts, wishlists, and
// history when no account is signed in
const GuestIDHeader = "X-Guest-ID"

type AuthMiddleware struct {
	jwtSecret string
}

func NewAuthMiddleware(jwtSecret string) *AuthMiddleware {
	return &AuthMiddleware{jwtSecret: jwtSecret}
}

// Authenticate validates the JWT (required). Falls back to the token query
// parameter for WebSocket upgrades, which cannot set headers.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		log := GetLoggerFromContext(c)

		var token string

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				log.Warn("Invalid authorization header format", map[string]interface{}{
					"path": c.Request.URL.Path,
				})
				errors.RespondWithError(c, http.StatusUnauthorized, errors.AuthTokenInvalid, "Invalid authorization header format")
				c.Abort()
				return
			}
			token = parts[1]
		} else {
			token = c.Query("token")
			if token == "" {
				log.Warn("Missing authorization header", map[string]interface{}{
					"path": c.Request.URL.Path,
				})
				errors.Unauthorized(c, "Authentication required")
				c.Abort()
				return
			}
		}

		claims, err := util.ValidateToken(token, m.jwtSecret)
		if err != nil {
			log.Warn("Token validation failed", map[string]interface{}{
				"path":  c.Request.URL.Path,
				"error": err.Error(),
			})

			if err == util.ErrExpiredToken {
				errors.RespondWithError(c, http.StatusUnauthorized, errors.AuthTokenExpired, "Session expired, please sign in again")
			} else {
				errors.RespondWithError(c, http.StatusUnauthorized, errors.AuthTokenInvalid, "Invalid authentication token")
			}
			c.Abort()
			return
		}

		c.Set(CustomerIDKey, claims.UserID)
		c.Set(CustomerEmailKey, claims.Email)
		c.Set(CustomerRoleKey, model.CustomerRole(claims.Role))

		log.Debug("Customer authenticated", map[string]interface{}{
			"customer_id": claims.UserID,
			"role":        claims.Role,
		})

		c.Next()
	}
}

// OptionalAuthenticate sets customer info when a valid token is present and
// continues as guest otherwise
func (m *AuthMiddleware) OptionalAuthenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		log := GetLoggerFromContext(c)

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			log.Debug("Invalid authorization header format, continuing as guest", map[string]interface{}{
				"path": c.Request.URL.Path,
			})
			c.Next()
			return
		}

		claims, err := util.ValidateToken(parts[1], m.jwtSecret)
		if err != nil {
			log.Debug("Token validation failed, continuing as guest", map[string]interface{}{
				"path":  c.Request.URL.Path,
				"error": err.Error(),
			})
			c.Next()
			return
		}

		c.Set(CustomerIDKey, claims.UserID)
		c.Set(CustomerEmailKey, claims.Email)
		c.Set(CustomerRoleKey, model.CustomerRole(claims.Role))

		c.Next()
	}
}

// RequireRole allows only the listed roles past
func (m *AuthMiddleware) RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		log := GetLoggerFromContext(c)

		customerRole, exists := c.Get(CustomerRoleKey)
		if !exists {
			log.Warn("Role information not found in context", map[string]interface{}{
				"path": c.Request.URL.Path,
			})
			errors.RespondWithError(c, http.StatusForbidden, errors.AuthzRoleNotFound, "Role information not found")
			c.Abort()
			return
		}

		role := customerRole.(model.CustomerRole)
		customerID, _ := GetCustomerID(c)

		for _, r := range roles {
			if role == model.CustomerRole(r) {
				c.Next()
				return
			}
		}

		log.Warn("Insufficient permissions", map[string]interface{}{
			"customer_id":    customerID,
			"customer_role":  role,
			"required_roles": roles,
			"path":           c.Request.URL.Path,
		})
		errors.Forbidden(c, "Access denied")
		c.Abort()
	}
}

// GetCustomerID extracts the authenticated customer id from context
func GetCustomerID(c *gin.Context) (string, bool) {
	customerID, exists := c.Get(CustomerIDKey)
	if !exists {
		return "", false
	}
	return customerID.(string), true
}

// GetCustomerRole extracts the authenticated customer role from context
func GetCustomerRole(c *gin.Context) (model.CustomerRole, bool) {
	role, exists := c.Get(CustomerRoleKey)
	if !exists {
		return "", false
	}
	return role.(model.CustomerRole), true
}

// GetOwner resolves the identity owning carts, wishlists, and history: the
// customer id when signed in, otherwise the guest id header. ok is false
// when neither is present.
func GetOwner(c *gin.Context) (string, bool) {
	if customerID, ok := GetCustomerID(c); ok {
		return customerID, true
	}
	if guestID := c.GetHeader(GuestIDHeader); guestID != "" {
		return "guest_" + guestID, true
	}
	return "", false
}
