package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digimarketpro/digimarket-backend/pkg/util"
)

const testSecret = "test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func issueToken(t *testing.T, role string, expiry time.Duration) string {
	t.Helper()
	tokens, err := util.GenerateTokenPair("cust_1", "sam@example.com", role, testSecret, expiry, time.Hour)
	require.NoError(t, err)
	return tokens.AccessToken
}

func protectedRouter(extra ...gin.HandlerFunc) *gin.Engine {
	auth := NewAuthMiddleware(testSecret)
	r := gin.New()
	handlers := []gin.HandlerFunc{auth.Authenticate()}
	handlers = append(handlers, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		customerID, _ := GetCustomerID(c)
		c.JSON(http.StatusOK, gin.H{"customer_id": customerID})
	})
	r.GET("/protected", handlers...)
	return r
}

func TestAuthenticateWithBearerToken(t *testing.T) {
	r := protectedRouter()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, "customer", time.Hour))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "cust_1")
}

func TestAuthenticateWithQueryToken(t *testing.T) {
	r := protectedRouter()

	req := httptest.NewRequest(http.MethodGet, "/protected?token="+issueToken(t, "customer", time.Hour), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthenticateRejections(t *testing.T) {
	r := protectedRouter()

	tests := []struct {
		name   string
		header string
		code   string
	}{
		{"missing header", "", "AUTH_UNAUTHORIZED"},
		{"malformed header", "Token abc", "AUTH_TOKEN_INVALID"},
		{"garbage token", "Bearer not-a-jwt", "AUTH_TOKEN_INVALID"},
		{"expired token", "Bearer " + issueToken(t, "customer", -time.Minute), "AUTH_TOKEN_EXPIRED"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Contains(t, w.Body.String(), tt.code)
		})
	}
}

func TestRequireRoleAdmin(t *testing.T) {
	auth := NewAuthMiddleware(testSecret)
	r := protectedRouter(auth.RequireRole("admin"))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, "customer", time.Hour))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, "admin", time.Hour))
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestOptionalAuthenticate(t *testing.T) {
	auth := NewAuthMiddleware(testSecret)
	r := gin.New()
	r.GET("/open", auth.OptionalAuthenticate(), func(c *gin.Context) {
		owner, ok := GetOwner(c)
		c.JSON(http.StatusOK, gin.H{"owner": owner, "identified": ok})
	})

	// valid token resolves to the customer id
	req := httptest.NewRequest(http.MethodGet, "/open", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, "customer", time.Hour))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Contains(t, w.Body.String(), "cust_1")

	// guest header works without a token
	req = httptest.NewRequest(http.MethodGet, "/open", nil)
	req.Header.Set(GuestIDHeader, "abc123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Contains(t, w.Body.String(), "guest_abc123")

	// a bad token degrades to anonymous instead of failing
	req = httptest.NewRequest(http.MethodGet, "/open", nil)
	req.Header.Set("Authorization", "Bearer junk")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"identified":false`)
}
