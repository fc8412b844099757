package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Lee0514/travel-app-backend/internal/auth/accounts"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const jwtSecret = "super-secret"

type fakeLookupClient struct {
	users map[string]string
}

func (f *fakeLookupClient) SignIn(ctx context.Context, email, password string) (*accounts.Account, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeLookupClient) SignUp(ctx context.Context, email, password string, metadata map[string]any) (*accounts.Account, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeLookupClient) GetUser(ctx context.Context, token string) (*accounts.User, error) {
	id, ok := f.users[token]
	if !ok {
		return nil, errors.New("invalid token")
	}
	return &accounts.User{ID: id}, nil
}

func newAuthRouter(t *testing.T, a *AuthMiddleware) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/api/me", a.RequireAuth, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": UserID(c)})
	})
	return router
}

func get(router *gin.Engine, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func mintToken(t *testing.T, secret string, subject string, expiresIn time.Duration) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
	})

	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestRequireAuthLocalVerification(t *testing.T) {
	router := newAuthRouter(t, NewAuthMiddleware(&fakeLookupClient{}, jwtSecret))

	w := get(router, "Bearer "+mintToken(t, jwtSecret, "acc-1", time.Hour))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "acc-1")
}

func TestRequireAuthRejectsMissingHeader(t *testing.T) {
	router := newAuthRouter(t, NewAuthMiddleware(&fakeLookupClient{}, jwtSecret))

	w := get(router, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "No token provided")
}

func TestRequireAuthRejectsExpiredToken(t *testing.T) {
	router := newAuthRouter(t, NewAuthMiddleware(&fakeLookupClient{}, jwtSecret))

	w := get(router, "Bearer "+mintToken(t, jwtSecret, "acc-1", -time.Minute))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthRejectsWrongSignature(t *testing.T) {
	router := newAuthRouter(t, NewAuthMiddleware(&fakeLookupClient{}, jwtSecret))

	w := get(router, "Bearer "+mintToken(t, "other-secret", "acc-1", time.Hour))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthProviderLookupFallback(t *testing.T) {
	client := &fakeLookupClient{users: map[string]string{"opaque-token": "acc-7"}}
	router := newAuthRouter(t, NewAuthMiddleware(client, ""))

	w := get(router, "Bearer opaque-token")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "acc-7")

	w = get(router, "Bearer unknown")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
