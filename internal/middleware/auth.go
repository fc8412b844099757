package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Lee0514/travel-app-backend/internal/auth/accounts"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const userIDKey = "userID"

// UserID returns the authenticated account id set by RequireAuth.
func UserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}

type AuthMiddleware struct {
	auth      accounts.Client
	jwtSecret []byte
}

// NewAuthMiddleware verifies bearer tokens issued by the auth provider.
// With a shared JWT secret tokens are verified locally; without one,
// every request is resolved through the provider's user lookup, which is
// what the original deployment did.
func NewAuthMiddleware(auth accounts.Client, jwtSecret string) *AuthMiddleware {
	var secret []byte
	if jwtSecret != "" {
		secret = []byte(jwtSecret)
	}
	return &AuthMiddleware{auth: auth, jwtSecret: secret}
}

func (a *AuthMiddleware) RequireAuth(c *gin.Context) {
	token := bearerToken(c.GetHeader("Authorization"))
	if token == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No token provided"})
		return
	}

	userID, err := a.resolve(c, token)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		return
	}

	c.Set(userIDKey, userID)
	c.Next()
}

func (a *AuthMiddleware) resolve(c *gin.Context, token string) (string, error) {
	if a.jwtSecret != nil {
		return a.verifyLocal(token)
	}

	user, err := a.auth.GetUser(c.Request.Context(), token)
	if err != nil {
		return "", err
	}
	return user.ID, nil
}

func (a *AuthMiddleware) verifyLocal(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return a.jwtSecret, nil
	})
	if err != nil {
		return "", err
	}
	if !token.Valid || claims.Subject == "" {
		return "", errors.New("invalid token")
	}

	return claims.Subject, nil
}

func bearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
