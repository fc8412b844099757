package handler

import (
	"errors"
	"net/http"

	"github.com/Lee0514/travel-app-backend/internal/auth/bridge"
	"github.com/Lee0514/travel-app-backend/internal/auth/provider/line"
	"github.com/Lee0514/travel-app-backend/internal/logger"
	"github.com/Lee0514/travel-app-backend/internal/session"

	"github.com/gin-gonic/gin"
)

// callback runs the bridging pipeline: code exchange, profile fetch,
// credential derivation, resolve-or-create, profile sync, session
// issuance, redirect. Every step either advances or exits with a tagged
// error; nothing is retried here.
func (h *Handler) callback(c *gin.Context) {
	ctx := c.Request.Context()

	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing authorization code"})
		return
	}

	if !validateState(c) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid state"})
		return
	}

	token, err := h.provider.Exchange(ctx, code)
	if err != nil {
		var exchangeErr *line.ExchangeError
		if errors.As(err, &exchangeErr) && exchangeErr.Body != "" {
			logger.Warn("line token exchange rejected", map[string]any{
				"body": exchangeErr.Body,
			})
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "provider token exchange failed",
				"details": exchangeErr.Body,
			})
			return
		}
		logger.Error("line token exchange failed", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "provider token exchange failed"})
		return
	}

	lineProfile, err := h.provider.FetchProfile(ctx, token)
	if err != nil {
		logger.Error("line profile fetch failed", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "provider profile fetch failed"})
		return
	}

	cred, err := bridge.Derive(lineProfile.UserID, h.cfg.ServerSecret)
	if err != nil {
		logger.Error("credential derivation failed", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login secret not configured"})
		return
	}

	account, err := h.resolver.Resolve(ctx, cred, lineProfile)
	if err != nil {
		logger.Error("account resolution failed", map[string]any{
			"error":        err.Error(),
			"line_user_id": lineProfile.UserID,
		})
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   resolveErrorLabel(err),
			"details": err.Error(),
		})
		return
	}

	if err := h.profiles.Upsert(ctx, account.ID, lineProfile.DisplayName, lineProfile.UserID); err != nil {
		// The account already exists and self-heals on next login, but
		// this request still failed to complete.
		logger.Error("profile sync failed", map[string]any{
			"error":      err.Error(),
			"account_id": account.ID,
		})
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "profile sync failed",
			"details": err.Error(),
		})
		return
	}

	http.SetCookie(c.Writer, session.Issue(account.AccessToken, h.cfg.SecureCookies))

	logger.Info("line login bridged", map[string]any{
		"account_id": account.ID,
	})

	c.Redirect(http.StatusFound, session.Redirect(h.cfg.FrontendOrigin, c.Query("afterLogin")))
}

func resolveErrorLabel(err error) string {
	switch {
	case errors.Is(err, bridge.ErrAccountConflictUnresolved):
		return "account conflict unresolved"
	case errors.Is(err, bridge.ErrNoSessionIssued):
		return "no session issued"
	default:
		return "account resolution failed"
	}
}
