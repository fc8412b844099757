package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type signupRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	CheckedPassword string `json:"checkedPassword"`
	UserName        string `json:"userName"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// signup proxies email/password registration to the auth provider.
func (h *Handler) signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if req.CheckedPassword != "" && req.CheckedPassword != req.Password {
		c.JSON(http.StatusBadRequest, gin.H{"error": "passwords do not match"})
		return
	}

	var metadata map[string]any
	if req.UserName != "" {
		metadata = map[string]any{"userName": req.UserName}
	}

	account, err := h.auth.SignUp(c.Request.Context(), req.Email, req.Password, metadata)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{
		"id":           account.ID,
		"email":        account.Email,
		"access_token": account.AccessToken,
	}})
}

// passwordLogin proxies email/password sign-in to the auth provider.
func (h *Handler) passwordLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	account, err := h.auth.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{
		"id":           account.ID,
		"email":        account.Email,
		"access_token": account.AccessToken,
	}})
}
