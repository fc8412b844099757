package translate

import (
	"errors"
	"net/http"

	"github.com/Lee0514/travel-app-backend/internal/logger"
	"github.com/Lee0514/travel-app-backend/internal/phrases"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	client *Client
	cache  *Cache
}

// NewHandler builds the translation proxy. cache may be nil when redis is
// not configured.
func NewHandler(client *Client, cache *Cache) *Handler {
	return &Handler{client: client, cache: cache}
}

func (h *Handler) RegisterRoutes(r gin.IRoutes) {
	r.POST("/translate", h.translate)
}

type translateRequest struct {
	Text       string `json:"text"`
	SourceLang string `json:"sourceLang"`
	TargetLang string `json:"targetLang"`
}

func (h *Handler) translate(c *gin.Context) {
	var req translateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if req.Text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Text is required"})
		return
	}

	source := phrases.NormalizeLangCode(req.SourceLang)
	target := phrases.NormalizeLangCode(req.TargetLang)

	if cached, ok := h.cache.Get(c.Request.Context(), req.Text, source, target); ok {
		c.Data(http.StatusOK, "application/json", cached)
		return
	}

	result, err := h.client.Translate(c.Request.Context(), req.Text, source, target)
	if err != nil {
		var upstream *UpstreamError
		if errors.As(err, &upstream) {
			c.Data(upstream.StatusCode, "application/json", upstream.Body)
			return
		}

		logger.Error("translation failed", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Translation failed"})
		return
	}

	h.cache.Set(c.Request.Context(), req.Text, source, target, result)

	c.Data(http.StatusOK, "application/json", result)
}
