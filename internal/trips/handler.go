package trips

import (
	"net/http"

	"github.com/Lee0514/travel-app-backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

func (h *Handler) RegisterRoutes(r gin.IRoutes) {
	r.GET("/upcoming", h.list)
	r.POST("/upcoming", h.add)
	r.DELETE("/upcoming/:id", h.remove)
}

func (h *Handler) list(c *gin.Context) {
	events, err := h.store.ListByUser(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, events)
}

type addRequest struct {
	Title string `json:"title"`
	Note  string `json:"note"`
	Date  string `json:"date"`
}

func (h *Handler) add(c *gin.Context) {
	var req addRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if req.Title == "" || req.Date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing title or date"})
		return
	}

	event, err := h.store.Add(c.Request.Context(), middleware.UserID(c), req.Title, req.Note, req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, []any{event})
}

func (h *Handler) remove(c *gin.Context) {
	err := h.store.Delete(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
