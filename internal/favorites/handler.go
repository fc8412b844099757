package favorites

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

func (h *Handler) RegisterRoutes(r gin.IRoutes) {
	r.GET("/favorites/:userId", h.list)
	r.POST("/favorites", h.add)
}

func (h *Handler) list(c *gin.Context) {
	favorites, err := h.store.ListByUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if favorites == nil {
		favorites = []Favorite{}
	}
	c.JSON(http.StatusOK, favorites)
}

type addRequest struct {
	UserID  string `json:"user_id" binding:"required"`
	PlaceID string `json:"place_id" binding:"required"`
}

func (h *Handler) add(c *gin.Context) {
	var req addRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing user_id or place_id"})
		return
	}

	if err := h.store.Add(c.Request.Context(), req.UserID, req.PlaceID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "saved"})
}
