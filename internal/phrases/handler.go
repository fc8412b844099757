package phrases

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// NormalizeLangCode collapses regional variants onto the codes the
// dictionaries (and DeepL) use.
func NormalizeLangCode(lang string) string {
	if lang == "" {
		return "EN"
	}
	switch strings.ToLower(lang) {
	case "zh-tw", "zh-cn":
		return "ZH"
	case "fr-fr":
		return "FR"
	}
	return strings.ToUpper(lang)
}

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) RegisterRoutes(r gin.IRoutes) {
	r.GET("/phrases", h.list)
}

func (h *Handler) list(c *gin.Context) {
	lang := strings.ToLower(NormalizeLangCode(c.Query("lang")))

	dict, ok := dictionaries[lang]
	if !ok {
		dict = map[string]string{}
	}

	c.JSON(http.StatusOK, dict)
}
