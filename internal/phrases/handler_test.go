package phrases

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeLangCode(t *testing.T) {
	cases := map[string]string{
		"":      "EN",
		"zh-TW": "ZH",
		"zh-cn": "ZH",
		"fr-FR": "FR",
		"ja":    "JA",
		"en":    "EN",
	}

	for in, want := range cases {
		assert.Equal(t, want, NormalizeLangCode(in), "input %q", in)
	}
}

func phrasesFor(t *testing.T, query string) map[string]string {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	api := router.Group("/api")
	NewHandler().RegisterRoutes(api)

	req := httptest.NewRequest(http.MethodGet, "/api/phrases"+query, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var out map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestListNormalizesRegionalVariants(t *testing.T) {
	out := phrasesFor(t, "?lang=zh-TW")
	assert.Equal(t, "謝謝", out["thankYou"])
}

func TestListDefaultsToEnglish(t *testing.T) {
	out := phrasesFor(t, "")
	assert.Equal(t, "Thank you", out["thankYou"])
}

func TestListUnknownLanguageIsEmpty(t *testing.T) {
	out := phrasesFor(t, "?lang=xx")
	assert.Empty(t, out)
}
