package handler

import (
	"context"
	"net/http"

	"github.com/Lee0514/travel-app-backend/internal/auth/accounts"
	"github.com/Lee0514/travel-app-backend/internal/auth/bridge"
	"github.com/Lee0514/travel-app-backend/internal/auth/provider/line"
	"github.com/Lee0514/travel-app-backend/internal/profile"

	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"
)

// LineProvider is the edge to the external identity provider.
type LineProvider interface {
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (*oauth2.Token, error)
	FetchProfile(ctx context.Context, token *oauth2.Token) (*line.Profile, error)
}

// AccountResolver signs a bridged identity into the backend auth store.
type AccountResolver interface {
	Resolve(ctx context.Context, cred bridge.Credential, p *line.Profile) (*accounts.Account, error)
}

type Config struct {
	FrontendOrigin string
	ServerSecret   string
	SecureCookies  bool
}

type Handler struct {
	provider LineProvider
	resolver AccountResolver
	profiles profile.Store
	auth     accounts.Client
	cfg      Config
}

func NewHandler(
	provider LineProvider,
	resolver AccountResolver,
	profiles profile.Store,
	auth accounts.Client,
	cfg Config,
) *Handler {
	return &Handler{
		provider: provider,
		resolver: resolver,
		profiles: profiles,
		auth:     auth,
		cfg:      cfg,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/auth/line/login", h.login)
	r.GET("/auth/line/callback", h.callback)

	r.POST("/api/auth/signup", h.signup)
	r.POST("/api/auth/login", h.passwordLogin)
}

func (h *Handler) login(c *gin.Context) {
	state := generateState(c)
	c.Redirect(http.StatusFound, h.provider.AuthCodeURL(state))
}
