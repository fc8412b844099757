package app

import (
	"context"
	"time"

	"github.com/Lee0514/travel-app-backend/internal/auth/accounts"
	"github.com/Lee0514/travel-app-backend/internal/auth/bridge"
	"github.com/Lee0514/travel-app-backend/internal/auth/handler"
	"github.com/Lee0514/travel-app-backend/internal/auth/provider/line"
	"github.com/Lee0514/travel-app-backend/internal/config"
	"github.com/Lee0514/travel-app-backend/internal/favorites"
	"github.com/Lee0514/travel-app-backend/internal/middleware"
	"github.com/Lee0514/travel-app-backend/internal/phrases"
	"github.com/Lee0514/travel-app-backend/internal/profile"
	"github.com/Lee0514/travel-app-backend/internal/translate"
	"github.com/Lee0514/travel-app-backend/internal/trips"
	"github.com/Lee0514/travel-app-backend/internal/upload"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func setupHTTP(ctx context.Context, cfg config.Config) (*gin.Engine, func() error, error) {

	infra, err := setupInfra(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	// ----------------------------
	// Dependencies
	// ----------------------------

	authClient := accounts.NewSupabaseClient(cfg.AuthURL, cfg.AuthAPIKey)

	lineProvider, err := line.New(
		cfg.LineChannelID,
		cfg.LineChannelSecret,
		cfg.LineRedirectURL,
	)
	if err != nil {
		return nil, nil, err
	}

	profileStore := profile.NewPostgresStore(infra.DB)

	authHandler := handler.NewHandler(
		lineProvider,
		bridge.NewResolver(authClient),
		profileStore,
		authClient,
		handler.Config{
			FrontendOrigin: cfg.FrontendOrigin,
			ServerSecret:   cfg.LineLoginSecret,
			SecureCookies:  cfg.Production(),
		},
	)

	authMiddleware := middleware.NewAuthMiddleware(authClient, cfg.AuthJWTSecret)

	var translateCache *translate.Cache
	if infra.Redis != nil {
		translateCache = translate.NewCache(infra.Redis)
	}

	uploadHandler, err := upload.NewHandler(cfg.UploadDir)
	if err != nil {
		return nil, nil, err
	}

	// ----------------------------
	// Router
	// ----------------------------

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID)

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// ----------------------------
	// Public Routes
	// ----------------------------

	authHandler.RegisterRoutes(router)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"version":   "1.0.0",
		})
	})

	api := router.Group("/api")

	favorites.NewHandler(favorites.NewStore(infra.DB)).RegisterRoutes(api)
	phrases.NewHandler().RegisterRoutes(api)
	translate.NewHandler(translate.NewClient(cfg.DeepLAPIKey), translateCache).RegisterRoutes(api)

	// ----------------------------
	// Protected API Routes
	// ----------------------------

	protected := api.Group("")
	protected.Use(authMiddleware.RequireAuth)

	trips.NewHandler(trips.NewStore(infra.DB)).RegisterRoutes(protected)
	uploadHandler.RegisterRoutes(protected)

	// ----------------------------
	// Cleanup
	// ----------------------------

	return router, func() error {
		if infra.Redis != nil {
			_ = infra.Redis.Close()
		}
		return infra.DB.Close()
	}, nil
}
