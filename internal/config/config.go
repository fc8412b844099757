package config

import (
	"github.com/caarlos0/env/v11"
)

type Config struct {
	AppPort string `env:"APP_PORT" envDefault:"3001"`
	Env     string `env:"ENV" envDefault:"development"`

	FrontendOrigin string   `env:"FRONTEND_ORIGIN" envDefault:"http://localhost:5173"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`

	LineChannelID     string `env:"LINE_CHANNEL_ID"`
	LineChannelSecret string `env:"LINE_CHANNEL_SECRET"`
	LineRedirectURL   string `env:"LINE_REDIRECT_URL"`
	LineLoginSecret   string `env:"LINE_LOGIN_SECRET"`

	AuthURL       string `env:"AUTH_URL"`
	AuthAPIKey    string `env:"AUTH_API_KEY"`
	AuthJWTSecret string `env:"AUTH_JWT_SECRET"`

	DatabaseDSN string `env:"DATABASE_DSN"`

	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`

	DeepLAPIKey string `env:"DEEPL_API_KEY"`

	UploadDir string `env:"UPLOAD_DIR" envDefault:"./uploads"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}

	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = []string{cfg.FrontendOrigin}
	}

	return cfg, nil
}

// Production reports whether the service runs with production hardening
// (secure cookies, strict CORS).
func (c Config) Production() bool {
	return c.Env == "production"
}
