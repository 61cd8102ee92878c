package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config holds every setting of the service. Values come from the
// environment, optionally seeded from a .env file.
type Config struct {
	ServerPort int    `env:"SERVER_PORT" env-default:"8080"`
	LogLevel   string `env:"LOG_LEVEL" env-default:"info"`

	DatabaseURL string `env:"DATABASE_URL" env-required:"true"`

	BackendAPIURL     string        `env:"BACKEND_API_URL" env-required:"true"`
	BackendAPITimeout time.Duration `env:"BACKEND_API_TIMEOUT" env-default:"10s"`

	SessionSecret string        `env:"SESSION_SECRET" env-required:"true"`
	SessionTTL    time.Duration `env:"SESSION_TTL" env-default:"12h"`
	SecureCookies bool          `env:"SECURE_COOKIES" env-default:"false"`

	IDP IdentityProvider

	R2 R2

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" env-separator:"," env-default:"*"`

	ViewerHeartbeatInterval time.Duration `env:"VIEWER_HEARTBEAT_INTERVAL" env-default:"15s"`

	PublicBaseURL string `env:"PUBLIC_BASE_URL" env-default:"/"`
}

type IdentityProvider struct {
	ClientID     string   `env:"IDP_CLIENT_ID"`
	ClientSecret string   `env:"IDP_CLIENT_SECRET"`
	AuthorizeURL string   `env:"IDP_AUTHORIZE_URL"`
	TokenURL     string   `env:"IDP_TOKEN_URL"`
	UserInfoURL  string   `env:"IDP_USERINFO_URL"`
	RedirectURL  string   `env:"IDP_REDIRECT_URL"`
	Scopes       []string `env:"IDP_SCOPES" env-separator:"," env-default:"openid,email,profile"`
}

type R2 struct {
	AccountID       string `env:"R2_ACCOUNT_ID"`
	AccessKeyID     string `env:"R2_ACCESS_KEY_ID"`
	SecretAccessKey string `env:"R2_SECRET_ACCESS_KEY"`
	BucketName      string `env:"R2_BUCKET_NAME"`
	PublicBaseURL   string `env:"R2_PUBLIC_BASE_URL"`
	Endpoint        string `env:"R2_ENDPOINT"`
}

func Load() (*Config, error) {
	// A missing .env file is fine; the environment may be set directly.
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	var errs []error
	if c.ServerPort <= 0 || c.ServerPort > 65535 {
		errs = append(errs, fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", c.ServerPort))
	}
	if strings.TrimSpace(c.DatabaseURL) == "" {
		errs = append(errs, errors.New("DATABASE_URL is required"))
	}
	if strings.TrimSpace(c.BackendAPIURL) == "" {
		errs = append(errs, errors.New("BACKEND_API_URL is required"))
	}
	if _, err := c.SlogLevel(); err != nil {
		errs = append(errs, err)
	}
	if c.BackendAPITimeout <= 0 {
		errs = append(errs, errors.New("BACKEND_API_TIMEOUT must be positive"))
	}
	if len(c.SessionSecret) < 16 {
		errs = append(errs, errors.New("SESSION_SECRET must be at least 16 characters"))
	}
	if c.SessionTTL <= 0 {
		errs = append(errs, errors.New("SESSION_TTL must be positive"))
	}
	if c.ViewerHeartbeatInterval <= 0 {
		errs = append(errs, errors.New("VIEWER_HEARTBEAT_INTERVAL must be positive"))
	}
	return errors.Join(errs...)
}

func (c *Config) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error; got %q", c.LogLevel)
	}
}

// AuthEnabled reports whether identity provider sign-in is configured.
func (c *Config) AuthEnabled() bool {
	return c.IDP.ClientID != "" && c.IDP.AuthorizeURL != "" && c.IDP.TokenURL != "" && c.IDP.UserInfoURL != ""
}
