package config

import (
	"fmt"
	"os"
	"strings"
)

const (
	defaultPort        = "5000"
	defaultFrontendURL = "http://localhost:3000"
	defaultDatabaseDSN = "staybook.db"
)

type Config struct {
	Port        string
	DatabaseDSN string
	FrontendURL string

	OAuth OAuthConfig
}

// OAuthConfig holds the Microsoft identity platform settings for the
// login redirect and the authorization-code exchange.
type OAuthConfig struct {
	ClientID     string
	ClientSecret string
	TenantID     string
	RedirectURI  string
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:        getEnv("PORT", defaultPort),
		DatabaseDSN: getEnv("DATABASE_URL", defaultDatabaseDSN),
		FrontendURL: getEnv("FRONTEND_URL", defaultFrontendURL),
		OAuth: OAuthConfig{
			ClientID:     strings.TrimSpace(os.Getenv("CLIENT_ID")),
			ClientSecret: strings.TrimSpace(os.Getenv("CLIENT_SECRET")),
			TenantID:     strings.TrimSpace(os.Getenv("TENANT_ID")),
			RedirectURI:  strings.TrimSpace(os.Getenv("REDIRECT_URI")),
		},
	}

	if cfg.DatabaseDSN == "" {
		return nil, fmt.Errorf("config: DATABASE_URL is empty")
	}

	return cfg, nil
}

// OAuthEnabled reports whether the login flow can be mounted. The API
// itself never requires it; the identity provider is optional glue.
func (c *Config) OAuthEnabled() bool {
	o := c.OAuth
	return o.ClientID != "" && o.ClientSecret != "" && o.TenantID != "" && o.RedirectURI != ""
}

func getEnv(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}
