// Package config provides runtime configuration for the service.
package config

import (
	"time"

	"github.com/spf13/viper"
)

// APIVersion is the Shopify Admin REST API version every request is pinned to.
const APIVersion = "2024-01"

// Config holds the knobs read from the process environment.
type Config struct {
	Port            int
	StoreDomain     string
	AccessToken     string
	AdminJWTSecret  string
	Debug           bool
	ShutdownTimeout time.Duration
}

// Load collects configuration from environment variables with defaults.
func Load() Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("PORT", 3000)
	v.SetDefault("SHUTDOWN_TIMEOUT_SECONDS", 10)

	return Config{
		Port:            v.GetInt("PORT"),
		StoreDomain:     v.GetString("SHOPIFY_STORE_DOMAIN"),
		AccessToken:     v.GetString("SHOPIFY_ACCESS_TOKEN"),
		AdminJWTSecret:  v.GetString("ADMIN_JWT_SECRET"),
		Debug:           v.GetBool("DEBUG"),
		ShutdownTimeout: time.Duration(v.GetInt("SHUTDOWN_TIMEOUT_SECONDS")) * time.Second,
	}
}

// ShopifyConfigured reports whether both store secrets are present.
func (c Config) ShopifyConfigured() bool {
	return c.StoreDomain != "" && c.AccessToken != ""
}
