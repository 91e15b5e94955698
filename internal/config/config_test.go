package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("SHOPIFY_STORE_DOMAIN", "")
	t.Setenv("SHOPIFY_ACCESS_TOKEN", "")

	cfg := Load()
	assert.Equal(t, 3000, cfg.Port)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.False(t, cfg.ShopifyConfigured())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("SHOPIFY_STORE_DOMAIN", "techhive")
	t.Setenv("SHOPIFY_ACCESS_TOKEN", "shpat_abc")

	cfg := Load()
	assert.Equal(t, 8081, cfg.Port)
	assert.Equal(t, "techhive", cfg.StoreDomain)
	assert.True(t, cfg.ShopifyConfigured())
}

func TestConfiguredRequiresBothSecrets(t *testing.T) {
	assert.False(t, Config{StoreDomain: "techhive"}.ShopifyConfigured())
	assert.False(t, Config{AccessToken: "shpat_abc"}.ShopifyConfigured())
	assert.True(t, Config{StoreDomain: "techhive", AccessToken: "shpat_abc"}.ShopifyConfigured())
}
