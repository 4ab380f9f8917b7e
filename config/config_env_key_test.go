package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"secretKey": map[string]any{
			"jwt": "",
		},
		"seller": map[string]any{
			"email": "",
		},
		"auth": map[string]any{
			"tokenTTL": "168h",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "SECRETKEY_JWT", want: "secretKey.jwt"},
		{envKey: "SELLER_EMAIL", want: "seller.email"},
		{envKey: "AUTH_TOKENTTL", want: "auth.tokenTTL"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestConfig_IsProduction(t *testing.T) {
	cfg := &Config{}
	assert.False(t, cfg.IsProduction())

	cfg.Env.Env = "Production"
	assert.True(t, cfg.IsProduction())
}

func TestConfig_TokenTTL(t *testing.T) {
	cfg := &Config{}
	assert.Equal(t, 7*24*time.Hour, cfg.TokenTTL())

	cfg.Auth = &AuthConfig{TokenTTL: time.Hour}
	assert.Equal(t, time.Hour, cfg.TokenTTL())
}

func TestConfig_Validate(t *testing.T) {
	cfg := &Config{}
	cfg.Storage.Driver = StorageDriverMemory
	assert.ErrorContains(t, cfg.validate(), "seller email")

	cfg.Seller.Email = "admin@example.com"
	assert.NoError(t, cfg.validate())

	cfg.Storage.Driver = StorageDriverPostgres
	assert.ErrorContains(t, cfg.validate(), "postgres section is missing")

	cfg.Storage.Driver = "mongo"
	assert.ErrorContains(t, cfg.validate(), "unknown storage driver")
}

func TestConfig_SellerEmail(t *testing.T) {
	cfg := &Config{}
	cfg.Storage.Driver = StorageDriverMemory
	cfg.Seller.Email = "  seller@example.com\t\n"
	assert.Equal(t, "seller@example.com", cfg.SellerEmail())

	cfg.Seller.Email = "   "
	assert.ErrorContains(t, cfg.validate(), "seller email")
}
