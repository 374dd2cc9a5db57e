package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromEnv_Defaults(t *testing.T) {
	os.Clearenv()

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "8001", cfg.Server.Port)
	assert.Equal(t, "", cfg.Provider.APIKey)
	assert.Equal(t, "https://serpapi.com/search.json", cfg.Provider.BaseURL)
	assert.Equal(t, "google", cfg.Provider.Engine)
	assert.Equal(t, "us", cfg.Provider.Country)
	assert.Equal(t, "en", cfg.Provider.Language)
	assert.Equal(t, 20*time.Second, cfg.Provider.Timeout)
	assert.Equal(t, 10, cfg.Search.PageSize)
	assert.Equal(t, 20, cfg.Search.OverFetch)
	assert.Equal(t, "AI artificial intelligence machine learning", cfg.Search.QuerySuffix)
	assert.Equal(t, "memory", cfg.Cache.Type)
	assert.Equal(t, 5*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.RateLimit.TrustProxy)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	tests := []struct {
		name   string
		env    map[string]string
		verify func(t *testing.T, cfg *Config)
	}{
		{
			name: "port",
			env:  map[string]string{"PORT": "3000"},
			verify: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "3000", cfg.Server.Port)
			},
		},
		{
			name: "api key",
			env:  map[string]string{"SERPAPI_KEY": "abc"},
			verify: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "abc", cfg.Provider.APIKey)
			},
		},
		{
			name: "page tuning",
			env:  map[string]string{"SEARCH_PAGE_SIZE": "5", "SEARCH_OVERFETCH": "15"},
			verify: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 5, cfg.Search.PageSize)
				assert.Equal(t, 15, cfg.Search.OverFetch)
			},
		},
		{
			name: "timeouts in seconds",
			env:  map[string]string{"PROVIDER_TIMEOUT": "7", "CACHE_TTL": "60"},
			verify: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 7*time.Second, cfg.Provider.Timeout)
				assert.Equal(t, time.Minute, cfg.Cache.TTL)
			},
		},
		{
			name: "rate limit float",
			env:  map[string]string{"RATE_LIMIT_RPS": "0.5"},
			verify: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 0.5, cfg.RateLimit.RequestsPerSecond)
			},
		},
		{
			name: "trust proxy",
			env:  map[string]string{"RATE_LIMIT_TRUST_PROXY": "true"},
			verify: func(t *testing.T, cfg *Config) {
				assert.True(t, cfg.RateLimit.TrustProxy)
			},
		},
		{
			name: "invalid ints fall back to defaults",
			env:  map[string]string{"SEARCH_PAGE_SIZE": "ten", "REDIS_DB": "x"},
			verify: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 10, cfg.Search.PageSize)
				assert.Equal(t, 0, cfg.Cache.Redis.DB)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Clearenv()
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := LoadFromEnv()
			require.NoError(t, err)
			tt.verify(t, cfg)
		})
	}
}

func validConfig() *Config {
	os.Clearenv()
	cfg, _ := LoadFromEnv()
	return cfg
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"valid defaults", func(c *Config) {}, false},
		{"empty port", func(c *Config) { c.Server.Port = "" }, true},
		{"empty base url", func(c *Config) { c.Provider.BaseURL = "" }, true},
		{"short timeout", func(c *Config) { c.Provider.Timeout = 500 * time.Millisecond }, true},
		{"zero concurrency", func(c *Config) { c.Provider.MaxConcurrent = 0 }, true},
		{"zero page size", func(c *Config) { c.Search.PageSize = 0 }, true},
		{"over-fetch below page size", func(c *Config) { c.Search.OverFetch = 5 }, true},
		{"unknown cache", func(c *Config) { c.Cache.Type = "memcached" }, true},
		{"cache disabled", func(c *Config) { c.Cache.Type = "none" }, false},
		{"redis without address", func(c *Config) { c.Cache.Type = "redis"; c.Cache.Redis.Address = "" }, true},
		{"negative burst", func(c *Config) { c.RateLimit.Burst = -1 }, true},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
