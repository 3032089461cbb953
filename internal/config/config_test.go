package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMustLoad_Defaults(t *testing.T) {
	cfg := MustLoad()

	require.Equal(t, "development", cfg.Env)
	require.Equal(t, ":8080", cfg.HTTPServer.Address)
	require.Equal(t, 0.08, cfg.Marketplace.TaxRate)
	require.Equal(t, "PHP", cfg.Marketplace.CurrencyCode)
	require.Equal(t, time.Second, cfg.Marketplace.CountdownRefresh)
	require.Equal(t, 24*time.Hour, cfg.JWT.TokenTTL)
}

func TestMustLoadByPath(t *testing.T) {
	content := []byte(`env: production
http_server:
  address: ":9090"
marketplace:
  tax_rate: 0.13
  currency_code: USD
  countdown_refresh: 60s
jwt:
  token_ttl: 1h
`)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, content, 0o644))

	cfg := MustLoadByPath(path)

	require.Equal(t, "production", cfg.Env)
	require.Equal(t, ":9090", cfg.HTTPServer.Address)
	require.Equal(t, 0.13, cfg.Marketplace.TaxRate)
	require.Equal(t, "USD", cfg.Marketplace.CurrencyCode)
	require.Equal(t, time.Minute, cfg.Marketplace.CountdownRefresh)
	require.Equal(t, time.Hour, cfg.JWT.TokenTTL)
}

func TestMustLoadByPath_MissingFile(t *testing.T) {
	require.Panics(t, func() {
		MustLoadByPath(filepath.Join(t.TempDir(), "nope.yaml"))
	})
}
