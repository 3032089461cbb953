package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env         string            `yaml:"env" env:"APP_ENV" env-default:"development"`
	HTTPServer  HTTPServerConfig  `yaml:"http_server"`
	Marketplace MarketplaceConfig `yaml:"marketplace"`
	JWT         JWTConfig         `yaml:"jwt"`
}

type HTTPServerConfig struct {
	Address string `yaml:"address" env:"HTTP_ADDRESS" env-default:":8080"`
}

// MarketplaceConfig holds the storefront parameters: one tax rate, one
// currency code, one countdown refresh cadence. Clients read these from the
// API instead of hardcoding their own copies.
type MarketplaceConfig struct {
	TaxRate          float64       `yaml:"tax_rate" env:"TAX_RATE" env-default:"0.08"`
	CurrencyCode     string        `yaml:"currency_code" env:"CURRENCY_CODE" env-default:"PHP"`
	CountdownRefresh time.Duration `yaml:"countdown_refresh" env:"COUNTDOWN_REFRESH" env-default:"1s"`
}

type JWTConfig struct {
	Secret   string        `yaml:"-" env:"JWT_SECRET" env-default:"dev-secret-change-me"`
	TokenTTL time.Duration `yaml:"token_ttl" env:"TOKEN_TTL" env-default:"24h"`
}

// MustLoad reads configuration from the file named by CONFIG_PATH, falling
// back to environment variables and defaults when no file is configured.
func MustLoad() *Config {
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		return MustLoadByPath(path)
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("can't read config from environment: %v", err)
	}
	return &cfg
}

func MustLoadByPath(configPath string) *Config {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file not found: " + configPath)
	}

	var cfg Config
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("can't read config file %s: %v", configPath, err)
	}
	return &cfg
}
