package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all environment-derived settings. It is read once at process
// start and treated as immutable afterwards. Store credentials are allowed to
// be absent: their absence is reported per request, not at startup.
type Config struct {
	Env           string
	HTTPAddr      string
	StoreID       string
	APIToken      string
	APIBase       string
	AllowedOrigin string
	WebhookSecret string
}

// Load reads configuration from the environment (and .env, if present).
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Env:           getEnv("APP_ENV", "development"),
		HTTPAddr:      getEnv("HTTP_ADDR", ":8080"),
		StoreID:       strings.TrimSpace(getEnv("ECWID_STORE_ID", "")),
		APIToken:      strings.TrimSpace(getEnv("ECWID_TOKEN", "")),
		APIBase:       strings.TrimRight(getEnv("ECWID_API_BASE", "https://app.ecwid.com/api/v3"), "/"),
		AllowedOrigin: getEnv("ALLOWED_ORIGIN", ""),
		WebhookSecret: getEnv("ECWID_WEBHOOK_SECRET", ""),
	}

	return cfg, nil
}

// StoreConfigured reports whether the remote catalog credentials are present.
func (c *Config) StoreConfigured() bool {
	return c.StoreID != "" && c.APIToken != ""
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}
