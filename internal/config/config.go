package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ListenAddr  string
	DatabaseURL string

	JWTSecret   string
	JWTIssuer   string
	JWTAudience string

	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
}

// Load reads configuration from the environment, with .env as a fallback for
// local development. Missing JWT settings are a hard error: a server that
// cannot sign or verify tokens must not start.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		ListenAddr:      getString("LISTEN_ADDR", "0.0.0.0:8080"),
		DatabaseURL:     getString("DATABASE_URL", ""),
		JWTSecret:       getString("JWT_SECRET", ""),
		JWTIssuer:       getString("JWT_ISSUER", ""),
		JWTAudience:     getString("JWT_AUDIENCE", ""),
		AccessTokenTTL:  time.Duration(getInt("ACCESS_TOKEN_TTL_MINUTES", 60)) * time.Minute,
		RefreshTokenTTL: time.Duration(getInt("REFRESH_TOKEN_TTL_DAYS", 7)) * 24 * time.Hour,
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("missing required environment variable: DATABASE_URL")
	}
	for name, value := range map[string]string{
		"JWT_SECRET":   cfg.JWTSecret,
		"JWT_ISSUER":   cfg.JWTIssuer,
		"JWT_AUDIENCE": cfg.JWTAudience,
	} {
		if value == "" {
			return nil, fmt.Errorf("missing required environment variable: %s", name)
		}
	}

	return cfg, nil
}

func getString(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return fallback
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return fallback
	}
	return value
}
