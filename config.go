package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const devSecretFallback = "dev-insecure-secret-change"

// Config holds everything read from the environment, once, at startup.
type Config struct {
	Port         string
	DSN          string
	JWTSecret    string
	ClientOrigin string
	AutoMigrate  bool
}

// loadConfig reads the process environment, auto-loading ./.env first.
// Variables already set in the environment always win over the file.
func loadConfig(log *slog.Logger) Config {
	_ = godotenv.Load()

	cfg := Config{
		Port:         getenv("PORT", "8081"),
		DSN:          os.Getenv("DB_DSN"),
		JWTSecret:    getenv("JWT_SECRET", devSecretFallback),
		ClientOrigin: getenv("CLIENT_ORIGIN", "*"),
		AutoMigrate:  true,
	}
	switch strings.ToLower(os.Getenv("DB_AUTO_MIGRATE")) {
	case "false", "0", "no":
		cfg.AutoMigrate = false
	}
	if cfg.JWTSecret == devSecretFallback {
		log.Warn("JWT_SECRET not set, using development fallback")
	}
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
