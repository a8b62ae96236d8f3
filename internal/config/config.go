package config

import (
	"log"
	"os"
	"strings"
	"time"
)

// Config holds runtime configuration shared across the application.
type Config struct {
	Addr                  string
	MongoURI              string
	MongoDatabase         string
	ApplicationCollection string
	UploadDir             string
	Timeout               time.Duration
	Timezone              string
	ServerLog             *log.Logger
	AllowedOrigins        []string
	APIBaseURL            string
}

// Load reads environment variables and returns a fully populated Config.
func Load() Config {
	timeout := 10 * time.Second
	if v := os.Getenv("MONGO_CONNECT_TIMEOUT"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			timeout = parsed
		}
	}

	allowedOrigins := parseList("API_ALLOWED_ORIGINS", []string{"*"})

	cfg := Config{
		Addr:                  envOrDefault("HTTP_ADDR", ":8080"),
		MongoURI:              envOrDefault("MONGO_URI", "mongodb://mongo:27017"),
		MongoDatabase:         envOrDefault("MONGO_DB", "hireline"),
		ApplicationCollection: envOrDefault("APPLICATION_COLLECTION", "applications"),
		UploadDir:             envOrDefault("UPLOAD_DIR", "uploads"),
		Timeout:               timeout,
		Timezone:              envOrDefault("TIMEZONE", "Asia/Kolkata"),
		ServerLog:             log.New(os.Stdout, "[hireline-api] ", log.LstdFlags|log.Lshortfile),
		AllowedOrigins:        allowedOrigins,
		APIBaseURL:            envOrDefault("API_BASE_URL", "http://localhost:8080"),
	}

	cfg.ServerLog.Printf("loaded config: addr=%q db=%q collection=%q uploadDir=%q",
		cfg.Addr, cfg.MongoDatabase, cfg.ApplicationCollection, cfg.UploadDir)

	return cfg
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseList(key string, fallback []string) []string {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}

	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			values = append(values, part)
		}
	}

	if len(values) == 0 {
		return fallback
	}
	return values
}
