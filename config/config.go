package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

var (
	PORT       string
	DB_URL     string
	JWT_SECRET string

	UPLOAD_DIR      string
	UPLOAD_BASE_URL string

	CORS_ORIGIN string

	REDIS_ADDR           string
	STOREFRONT_CACHE_TTL time.Duration

	GOOGLE_CLIENT_ID         string
	GOOGLE_CLIENT_SECRET     string
	GOOGLE_REDIRECT_URL      string
	GOOGLE_FRONTEND_REDIRECT string
)

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		logrus.Info("No .env file found. Using system environment variables.")
	}

	PORT = getEnv("PORT", "8080")
	DB_URL = mustEnv("DB_URL")
	JWT_SECRET = mustEnv("JWT_SECRET")

	UPLOAD_DIR = getEnv("UPLOAD_DIR", "./public/uploads")
	UPLOAD_BASE_URL = getEnv("UPLOAD_BASE_URL", "/uploads")

	CORS_ORIGIN = getEnv("CORS_ORIGIN", "http://localhost:3000")

	// Redis is optional; storefront reads fall back to the database when unset.
	REDIS_ADDR = getEnv("REDIS_ADDR", "")
	STOREFRONT_CACHE_TTL = getDurationEnv("STOREFRONT_CACHE_TTL", 60*time.Second)

	// Google sign-in is optional.
	GOOGLE_CLIENT_ID = getEnv("GOOGLE_CLIENT_ID", "")
	GOOGLE_CLIENT_SECRET = getEnv("GOOGLE_CLIENT_SECRET", "")
	GOOGLE_REDIRECT_URL = getEnv("GOOGLE_REDIRECT_URL", "")
	GOOGLE_FRONTEND_REDIRECT = getEnv("GOOGLE_FRONTEND_REDIRECT", "")
}

func mustEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		logrus.Fatalf("Missing required environment variable: %s", key)
	}
	return v
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		logrus.Warnf("Invalid duration in %s (%q), using default %s", key, value, fallback)
		return fallback
	}
	return d
}
