package config

import (
	"os"
	"strconv"
	"time"
)

// Config carries everything the process reads from the environment.
// cmd/main loads .env via godotenv before calling Load.
type Config struct {
	Addr          string
	DatabaseDSN   string
	RedisAddr     string
	RedisPassword string
	JWTSecret     string
	UploadDir     string
	SessionTTL    time.Duration

	// Seed admin, created once if no admin exists.
	AdminName     string
	AdminEmail    string
	AdminPassword string
}

func Load() Config {
	sessionHours := 72
	if v := os.Getenv("SESSION_TTL_HOURS"); v != "" {
		if h, err := strconv.Atoi(v); err == nil && h > 0 {
			sessionHours = h
		}
	}

	return Config{
		Addr:          getenv("APP_ADDR", ":8080"),
		DatabaseDSN:   getenv("DATABASE_DSN", "host=localhost user=user password=password dbname=roomchha port=5432 sslmode=disable"),
		RedisAddr:     getenv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		UploadDir:     getenv("UPLOAD_DIR", "static/uploads"),
		SessionTTL:    time.Duration(sessionHours) * time.Hour,
		AdminName:     getenv("ADMIN_NAME", "Admin"),
		AdminEmail:    getenv("ADMIN_EMAIL", "admin@roomchha.com"),
		AdminPassword: getenv("ADMIN_PASSWORD", "admin123"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
