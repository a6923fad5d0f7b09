package config

import (
	"log"
	"os"
	"strconv"
)

type Config struct {
	DatabaseURL   string
	JWTSecret     string
	EncryptionKey string
	AdminCode     string
	Port          string
	Environment   string
	// IncomeCeiling is the bursary eligibility cutoff on annual net
	// family income. Institution policy, not code.
	IncomeCeiling float64
}

func Load() *Config {
	return &Config{
		DatabaseURL:   getEnv("DATABASE_URL", "bursary.db"),
		JWTSecret:     getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		EncryptionKey: getEnv("ENCRYPTION_KEY", "BursaryGo2025SecureKey1234567890"),
		AdminCode:     getEnv("ADMIN_CODE", "BURSARY_ADMIN_2025"),
		Port:          getEnv("PORT", "8080"),
		Environment:   getEnv("ENVIRONMENT", "development"),
		IncomeCeiling: getEnvFloat("BURSARY_INCOME_CEILING", 200000),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		log.Printf("WARNING: %s is not numeric (%q), using default %v", key, value, defaultValue)
		return defaultValue
	}
	return f
}

func ValidateConfig(cfg *Config) {
	if len(cfg.EncryptionKey) != 32 {
		log.Fatalf("ENCRYPTION_KEY must be exactly 32 characters, got %d", len(cfg.EncryptionKey))
	}
	if len(cfg.JWTSecret) < 32 {
		log.Printf("WARNING: JWT_SECRET should be at least 32 characters for security")
	}
	if cfg.IncomeCeiling <= 0 {
		log.Fatalf("BURSARY_INCOME_CEILING must be positive, got %v", cfg.IncomeCeiling)
	}
	if cfg.Environment == "production" && cfg.AdminCode == "BURSARY_ADMIN_2025" {
		log.Printf("WARNING: Change ADMIN_CODE in production environment")
	}
}
