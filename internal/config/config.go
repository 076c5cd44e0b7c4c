package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	MongoURI     string
	MongoDB      string
	Port         string
	JWTSecret    string
	TokenTTL     time.Duration
	ClientOrigin string
}

func Load() *Config {
	godotenv.Load()

	return &Config{
		MongoURI:     getEnv("MONGO_URI", "mongodb://127.0.0.1:27017"),
		MongoDB:      getEnv("MONGO_DB", "ecommerce"),
		Port:         getEnv("PORT", "3000"),
		JWTSecret:    getEnv("SECRET_KEY", "SECRET"),
		TokenTTL:     getEnvDuration("TOKEN_TTL", time.Hour),
		ClientOrigin: getEnv("CLIENT_ORIGIN", "http://localhost:5173"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
