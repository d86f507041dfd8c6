package config

import (
	"github.com/joho/godotenv"
	"log/slog"
	"os"
)

type Config struct {
	ApiURL    string
	Region    string
	Satellite string
	Product   string
	Domain    string
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Warn(".env file not found, using environment variables only")
	}

	config := &Config{
		ApiURL:    getEnv("API_URL", ""),
		Region:    getEnv("REGION", "us-east-1"),
		Satellite: getEnv("SATELLITE", "16"),
		Product:   getEnv("PRODUCT", "ABI-L2-MCMIP"),
		Domain:    getEnv("DOMAIN", "C"),
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
