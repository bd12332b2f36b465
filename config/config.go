package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/chakula-app/chakula-client/pricing"
)

type Config struct {
	BaseURL           string
	RequestTimeout    time.Duration
	TaxRate           float64
	DeliveryFee       float64
	Currency          string
	PaystackPublicKey string
}

// Load reads configuration from the environment, optionally seeded from a
// .env file in the working directory.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return Config{
		BaseURL:           getEnv("API_BASE_URL", "http://localhost:8000"),
		RequestTimeout:    time.Duration(getEnvInt("REQUEST_TIMEOUT_SECONDS", 30)) * time.Second,
		TaxRate:           getEnvFloat("TAX_RATE", pricing.DefaultTaxRate),
		DeliveryFee:       getEnvFloat("DELIVERY_FEE", pricing.DeliveryFee),
		Currency:          getEnv("CURRENCY", "KES"),
		PaystackPublicKey: os.Getenv("PAYSTACK_PUBLIC_KEY"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("Invalid %s=%q, using default", key, v)
		return fallback
	}
	return n
}

func getEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("Invalid %s=%q, using default", key, v)
		return fallback
	}
	return f
}
