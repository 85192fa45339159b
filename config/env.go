package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv             string
	Port               string
	APIBaseURL         string
	PaymentProviderURL string
	PaymentCurrency    string
	AssistantBaseURL   string
	AssistantAPIKey    string
	AssistantModel     string
	JWTSecret          string
	StorageDir         string
	CartBackend        string
	CatalogCacheTTL    time.Duration
	HTTPTimeout        time.Duration
}

var AppConfig *Config

func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	cacheTTL, err := time.ParseDuration(getEnv("CATALOG_CACHE_TTL", "5m"))
	if err != nil {
		cacheTTL = 5 * time.Minute
	}

	httpTimeout, err := time.ParseDuration(getEnv("HTTP_TIMEOUT", "30s"))
	if err != nil {
		httpTimeout = 30 * time.Second
	}

	AppConfig = &Config{
		AppEnv:             getEnv("APP_ENV", "development"),
		Port:               getEnv("APP_PORT", getEnv("PORT", "8082")),
		APIBaseURL:         getEnv("API_BASE_URL", "http://localhost:5000"),
		PaymentProviderURL: getEnv("PAYMENT_PROVIDER_URL", "http://localhost:4242/v1/payment_intents/confirm"),
		PaymentCurrency:    getEnv("PAYMENT_CURRENCY", "usd"),
		AssistantBaseURL:   getEnv("ASSISTANT_BASE_URL", "https://generativelanguage.googleapis.com"),
		AssistantAPIKey:    getEnv("ASSISTANT_API_KEY", ""),
		AssistantModel:     getEnv("ASSISTANT_MODEL", "gemini-2.5-flash"),
		JWTSecret:          getEnv("JWT_SECRET", "secret"),
		StorageDir:         getEnv("STORAGE_DIR", "./data"),
		CartBackend:        getEnv("CART_BACKEND", "file"),
		CatalogCacheTTL:    cacheTTL,
		HTTPTimeout:        httpTimeout,
	}

	log.Println("Configuration loaded successfully")
	log.Printf("Environment: %s", AppConfig.AppEnv)
	log.Printf("Server will run on port: %s", AppConfig.Port)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
