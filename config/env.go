package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv        string
	Port          string
	OriginURL     string
	SessionSecret string
	SessionExpiry string
	GeminiAPIKey  string
	GeminiModel   string
	GeminiTimeout time.Duration
	ToastDuration time.Duration
}

var AppConfig *Config

func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	toastMs, _ := strconv.Atoi(os.Getenv("TOAST_DURATION_MS"))
	if toastMs == 0 {
		toastMs = 3000
	}

	timeoutSec, _ := strconv.Atoi(os.Getenv("GEMINI_TIMEOUT"))
	if timeoutSec == 0 {
		timeoutSec = 30
	}

	AppConfig = &Config{
		AppEnv:        getEnv("APP_ENV", "development"),
		Port:          getEnv("APP_PORT", getEnv("PORT", "8082")),
		OriginURL:     os.Getenv("ORIGIN_URL"),
		SessionSecret: getEnv("SESSION_SECRET", "secret"),
		SessionExpiry: getEnv("SESSION_EXPIRY", "24h"),
		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		GeminiModel:   getEnv("GEMINI_MODEL", "gemini-3-flash-preview"),
		GeminiTimeout: time.Duration(timeoutSec) * time.Second,
		ToastDuration: time.Duration(toastMs) * time.Millisecond,
	}

	log.Println("Configuration loaded successfully")
	log.Printf("Environment: %s", AppConfig.AppEnv)
	log.Printf("Server will run on port: %s", AppConfig.Port)
	if AppConfig.GeminiAPIKey == "" {
		log.Println("GEMINI_API_KEY not set, AI assistant will run in offline mode")
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
