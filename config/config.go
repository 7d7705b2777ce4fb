package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	TelegramToken string

	OCRBackend        string
	VisionCredentials string
	VisionAPIKey      string
	VisionEndpoint    string
	OCRTimeout        time.Duration
	TesseractLanguage string

	UploadDir   string
	OutputDir   string
	DatabaseURL string
	LogLevel    string
}

func Load() (*Config, error) {
	// Загружаем .env файл (игнорируем ошибку если файла нет)
	_ = godotenv.Load()

	timeout, err := time.ParseDuration(getEnv("OCR_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("OCR_TIMEOUT: %w", err)
	}

	cfg := &Config{
		TelegramToken: os.Getenv("TELEGRAM_TOKEN"),

		OCRBackend:        strings.ToLower(getEnv("OCR_BACKEND", "vision")),
		VisionCredentials: os.Getenv("GOOGLE_VISION_CREDENTIALS"),
		VisionAPIKey:      os.Getenv("GOOGLE_VISION_API_KEY"),
		VisionEndpoint:    os.Getenv("GOOGLE_VISION_ENDPOINT"),
		OCRTimeout:        timeout,
		TesseractLanguage: getEnv("TESSERACT_LANGUAGE", "eng"),

		UploadDir:   getEnv("UPLOAD_DIR", "uploads"),
		OutputDir:   getEnv("OUTPUT_DIR", "output"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
	}

	return cfg, nil
}

func getEnv(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}
