package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var AppEnv Config

type Config struct {
	MongoURI          string
	DBName            string
	JWTSecret         string
	TokenTTL          time.Duration
	Port              string
	AdminEmail        string
	AdminPassword     string
	AllowedOrigins    []string
	CloudinaryURL     string
	OrderStatusStrict bool
}

func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded:", err)
	}
	AppEnv = Config{
		MongoURI:          getEnvOrDefault("MONGO_URI", "mongodb://localhost:27017"),
		DBName:            getEnvOrDefault("DB_NAME", "rahhalah"),
		JWTSecret:         getEnvOrDefault("JWT_SECRET", ""),
		TokenTTL:          getDurationEnv("TOKEN_TTL_DAYS", 7, 24*time.Hour),
		Port:              getEnvOrDefault("PORT", "3000"),
		AdminEmail:        getEnvOrDefault("ADMIN_EMAIL", ""),
		AdminPassword:     getEnvOrDefault("ADMIN_PASSWORD", ""),
		AllowedOrigins:    splitEnv("ALLOWED_ORIGINS", "http://localhost:5173"),
		CloudinaryURL:     getEnvOrDefault("CLOUDINARY_URL", ""),
		OrderStatusStrict: getBoolEnv("ORDER_STATUS_STRICT", true),
	}
	if AppEnv.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue int, unit time.Duration) time.Duration {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
			return time.Duration(parsed) * unit
		}
	}
	return time.Duration(defaultValue) * unit
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func splitEnv(key, defaultValue string) []string {
	raw := getEnvOrDefault(key, defaultValue)
	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}
