package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTP_ADDR        string
	DB_PATH          string
	CART_BACKUP_PATH string
	ADMIN_USERNAME   string
	ADMIN_PASSWORD   string
	SESSION_SECRET   string
	LOG_LEVEL        string
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Notice: .env file not found: %v. Using system environment variables", err)
	}

	config := &Config{
		HTTP_ADDR:        getenv("HTTP_ADDR", ":8080"),
		DB_PATH:          getenv("DB_PATH", "foodexpress.db"),
		CART_BACKUP_PATH: getenv("CART_BACKUP_PATH", "foodexpress_backup.json"),
		ADMIN_USERNAME:   getenv("ADMIN_USERNAME", "admin@crumbco"),
		ADMIN_PASSWORD:   getenv("ADMIN_PASSWORD", "admin@crumbco1234"),
		SESSION_SECRET:   os.Getenv("SESSION_SECRET"),
		LOG_LEVEL:        getenv("LOG_LEVEL", "info"),
	}

	return config, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
