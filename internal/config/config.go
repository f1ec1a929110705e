package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	DatabaseURL    string
	ServerPort     string
	JWTSecret      string
	AdminUsername  string
	AdminPassword  string
	AdminWhatsapp  string
	CodePrefix     string
	DefaultCountry string
	FrontendURL    string
	CORSOrigin     string
	SMTPHost       string
	SMTPPort       string
	SMTPUser       string
	SMTPPassword   string
	SMTPFrom       string
	SMTPTo         string
	MediaDir       string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment variables")
	}

	return &Config{
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", "5432"),
		DBUser:         getEnv("DB_USER", "postgres"),
		DBPassword:     getEnv("DB_PASSWORD", "postgres"),
		DBName:         getEnv("DB_NAME", "quiz26"),
		DatabaseURL:    getEnv("DATABASE_URL", ""),
		ServerPort:     getEnv("PORT", "10000"),
		JWTSecret:      getEnv("JWT_SECRET", "super-secret-key-change-me"),
		AdminUsername:  getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword:  getEnv("ADMIN_PASSWORD", "change-me"),
		AdminWhatsapp:  getEnv("ADMIN_WHATSAPP", ""),
		CodePrefix:     getEnv("CODE_PREFIX", "QI26"),
		DefaultCountry: getEnv("DEFAULT_COUNTRY", "Côte d'Ivoire"),
		FrontendURL:    getEnv("FRONTEND_URL", ""),
		CORSOrigin:     getEnv("CORS_ORIGIN", ""),
		SMTPHost:       getEnv("SMTP_HOST", ""),
		SMTPPort:       getEnv("SMTP_PORT", "587"),
		SMTPUser:       getEnv("SMTP_USER", ""),
		SMTPPassword:   getEnv("SMTP_PASSWORD", ""),
		SMTPFrom:       getEnv("SMTP_FROM", ""),
		SMTPTo:         getEnv("SMTP_TO", ""),
		MediaDir:       getEnv("MEDIA_DIR", "media"),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
