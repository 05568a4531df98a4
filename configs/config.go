package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBSource  string
	Port      string
	JWTSecret string
	JWTTTL    time.Duration

	// Empty RedisAddr disables the catalog cache.
	RedisAddr string
	CacheTTL  time.Duration

	// Empty KafkaBroker disables reservation events.
	KafkaBroker string
	KafkaTopic  string

	// Base URL embedded in reservation check-in QR codes.
	PublicBaseURL string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	return &Config{
		DBSource:      getEnv("DB_SOURCE", "reservations.db"),
		Port:          getEnv("PORT", "8000"),
		JWTSecret:     getEnv("JWT_SECRET", "changeme"),
		JWTTTL:        time.Duration(getEnvInt("JWT_TTL_HOURS", 24)) * time.Hour,
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		CacheTTL:      time.Duration(getEnvInt("CACHE_TTL_SECONDS", 60)) * time.Second,
		KafkaBroker:   os.Getenv("KAFKA_BROKER"),
		KafkaTopic:    getEnv("KAFKA_TOPIC", "reservation-events"),
		PublicBaseURL: getEnv("PUBLIC_BASE_URL", "http://localhost:8000"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
