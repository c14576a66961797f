package configs

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Store backends selectable with STORE_BACKEND.
const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
)

type Config struct {
	Env          string
	Port         string
	StoreBackend string

	DBSource string

	RedisAddr     string
	RedisPassword string

	CloudinaryURL string
	UploadDir     string

	JWTSecret string
	JWTTTL    time.Duration

	SeedDemo bool
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file, using environment")
	}

	return &Config{
		Env:           getEnv("ENV", "development"),
		Port:          getEnv("PORT", "8000"),
		StoreBackend:  getEnv("STORE_BACKEND", BackendSQLite),
		DBSource:      getEnv("DB_SOURCE", "catalog.db"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		CloudinaryURL: os.Getenv("CLOUDINARY_URL"),
		UploadDir:     getEnv("UPLOAD_DIR", "uploads"),
		JWTSecret:     getEnv("JWT_SECRET", "changeme"),
		JWTTTL:        time.Duration(24) * time.Hour,
		SeedDemo:      getEnv("SEED_DEMO", "") == "true",
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
