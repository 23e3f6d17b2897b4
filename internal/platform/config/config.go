package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	APIPort string
	JWTKey  []byte
	JWTExp  time.Duration

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string
	DBConnStr  string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	JudgeAPIBaseURL    string
	JudgeAPITimeout    time.Duration
	SubmissionCacheTTL time.Duration

	RefreshInterval time.Duration

	// DisplayLocation is the single timezone every date key, streak walk
	// and grid is computed in. Mixing zones would shift day boundaries
	// between views.
	DisplayLocation *time.Location
}

var AppConfig *Config

func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	AppConfig = &Config{
		APIPort:            getEnv("API_PORT", "8080"),
		JWTKey:             []byte(getEnv("JWT_SECRET", "defaultsecret")),
		JWTExp:             time.Duration(getEnvAsInt("JWT_EXPIRATION_HOURS", 72)) * time.Hour,
		DBHost:             getEnv("DB_HOST", "localhost"),
		DBPort:             getEnv("DB_PORT", "5432"),
		DBUser:             getEnv("DB_USER", "user"),
		DBPassword:         getEnv("DB_PASSWORD", "password"),
		DBName:             getEnv("DB_NAME", "solvegrid_db"),
		DBSslMode:          getEnv("DB_SSLMODE", "disable"),
		RedisAddr:          getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:      getEnv("REDIS_PASSWORD", ""),
		RedisDB:            getEnvAsInt("REDIS_DB", 0),
		JudgeAPIBaseURL:    getEnv("JUDGE_API_BASE_URL", "https://codeforces.com/api"),
		JudgeAPITimeout:    time.Duration(getEnvAsInt("JUDGE_API_TIMEOUT_SECONDS", 30)) * time.Second,
		SubmissionCacheTTL: time.Duration(getEnvAsInt("SUBMISSION_CACHE_TTL_SECONDS", 600)) * time.Second,
		RefreshInterval:    time.Duration(getEnvAsInt("REFRESH_INTERVAL_SECONDS", 900)) * time.Second,
		DisplayLocation:    loadLocation(getEnv("DISPLAY_TIMEZONE", "UTC")),
	}

	AppConfig.DBConnStr = "host=" + AppConfig.DBHost +
		" port=" + AppConfig.DBPort +
		" user=" + AppConfig.DBUser +
		" password=" + AppConfig.DBPassword +
		" dbname=" + AppConfig.DBName +
		" sslmode=" + AppConfig.DBSslMode
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

func loadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("Unknown DISPLAY_TIMEZONE %q, falling back to UTC", name)
		return time.UTC
	}
	return loc
}
