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

	GraphQLURL   string
	FetchTimeout time.Duration

	StoreBackend string
	SQLitePath   string

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

	TrackedUsersKey string

	DuplicateBannerTTL  time.Duration
	FetchErrorBannerTTL time.Duration
}

var AppConfig *Config

func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	AppConfig = &Config{
		APIPort:             getEnv("API_PORT", "8080"),
		GraphQLURL:          getEnv("LEETCODE_GRAPHQL_URL", "https://leetcode.com/graphql"),
		FetchTimeout:        time.Duration(getEnvAsInt("FETCH_TIMEOUT_SECONDS", 10)) * time.Second,
		StoreBackend:        getEnv("STORE_BACKEND", "sqlite"),
		SQLitePath:          getEnv("SQLITE_PATH", "leetdeck.db"),
		DBHost:              getEnv("DB_HOST", "localhost"),
		DBPort:              getEnv("DB_PORT", "5432"),
		DBUser:              getEnv("DB_USER", "user"),
		DBPassword:          getEnv("DB_PASSWORD", "password"),
		DBName:              getEnv("DB_NAME", "leetdeck_db"),
		DBSslMode:           getEnv("DB_SSLMODE", "disable"),
		RedisAddr:           getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:       getEnv("REDIS_PASSWORD", ""),
		RedisDB:             getEnvAsInt("REDIS_DB", 0),
		TrackedUsersKey:     getEnv("TRACKED_USERS_KEY", "addedUsers"),
		DuplicateBannerTTL:  time.Duration(getEnvAsInt("DUPLICATE_BANNER_MS", 2000)) * time.Millisecond,
		FetchErrorBannerTTL: time.Duration(getEnvAsInt("FETCH_ERROR_BANNER_MS", 3000)) * time.Millisecond,
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
