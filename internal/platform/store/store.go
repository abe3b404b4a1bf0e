package store

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"leetdeck/internal/platform/config"

	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver
	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite" // SQLite driver
)

const (
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

// Exactly one of DB and RDB is non-nil after Connect, depending on the
// configured backend.
var (
	DB  *sql.DB
	RDB *redis.Client
)

func Connect() {
	switch config.AppConfig.StoreBackend {
	case BackendSQLite:
		connectSQLite()
	case BackendPostgres:
		connectPostgres()
	case BackendRedis:
		connectRedis()
	default:
		log.Fatalf("Unknown STORE_BACKEND %q (expected sqlite, postgres or redis)", config.AppConfig.StoreBackend)
	}
}

func connectSQLite() {
	var err error
	DB, err = sql.Open("sqlite", config.AppConfig.SQLitePath)
	if err != nil {
		log.Fatalf("Error opening sqlite database: %v", err)
	}

	// modernc sqlite allows a single writer; keep the pool at one connection.
	DB.SetMaxOpenConns(1)

	if err = DB.Ping(); err != nil {
		log.Fatalf("Error connecting to sqlite database: %v", err)
	}

	fmt.Printf("Successfully opened sqlite store at %s\n", config.AppConfig.SQLitePath)
}

func connectPostgres() {
	var err error
	DB, err = sql.Open("pgx", config.AppConfig.DBConnStr)
	if err != nil {
		log.Fatalf("Error opening database: %v", err)
	}

	DB.SetMaxOpenConns(25)
	DB.SetMaxIdleConns(25)
	DB.SetConnMaxLifetime(5 * time.Minute)

	if err = DB.Ping(); err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	fmt.Println("Successfully connected to PostgreSQL store!")
}

func connectRedis() {
	RDB = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisDB,
	})

	ctx := context.Background()
	if _, err := RDB.Ping(ctx).Result(); err != nil {
		log.Fatalf("Could not connect to Redis: %v", err)
	}
	fmt.Println("Successfully connected to Redis store!")
}

func Close() {
	if DB != nil {
		DB.Close()
		fmt.Println("Database store closed.")
	}
	if RDB != nil {
		RDB.Close()
		fmt.Println("Redis store closed.")
	}
}
