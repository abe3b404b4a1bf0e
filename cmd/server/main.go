package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"leetdeck/internal/api"
	"leetdeck/internal/app/service"
	"leetdeck/internal/domain/repository"
	"leetdeck/internal/leetcode"
	"leetdeck/internal/platform/config"
	"leetdeck/internal/platform/store"
)

func main() {
	// 1. Load Configuration
	config.Load()
	fmt.Println("Configuration loaded.")

	// 2. Initialize Store Backend
	store.Connect()
	defer store.Close()

	// 3. Initialize Repository
	ctx := context.Background()
	var userRepo repository.TrackedUserRepository
	var err error
	switch config.AppConfig.StoreBackend {
	case store.BackendRedis:
		userRepo = repository.NewRedisTrackedUserRepository(store.RDB, config.AppConfig.TrackedUsersKey)
	case store.BackendPostgres:
		userRepo, err = repository.NewPgTrackedUserRepository(ctx, store.DB, config.AppConfig.TrackedUsersKey)
	default:
		userRepo, err = repository.NewSQLiteTrackedUserRepository(ctx, store.DB, config.AppConfig.TrackedUsersKey)
	}
	if err != nil {
		log.Fatalf("Could not initialize tracked-user repository: %v", err)
	}

	// 4. Initialize Remote Query Client
	client := leetcode.NewClient(config.AppConfig.GraphQLURL, config.AppConfig.FetchTimeout)

	// 5. Initialize Tracker Service and hydrate the stored list
	tracker := service.NewTrackerService(
		client,
		userRepo,
		config.AppConfig.DuplicateBannerTTL,
		config.AppConfig.FetchErrorBannerTTL,
	)
	if err := tracker.Hydrate(ctx); err != nil {
		log.Fatalf("Could not hydrate tracked users: %v", err)
	}
	fmt.Printf("Tracked users hydrated (%d cards).\n", len(tracker.Snapshot().Cards))

	// 6. Initialize Router & HTTP Server
	router := api.NewRouter(tracker)

	server := &http.Server{
		Addr:         ":" + config.AppConfig.APIPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// 7. Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on port %s", config.AppConfig.APIPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Could not listen on %s: %v\n", config.AppConfig.APIPort, err)
		}
	}()
	log.Println("Server started successfully.")

	<-stop // Wait for interrupt signal

	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}

	log.Println("Server stopped gracefully.")
}
