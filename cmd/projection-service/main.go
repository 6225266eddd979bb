package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/redis/go-redis/v9"

	"github.com/courtside/hoopcast/services/projection-service/internal/cache"
	"github.com/courtside/hoopcast/services/projection-service/internal/handlers"
	"github.com/courtside/hoopcast/services/projection-service/internal/projector"
	"github.com/courtside/hoopcast/services/projection-service/internal/providers/nbastats"
	"github.com/courtside/hoopcast/services/projection-service/internal/store"
)

func main() {
	fmt.Println("=== Hoopcast Projection Service ===")

	// Load configuration
	config := loadConfig()

	ctx := context.Background()

	// Connect to Postgres
	db, err := store.Open(ctx, config.DatabaseURL)
	if err != nil {
		fmt.Printf("✗ Failed to connect to Postgres: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()
	fmt.Println("✓ Connected to Postgres")

	// Connect to Redis
	redisClient := redis.NewClient(&redis.Options{
		Addr:     config.RedisURL,
		Password: config.RedisPassword,
		DB:       0,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		fmt.Printf("✗ Failed to connect to Redis: %v\n", err)
		os.Exit(1)
	}
	defer redisClient.Close()
	fmt.Println("✓ Connected to Redis")

	// Build components
	statsClient := nbastats.NewWithBaseURL(config.StatsBaseURL)
	projectionCache := cache.NewProjectionCache(redisClient)
	proj := projector.NewDefault()

	handler := handlers.NewHandler(
		statsClient,
		db,
		db,
		projectionCache,
		proj,
		config.DefaultSeason,
		config.DefaultRecentGames,
	)

	// Create router
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000", "http://localhost:3001"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Routes
	handler.Routes(r)

	// Start server
	addr := fmt.Sprintf(":%d", config.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	// Start server in goroutine
	go func() {
		fmt.Printf("✓ Projection Service started on port %d\n", config.Port)
		fmt.Printf("  Default Season: %s\n", config.DefaultSeason)
		fmt.Printf("  Default Recent Games: %d\n", config.DefaultRecentGames)
		fmt.Printf("  Stats Provider: %s\n", config.StatsBaseURL)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Printf("✗ Server error: %v\n", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	fmt.Println("\n✓ Shutting down gracefully...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		fmt.Printf("✗ Shutdown error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("✓ Projection Service stopped")
}

// Config holds service configuration
type Config struct {
	Port               int
	DatabaseURL        string
	RedisURL           string
	RedisPassword      string
	StatsBaseURL       string
	DefaultSeason      string
	DefaultRecentGames int
}

// loadConfig loads configuration from environment
func loadConfig() Config {
	return Config{
		Port:               getEnvInt("PROJECTION_SERVICE_PORT", 8087),
		DatabaseURL:        getEnv("DATABASE_URL", "postgres://localhost:5432/hoopcast?sslmode=disable"),
		RedisURL:           getEnv("REDIS_URL", "localhost:6379"),
		RedisPassword:      os.Getenv("REDIS_PASSWORD"),
		StatsBaseURL:       getEnv("STATS_PROVIDER_URL", nbastats.DefaultBaseURL),
		DefaultSeason:      getEnv("DEFAULT_SEASON", "2025-26"),
		DefaultRecentGames: getEnvInt("DEFAULT_RECENT_GAMES", 10),
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
