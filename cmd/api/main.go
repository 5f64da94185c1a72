package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/zizouhuweidi/trivia/internal/cache"
	"github.com/zizouhuweidi/trivia/internal/config"
	"github.com/zizouhuweidi/trivia/internal/database"
	"github.com/zizouhuweidi/trivia/internal/domain"
	"github.com/zizouhuweidi/trivia/internal/handler"
	"github.com/zizouhuweidi/trivia/internal/repository/postgres"
	"github.com/zizouhuweidi/trivia/internal/repository/sqlite"
	"github.com/zizouhuweidi/trivia/internal/service"
	"github.com/zizouhuweidi/trivia/internal/websocket"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize repositories
	var (
		questionRepo domain.QuestionRepository
		categoryRepo domain.CategoryRepository
	)
	switch cfg.StoreDriver {
	case config.DriverSQLite:
		store, err := sqlite.NewStore(cfg.SQLitePath)
		if err != nil {
			log.Fatalf("Failed to open sqlite store: %v", err)
		}
		defer store.Close()

		questionRepo = store.Questions()
		categoryRepo = store.Categories()
	default:
		pool, err := database.ConnectPostgres(ctx, cfg.Postgres)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer pool.Close()

		if err := postgres.Migrate(ctx, pool); err != nil {
			log.Fatalf("Failed to migrate database: %v", err)
		}

		questionRepo = postgres.NewQuestionRepository(pool)
		categoryRepo = postgres.NewCategoryRepository(pool)
	}

	// Initialize websocket hub
	hub := websocket.NewHub()
	go hub.Run(ctx)

	opts := []service.Option{service.WithBroadcaster(hub)}

	// The category cache is optional; the API serves straight from the store without it
	if cfg.CacheEnabled {
		redisClient, err := database.ConnectRedis(ctx, cfg.Redis)
		if err != nil {
			log.Printf("Category cache disabled: %v", err)
		} else {
			defer redisClient.Close()

			categoryCache := cache.NewCategoryCache(redisClient, cfg.CategoryCacheTTL)
			if err := categoryCache.Invalidate(ctx); err != nil {
				log.Printf("Failed to clear cached categories: %v", err)
			}
			opts = append(opts, service.WithCategoryCache(categoryCache))
		}
	}

	triviaService := service.NewTriviaService(questionRepo, categoryRepo, opts...)
	e := handler.NewServer(triviaService, hub)

	// Start server
	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			e.Logger.Fatalf("server stopped: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown failed: %v", err)
		os.Exit(1)
	}
}
