// cmd/api/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	redislib "github.com/redis/go-redis/v9"
	"github.com/your-org/lumina-storefront/internal/config"
	"github.com/your-org/lumina-storefront/internal/domain/blog"
	"github.com/your-org/lumina-storefront/internal/domain/cart"
	"github.com/your-org/lumina-storefront/internal/domain/catalog"
	"github.com/your-org/lumina-storefront/internal/domain/user"
	"github.com/your-org/lumina-storefront/internal/domain/wishlist"
	"github.com/your-org/lumina-storefront/internal/infrastructure/storage"
	"github.com/your-org/lumina-storefront/internal/interfaces/http"
	"github.com/your-org/lumina-storefront/internal/interfaces/http/routes"
	"github.com/your-org/lumina-storefront/internal/pkg/auth"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("🚀 Starting %s v%s in %s mode", cfg.App.Name, cfg.App.Version, cfg.App.Environment)

	// Select the storage backend
	var (
		store       storage.Store
		redisClient *redislib.Client
	)

	switch cfg.Storage.Backend {
	case "redis":
		rs, err := storage.NewRedis(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer rs.Close()

		if err := rs.Health(); err != nil {
			log.Fatalf("Redis health check failed: %v", err)
		}

		store = rs
		redisClient = rs.Client()
	default:
		log.Println("Using in-process memory storage; state will not survive restarts")
		store = storage.NewMemory()
	}

	// Build domain services over the static catalog and the storage backend
	catalogService := catalog.NewService(catalog.DefaultDataset())
	blogService := blog.NewService(blog.DefaultDataset())

	passwords := auth.NewPasswordManager(cfg)
	sessions := auth.NewSessionManager(cfg)

	userStore := user.NewStore(store, passwords)
	cartStore := cart.NewStore(store, catalogService)
	wishlistService := wishlist.NewService(userStore, cartStore, catalogService)

	log.Println("✅ All systems operational!")

	// Create and start HTTP server
	server := http.NewServer(cfg, &routes.Stores{
		Catalog:  catalogService,
		Blog:     blogService,
		Cart:     cartStore,
		Users:    userStore,
		Wishlist: wishlistService,
		Sessions: sessions,
	}, store, redisClient)

	// Start server in a goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatalf("Failed to start HTTP server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutdown signal received...")

	// Graceful shutdown with a timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Stop(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server exited gracefully")
}
