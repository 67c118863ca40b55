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

	"github.com/redis/go-redis/v9"

	"github.com/srgjo27/ticket_marketplace/internal/adapter/handler"
	"github.com/srgjo27/ticket_marketplace/internal/adapter/messaging"
	"github.com/srgjo27/ticket_marketplace/internal/adapter/payment"
	"github.com/srgjo27/ticket_marketplace/internal/adapter/repository/postgres"
	"github.com/srgjo27/ticket_marketplace/internal/adapter/tickets"
	"github.com/srgjo27/ticket_marketplace/internal/core/ledger"
	"github.com/srgjo27/ticket_marketplace/internal/core/ports"
	"github.com/srgjo27/ticket_marketplace/internal/core/services"
	"github.com/srgjo27/ticket_marketplace/internal/platform/config"
	"github.com/srgjo27/ticket_marketplace/internal/platform/database"
)

func main() {
	cfg := config.Load(".env")
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	db, err := database.NewPostgresDB(database.Config{
		Host:       cfg.DBHost,
		Port:       cfg.DBPort,
		User:       cfg.DBUser,
		Password:   cfg.DBPassword,
		DBName:     cfg.DBName,
		SSLMode:    cfg.DBSSLMode,
		MaxRetries: cfg.DBRetries,
	})
	if err != nil {
		log.Fatalf("Failed to connect to db after retries: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(context.Background(), db); err != nil {
		log.Fatalf("Failed to migrate db: %v", err)
	}

	log.Printf("Connecting to Redis at %s:%s...", cfg.RedisHost, cfg.RedisPort)

	redisClient := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", cfg.RedisHost, cfg.RedisPort),
		DB:   cfg.RedisDB,
	})

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	log.Println("Redis connected successfully!")
	defer redisClient.Close()

	var publisher ports.NotificationPublisher
	if cfg.EnableRabbitMQ {
		rabbit, err := messaging.NewRabbitPublisher(cfg.RabbitMQURL, cfg.ListingQueue)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer rabbit.Close()
		publisher = rabbit
	} else {
		log.Println("RabbitMQ disabled, listing notifications will not be published.")
	}

	registry := tickets.NewRegistry()
	wallet := payment.NewWallet()
	historyRepo := postgres.NewListingHistoryRepository(db)

	marketplaceService := services.NewMarketplaceService(
		ledger.New(),
		registry,
		wallet,
		publisher,
		historyRepo,
		redisClient,
		services.MarketplaceConfig{
			Operator: cfg.OperatorID,
			CacheTTL: cfg.ListingCacheTTL,
		},
	)
	eventService := services.NewEventService(registry, cfg.OperatorID)

	router := handler.NewRouter(
		handler.NewAuthenticator(cfg.JWTSecret),
		handler.NewEventHandler(eventService),
		handler.NewMarketplaceHandler(marketplaceService, wallet),
	)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("Server starting on port :%s (marketplace operator %s)", cfg.Port, cfg.OperatorID)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server startup failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}
