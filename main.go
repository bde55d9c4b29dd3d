package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"

	"ms-concerts/internal/api"
	"ms-concerts/internal/auth"
	"ms-concerts/internal/config"
	"ms-concerts/internal/eticket"
	"ms-concerts/internal/kafka"
	"ms-concerts/internal/logger"
	"ms-concerts/internal/order"
	"ms-concerts/internal/store"
)

func main() {
	log := logger.New()
	defer log.Close()

	log.Info("APP", "Starting Concert Service initialization")

	if err := godotenv.Load(); err != nil {
		log.Warn("CONFIG", ".env file not found, using environment variables")
	} else {
		log.Info("CONFIG", "Loaded environment variables from .env file")
	}
	cfg := config.Load()

	st := store.New()
	if cfg.Seed {
		st.Seed()
		log.Info("STORE", "Seeded demo catalog data")
	}

	revoked := buildRevocationCache(cfg, log)
	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	publisher, closeKafka := buildPublisher(cfg, log)
	defer closeKafka()

	orderService := order.NewService(st, publisher, log)
	qrGen := eticket.NewGenerator(cfg.Auth.QRSecret)

	handler := api.NewHandler(st, orderService, tokens, revoked, qrGen, log)

	server := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      handler.Router(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info("HTTP", fmt.Sprintf("Concert Service running on %s", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP", fmt.Sprintf("HTTP server error: %v", err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	log.Info("APP", "Service started successfully, waiting for shutdown signal")
	<-stop

	log.Info("APP", "Shutdown signal received, initiating graceful shutdown")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error("HTTP", fmt.Sprintf("Server shutdown failed: %v", err))
	} else {
		log.Info("HTTP", "Concert Service shutdown complete")
	}
}

// buildRevocationCache prefers Redis when configured so logout holds across
// replicas, and falls back to the in-process cache otherwise.
func buildRevocationCache(cfg *config.Config, log *logger.Logger) auth.RevocationCache {
	if cfg.Redis.Addr == "" {
		log.Info("REDIS", "REDIS_ADDR not set, using in-memory token revocation cache")
		return auth.NewMemoryRevocationCache()
	}
	client := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn("REDIS", fmt.Sprintf("Redis unreachable (%v), using in-memory token revocation cache", err))
		return auth.NewMemoryRevocationCache()
	}
	log.Info("REDIS", fmt.Sprintf("Redis connection successful to %s", cfg.Redis.Addr))
	return auth.NewRedisRevocationCache(client)
}

func buildPublisher(cfg *config.Config, log *logger.Logger) (order.EventPublisher, func()) {
	if !cfg.Kafka.Enabled {
		log.Info("KAFKA", "Kafka disabled, order events will not be published")
		return order.NoopPublisher{}, func() {}
	}
	if err := kafka.EnsureTopicsExist(cfg.Kafka.Brokers, []string{cfg.Kafka.OrderCreatedTopic}); err != nil {
		log.Warn("KAFKA", fmt.Sprintf("Topic creation might have failed: %v", err))
	}
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	log.Info("KAFKA", fmt.Sprintf("Kafka producer initialized for brokers %v", cfg.Kafka.Brokers))
	return order.NewKafkaPublisher(producer, cfg.Kafka.OrderCreatedTopic), func() {
		if err := producer.Close(); err != nil {
			log.Error("KAFKA", fmt.Sprintf("Failed to close producer: %v", err))
		}
	}
}
