package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"receipt-processor/internal/config"
	"receipt-processor/internal/gateway"
	"receipt-processor/internal/metrics"
	"receipt-processor/internal/usecase"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to the YAML configuration file (optional)")
	addr := flag.String("addr", "", "Listen address; overrides config file and environment")
	flag.Parse()

	// .env is a local-development convenience; absence is fine.
	_ = godotenv.Load()

	log := logrus.New()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}
	if *addr != "" {
		cfg.Addr = *addr
	}

	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		log.Fatalf("Error parsing log level: %v", err)
	}
	log.SetLevel(level)
	if cfg.Log.Format == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	}

	// --- Dependency Injection (Wiring the application) ---
	// Manual constructor injection: store and id generator into the usecase,
	// usecase into the HTTP gateway.
	var store usecase.ScoreStore
	switch cfg.Store.Backend {
	case config.StoreRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Store.Redis.Addr,
			Password: cfg.Store.Redis.Password,
			DB:       cfg.Store.Redis.DB,
		})
		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := client.Ping(pingCtx).Err(); err != nil {
			cancel()
			log.Fatalf("Error connecting to redis at %s: %v", cfg.Store.Redis.Addr, err)
		}
		cancel()
		store = gateway.NewRedisStore(client)
	default:
		store = gateway.NewMemoryStore()
	}

	receiptUseCase := usecase.NewReceiptUseCase(store, gateway.NewUUIDGenerator())
	serviceMetrics := metrics.New()
	server := gateway.NewServer(receiptUseCase, log, serviceMetrics)

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      server,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.WithFields(logrus.Fields{
			"addr":  cfg.Addr,
			"store": cfg.Store.Backend,
		}).Info("receipt processor listening")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server stopped: %v", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("graceful shutdown failed")
	}
}
