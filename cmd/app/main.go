package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/lmonteiro91/aeroportal/config"
	"github.com/lmonteiro91/aeroportal/internal/bootstrap"
	"github.com/lmonteiro91/aeroportal/internal/cache"
	"github.com/lmonteiro91/aeroportal/internal/kafka"
	"github.com/lmonteiro91/aeroportal/internal/repository"
	"github.com/lmonteiro91/aeroportal/internal/service/baggage"
	"github.com/lmonteiro91/aeroportal/internal/service/flights"
	"github.com/lmonteiro91/aeroportal/internal/service/lookup"
)

func main() {
	_ = godotenv.Load()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	// Startup ping, logged but not fatal: the portal keeps serving its
	// pages even when the database is down.
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	if err := pool.Ping(pingCtx); err != nil {
		log.Printf("database unreachable: %v", err)
	} else {
		log.Println("database connected")
	}
	cancel()

	var flightCache flights.Cache
	if cfg.Redis.Addr != "" {
		flightCache = cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Cache.FlightsTTLSeconds)*time.Second)
	}

	var producer baggage.Producer
	if len(cfg.Kafka.Brokers) > 0 {
		p := kafka.NewProducer(cfg.Kafka.Brokers)
		defer p.Close()
		producer = p
	}

	passengerRepo := repository.NewPassengerRepository(pool)
	flightRepo := repository.NewFlightRepository(pool)
	ticketRepo := repository.NewTicketRepository(pool)
	baggageRepo := repository.NewBaggageRepository(pool)

	lookupService := lookup.NewLookupService(passengerRepo, flightRepo, ticketRepo, baggageRepo)
	baggageService := baggage.NewBaggageService(
		baggageRepo,
		passengerRepo,
		flightRepo,
		producer,
		cfg.Kafka.BaggageTopic,
		baggage.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
	)
	flightService := flights.NewFlightService(flightRepo, flightCache)

	if err := bootstrap.Run(ctx, cfg, lookupService, baggageService, flightService); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
