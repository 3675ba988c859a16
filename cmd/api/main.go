package main

import (
	"dreamshoots/internal/admin"
	"dreamshoots/internal/bookings/handler"
	"dreamshoots/internal/bookings/repository"
	"dreamshoots/internal/bookings/service"
	"dreamshoots/internal/bookings/validator"
	"dreamshoots/internal/events"
	"dreamshoots/internal/health"
	"dreamshoots/internal/reels/cache"
	reelhandler "dreamshoots/internal/reels/handler"
	reelrepository "dreamshoots/internal/reels/repository"
	reelservice "dreamshoots/internal/reels/service"
	reelvalidator "dreamshoots/internal/reels/validator"
	"dreamshoots/pkg/app"
	"dreamshoots/pkg/config"
)

const ServiceName = "dreamshoots-api"

func main() {
	cfg := config.Load(ServiceName)

	if err := cfg.Validate(); err != nil {
		cfg.Log.Fatal("Invalid configuration", "error", err)
	}

	cfg.LogConfiguration()

	if cfg.UsesMongo() {
		cfg.SetMongo()
	}
	cfg.SetRedis()

	publisher, err := events.New(cfg)
	if err != nil {
		cfg.Log.Fatal("Failed to initialize event publisher", "error", err)
	}

	cfg.Log.Info("Starting Dream Shoots API")
	bookingService, reelService := initServices(cfg, publisher)
	gate := app.AdminGate(cfg)

	var store health.Pinger
	if cfg.UsesMongo() {
		store = cfg.Client
	}

	serverApp := app.NewApplication(cfg)
	serverApp.OnShutdown("events", publisher.Close)
	serverApp.OnShutdown("clients", func() error {
		cfg.GracefulShutdown()
		return nil
	})
	serverApp.SetApp(
		health.NewHealthHandler(store, cfg.Log),
		handler.NewBookingHandler(bookingService, cfg.Log, gate),
		reelhandler.NewReelHandler(reelService, cfg.Log, gate),
		admin.NewSessionHandler(gate),
	)
	serverApp.Run()
}

func initServices(cfg *config.Config, publisher events.Publisher) (service.BookingService, reelservice.ReelService) {
	var (
		bookingRepo repository.BookingRepository
		reelRepo    reelrepository.ReelRepository
	)
	if cfg.UsesMongo() {
		bookingRepo = repository.NewMongoBookingRepository(cfg)
		reelRepo = reelrepository.NewMongoReelRepository(cfg)
	} else {
		cfg.Log.Warn("Using in-memory store; data is lost on restart")
		bookingRepo = repository.NewMemoryBookingRepository()
		reelRepo = reelrepository.NewMemoryReelRepository()
	}

	bookingService := service.NewBookingService(
		bookingRepo,
		validator.NewBookingValidator(cfg.Log),
		publisher,
		cfg,
	)
	reelService := reelservice.NewReelService(
		reelRepo,
		reelvalidator.NewReelValidator(cfg.Log),
		cache.New(cfg.Client.Redis, cfg.ReelCacheTTL, cfg.Log),
		publisher,
		cfg,
	)

	cfg.Log.Info("Services initialized",
		"store_driver", cfg.StoreDriver,
		"database", cfg.MongoDatabaseName,
		"reel_cache", cfg.Client.Redis != nil,
	)
	return bookingService, reelService
}
