package main

import (
	"context"
	"log"
	"time"

	"movie-booking/cmd"
	"movie-booking/internal/data/cache"
	"movie-booking/internal/data/repository"
	"movie-booking/internal/data/seed"
	"movie-booking/internal/wire"
	"movie-booking/pkg/database"
	"movie-booking/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Optional Redis seat cache
	redisClient, err := cache.InitRedis(config.Redis)
	if err != nil {
		logger.Warn("Redis unavailable, seat cache disabled", zap.Error(err))
	}
	seatCache := cache.NewSeatCache(redisClient, config.Redis.SeatTTL, logger)

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Create schema and seed the catalog on first run
	if err := seed.Run(context.Background(), db, repos, logger); err != nil {
		logger.Fatal("Failed to seed database", zap.Error(err))
	}

	// Wire all dependencies
	app := wire.Wiring(repos, seatCache, config, logger)

	// Janitors: discard idle booking sessions, clean expired auth sessions
	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			app.Service.Session.Sweep(config.Session.MaxIdle)
		}
	}()

	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			removed, err := repos.Session.CleanExpiredSessions(context.Background())
			if err != nil {
				logger.Warn("Failed to clean expired sessions", zap.Error(err))
				continue
			}
			if removed > 0 {
				logger.Info("Cleaned expired sessions", zap.Int64("removed", removed))
			}
		}
	}()

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
