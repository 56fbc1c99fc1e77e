package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"music_recs/internal/config"
	"music_recs/internal/database"
	"music_recs/internal/handlers"
	"music_recs/internal/repository"
	"music_recs/internal/routes"
	"music_recs/internal/seed"
	"music_recs/internal/services"
)

func main() {
	if err := config.LoadConfig(); err != nil {
		log.Fatalf("Config load failed: %v", err)
	}
	cfg := config.GlobalConfig

	if err := database.ConnectDB(); err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}
	database.RunMigrations()

	// Repositories
	userRepo := repository.NewUserRepository(database.DB)
	trackRepo := repository.NewTrackRepository(database.DB)
	interactionRepo := repository.NewInteractionRepository(database.DB)

	// Seed the sample catalog on first boot so the engine has something to
	// recommend.
	seedService := seed.NewService(userRepo, trackRepo, interactionRepo)
	if cfg.SeedOnStartup {
		if err := seedService.Run(); err != nil {
			log.Printf("Seeding skipped or failed: %v", err)
		}
	}

	// Recommendation engine
	trendingService := services.NewTrendingService(trackRepo, interactionRepo, cfg.TrendingWindowDays)
	contentService := services.NewContentService(trackRepo)
	personalizedService := services.NewPersonalizedService(
		trackRepo,
		interactionRepo,
		trendingService,
		cfg.RecentHistorySize,
	)

	// Handlers
	authHandler := handlers.NewAuthHandler(userRepo)
	trackHandler := handlers.NewTrackHandler(trackRepo, interactionRepo)
	interactionHandler := handlers.NewInteractionHandler(interactionRepo, trackRepo)
	recommendationHandler := handlers.NewRecommendationHandler(
		contentService,
		personalizedService,
		trendingService,
		trackRepo,
	)
	statsHandler := handlers.NewStatsHandler(userRepo, trackRepo, interactionRepo)
	seedHandler := handlers.NewSeedHandler(seedService)
	userHandler := handlers.NewUserHandler(userRepo)

	router := routes.SetupRoutes(
		authHandler,
		trackHandler,
		interactionHandler,
		recommendationHandler,
		statsHandler,
		seedHandler,
		userHandler,
		userRepo,
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.ServerPort
	}
	bindAddr := "0.0.0.0:" + port

	server := &http.Server{
		Addr:         bindAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Music recommendation API listening on %s", bindAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
