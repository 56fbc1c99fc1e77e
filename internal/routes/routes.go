package routes

import (
	"log"
	"os"
	"strings"
	"time"

	"music_recs/internal/handlers"
	"music_recs/internal/middleware"
	"music_recs/internal/repository"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	authHandler *handlers.AuthHandler,
	trackHandler *handlers.TrackHandler,
	interactionHandler *handlers.InteractionHandler,
	recommendationHandler *handlers.RecommendationHandler,
	statsHandler *handlers.StatsHandler,
	seedHandler *handlers.SeedHandler,
	userHandler *handlers.UserHandler,
	userRepo repository.UserRepository,
) *gin.Engine {

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// CORS: locked to CORS_ORIGIN in production, permissive for local
	// frontends in development.
	env := os.Getenv("ENV")
	frontendURL := os.Getenv("CORS_ORIGIN")

	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	if env == "production" {
		if frontendURL == "" {
			log.Fatal("CORS_ORIGIN environment variable is not set in production")
		}
		corsConfig.AllowOrigins = []string{frontendURL}
	} else {
		allowedOrigins := []string{
			"http://localhost:3000",
			"http://localhost:5173",
			"http://127.0.0.1:3000",
			"http://127.0.0.1:5173",
		}
		if frontendURL != "" {
			allowedOrigins = append(allowedOrigins, frontendURL)
		}

		corsConfig.AllowOriginFunc = func(origin string) bool {
			for _, allowed := range allowedOrigins {
				if origin == allowed {
					return true
				}
			}
			return strings.HasPrefix(origin, "http://192.168.") || strings.HasPrefix(origin, "http://10.")
		}
	}

	router.Use(cors.New(corsConfig))

	router.Use(func(c *gin.Context) {
		c.Header("X-Frame-Options", "DENY")
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Header("Content-Security-Policy", "default-src 'self'")
		c.Next()
	})

	api := router.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)

			authProtected := auth.Group("/")
			authProtected.Use(middleware.JWTMiddleware())
			{
				authProtected.GET("/me", authHandler.Me)
			}
		}

		// Catalog reads are public; a valid token still attaches user_id.
		tracks := api.Group("/tracks")
		tracks.Use(middleware.OptionalJWTMiddleware())
		{
			tracks.GET("", trackHandler.ListTracks)
			tracks.GET("/search", trackHandler.SearchTracks)
			tracks.GET("/genres", trackHandler.GetGenres)
			tracks.GET("/:id", trackHandler.GetTrackByID)
			tracks.GET("/:id/stats", trackHandler.GetTrackStats)
		}

		// Catalog writes require an admin.
		tracksAdmin := api.Group("/tracks")
		tracksAdmin.Use(middleware.JWTMiddleware(), middleware.AdminMiddleware(userRepo))
		{
			tracksAdmin.POST("", trackHandler.CreateTrack)
			tracksAdmin.POST("/bulk", trackHandler.BulkCreateTracks)
			tracksAdmin.POST("/seed", seedHandler.SeedDatabase)
		}

		// User listing is admin-only.
		users := api.Group("/users")
		users.Use(middleware.JWTMiddleware(), middleware.AdminMiddleware(userRepo))
		{
			users.GET("", userHandler.ListUsers)
		}

		protected := api.Group("/")
		protected.Use(middleware.JWTMiddleware())
		{
			interactions := protected.Group("/interactions")
			{
				interactions.POST("", interactionHandler.CreateInteraction)
				interactions.GET("/me", interactionHandler.GetMyInteractions)
			}

			recommendations := protected.Group("/recommendations")
			{
				recommendations.GET("/similar/:track_id", recommendationHandler.GetSimilarTracks)
				recommendations.GET("/personalized", recommendationHandler.GetPersonalizedRecommendations)
				recommendations.GET("/trending", recommendationHandler.GetTrendingTracks)
			}
		}

		api.GET("/stats", statsHandler.GetSystemStats)
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "success",
			"message": "Server is running",
		})
	})

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "success",
			"message": "Music Recommendation API",
			"version": "1.0.0",
		})
	})

	return router
}
