package main

import (
	"context" // context package is needed for Redis operations

	"places_api/internal/api"     // Custom package for API handlers
	"places_api/internal/config"  // Custom package for configuration
	"places_api/internal/db"      // Database connection
	"places_api/internal/geocode" // Geocoding client
	"places_api/internal/service" // Place and user services
	"places_api/internal/utils"   // Signup lock

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	if cfg.IsProd {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	// Refuse to start without a database
	if err := cfg.Validate(); err != nil {
		logrus.Fatalf("invalid configuration: %v", err)
	}
	database, err := db.Open(cfg.DSN())
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}

	mapsClient, err := geocode.NewGoogleClient(cfg.GeocodeBaseURL, cfg.GoogleAPIKey, cfg.GeocodeTimeout)
	if err != nil {
		logrus.Fatalf("failed to create geocoding client (is GOOGLE_API_KEY set?): %v", err)
	}
	geocoder := geocode.NewBreakerGeocoder(mapsClient)

	// Redis is optional, it only guards concurrent signups
	var locker utils.Locker
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr, // Redis server address
			Password: cfg.RedisPass, // Redis password
			DB:       cfg.RedisDB,   // Redis database number
		})
		// Test Redis connection
		if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
			logrus.Fatalf("failed to connect to Redis: %v", err)
		}
		locker = utils.NewRedisLocker(redisClient)
	}

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin
	r := gin.New()      // Gin router instance
	r.Use(gin.Logger()) // Request logging, api.Setup adds recovery

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	api.Setup(r, service.NewPlaceService(database, geocoder), service.NewUserService(database, locker))

	logrus.Info("Server running on " + cfg.AppPort) // Log server start
	if err := r.Run(":" + cfg.AppPort); err != nil {
		logrus.Fatalf("server stopped: %v", err)
	}
}
