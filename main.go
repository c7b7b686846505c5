package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"charting-dashboard-server/internal/config"
	"charting-dashboard-server/internal/db"
	"charting-dashboard-server/internal/middleware"
	"charting-dashboard-server/internal/models"
	"charting-dashboard-server/internal/repository/legacy"
	"charting-dashboard-server/internal/repository/mongo"
	"charting-dashboard-server/internal/routes"
	"charting-dashboard-server/internal/stats"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded, using process environment: %v", err)
	}

	// Initialize configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	loc, err := cfg.Location()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Connect to the clinic record store
	mongoDB, err := db.ConnectMongo(context.Background(), cfg.Mongo.URI, cfg.Mongo.Database, cfg.Mongo.ConnectTimeout)
	if err != nil {
		log.Fatalf("Error connecting to MongoDB: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := mongoDB.Close(ctx); err != nil {
			log.Printf("Error disconnecting from MongoDB: %v", err)
		}
	}()

	// The legacy session store is optional; without it user-scoped stats fail with 500
	var sessions stats.SessionReader
	legacyDB, err := models.InitLegacyDB(cfg.LegacyDB)
	if err != nil {
		log.Printf("Legacy session database unavailable: %v", err)
	} else {
		sessions = legacy.NewSessionRepository(legacyDB)
	}

	records := mongo.NewRecordRepository(mongoDB, cfg.Mongo.RecordsCollection)
	if cfg.Mongo.EnsureIndexes {
		if err := records.EnsureIndexes(context.Background()); err != nil {
			log.Printf("Error ensuring record indexes: %v", err)
		}
	}

	statsService := stats.NewService(
		records,
		sessions,
		mongo.NewPatientRepository(mongoDB, cfg.Mongo.PatientsCollection),
		stats.Constants{
			MinutesSavedPerVisit: cfg.Stats.MinutesSavedPerVisit,
			TimeSavedPercent:     cfg.Stats.TimeSavedPercent,
			DisplayAccuracy:      cfg.Stats.DisplayAccuracy,
		},
		loc,
		cfg.Stats.EnrichConcurrency,
	)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize Gin router
	router := gin.Default()
	router.Use(middleware.RequestID())

	// Configure CORS
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Origin}
	corsConfig.AllowCredentials = true
	corsConfig.AllowMethods = []string{"GET", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader}
	corsConfig.ExposeHeaders = []string{middleware.RequestIDHeader}
	router.Use(cors.New(corsConfig))

	routes.SetupRoutes(router, statsService, cfg)

	// Start server
	serverAddr := fmt.Sprintf(":%s", cfg.Port)
	fmt.Printf("Server running on port %s\n", cfg.Port)
	if err := router.Run(serverAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
