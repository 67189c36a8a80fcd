package main

import (
	"log"

	"github.com/SampleSite/SampleSite-Backend/src/config"
	"github.com/SampleSite/SampleSite-Backend/src/db"
	"github.com/SampleSite/SampleSite-Backend/src/logger"
	"github.com/SampleSite/SampleSite-Backend/src/models"
	"github.com/SampleSite/SampleSite-Backend/src/routes"
	"github.com/SampleSite/SampleSite-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func main() {

	// Configuration and logger
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading configuration: %v\n", err)
	}
	appLog, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("Error creating logger: %v\n", err)
	}

	// Database connection
	database, err := db.Connect(cfg.Database, appLog)
	if err != nil {
		appLog.WithError(err).Fatal("Error connecting to database")
	}

	// Auto-migrate models
	if err := db.Migrate(database); err != nil {
		appLog.WithError(err).Fatal("Error during auto-migration")
	}

	// Gin router setup
	gin.SetMode(cfg.Server.Mode)
	router := routes.NewRouter(appLog, cfg.Server.AllowedOrigins)

	// Services setup
	locationDetailService := services.NewRecordService(database, models.LocationDetailSchema)
	entityService := services.NewRecordService(database, models.EntitySchema)

	// Routes setup
	routes.SetupGreetingRoutes(router)
	routes.SetupFormRoutes[*models.LocationDetailModel](router, "/statedetails", locationDetailService, models.LocationDetailSchema)
	routes.SetupFormRoutes[*models.EntityModel](router, "/entities", entityService, models.EntitySchema)
	routes.SetupMetricsRoutes(router)

	// Server run
	appLog.WithField("host", cfg.Server.Host).Info("Server is starting")
	if err := router.Run(cfg.Server.Host); err != nil {
		appLog.WithError(err).Fatalf("Error starting server on %s", cfg.Server.Host)
	}
}
