package main

import (
	"log"

	"court_filing_app_go/config"
	"court_filing_app_go/db"
	"court_filing_app_go/handlers"
	"court_filing_app_go/middleware"
	"court_filing_app_go/models"
	"court_filing_app_go/services"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	if err := db.Initialize(cfg.DBPath, cfg.Environment); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Run migrations
	if err := db.AutoMigrate(
		&models.Document{},
		&models.FilingEvent{},
		&models.FilingTemplate{},
		&models.LegalAidOrganization{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize blob storage and field encryption
	services.InitializeStorage(cfg)
	if err := services.InitializeCipher(cfg); err != nil {
		log.Fatalf("Failed to initialize field encryption: %v", err)
	}

	// Seed reference data
	if err := services.SeedFilingTemplates(db.DB); err != nil {
		log.Fatalf("Failed to seed filing templates: %v", err)
	}
	if err := services.SeedLegalAidOrganizations(db.DB); err != nil {
		log.Fatalf("Failed to seed legal aid organizations: %v", err)
	}

	// Build the compliance pipeline: immutable registry, classifier adapter,
	// aggregator and emergency validator
	registry := services.NewCourtRegistry()
	classifier := services.NewLLMClassifier(cfg)
	analyzer := services.NewAnalyzer(classifier, registry, cfg)
	validator := services.NewEmergencyValidator(nil)

	documentHandler := handlers.NewDocumentHandler(analyzer, registry, cfg)
	emergencyHandler := handlers.NewEmergencyHandler(validator)
	courtHandler := handlers.NewCourtHandler(registry)

	// Create Echo instance
	e := echo.New()

	// Middleware
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())

	// Document routes
	e.POST("/documents/upload", documentHandler.Upload, middleware.UploadRateLimiter.Middleware())
	e.GET("/documents/:id", documentHandler.Get)
	e.GET("/documents/:id/download", documentHandler.Download)
	e.DELETE("/documents/:id", documentHandler.Delete)
	e.POST("/documents/:id/file", documentHandler.File)

	// Emergency filing validation
	e.POST("/emergency/validate", emergencyHandler.Validate)

	// Template catalog
	e.GET("/templates", handlers.GetTemplatesHandler)
	e.GET("/templates/emergency", handlers.GetEmergencyTemplatesHandler)

	// Legal aid directory
	e.GET("/legal-aid", handlers.GetLegalAidHandler)
	e.POST("/legal-aid/import", handlers.ImportLegalAidHandler, middleware.ImportRateLimiter.Middleware())

	// Court registry (read-only)
	e.GET("/courts", courtHandler.List)
	e.GET("/courts/:id", courtHandler.Get)
	e.GET("/courts/:id/validate", courtHandler.ValidateDocumentType)

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
