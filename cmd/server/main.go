package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/localnerve/ectd-registry/internal/config"
	"github.com/localnerve/ectd-registry/internal/database"
	"github.com/localnerve/ectd-registry/internal/server"
	"github.com/localnerve/ectd-registry/internal/services"

	_ "github.com/localnerve/ectd-registry/docs/api" // Swagger docs
)

// @title eCTD Registry API
// @version 1.0.0
// @description Applications, submission units and Context of Use operation logs
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url https://github.com/localnerve/ectd-registry
// @contact.email info@localnerve.com

// @license.name AGPL-3.0
// @license.url https://www.gnu.org/licenses/agpl-3.0.html

// @host localhost:3000
// @BasePath /api
// @schemes http https

func main() {
	if err := config.LoadEnvFile(""); err != nil {
		log.Fatalf("Failed to load env file: %v", err)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	services.SetRetryLimits(services.RetryLimits{
		Cou:      cfg.CouMaxRetries,
		Sequence: cfg.SequenceMaxRetries,
	})

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		database.Close(db)
		log.Fatalf("Failed to run migrations: %v", err)
	}

	app := server.New(cfg, db, server.Options{
		Prometheus: fiberprometheus.New("ectd-registry"),
		AccessLog:  true,
		Swagger:    true,
	})

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	// Start server
	port := cfg.Port
	log.Printf("Starting server on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		database.Close(db)
		log.Fatalf("Failed to start server: %v", err)
	}

	log.Println("Server stopped")
}
