package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"grade-analytics/app/repository"
	"grade-analytics/config"
	_ "grade-analytics/docs"
	"grade-analytics/route"
)

// @title           Grade Analytics API
// @version         1.0
// @description     Read-only query API over a student grade snapshot: descriptive statistics, rankings and referentials.
// @BasePath        /api/v1
func main() {
	// 1. Load .env file
	config.LoadEnv()

	// 2. Load the grade snapshot
	repo := repository.NewSnapshotRepository()
	snapshot, err := repo.Load(config.DatasetPath())
	if err != nil {
		log.Fatalf("load snapshot %s: %v", config.DatasetPath(), err)
	}
	log.Printf("snapshot %s: %d records from %s", snapshot.ID, len(snapshot.Records), snapshot.Source)

	// 3. Setup Fiber app
	app := fiber.New(fiber.Config{AppName: "grade-analytics"})
	app.Use(recover.New())
	app.Use(logger.New())

	// 4. Setup routes
	route.SetupRoutes(app, snapshot)

	// 5. Start server
	port := config.APIPort()
	go func() {
		log.Printf("Server running on :%s", port)
		if err := app.Listen(":" + port); err != nil {
			log.Printf("Server stopped: %v", err)
		}
	}()

	// 6. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}
}
