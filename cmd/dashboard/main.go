// Command dashboard serves the interactive HTML view over a snapshot.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"grade-analytics/app/repository"
	"grade-analytics/config"
	"grade-analytics/dashboard"
)

func main() {
	config.LoadEnv()
	in := flag.String("in", config.DatasetPath(), "snapshot path (.csv or .xlsx)")
	port := flag.String("port", config.DashboardPort(), "listen port")
	flag.Parse()

	snapshot, err := repository.NewSnapshotRepository().Load(*in)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("snapshot %s: %d records from %s", snapshot.ID, len(snapshot.Records), snapshot.Source)

	app := dashboard.NewServer(snapshot).App()

	go func() {
		log.Printf("Dashboard running on :%s", *port)
		if err := app.Listen(":" + *port); err != nil {
			log.Printf("Server stopped: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}
}
