package main

import (
	"context"
	"log"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"ecoscan/internal/config"
	"ecoscan/internal/container"
	"ecoscan/ui"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("[main] no .env file found, using environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[main] config load failed: %v", err)
	}

	c, err := container.New(cfg)
	if err != nil {
		log.Fatalf("[main] container init failed: %v", err)
	}
	defer c.Close()

	if cfg.Database.URL != "" {
		db, err := sqlx.Open("postgres", cfg.Database.URL)
		if err != nil {
			log.Fatalf("[main] database open failed: %v", err)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := c.InitWithDatabase(ctx, db); err != nil {
			cancel()
			log.Fatalf("[main] database init failed: %v", err)
		}
		cancel()
	} else {
		log.Printf("[main] DATABASE_URL not set, scan history disabled")
	}

	c.BuildServices()

	apiApp, err := ui.NewApp(c.AuditService, c.ScanRepo)
	if err != nil {
		log.Fatalf("[main] app init failed: %v", err)
	}

	if err := apiApp.Start(ui.Config{Port: cfg.Server.Port}); err != nil {
		log.Fatalf("[main] server stopped: %v", err)
	}
}
