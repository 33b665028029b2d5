package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"vibr/internal/config"
	"vibr/internal/db"
	"vibr/internal/jobs"
	"vibr/internal/llm"
	"vibr/internal/metrics"
	"vibr/internal/phrasebook"
	"vibr/internal/resolver"
	"vibr/internal/server"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := config.LoadDotEnv(os.Getenv("DOTENV_FILE")); err != nil {
		log.Fatalf("Failed to load .env file: %v", err)
	}
	cfg := config.Load()

	if cfg.SessionSecret == "" {
		if !cfg.IsDev() {
			log.Fatal("SESSION_SECRET is required outside development")
		}
		cfg.SessionSecret = "vibr-development-session-secret"
		log.Println("SESSION_SECRET not set, using the development secret")
	}

	// Analytics database is optional
	deps := server.Deps{}
	var database *db.DB
	if cfg.HasDatabase() {
		var err error
		database, err = db.New(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer database.Close()

		if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
		log.Println("Migrations completed successfully")
		deps.DB = database
	} else {
		log.Println("DATABASE_URL not set, resolution counts kept in memory")
	}
	metrics.Init(database)

	// Phrasebook
	book, err := phrasebook.LoadWithOverlay(cfg.PhrasebookFile)
	if err != nil {
		log.Fatalf("Failed to load phrasebook: %v", err)
	}
	holder := phrasebook.NewHolder(book)
	if cfg.PhrasebookFile != "" && cfg.PhrasebookReloadInterval > 0 {
		reloader := jobs.NewPhrasebookReloader(holder, cfg.PhrasebookFile, cfg.PhrasebookReloadInterval)
		go reloader.Start(ctx)
	}

	// LLM providers share one client; the timeout bounds each attempt.
	providers := llm.DefaultRegistry(&http.Client{Timeout: cfg.LLMTimeout})

	deps.Engine = resolver.New(holder, providers, cfg.LLMMaxRetries)
	deps.Book = holder
	deps.Providers = providers

	srv := server.New(cfg)
	srv.RegisterRoutes(deps)

	// Graceful shutdown
	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("Server started on %s", cfg.ServerAddr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	cancel()
	if err := srv.Shutdown(); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited")
}
