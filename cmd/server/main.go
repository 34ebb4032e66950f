package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/ohiapp/ohi-gateway/app/api"
	"github.com/ohiapp/ohi-gateway/app/cache"
	"github.com/ohiapp/ohi-gateway/app/cfg"
	"github.com/ohiapp/ohi-gateway/app/demo"
	"github.com/ohiapp/ohi-gateway/app/envelope"
	"github.com/ohiapp/ohi-gateway/app/upstream"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	// Load .env before flag parsing so env-tagged options pick it up
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	appConfig, err := cfg.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if appConfig == nil {
		// Help was shown, exit gracefully
		return
	}

	if appConfig.Debug {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	log.Println("Starting Ohi Gateway...")
	log.Printf("Proxying upstream %s (%s)", appConfig.UpstreamBaseURL, appConfig.UpstreamEnv)

	// Demo fixtures
	fixture, err := demo.Load(appConfig.FixturesDir)
	if err != nil {
		log.Fatalf("Failed to load demo fixtures: %v", err)
	}
	if appConfig.DemoMode {
		log.Printf("Demo mode enabled (fixture user: %s)", fixture.User.FullName)
	} else {
		log.Println("Demo mode disabled: profile failures surface as errors")
	}

	// Core components
	responseCache := cache.New()
	defer responseCache.Close()

	httpClient := &http.Client{Timeout: time.Duration(appConfig.UpstreamTimeout) * time.Second}
	upstreamClient := upstream.NewClient(httpClient, appConfig.UpstreamBaseURL, appConfig.UserAgent, responseCache)
	normalizer := envelope.NewNormalizer()

	// Initialize HTTP server
	cacheTTL := time.Duration(appConfig.CacheTTL) * time.Second
	apiHandler := api.NewHandler(upstreamClient, normalizer, cacheTTL)
	pageHandler := api.NewPageHandler(upstreamClient, normalizer, cacheTTL, fixture, appConfig.DemoMode)
	server := api.NewServer(apiHandler, pageHandler, appConfig.Version)

	httpServer := &http.Server{
		Addr:         ":" + appConfig.Port,
		Handler:      server,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start HTTP server in a goroutine
	serverErrChan := make(chan error, 1)
	go func() {
		log.Printf("Starting HTTP server on port %s", appConfig.Port)
		log.Printf("API endpoints available:")
		log.Printf("  User profile:  http://localhost:%s/api/user/<userId>", appConfig.Port)
		log.Printf("  Posts:         http://localhost:%s/api/posts/<userId>?brandStories=true", appConfig.Port)
		log.Printf("  Stories:       http://localhost:%s/api/stories/<brandId>", appConfig.Port)
		log.Printf("  Brand posts:   http://localhost:%s/api/brand-posts/<brandId>?page=0&pageSize=20", appConfig.Port)
		log.Printf("  Brand page:    http://localhost:%s/pages/brand/<brandId>", appConfig.Port)
		log.Printf("  Profile page:  http://localhost:%s/pages/profile/<userId>", appConfig.Port)
		log.Printf("  Health check:  http://localhost:%s/health", appConfig.Port)

		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// Wait for interrupt signal or server error
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	log.Println("Ohi Gateway started successfully!")

	select {
	case sig := <-sigChan:
		log.Printf("Received signal: %v", sig)
	case err := <-serverErrChan:
		log.Printf("Server error: %v", err)
	}

	// Graceful shutdown
	log.Println("Shutting down server gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	} else {
		log.Println("HTTP server stopped")
	}

	log.Println("Ohi Gateway shutdown complete")
}
