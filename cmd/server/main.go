package main

import (
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"
	"trip-planner-service/internal/api"
	"trip-planner-service/internal/config"
	"trip-planner-service/internal/platform/obs"
	"trip-planner-service/internal/services"

	"github.com/joho/godotenv"
)

// main is the application composition root.
// It wires the optimizer behind the planner port and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg, err := config.Load(config.Get("CONFIG_PATH", ""))
	if err != nil {
		log.Fatal(err)
	}

	logger, err := obs.NewLogger(os.Stdout, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatal(err)
	}
	slog.SetDefault(logger)

	optimizer := services.NewOptimizer(services.OptimizerOptions{
		MaxWaypoints:  cfg.MaxWaypoints,
		MaxConcurrent: cfg.MaxConcurrentSolves,
		SolveTimeout:  cfg.SolveTimeout,
		MaxBatch:      cfg.MaxBatchSize,
		Logger:        logger,
	})
	router := api.NewRouter(optimizer, logger)

	// WriteTimeout leaves room for a full batch of solves at the configured timeout.
	logger.Info("server listening",
		"addr", ":"+cfg.Port,
		"max_waypoints", cfg.MaxWaypoints,
		"max_concurrent_solves", cfg.MaxConcurrentSolves,
	)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      cfg.SolveTimeout + 30*time.Second,
		IdleTimeout:       60 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
