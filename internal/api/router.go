package api

import (
	"log/slog"
	"net/http"
	"trip-planner-service/internal/api/handlers"
	"trip-planner-service/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of the concrete planner).
func NewRouter(planner ports.TripPlanner, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}

	mux := http.NewServeMux()

	tripHandler := &handlers.TripHandler{Planner: planner}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/trips/optimize", tripHandler.Optimize)
	mux.HandleFunc("/trips/optimize/batch", tripHandler.OptimizeBatch)

	// The request id must be in the context before the logger reads it.
	return requestIDMiddleware(loggingMiddleware(logger, mux))
}
