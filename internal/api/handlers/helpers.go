package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"trip-planner-service/internal/services"
)

// maxBodyBytes caps request bodies; a 16×16 matrix pair is a few KB.
const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.ErrorContext(r.Context(), "encode failed", "method", r.Method, "path", r.URL.Path, "err", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, code, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg, "code": code})
}

// decodeJSON reads exactly one JSON object into v, rejecting unknown fields.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("invalid json body: %w", err)
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return errors.New("body must contain only one JSON object")
	}
	return nil
}

var errorCodes = []struct {
	err  error
	code string
}{
	{services.ErrEmptyInput, "empty_input"},
	{services.ErrInvalidDimension, "invalid_dimension"},
	{services.ErrNegativeCost, "negative_cost"},
	{services.ErrSizeLimitExceeded, "size_limit_exceeded"},
	{services.ErrCostTooLarge, "cost_too_large"},
	{services.ErrMissingEntry, "missing_entry"},
	{services.ErrUnknownPolicy, "unknown_policy"},
	{services.ErrWaypointMismatch, "waypoint_mismatch"},
	{services.ErrEmptyWaypointName, "empty_waypoint_name"},
	{services.ErrInvalidCoordinates, "invalid_coordinates"},
	{services.ErrMissingCoordinates, "missing_coordinates"},
	{services.ErrBatchTooLarge, "batch_too_large"},
}

// writeServiceError maps a planning error to a status code and stable error code.
// Unknown errors are logged and hidden behind a generic 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	for _, ec := range errorCodes {
		if errors.Is(err, ec.err) {
			writeError(w, r, http.StatusUnprocessableEntity, ec.code, err.Error())
			return
		}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		writeError(w, r, http.StatusGatewayTimeout, "timeout", "solve timed out")
		return
	}
	if errors.Is(err, context.Canceled) {
		// Client went away; nobody reads this response.
		slog.InfoContext(r.Context(), "request cancelled", "path", r.URL.Path)
		return
	}

	slog.ErrorContext(r.Context(), "plan trip failed", "path", r.URL.Path, "err", err)
	writeError(w, r, http.StatusInternalServerError, "internal", "internal server error")
}
