package handlers

import (
	"fmt"
	"net/http"
	"trip-planner-service/internal/api/dto"
	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/ports"
)

type TripHandler struct {
	Planner ports.TripPlanner
}

// Optimize solves one trip from a posted duration/distance matrix pair.
func (h *TripHandler) Optimize(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
		return
	}

	var body dto.OptimizeRequest
	if err := decodeJSON(w, r, &body); err != nil {
		writeError(w, r, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	req, err := body.TripRequest()
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	plan, err := h.Planner.PlanTrip(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	res, err := dto.NewTripResponse(plan, body.IncludeGeoJSON)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, res)
}

// OptimizeBatch solves several independent trips; results keep request order.
func (h *TripHandler) OptimizeBatch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
		return
	}

	var body dto.BatchOptimizeRequest
	if err := decodeJSON(w, r, &body); err != nil {
		writeError(w, r, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	reqs := make([]domain.TripRequest, 0, len(body.Trips))
	for i, t := range body.Trips {
		req, err := t.TripRequest()
		if err != nil {
			writeServiceError(w, r, fmt.Errorf("trip %d: %w", i, err))
			return
		}
		reqs = append(reqs, req)
	}

	plans, err := h.Planner.PlanTrips(r.Context(), reqs)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	res := dto.BatchTripResponse{Trips: make([]dto.TripResponse, 0, len(plans))}
	for i, p := range plans {
		tr, err := dto.NewTripResponse(p, body.Trips[i].IncludeGeoJSON)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		res.Trips = append(res.Trips, tr)
	}

	writeJSON(w, r, http.StatusOK, res)
}
