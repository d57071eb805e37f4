package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/pereras/fueltrackr/backend/internal/service"
)

// createTravelLogRequest is the body for POST /travels.
// Date is a "2006-01-02" string; an empty date defaults to today.
// The owner is never part of the body — it comes from the session.
type createTravelLogRequest struct {
	Date       string  `json:"date"`
	MeterStart float64 `json:"meter_start"`
	MeterEnd   float64 `json:"meter_end"`
	OfficialKm float64 `json:"official_km"`
	PrivateKm  float64 `json:"private_km"`
	Remarks    string  `json:"remarks"`
}

// CreateTravelLog handles POST /travels.
// The stored total_km is derived server-side from the meter readings, so
// whatever total a client previews is recomputed with the same function here.
func (s *Server) CreateTravelLog(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "no valid session")
		return
	}

	var req createTravelLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", "malformed request body")
		return
	}

	in := service.TravelLogInput{
		MeterStart: req.MeterStart,
		MeterEnd:   req.MeterEnd,
		OfficialKm: req.OfficialKm,
		PrivateKm:  req.PrivateKm,
		Remarks:    req.Remarks,
	}
	if req.Date != "" {
		date, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, "validation_error", "date must be formatted as YYYY-MM-DD")
			return
		}
		in.Date = date
	}

	created, err := s.travels.Create(r.Context(), id, in)
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// ListMyTravelLogs handles GET /travels/me.
func (s *Server) ListMyTravelLogs(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "no valid session")
		return
	}

	logs, err := s.travels.ListMine(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, logs)
}

// ListAllTravelLogs handles GET /travels/all (admin only).
func (s *Server) ListAllTravelLogs(w http.ResponseWriter, r *http.Request) {
	logs, err := s.travels.ListAll(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, logs)
}

// GetSummary handles GET /travels/summary (admin only).
// The aggregate is recomputed from the live collections on every call;
// nothing is cached, so it can never be stale.
func (s *Server) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := s.travels.Summarize(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, summary)
}
