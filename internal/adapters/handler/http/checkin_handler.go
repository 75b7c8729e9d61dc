package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/BG-legacy/HabitChain-sub001/internal/core/domain"
	"github.com/BG-legacy/HabitChain-sub001/internal/core/ports"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type CheckInHandler struct {
	service ports.CheckInService
}

func NewCheckInHandler(service ports.CheckInService) *CheckInHandler {
	return &CheckInHandler{
		service: service,
	}
}

type recordCheckInRequest struct {
	CompletedAt *time.Time `json:"completed_at"`
	Notes       string     `json:"notes"`
}

func (h *CheckInHandler) RecordCheckIn(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(r)
	if !ok {
		writeError(w, domain.ErrUnauthorized)
		return
	}

	habitID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid habit id", http.StatusBadRequest)
		return
	}

	var req recordCheckInRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
	}

	checkIn, err := h.service.Record(r.Context(), ports.RecordCheckInInput{
		UserID:      userID,
		HabitID:     habitID,
		CompletedAt: req.CompletedAt,
		Notes:       req.Notes,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, checkIn)
}

func (h *CheckInHandler) ListCheckIns(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(r)
	if !ok {
		writeError(w, domain.ErrUnauthorized)
		return
	}

	habitID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid habit id", http.StatusBadRequest)
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	checkIns, err := h.service.ListByHabit(r.Context(), userID, habitID, limit, offset)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, checkIns)
}
