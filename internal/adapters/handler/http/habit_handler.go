package http

import (
	"encoding/json"
	"net/http"

	"github.com/BG-legacy/HabitChain-sub001/internal/core/domain"
	"github.com/BG-legacy/HabitChain-sub001/internal/core/ports"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type HabitHandler struct {
	service ports.HabitService
}

func NewHabitHandler(service ports.HabitService) *HabitHandler {
	return &HabitHandler{
		service: service,
	}
}

type createHabitRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Frequency   string `json:"frequency"`
}

type updateHabitRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	IsArchived  *bool   `json:"is_archived"`
}

func (h *HabitHandler) CreateHabit(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(r)
	if !ok {
		writeError(w, domain.ErrUnauthorized)
		return
	}

	var req createHabitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	habit, err := h.service.Create(r.Context(), ports.CreateHabitInput{
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
		Frequency:   req.Frequency,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, habit)
}

func (h *HabitHandler) GetHabit(w http.ResponseWriter, r *http.Request) {
	userID, habitID, ok := h.requestIDs(w, r)
	if !ok {
		return
	}

	habit, err := h.service.Get(r.Context(), userID, habitID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, habit)
}

func (h *HabitHandler) ListHabits(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(r)
	if !ok {
		writeError(w, domain.ErrUnauthorized)
		return
	}

	habits, err := h.service.List(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, habits)
}

func (h *HabitHandler) UpdateHabit(w http.ResponseWriter, r *http.Request) {
	userID, habitID, ok := h.requestIDs(w, r)
	if !ok {
		return
	}

	var req updateHabitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	habit, err := h.service.Update(r.Context(), userID, habitID, ports.UpdateHabitInput{
		Name:        req.Name,
		Description: req.Description,
		IsArchived:  req.IsArchived,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, habit)
}

func (h *HabitHandler) ArchiveHabit(w http.ResponseWriter, r *http.Request) {
	userID, habitID, ok := h.requestIDs(w, r)
	if !ok {
		return
	}

	if err := h.service.Archive(r.Context(), userID, habitID); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *HabitHandler) requestIDs(w http.ResponseWriter, r *http.Request) (userID, habitID uuid.UUID, ok bool) {
	userID, ok = userIDFrom(r)
	if !ok {
		writeError(w, domain.ErrUnauthorized)
		return uuid.Nil, uuid.Nil, false
	}

	habitID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid habit id", http.StatusBadRequest)
		return uuid.Nil, uuid.Nil, false
	}
	return userID, habitID, true
}
