package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/BG-legacy/HabitChain-sub001/internal/core/domain"
	"github.com/BG-legacy/HabitChain-sub001/internal/core/ports"
	"github.com/google/uuid"
)

type EncouragementHandler struct {
	service ports.EncouragementService
}

func NewEncouragementHandler(service ports.EncouragementService) *EncouragementHandler {
	return &EncouragementHandler{
		service: service,
	}
}

type sendEncouragementRequest struct {
	ToUserID uuid.UUID  `json:"to_user_id"`
	HabitID  *uuid.UUID `json:"habit_id"`
	Message  string     `json:"message"`
}

func (h *EncouragementHandler) Send(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(r)
	if !ok {
		writeError(w, domain.ErrUnauthorized)
		return
	}

	var req sendEncouragementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	encouragement, err := h.service.Send(r.Context(), ports.SendEncouragementInput{
		FromUserID: userID,
		ToUserID:   req.ToUserID,
		HabitID:    req.HabitID,
		Message:    req.Message,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, encouragement)
}

func (h *EncouragementHandler) ListReceived(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(r)
	if !ok {
		writeError(w, domain.ErrUnauthorized)
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	encouragements, err := h.service.ListReceived(r.Context(), userID, limit, offset)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, encouragements)
}
