package http

import (
	"net/http"

	"github.com/BG-legacy/HabitChain-sub001/internal/core/ports"
)

type BadgeHandler struct {
	service ports.BadgeService
}

func NewBadgeHandler(service ports.BadgeService) *BadgeHandler {
	return &BadgeHandler{
		service: service,
	}
}

func (h *BadgeHandler) ListBadges(w http.ResponseWriter, r *http.Request) {
	badges, err := h.service.ListAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, badges)
}
