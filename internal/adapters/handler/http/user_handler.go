package http

import (
	"net/http"

	"github.com/BG-legacy/HabitChain-sub001/internal/core/domain"
	"github.com/BG-legacy/HabitChain-sub001/internal/core/ports"
)

type UserHandler struct {
	service ports.UserService
	badges  ports.BadgeService
}

func NewUserHandler(service ports.UserService, badges ports.BadgeService) *UserHandler {
	return &UserHandler{
		service: service,
		badges:  badges,
	}
}

func (h *UserHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(r)
	if !ok {
		writeError(w, domain.ErrUnauthorized)
		return
	}

	user, err := h.service.GetByID(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

func (h *UserHandler) GetMyBadges(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(r)
	if !ok {
		writeError(w, domain.ErrUnauthorized)
		return
	}

	userBadges, err := h.badges.ListForUser(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, userBadges)
}
