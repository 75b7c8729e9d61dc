package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/BG-legacy/HabitChain-sub001/internal/core/domain"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}

// writeError maps domain sentinels onto HTTP statuses. Anything unrecognized
// is a 500 with a generic body so internals do not leak.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	message := "internal server error"

	switch {
	case errors.Is(err, domain.ErrValidation):
		status = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, domain.ErrUnauthorized),
		errors.Is(err, domain.ErrInvalidToken),
		errors.Is(err, domain.ErrInactiveUser):
		status = http.StatusUnauthorized
		message = err.Error()
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrHabitNotFound),
		errors.Is(err, domain.ErrCheckInNotFound),
		errors.Is(err, domain.ErrTokenNotFound):
		status = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, domain.ErrAlreadyCheckedIn),
		errors.Is(err, domain.ErrDuplicateUser):
		status = http.StatusConflict
		message = err.Error()
	case errors.Is(err, domain.ErrStorageUnavailable):
		status = http.StatusServiceUnavailable
		message = domain.ErrStorageUnavailable.Error()
	}

	writeJSON(w, status, map[string]string{"error": message})
}
