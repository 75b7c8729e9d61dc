package http

import (
	"context"
	"net"
	"net/http"
	"strings"

	"github.com/BG-legacy/HabitChain-sub001/internal/core/domain"
	"github.com/BG-legacy/HabitChain-sub001/internal/core/ports"
	"github.com/google/uuid"
)

type contextKey string

const UserIDKey contextKey = "user_id"

// Authenticate verifies the bearer access token and stores the subject's user
// id in the request context.
func Authenticate(tokens ports.TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				writeError(w, domain.ErrUnauthorized)
				return
			}

			claims, err := tokens.ValidateAccessToken(token)
			if err != nil {
				writeError(w, domain.ErrInvalidToken)
				return
			}
			if !claims.IsActive {
				writeError(w, domain.ErrInactiveUser)
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func userIDFrom(r *http.Request) (uuid.UUID, bool) {
	userID, ok := r.Context().Value(UserIDKey).(uuid.UUID)
	return userID, ok
}

func clientIP(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}
