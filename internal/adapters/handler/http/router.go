package http

import (
	"net/http"

	"github.com/BG-legacy/HabitChain-sub001/internal/core/ports"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func NewHandler(
	tokens ports.TokenService,
	authHandler *AuthHandler,
	userHandler *UserHandler,
	habitHandler *HabitHandler,
	checkInHandler *CheckInHandler,
	badgeHandler *BadgeHandler,
	encouragementHandler *EncouragementHandler,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.Refresh)
			r.Post("/logout", authHandler.Logout)
		})

		r.Get("/badges", badgeHandler.ListBadges)

		r.Group(func(r chi.Router) {
			r.Use(Authenticate(tokens))

			r.Get("/me", userHandler.GetMe)
			r.Get("/me/badges", userHandler.GetMyBadges)
			r.Get("/me/encouragements", encouragementHandler.ListReceived)
			r.Post("/encouragements", encouragementHandler.Send)

			r.Route("/habits", func(r chi.Router) {
				r.Post("/", habitHandler.CreateHabit)
				r.Get("/", habitHandler.ListHabits)
				r.Get("/{id}", habitHandler.GetHabit)
				r.Put("/{id}", habitHandler.UpdateHabit)
				r.Delete("/{id}", habitHandler.ArchiveHabit)
				r.Post("/{id}/check-ins", checkInHandler.RecordCheckIn)
				r.Get("/{id}/check-ins", checkInHandler.ListCheckIns)
			})
		})
	})

	return r
}
