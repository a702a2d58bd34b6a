package wire

import (
	"movie-booking/internal/adaptor"
	"movie-booking/internal/data/repository"
	"movie-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireBooking mounts the booking flow. Everything here requires a valid
// session token.
func wireBooking(
	r chi.Router,
	sessionHandler *adaptor.SessionHandler,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		r.Post("/api/booking-sessions", sessionHandler.StartSession)
		r.Get("/api/booking-sessions/{id}", sessionHandler.GetSession)
		r.Delete("/api/booking-sessions/{id}", sessionHandler.AbandonSession)
		r.Post("/api/booking-sessions/{id}/seats", sessionHandler.ToggleSeat)
		r.Post("/api/booking-sessions/{id}/advance", sessionHandler.Advance)
		r.Post("/api/booking-sessions/{id}/retreat", sessionHandler.Retreat)
		r.Post("/api/booking-sessions/{id}/commit", bookingHandler.CommitBooking)

		r.Get("/api/user/bookings", bookingHandler.GetUserBookings)
		r.Get("/api/user/bookings/{id}", bookingHandler.GetBooking)
	})
}
