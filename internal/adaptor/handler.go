package adaptor

import (
	"movie-booking/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth     *AuthHandler
	Movie    *MovieHandler
	Theatre  *TheatreHandler
	Showtime *ShowtimeHandler
	Session  *SessionHandler
	Booking  *BookingHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:     NewAuthHandler(service.Auth, log),
		Movie:    NewMovieHandler(service.Movie, log),
		Theatre:  NewTheatreHandler(service.Theatre, log),
		Showtime: NewShowtimeHandler(service.Showtime, log),
		Session:  NewSessionHandler(service.Session, log),
		Booking:  NewBookingHandler(service.Booking, log),
	}
}
