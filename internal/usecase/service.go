package usecase

import (
	"movie-booking/internal/data/cache"
	"movie-booking/internal/data/repository"
	"movie-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth     AuthService
	Movie    MovieService
	Theatre  TheatreService
	Showtime ShowtimeService
	Session  BookingSessionService
	Booking  BookingService
}

func NewService(repo *repository.Repository, seatCache *cache.SeatCache, config *utils.Config, log *zap.Logger) *Service {
	showtime := NewShowtimeService(repo, seatCache, config, log)
	session := NewBookingSessionService(showtime, config, log)

	return &Service{
		Auth:     NewAuthService(repo, config, log),
		Movie:    NewMovieService(repo, log),
		Theatre:  NewTheatreService(repo, log),
		Showtime: showtime,
		Session:  session,
		Booking:  NewBookingService(repo, session, seatCache, config, log),
	}
}
