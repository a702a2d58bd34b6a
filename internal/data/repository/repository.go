package repository

import (
	"movie-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User     UserRepository
	Session  SessionRepository
	Movie    MovieRepository
	Theatre  TheatreRepository
	Showtime ShowtimeRepository
	Seat     SeatRepository
	Booking  BookingRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:     NewUserRepository(db, log),
		Session:  NewSessionRepository(db, log),
		Movie:    NewMovieRepository(db, log),
		Theatre:  NewTheatreRepository(db, log),
		Showtime: NewShowtimeRepository(db, log),
		Seat:     NewSeatRepository(db, log),
		Booking:  NewBookingRepository(db, log),
	}
}
