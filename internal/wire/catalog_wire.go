package wire

import (
	"movie-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireCatalog mounts the public browse surface: movies, theatres,
// showtimes and the seat map.
func wireCatalog(
	r chi.Router,
	movieHandler *adaptor.MovieHandler,
	theatreHandler *adaptor.TheatreHandler,
	showtimeHandler *adaptor.ShowtimeHandler,
) {
	r.Get("/api/movies", movieHandler.ListMovies)
	r.Get("/api/movies/{id}", movieHandler.GetMovie)

	r.Get("/api/theatres", theatreHandler.ListTheatres)

	r.Get("/api/showtimes", showtimeHandler.ListShowtimes)
	r.Get("/api/showtimes/{id}", showtimeHandler.GetShowtime)
	r.Get("/api/showtimes/{id}/seats", showtimeHandler.GetSeats)
}
