package response

import (
	"movie-booking/internal/data/entity"
	"movie-booking/pkg/utils"
)

type MovieResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Overview    *string  `json:"overview,omitempty"`
	PosterURL   string   `json:"poster_url"`
	BackdropURL string   `json:"backdrop_url,omitempty"`
	Genres      []string `json:"genres"`
	Rating      float64  `json:"rating"`
	ReleaseDate string   `json:"release_date"`
	TrailerID   *string  `json:"trailer_id,omitempty"`
}

// Helper converters
func MovieToResponse(movie *entity.Movie) MovieResponse {
	var poster, backdrop string
	if movie.PosterPath != nil {
		poster = *movie.PosterPath
	}
	if movie.BackdropPath != nil {
		backdrop = *movie.BackdropPath
	}

	return MovieResponse{
		ID:          movie.ID.String(),
		Title:       movie.Title,
		Overview:    movie.Overview,
		PosterURL:   utils.ResolveImageURL(poster, "w500", movie.Title),
		BackdropURL: utils.ResolveImageURL(backdrop, "original", movie.Title),
		Genres:      movie.Genres,
		Rating:      movie.Rating,
		ReleaseDate: movie.ReleaseDate,
		TrailerID:   movie.TrailerID,
	}
}

func MoviesToResponse(movies []*entity.Movie) []MovieResponse {
	out := make([]MovieResponse, 0, len(movies))
	for _, m := range movies {
		out = append(out, MovieToResponse(m))
	}
	return out
}
