package response

import (
	"testing"
	"time"

	"movie-booking/internal/data/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestMovieToResponse(t *testing.T) {
	poster := "/cWsBscZzwu5brg9YjNkGewRUvJX.jpg"
	movie := &entity.Movie{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Title:       "The Housemaid",
		PosterPath:  &poster,
		Genres:      []string{"Mystery", "Thriller"},
		Rating:      7.075,
		ReleaseDate: "2025-12-18",
	}

	resp := MovieToResponse(movie)

	assert.Equal(t, movie.ID.String(), resp.ID)
	assert.Equal(t, "The Housemaid", resp.Title)
	assert.Equal(t, "https://image.tmdb.org/t/p/w500"+poster, resp.PosterURL)
	assert.Equal(t, "2025-12-18", resp.ReleaseDate)
	assert.Equal(t, 7.075, resp.Rating)
}
