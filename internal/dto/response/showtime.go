package response

import "movie-booking/internal/data/entity"

type ShowtimeResponse struct {
	ID        string `json:"id"`
	MovieID   string `json:"movie_id"`
	TheatreID string `json:"theatre_id"`
	ShowTime  string `json:"show_time"`
	Label     string `json:"label"`
}

// ShowtimeDetailResponse carries the joined movie and theatre so the
// booking flow can render a header without extra round trips.
type ShowtimeDetailResponse struct {
	ShowtimeResponse
	Movie   *MovieResponse   `json:"movie,omitempty"`
	Theatre *TheatreResponse `json:"theatre,omitempty"`
}

// Helper converters
func ShowtimeToResponse(showtime *entity.Showtime) ShowtimeResponse {
	return ShowtimeResponse{
		ID:        showtime.ID.String(),
		MovieID:   showtime.MovieID.String(),
		TheatreID: showtime.TheatreID.String(),
		ShowTime:  showtime.ShowTime,
		Label:     showtime.Label,
	}
}

func ShowtimesToResponse(showtimes []*entity.Showtime) []ShowtimeResponse {
	out := make([]ShowtimeResponse, 0, len(showtimes))
	for _, s := range showtimes {
		out = append(out, ShowtimeToResponse(s))
	}
	return out
}

func ShowtimeToDetailResponse(showtime *entity.Showtime, movie *entity.Movie, theatre *entity.Theatre) ShowtimeDetailResponse {
	resp := ShowtimeDetailResponse{
		ShowtimeResponse: ShowtimeToResponse(showtime),
	}
	if movie != nil {
		m := MovieToResponse(movie)
		resp.Movie = &m
	}
	if theatre != nil {
		t := TheatreToResponse(theatre)
		resp.Theatre = &t
	}
	return resp
}
