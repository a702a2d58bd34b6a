package response

import "movie-booking/internal/data/entity"

type TheatreResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	City     string `json:"city"`
}

// Helper converters
func TheatreToResponse(theatre *entity.Theatre) TheatreResponse {
	return TheatreResponse{
		ID:       theatre.ID.String(),
		Name:     theatre.Name,
		Location: theatre.Location,
		City:     theatre.City,
	}
}

func TheatresToResponse(theatres []*entity.Theatre) []TheatreResponse {
	out := make([]TheatreResponse, 0, len(theatres))
	for _, t := range theatres {
		out = append(out, TheatreToResponse(t))
	}
	return out
}
