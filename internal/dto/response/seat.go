package response

import "movie-booking/internal/data/entity"

type SeatResponse struct {
	ID       string              `json:"id"`
	Label    string              `json:"label"`
	Row      string              `json:"row"`
	Column   int                 `json:"column"`
	Category entity.SeatCategory `json:"category"`
	Price    int64               `json:"price"`
	Status   entity.SeatStatus   `json:"status"`
}

type SeatMapResponse struct {
	ShowtimeID string         `json:"showtime_id"`
	Seats      []SeatResponse `json:"seats"`
}

// Helper converters
func SeatToResponse(seat *entity.Seat) SeatResponse {
	return SeatResponse{
		ID:       seat.ID(),
		Label:    seat.Label,
		Row:      seat.Row,
		Column:   seat.Column,
		Category: seat.Category,
		Price:    seat.Price,
		Status:   seat.Status,
	}
}

func SeatsToResponse(seats []*entity.Seat) []SeatResponse {
	out := make([]SeatResponse, 0, len(seats))
	for _, s := range seats {
		out = append(out, SeatToResponse(s))
	}
	return out
}
