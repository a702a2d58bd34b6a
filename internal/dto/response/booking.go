package response

import (
	"time"

	"movie-booking/internal/data/entity"
	"movie-booking/pkg/utils"
)

type PricingResponse struct {
	Subtotal int64  `json:"subtotal"`
	Tax      int64  `json:"tax"`
	Total    int64  `json:"total"`
	Currency string `json:"currency"`
}

type SessionResponse struct {
	ID         string             `json:"id"`
	ShowtimeID string             `json:"showtime_id"`
	Step       entity.SessionStep `json:"step"`
	Seats      []SeatResponse     `json:"seats"`
	Selected   []string           `json:"selected"`
	Pricing    PricingResponse    `json:"pricing"`
	UpdatedAt  time.Time          `json:"updated_at"`
}

type BookingSeatResponse struct {
	Label    string              `json:"label"`
	Category entity.SeatCategory `json:"category"`
	Price    int64               `json:"price"`
}

type BookingResponse struct {
	ID             string                `json:"id"`
	Ref            string                `json:"ref"`
	MovieTitle     string                `json:"movie_title"`
	PosterURL      string                `json:"poster_url,omitempty"`
	TheatreName    string                `json:"theatre_name"`
	TheatreAddress string                `json:"theatre_address"`
	TheatreCity    string                `json:"theatre_city"`
	ShowTime       string                `json:"show_time"`
	ShowLabel      string                `json:"show_label"`
	Seats          []BookingSeatResponse `json:"seats"`
	Pricing        PricingResponse       `json:"pricing"`
	PaymentMethod  entity.PaymentMethod  `json:"payment_method"`
	PaymentStatus  entity.PaymentStatus  `json:"payment_status"`
	Status         entity.BookingStatus  `json:"status"`
	CreatedAt      time.Time             `json:"created_at"`
}

// Helper converters
func SessionToResponse(session *entity.BookingSession, taxPercent int, currency string) SessionResponse {
	selected := session.Selection.Labels()
	if selected == nil {
		selected = []string{}
	}

	return SessionResponse{
		ID:         session.ID.String(),
		ShowtimeID: session.ShowtimeID.String(),
		Step:       session.Step,
		Seats:      SeatsToResponse(session.Seats),
		Selected:   selected,
		Pricing: PricingResponse{
			Subtotal: session.Selection.Subtotal(),
			Tax:      session.Selection.Tax(taxPercent),
			Total:    session.Selection.Total(taxPercent),
			Currency: currency,
		},
		UpdatedAt: session.UpdatedAt,
	}
}

func BookingToResponse(booking *entity.Booking) BookingResponse {
	seats := make([]BookingSeatResponse, 0, len(booking.Seats))
	for _, s := range booking.Seats {
		seats = append(seats, BookingSeatResponse{
			Label:    s.Label,
			Category: s.Category,
			Price:    s.Price,
		})
	}

	var poster string
	if booking.PosterPath != nil {
		poster = *booking.PosterPath
	}

	return BookingResponse{
		ID:             booking.ID.String(),
		Ref:            booking.Ref,
		MovieTitle:     booking.MovieTitle,
		PosterURL:      utils.ResolveImageURL(poster, "w500", booking.MovieTitle),
		TheatreName:    booking.TheatreName,
		TheatreAddress: booking.TheatreAddress,
		TheatreCity:    booking.TheatreCity,
		ShowTime:       booking.ShowTime,
		ShowLabel:      booking.ShowLabel,
		Seats:          seats,
		Pricing: PricingResponse{
			Subtotal: booking.Subtotal,
			Tax:      booking.Tax,
			Total:    booking.Total,
			Currency: booking.Currency,
		},
		PaymentMethod: booking.PaymentMethod,
		PaymentStatus: booking.PaymentStatus,
		Status:        booking.Status,
		CreatedAt:     booking.CreatedAt,
	}
}

func BookingsToResponse(bookings []*entity.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, BookingToResponse(b))
	}
	return out
}
