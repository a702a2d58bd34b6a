package entity

import (
	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
)

type PaymentStatus string

const (
	PaymentStatusCompleted PaymentStatus = "completed"
)

type PaymentMethod string

const (
	PaymentMethodEsewa  PaymentMethod = "esewa"
	PaymentMethodKhalti PaymentMethod = "khalti"
	PaymentMethodCard   PaymentMethod = "card"
	PaymentMethodCash   PaymentMethod = "cash"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodEsewa, PaymentMethodKhalti, PaymentMethodCard, PaymentMethodCash:
		return true
	}
	return false
}

// Booking is the immutable record created at commit time. Movie, theatre
// and showtime display fields are denormalized at creation so history
// renders without re-joining.
type Booking struct {
	BaseSimple
	Ref            string        `db:"ref"`
	UserID         uuid.UUID     `db:"user_id"`
	UserEmail      string        `db:"user_email"`
	UserName       string        `db:"user_name"`
	ShowtimeID     uuid.UUID     `db:"showtime_id"`
	MovieID        uuid.UUID     `db:"movie_id"`
	MovieTitle     string        `db:"movie_title"`
	PosterPath     *string       `db:"poster_path"`
	TheatreID      uuid.UUID     `db:"theatre_id"`
	TheatreName    string        `db:"theatre_name"`
	TheatreAddress string        `db:"theatre_address"`
	TheatreCity    string        `db:"theatre_city"`
	ShowTime       string        `db:"show_time"`
	ShowLabel      string        `db:"show_label"`
	Subtotal       int64         `db:"subtotal"`
	Tax            int64         `db:"tax"`
	Total          int64         `db:"total"`
	Currency       string        `db:"currency"`
	PaymentMethod  PaymentMethod `db:"payment_method"`
	PaymentStatus  PaymentStatus `db:"payment_status"`
	Status         BookingStatus `db:"status"`

	// Seats is the per-seat breakdown, loaded alongside the booking.
	Seats []BookingSeat
}

// BookingSeat is one line of a booking's seat breakdown.
type BookingSeat struct {
	BookingID uuid.UUID    `db:"booking_id"`
	Label     string       `db:"label"`
	Category  SeatCategory `db:"category"`
	Price     int64        `db:"price"`
}

// SeatLabels returns the booked seat labels in breakdown order.
func (b *Booking) SeatLabels() []string {
	labels := make([]string, len(b.Seats))
	for i, s := range b.Seats {
		labels[i] = s.Label
	}
	return labels
}
