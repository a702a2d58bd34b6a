package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type SeatStatus string

const (
	SeatAvailable SeatStatus = "available"
	SeatBooked    SeatStatus = "booked"
)

type SeatCategory string

const (
	CategoryPremium SeatCategory = "Premium"
	CategoryGeneral SeatCategory = "General"
)

// Hall layout: 10 rows of 10, first two rows are the premium tier.
const (
	SeatRowLabels   = "ABCDEFGHIJ"
	SeatsPerRow     = 10
	PremiumRowCount = 2
)

// PriceTable maps a seat category to its unit price in whole currency units.
type PriceTable struct {
	Premium int64
	General int64
}

// DefaultPrices matches the deployed configuration (NPR).
var DefaultPrices = PriceTable{Premium: 650, General: 350}

func (p PriceTable) For(category SeatCategory) int64 {
	if category == CategoryPremium {
		return p.Premium
	}
	return p.General
}

// Seat is one bookable position tied to exactly one showtime. Its identity
// is the (showtime, label) pair, so repeated grid synthesis is idempotent.
type Seat struct {
	ShowtimeID uuid.UUID    `db:"showtime_id"`
	Label      string       `db:"label"` // A1, A2, B1, etc.
	Row        string       `db:"seat_row"`
	Column     int          `db:"seat_column"`
	Category   SeatCategory `db:"category"`
	Price      int64        `db:"price"`
	Status     SeatStatus   `db:"status"`
	BookedBy   *uuid.UUID   `db:"booked_by"`
	BookingID  *uuid.UUID   `db:"booking_id"`
	BookedAt   *time.Time   `db:"booked_at"`
}

// ID is the deterministic composite identifier.
func (s *Seat) ID() string {
	return s.ShowtimeID.String() + "_" + s.Label
}

func categoryForRowIndex(i int) SeatCategory {
	if i < PremiumRowCount {
		return CategoryPremium
	}
	return CategoryGeneral
}

// SynthesizeSeats builds the default in-memory grid for a showtime that has
// no persisted seat records yet: every seat available, premium pricing on
// the first two rows.
func SynthesizeSeats(showtimeID uuid.UUID, prices PriceTable) []*Seat {
	seats := make([]*Seat, 0, len(SeatRowLabels)*SeatsPerRow)
	for i, row := range SeatRowLabels {
		category := categoryForRowIndex(i)
		for col := 1; col <= SeatsPerRow; col++ {
			seats = append(seats, &Seat{
				ShowtimeID: showtimeID,
				Label:      fmt.Sprintf("%c%d", row, col),
				Row:        string(row),
				Column:     col,
				Category:   category,
				Price:      prices.For(category),
				Status:     SeatAvailable,
			})
		}
	}
	return seats
}
