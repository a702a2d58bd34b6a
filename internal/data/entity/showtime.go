package entity

import "github.com/google/uuid"

// Showtime is a scheduled screening of a movie at a theatre. Immutable once
// created; seats and bookings reference it by id.
type Showtime struct {
	BaseSimple
	MovieID   uuid.UUID `db:"movie_id"`
	TheatreID uuid.UUID `db:"theatre_id"`
	ShowTime  string    `db:"show_time"` // "10:00 AM"
	Label     string    `db:"label"`     // "Morning Show"
}
