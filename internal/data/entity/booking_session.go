package entity

import (
	"time"

	"github.com/google/uuid"
)

// SessionStep is the linear wizard position: review -> seat_pick -> payment.
type SessionStep string

const (
	StepReview   SessionStep = "review"
	StepSeatPick SessionStep = "seat_pick"
	StepPayment  SessionStep = "payment"
)

var stepOrder = map[SessionStep]int{
	StepReview:   0,
	StepSeatPick: 1,
	StepPayment:  2,
}

func (s SessionStep) ordinal() int {
	return stepOrder[s]
}

// Selection is the ephemeral set of seats the user has tentatively chosen.
// It is owned exclusively by one booking session and never persisted.
type Selection struct {
	seats []*Seat
}

// Toggle adds the seat if absent, removes it if present. A booked seat is
// never added and never changes the selection. Returns whether the seat is
// selected after the call.
func (sel *Selection) Toggle(seat *Seat) bool {
	if seat.Status == SeatBooked {
		return false
	}

	for i, s := range sel.seats {
		if s.Label == seat.Label {
			sel.seats = append(sel.seats[:i], sel.seats[i+1:]...)
			return false
		}
	}

	sel.seats = append(sel.seats, seat)
	return true
}

// Remove drops a seat by label, if present.
func (sel *Selection) Remove(label string) {
	for i, s := range sel.seats {
		if s.Label == label {
			sel.seats = append(sel.seats[:i], sel.seats[i+1:]...)
			return
		}
	}
}

func (sel *Selection) Contains(label string) bool {
	for _, s := range sel.seats {
		if s.Label == label {
			return true
		}
	}
	return false
}

func (sel *Selection) Len() int {
	return len(sel.seats)
}

func (sel *Selection) Seats() []*Seat {
	out := make([]*Seat, len(sel.seats))
	copy(out, sel.seats)
	return out
}

func (sel *Selection) Labels() []string {
	labels := make([]string, len(sel.seats))
	for i, s := range sel.seats {
		labels[i] = s.Label
	}
	return labels
}

// Subtotal is the sum of the selected seats' unit prices.
func (sel *Selection) Subtotal() int64 {
	var sum int64
	for _, s := range sel.seats {
		sum += s.Price
	}
	return sum
}

// Tax is taxPercent of the subtotal, rounded half-up to the nearest whole
// currency unit.
func (sel *Selection) Tax(taxPercent int) int64 {
	return (sel.Subtotal()*int64(taxPercent) + 50) / 100
}

// Total is subtotal plus tax.
func (sel *Selection) Total(taxPercent int) int64 {
	return sel.Subtotal() + sel.Tax(taxPercent)
}

// BookingSession tracks one user's in-progress flow from showtime review to
// payment. All methods are pure in-memory mutations; the session store
// serializes access.
type BookingSession struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	ShowtimeID uuid.UUID
	Step       SessionStep
	Seats      []*Seat // resolved inventory, keyed by label
	Selection  Selection
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func NewBookingSession(userID, showtimeID uuid.UUID, seats []*Seat) *BookingSession {
	now := time.Now()
	return &BookingSession{
		ID:         uuid.New(),
		UserID:     userID,
		ShowtimeID: showtimeID,
		Step:       StepReview,
		Seats:      seats,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// Clone returns a deep copy of the session. The commit path works on a
// clone so concurrent toggles on the live session cannot move the totals
// under it.
func (bs *BookingSession) Clone() *BookingSession {
	out := &BookingSession{
		ID:         bs.ID,
		UserID:     bs.UserID,
		ShowtimeID: bs.ShowtimeID,
		Step:       bs.Step,
		CreatedAt:  bs.CreatedAt,
		UpdatedAt:  bs.UpdatedAt,
	}

	out.Seats = make([]*Seat, len(bs.Seats))
	for i, s := range bs.Seats {
		seat := *s
		out.Seats[i] = &seat
	}

	for _, s := range bs.Selection.seats {
		if seat := out.SeatByLabel(s.Label); seat != nil {
			out.Selection.seats = append(out.Selection.seats, seat)
		}
	}

	return out
}

// SeatByLabel finds a seat in the resolved inventory.
func (bs *BookingSession) SeatByLabel(label string) *Seat {
	for _, s := range bs.Seats {
		if s.Label == label {
			return s
		}
	}
	return nil
}

// ToggleSeat flips the selection state of the labelled seat. Unknown labels
// fail with ErrNotFound; booked seats are a silent no-op per the toggle
// contract.
func (bs *BookingSession) ToggleSeat(label string) (bool, error) {
	seat := bs.SeatByLabel(label)
	if seat == nil {
		return false, ErrNotFound
	}

	selected := bs.Selection.Toggle(seat)
	bs.UpdatedAt = time.Now()
	return selected, nil
}

// Advance moves one step forward when the next step's preconditions hold.
func (bs *BookingSession) Advance() error {
	switch bs.Step {
	case StepReview:
		// Entering seat selection needs a resolved seat inventory.
		if len(bs.Seats) == 0 {
			return ErrInvalidState
		}
		bs.Step = StepSeatPick
	case StepSeatPick:
		if bs.Selection.Len() == 0 {
			return ErrEmptySelection
		}
		bs.Step = StepPayment
	default:
		return ErrInvalidState
	}

	bs.UpdatedAt = time.Now()
	return nil
}

// Retreat returns to any earlier step. The selection is preserved so a
// retreat-then-advance round trip loses nothing.
func (bs *BookingSession) Retreat(to SessionStep) error {
	if _, ok := stepOrder[to]; !ok {
		return ErrInvalidState
	}
	if to.ordinal() >= bs.Step.ordinal() {
		return ErrInvalidState
	}

	bs.Step = to
	bs.UpdatedAt = time.Now()
	return nil
}

// RefreshSeats replaces the resolved inventory after a conflict: seats that
// are now booked drop out of the selection and the flow returns to seat
// selection.
func (bs *BookingSession) RefreshSeats(seats []*Seat) {
	bs.Seats = seats
	for _, s := range seats {
		if s.Status == SeatBooked && bs.Selection.Contains(s.Label) {
			bs.Selection.Remove(s.Label)
		}
	}
	bs.Step = StepSeatPick
	bs.UpdatedAt = time.Now()
}
