package usecase

import (
	"context"
	"testing"

	"movie-booking/internal/data/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// walks a session to the payment step with the given seats selected.
func sessionAtPayment(t *testing.T, world *testWorld, labels ...string) uuid.UUID {
	t.Helper()
	ctx := context.Background()

	started, err := world.service.Session.Start(ctx, world.user.ID, world.showtime.ID)
	require.NoError(t, err)
	sessionID := uuid.MustParse(started.ID)

	_, err = world.service.Session.Advance(ctx, world.user.ID, sessionID)
	require.NoError(t, err)

	for _, label := range labels {
		_, err = world.service.Session.ToggleSeat(ctx, world.user.ID, sessionID, label)
		require.NoError(t, err)
	}

	_, err = world.service.Session.Advance(ctx, world.user.ID, sessionID)
	require.NoError(t, err)

	return sessionID
}

func TestCommitBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("confirms and snapshots the booking", func(t *testing.T) {
		world := newTestWorld()
		sessionID := sessionAtPayment(t, world, "A1", "C5")

		booking, err := world.service.Booking.Commit(ctx, world.user.ID, sessionID, entity.PaymentMethodEsewa)
		require.NoError(t, err)

		assert.Regexp(t, `^BOOK-`, booking.Ref)
		assert.Equal(t, "The Housemaid", booking.MovieTitle)
		assert.Equal(t, "Cineplex Kathmandu", booking.TheatreName)
		assert.Equal(t, "Evening Show", booking.ShowLabel)
		assert.Equal(t, int64(1000), booking.Pricing.Subtotal)
		assert.Equal(t, int64(130), booking.Pricing.Tax)
		assert.Equal(t, int64(1130), booking.Pricing.Total)
		assert.Equal(t, "NPR", booking.Pricing.Currency)
		assert.Equal(t, entity.PaymentStatusCompleted, booking.PaymentStatus)
		assert.Equal(t, entity.BookingStatusConfirmed, booking.Status)
		assert.Len(t, booking.Seats, 2)

		// The session is gone once the booking is confirmed
		_, err = world.service.Session.Get(ctx, world.user.ID, sessionID)
		assert.ErrorIs(t, err, entity.ErrNotFound)

		// And the seats are flipped for everyone
		assert.True(t, world.bookingRepo.seatRepo.booked["A1"])
		assert.True(t, world.bookingRepo.seatRepo.booked["C5"])
	})

	t.Run("rejects commit before the payment step", func(t *testing.T) {
		world := newTestWorld()

		started, err := world.service.Session.Start(ctx, world.user.ID, world.showtime.ID)
		require.NoError(t, err)
		sessionID := uuid.MustParse(started.ID)

		_, err = world.service.Booking.Commit(ctx, world.user.ID, sessionID, entity.PaymentMethodCash)
		assert.ErrorIs(t, err, entity.ErrInvalidState)
	})

	t.Run("empty selection fails with no writes", func(t *testing.T) {
		world := newTestWorld()
		sessionID := sessionAtPayment(t, world, "A1")

		// Toggling the last seat off at the payment step empties the
		// selection without retreating
		_, err := world.service.Session.ToggleSeat(ctx, world.user.ID, sessionID, "A1")
		require.NoError(t, err)

		_, err = world.service.Booking.Commit(ctx, world.user.ID, sessionID, entity.PaymentMethodCard)
		assert.ErrorIs(t, err, entity.ErrEmptySelection)

		assert.Empty(t, world.bookingRepo.bookings)
		assert.Empty(t, world.bookingRepo.seatRepo.booked)
	})

	t.Run("rejects unknown payment method", func(t *testing.T) {
		world := newTestWorld()
		sessionID := sessionAtPayment(t, world, "A1")

		_, err := world.service.Booking.Commit(ctx, world.user.ID, sessionID, entity.PaymentMethod("paypal"))
		assert.ErrorIs(t, err, entity.ErrInvalidState)
	})

	t.Run("unknown session fails", func(t *testing.T) {
		world := newTestWorld()

		_, err := world.service.Booking.Commit(ctx, world.user.ID, uuid.New(), entity.PaymentMethodCash)
		assert.ErrorIs(t, err, entity.ErrNotFound)
	})
}

func TestCommitSeatConflict(t *testing.T) {
	world := newTestWorld()
	ctx := context.Background()

	sessionID := sessionAtPayment(t, world, "A1", "C5")

	// A1 was booked by someone else between selection and commit
	world.bookingRepo.seatRepo.booked["A1"] = true

	_, err := world.service.Booking.Commit(ctx, world.user.ID, sessionID, entity.PaymentMethodKhalti)
	require.Error(t, err)

	var conflict *entity.SeatConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, []string{"A1"}, conflict.Labels)
	assert.ErrorIs(t, err, entity.ErrSeatConflict)

	// Nothing was persisted
	assert.Empty(t, world.bookingRepo.bookings)

	// The session survives, back at seat selection, with the raced seat
	// dropped and marked booked
	session, err := world.service.Session.Get(ctx, world.user.ID, sessionID)
	require.NoError(t, err)
	assert.Equal(t, entity.StepSeatPick, session.Step)
	assert.Equal(t, []string{"C5"}, session.Selected)

	for _, seat := range session.Seats {
		if seat.Label == "A1" {
			assert.Equal(t, entity.SeatBooked, seat.Status)
		}
	}

	// The user can re-select and commit what is still free
	_, err = world.service.Session.ToggleSeat(ctx, world.user.ID, sessionID, "C6")
	require.NoError(t, err)
	_, err = world.service.Session.Advance(ctx, world.user.ID, sessionID)
	require.NoError(t, err)

	booking, err := world.service.Booking.Commit(ctx, world.user.ID, sessionID, entity.PaymentMethodKhalti)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"C5", "C6"}, []string{booking.Seats[0].Label, booking.Seats[1].Label})
}

func TestListUserBookings(t *testing.T) {
	ctx := context.Background()

	t.Run("no bookings is an empty page, not an error", func(t *testing.T) {
		world := newTestWorld()

		page, err := world.service.Booking.ListUserBookings(ctx, world.user.ID, testPageReq())
		require.NoError(t, err)
		assert.Empty(t, page.Data)
		assert.Equal(t, int64(0), page.Pagination.Total)
	})

	t.Run("returns committed bookings", func(t *testing.T) {
		world := newTestWorld()
		sessionID := sessionAtPayment(t, world, "B2")

		_, err := world.service.Booking.Commit(ctx, world.user.ID, sessionID, entity.PaymentMethodCard)
		require.NoError(t, err)

		page, err := world.service.Booking.ListUserBookings(ctx, world.user.ID, testPageReq())
		require.NoError(t, err)
		require.Len(t, page.Data, 1)
		assert.Equal(t, int64(1), page.Pagination.Total)
		assert.Equal(t, "The Housemaid", page.Data[0].MovieTitle)
	})
}

func TestGetBooking(t *testing.T) {
	world := newTestWorld()
	ctx := context.Background()

	sessionID := sessionAtPayment(t, world, "B2")
	committed, err := world.service.Booking.Commit(ctx, world.user.ID, sessionID, entity.PaymentMethodCard)
	require.NoError(t, err)
	bookingID := uuid.MustParse(committed.ID)

	t.Run("owner sees the booking", func(t *testing.T) {
		booking, err := world.service.Booking.GetBooking(ctx, world.user.ID, bookingID)
		require.NoError(t, err)
		assert.Equal(t, committed.Ref, booking.Ref)
	})

	t.Run("another user sees nothing", func(t *testing.T) {
		_, err := world.service.Booking.GetBooking(ctx, uuid.New(), bookingID)
		assert.ErrorIs(t, err, entity.ErrNotFound)
	})
}
