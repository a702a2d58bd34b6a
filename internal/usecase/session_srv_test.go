package usecase

import (
	"context"
	"testing"
	"time"

	"movie-booking/internal/data/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartSession(t *testing.T) {
	world := newTestWorld()
	ctx := context.Background()

	t.Run("starts at review with a full grid", func(t *testing.T) {
		session, err := world.service.Session.Start(ctx, world.user.ID, world.showtime.ID)
		require.NoError(t, err)

		assert.Equal(t, entity.StepReview, session.Step)
		assert.Len(t, session.Seats, 100)
		assert.Empty(t, session.Selected)
		assert.Equal(t, int64(0), session.Pricing.Total)
		assert.Equal(t, "NPR", session.Pricing.Currency)
	})

	t.Run("unknown showtime fails", func(t *testing.T) {
		_, err := world.service.Session.Start(ctx, world.user.ID, uuid.New())
		assert.ErrorIs(t, err, entity.ErrNotFound)
	})
}

func TestSessionOwnership(t *testing.T) {
	world := newTestWorld()
	ctx := context.Background()

	session, err := world.service.Session.Start(ctx, world.user.ID, world.showtime.ID)
	require.NoError(t, err)
	sessionID := uuid.MustParse(session.ID)

	// Another user probing the session ID sees nothing
	otherUser := uuid.New()
	_, err = world.service.Session.Get(ctx, otherUser, sessionID)
	assert.ErrorIs(t, err, entity.ErrNotFound)

	_, err = world.service.Session.Get(ctx, world.user.ID, sessionID)
	assert.NoError(t, err)
}

func TestSessionSeatFlow(t *testing.T) {
	world := newTestWorld()
	ctx := context.Background()

	started, err := world.service.Session.Start(ctx, world.user.ID, world.showtime.ID)
	require.NoError(t, err)
	sessionID := uuid.MustParse(started.ID)

	_, err = world.service.Session.Advance(ctx, world.user.ID, sessionID)
	require.NoError(t, err)

	resp, err := world.service.Session.ToggleSeat(ctx, world.user.ID, sessionID, "A1")
	require.NoError(t, err)
	assert.Equal(t, []string{"A1"}, resp.Selected)
	assert.Equal(t, int64(650), resp.Pricing.Subtotal)

	resp, err = world.service.Session.ToggleSeat(ctx, world.user.ID, sessionID, "C5")
	require.NoError(t, err)
	assert.Equal(t, int64(1000), resp.Pricing.Subtotal)
	assert.Equal(t, int64(130), resp.Pricing.Tax)
	assert.Equal(t, int64(1130), resp.Pricing.Total)

	resp, err = world.service.Session.Advance(ctx, world.user.ID, sessionID)
	require.NoError(t, err)
	assert.Equal(t, entity.StepPayment, resp.Step)

	resp, err = world.service.Session.Retreat(ctx, world.user.ID, sessionID, entity.StepSeatPick)
	require.NoError(t, err)
	assert.Equal(t, entity.StepSeatPick, resp.Step)
	assert.Equal(t, []string{"A1", "C5"}, resp.Selected)
}

func TestAbandonSession(t *testing.T) {
	world := newTestWorld()
	ctx := context.Background()

	started, err := world.service.Session.Start(ctx, world.user.ID, world.showtime.ID)
	require.NoError(t, err)
	sessionID := uuid.MustParse(started.ID)

	require.NoError(t, world.service.Session.Abandon(ctx, world.user.ID, sessionID))

	_, err = world.service.Session.Get(ctx, world.user.ID, sessionID)
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestSweep(t *testing.T) {
	world := newTestWorld()
	ctx := context.Background()

	started, err := world.service.Session.Start(ctx, world.user.ID, world.showtime.ID)
	require.NoError(t, err)
	sessionID := uuid.MustParse(started.ID)

	// Nothing idle yet
	assert.Equal(t, 0, world.service.Session.Sweep(time.Hour))

	// Everything idle
	assert.Equal(t, 1, world.service.Session.Sweep(-time.Second))

	_, err = world.service.Session.Get(ctx, world.user.ID, sessionID)
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestSnapshotIsolation(t *testing.T) {
	world := newTestWorld()
	ctx := context.Background()

	started, err := world.service.Session.Start(ctx, world.user.ID, world.showtime.ID)
	require.NoError(t, err)
	sessionID := uuid.MustParse(started.ID)

	_, err = world.service.Session.Advance(ctx, world.user.ID, sessionID)
	require.NoError(t, err)
	_, err = world.service.Session.ToggleSeat(ctx, world.user.ID, sessionID, "A1")
	require.NoError(t, err)
	_, err = world.service.Session.ToggleSeat(ctx, world.user.ID, sessionID, "C5")
	require.NoError(t, err)

	snap, err := world.service.Session.Snapshot(world.user.ID, sessionID)
	require.NoError(t, err)

	// A toggle on the live session must not move the snapshot's totals
	_, err = world.service.Session.ToggleSeat(ctx, world.user.ID, sessionID, "C5")
	require.NoError(t, err)

	assert.Equal(t, 2, snap.Selection.Len())
	assert.Equal(t, int64(1000), snap.Selection.Subtotal())

	live, err := world.service.Session.Get(ctx, world.user.ID, sessionID)
	require.NoError(t, err)
	assert.Equal(t, []string{"A1"}, live.Selected)
}

func TestSnapshotOwnership(t *testing.T) {
	world := newTestWorld()
	ctx := context.Background()

	started, err := world.service.Session.Start(ctx, world.user.ID, world.showtime.ID)
	require.NoError(t, err)
	sessionID := uuid.MustParse(started.ID)

	_, err = world.service.Session.Snapshot(uuid.New(), sessionID)
	assert.ErrorIs(t, err, entity.ErrNotFound)

	err = world.service.Session.Update(uuid.New(), sessionID, func(*entity.BookingSession) {})
	assert.ErrorIs(t, err, entity.ErrNotFound)
}
