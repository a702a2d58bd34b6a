package usecase

import (
	"context"
	"errors"
	"testing"

	"movie-booking/internal/data/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveSeats(t *testing.T) {
	ctx := context.Background()

	t.Run("synthesizes when nothing is persisted", func(t *testing.T) {
		world := newTestWorld()

		seats, err := world.service.Showtime.ResolveSeats(ctx, world.showtime.ID)
		require.NoError(t, err)
		require.Len(t, seats, 100)
		for _, s := range seats {
			assert.Equal(t, entity.SeatAvailable, s.Status)
		}
	})

	t.Run("persisted records win over synthesis", func(t *testing.T) {
		world := newTestWorld()

		persisted := entity.SynthesizeSeats(world.showtime.ID, entity.DefaultPrices)
		persisted[0].Status = entity.SeatBooked
		world.seatRepo.seats[world.showtime.ID] = persisted

		seats, err := world.service.Showtime.ResolveSeats(ctx, world.showtime.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.SeatBooked, seats[0].Status)
	})

	t.Run("store failure degrades to the default grid", func(t *testing.T) {
		world := newTestWorld()
		world.seatRepo.err = errors.New("connection refused")

		seats, err := world.service.Showtime.ResolveSeats(ctx, world.showtime.ID)
		require.NoError(t, err)
		assert.Len(t, seats, 100)
	})
}

func TestGetShowtimeDetail(t *testing.T) {
	world := newTestWorld()
	ctx := context.Background()

	detail, err := world.service.Showtime.GetShowtime(ctx, world.showtime.ID)
	require.NoError(t, err)
	require.NotNil(t, detail)

	assert.Equal(t, "Evening Show", detail.Label)
	require.NotNil(t, detail.Movie)
	assert.Equal(t, "The Housemaid", detail.Movie.Title)
	require.NotNil(t, detail.Theatre)
	assert.Equal(t, "Cineplex Kathmandu", detail.Theatre.Name)
}

func TestListShowtimesFilters(t *testing.T) {
	world := newTestWorld()
	ctx := context.Background()

	all, err := world.service.Showtime.ListShowtimes(ctx, nil, nil)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	byMovie, err := world.service.Showtime.ListShowtimes(ctx, &world.showtime.MovieID, nil)
	require.NoError(t, err)
	assert.Len(t, byMovie, 1)

	other := world.user.ID // any unrelated UUID
	none, err := world.service.Showtime.ListShowtimes(ctx, &other, nil)
	require.NoError(t, err)
	assert.Empty(t, none)
}
