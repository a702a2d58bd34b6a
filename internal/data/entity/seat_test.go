package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSynthesizeSeats(t *testing.T) {
	showtimeID := uuid.New()
	seats := SynthesizeSeats(showtimeID, DefaultPrices)

	require.Len(t, seats, 100)

	byLabel := make(map[string]*Seat, len(seats))
	for _, s := range seats {
		byLabel[s.Label] = s
	}

	t.Run("first two rows are premium", func(t *testing.T) {
		assert.Equal(t, CategoryPremium, byLabel["A1"].Category)
		assert.Equal(t, CategoryPremium, byLabel["B10"].Category)
		assert.Equal(t, CategoryGeneral, byLabel["C1"].Category)
		assert.Equal(t, CategoryGeneral, byLabel["J10"].Category)
	})

	t.Run("prices follow category", func(t *testing.T) {
		assert.Equal(t, int64(650), byLabel["A5"].Price)
		assert.Equal(t, int64(350), byLabel["C5"].Price)
	})

	t.Run("every seat starts available", func(t *testing.T) {
		for _, s := range seats {
			assert.Equal(t, SeatAvailable, s.Status)
			assert.Nil(t, s.BookedBy)
		}
	})

	t.Run("identity is deterministic", func(t *testing.T) {
		again := SynthesizeSeats(showtimeID, DefaultPrices)
		for i := range seats {
			assert.Equal(t, seats[i].ID(), again[i].ID())
		}
		assert.Equal(t, showtimeID.String()+"_A1", seats[0].ID())
	})
}

func TestPriceTableFor(t *testing.T) {
	prices := PriceTable{Premium: 500, General: 300}

	assert.Equal(t, int64(500), prices.For(CategoryPremium))
	assert.Equal(t, int64(300), prices.For(CategoryGeneral))
}
