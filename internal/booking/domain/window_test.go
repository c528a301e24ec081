package domain_test

import (
	"testing"
	"time"

	"github.com/smartappointment/booking/internal/booking/domain"
	"github.com/stretchr/testify/require"
)

func TestWindowSlots(t *testing.T) {
	t.Parallel()

	date := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	t.Run("walks the day in ascending order", func(t *testing.T) {
		var slots []time.Time
		for s := range domain.DefaultWindow.Slots(date) {
			slots = append(slots, s)
		}

		require.Len(t, slots, 16) // 8 hours / 30 minutes
		require.Equal(t, time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC), slots[0])
		require.Equal(t, time.Date(2024, 1, 10, 16, 30, 0, 0, time.UTC), slots[len(slots)-1])
		for i := 1; i < len(slots); i++ {
			require.True(t, slots[i-1].Before(slots[i]))
		}
	})

	t.Run("sequence is restartable", func(t *testing.T) {
		seq := domain.DefaultWindow.Slots(date)

		count := func() int {
			n := 0
			for range seq {
				n++
			}
			return n
		}
		require.Equal(t, count(), count())
	})

	t.Run("early break stops the walk", func(t *testing.T) {
		n := 0
		for range domain.DefaultWindow.Slots(date) {
			n++
			if n == 3 {
				break
			}
		}
		require.Equal(t, 3, n)
	})
}

func TestWindowContains(t *testing.T) {
	t.Parallel()

	w := domain.DefaultWindow

	require.True(t, w.Contains(time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)))
	require.True(t, w.Contains(time.Date(2024, 1, 10, 16, 30, 0, 0, time.UTC)))
	require.False(t, w.Contains(time.Date(2024, 1, 10, 17, 0, 0, 0, time.UTC)))  // close is exclusive
	require.False(t, w.Contains(time.Date(2024, 1, 10, 9, 15, 0, 0, time.UTC))) // off-grid
	require.False(t, w.Contains(time.Date(2024, 1, 10, 8, 30, 0, 0, time.UTC)))
}
