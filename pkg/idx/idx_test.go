package idx_test

import (
	"sync"
	"testing"
	"time"

	"github.com/smartappointment/booking/pkg/idx"
	"github.com/stretchr/testify/require"
)

func TestNewIsSortable(t *testing.T) {
	t.Parallel()

	a := idx.NewAt(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	b := idx.NewAt(time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC))

	require.Less(t, a.String(), b.String())
}

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("round trips a generated id", func(t *testing.T) {
		id := idx.New()
		parsed, err := idx.Parse(id.String())
		require.NoError(t, err)
		require.Equal(t, id, parsed)
	})

	t.Run("rejects empty", func(t *testing.T) {
		_, err := idx.Parse("")
		require.ErrorIs(t, err, idx.ErrInvalid)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := idx.Parse("not-a-ulid")
		require.ErrorIs(t, err, idx.ErrInvalid)
	})
}

func TestConcurrentGeneration(t *testing.T) {
	t.Parallel()

	const n = 100

	var wg sync.WaitGroup
	ids := make([]idx.ID, n)
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids[i] = idx.New()
		}()
	}
	wg.Wait()

	seen := make(map[idx.ID]struct{}, n)
	for _, id := range ids {
		require.False(t, id.IsZero())
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
}
