package address

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_Lookups(t *testing.T) {
	ctx := context.Background()
	svc := NewService(0)

	t.Run("zones", func(t *testing.T) {
		zones, err := svc.Zones(ctx)
		require.NoError(t, err)
		require.Len(t, zones, 3)

		numbers := []string{}
		for _, z := range zones {
			numbers = append(numbers, z.Number)
		}
		assert.Contains(t, numbers, "69")
		assert.Contains(t, numbers, "70")
		assert.Contains(t, numbers, "71")
	})

	t.Run("streets of a known zone", func(t *testing.T) {
		streets, err := svc.Streets(ctx, "69")
		require.NoError(t, err)
		assert.NotEmpty(t, streets)
	})

	t.Run("unknown zone yields empty, not error", func(t *testing.T) {
		streets, err := svc.Streets(ctx, "99")
		require.NoError(t, err)
		assert.NotNil(t, streets)
		assert.Empty(t, streets)
	})

	t.Run("buildings cascade", func(t *testing.T) {
		streets, err := svc.Streets(ctx, "70")
		require.NoError(t, err)
		require.NotEmpty(t, streets)

		buildings, err := svc.Buildings(ctx, "70", streets[0].Number)
		require.NoError(t, err)
		assert.NotEmpty(t, buildings)
	})

	t.Run("unknown street yields empty", func(t *testing.T) {
		buildings, err := svc.Buildings(ctx, "70", "does-not-exist")
		require.NoError(t, err)
		assert.Empty(t, buildings)
	})
}

func TestService_LatencyHonorsContext(t *testing.T) {
	svc := NewService(5 * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := svc.Zones(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), time.Second, "cancellation must not wait out the latency")
}
