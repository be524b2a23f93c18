package bench_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/percona/percona-compsci/bench"
	"github.com/percona/percona-compsci/sel"
)

func TestRun(t *testing.T) {
	t.Parallel()

	t.Run("every bench", func(t *testing.T) {
		t.Parallel()

		results, err := bench.Run(context.Background(), bench.Options{
			N:            257,
			Workers:      3,
			RingCapacity: 16,
		})
		require.NoError(t, err)

		ids := make([]string, len(results))
		for i, res := range results {
			ids[i] = res.ID

			assert.Equal(t, 257, res.N)
			assert.Equal(t, 3, res.Workers)
			assert.Equal(t, 0, res.Stats.Live(), res.ID)
			assert.Equal(t, 0, res.Stats.LiveBytes, res.ID)
		}

		assert.Equal(t, bench.IDs(), ids)
	})

	t.Run("node accounting", func(t *testing.T) {
		t.Parallel()

		results, err := bench.Run(context.Background(), bench.Options{
			N:       100,
			Workers: 2,
			Filter:  sel.MakeFilter([]string{"container.list", "container.dynarray"}, nil),
		})
		require.NoError(t, err)
		require.Len(t, results, 2)

		arr, lst := results[0], results[1]
		require.Equal(t, "container.dynarray", arr.ID)
		require.Equal(t, "container.list", lst.ID)

		// 100 pushes grow 0->1->...->128: eight acquisitions per worker.
		assert.Equal(t, 16, arr.Stats.Acquired)
		assert.Equal(t, 14, arr.Stats.Resized)

		assert.Equal(t, 200, lst.Stats.Acquired)
		assert.Equal(t, 200, lst.Stats.Released)
	})

	t.Run("canceled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		results, err := bench.Run(ctx, bench.Options{N: 10, Workers: 1})
		require.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, results)
	})
}
