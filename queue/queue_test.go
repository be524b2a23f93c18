package queue_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/percona/percona-compsci/queue"
)

func TestQueue(t *testing.T) {
	t.Parallel()

	t.Run("enqueue", func(t *testing.T) {
		t.Parallel()

		q := queue.New[int]()
		q.Enqueue(4)
		q.Enqueue(7)

		assert.Equal(t, []int{4, 7}, slices.Collect(q.All()))
	})

	t.Run("dequeue", func(t *testing.T) {
		t.Parallel()

		var q queue.Queue[int]
		q.Enqueue(3)
		q.Enqueue(4)
		require.Equal(t, 2, q.Len())

		v, ok := q.Dequeue()
		require.True(t, ok)
		assert.Equal(t, 3, v)

		v, ok = q.Dequeue()
		require.True(t, ok)
		assert.Equal(t, 4, v)

		assert.Equal(t, 0, q.Len())

		_, ok = q.Dequeue()
		assert.False(t, ok)
	})
}
