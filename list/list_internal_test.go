package list //nolint:testpackage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestElemAtNearerEnd(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 2, 3, 4, 5, 16, 17} {
		l := New[int]()
		for i := range n {
			l.PushBack(i)
		}

		visits := 0
		l.visit = func() { visits++ }

		for i := range n {
			visits = 0
			require.Equal(t, i, l.At(i))

			bound := min(i, n-1-i) + 1
			assert.LessOrEqual(t, visits, bound, "len %d index %d", n, i)
		}
	}
}

func TestElemAtDirection(t *testing.T) {
	t.Parallel()

	l := New[int]()
	for i := range 10 {
		l.PushBack(i)
	}

	visits := 0
	l.visit = func() { visits++ }

	l.At(0)
	assert.Equal(t, 1, visits)

	visits = 0
	l.At(9)
	assert.Equal(t, 1, visits)

	visits = 0
	l.At(4)
	assert.Equal(t, 5, visits)

	visits = 0
	l.At(5)
	assert.Equal(t, 5, visits)
}

func TestCheckInvariants(t *testing.T) {
	t.Parallel()

	l := New[int]()
	require.NoError(t, l.checkInvariants())

	for i := range 5 {
		l.Insert(i, i/2)
		require.NoError(t, l.checkInvariants())
	}

	for l.Len() > 0 {
		l.Remove(l.Len() / 2)
		require.NoError(t, l.checkInvariants())
	}

	assert.Nil(t, l.head)
	assert.Nil(t, l.tail)

	t.Run("stale prev", func(t *testing.T) {
		t.Parallel()

		l := New[int]()
		l.PushBack(1)
		l.PushBack(2)
		l.PushBack(3)
		l.tail.prev = l.head

		assert.Error(t, l.checkInvariants())
	})

	t.Run("length mismatch", func(t *testing.T) {
		t.Parallel()

		l := New[int]()
		l.PushBack(1)
		l.length = 2

		assert.Error(t, l.checkInvariants())
	})

	t.Run("tail mismatch", func(t *testing.T) {
		t.Parallel()

		l := New[int]()
		l.PushBack(1)
		l.PushBack(2)
		l.tail = l.head

		assert.Error(t, l.checkInvariants())
	})
}

func TestLinksAfterSplice(t *testing.T) {
	t.Parallel()

	l := New[string]()
	l.PushBack("a")
	l.PushBack("c")
	l.Insert("b", 1)

	b := l.head.next
	require.Equal(t, "b", b.val)
	assert.Same(t, l.head, b.prev)
	assert.Same(t, l.tail, b.next)
	assert.Same(t, b, l.head.next)
	assert.Same(t, b, l.tail.prev)

	l.Remove(1)
	assert.Same(t, l.tail, l.head.next)
	assert.Same(t, l.head, l.tail.prev)
}
