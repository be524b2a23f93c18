package list_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/percona/percona-compsci/errors"
	"github.com/percona/percona-compsci/internal/testutil"
	"github.com/percona/percona-compsci/list"
)

func TestPush(t *testing.T) {
	t.Parallel()

	t.Run("front", func(t *testing.T) {
		t.Parallel()

		l := list.New[int]()
		l.PushFront(4)
		l.PushFront(2)

		assert.Equal(t, []int{2, 4}, slices.Collect(l.Drain()))
	})

	t.Run("back", func(t *testing.T) {
		t.Parallel()

		l := list.New[int]()
		l.PushBack(3)
		l.PushBack(5)

		assert.Equal(t, []int{3, 5}, slices.Collect(l.Drain()))
	})
}

func TestPop(t *testing.T) {
	t.Parallel()

	t.Run("ends", func(t *testing.T) {
		t.Parallel()

		l := list.New[int]()
		for _, v := range []int{1, 4, 6, 7} {
			l.PushBack(v)
		}

		v, ok := l.PopFront()
		require.True(t, ok)
		assert.Equal(t, 1, v)

		v, ok = l.PopBack()
		require.True(t, ok)
		assert.Equal(t, 7, v)

		assert.Equal(t, []int{4, 6}, slices.Collect(l.All()))
		assert.Equal(t, []int{6, 4}, slices.Collect(l.Backward()))
	})

	t.Run("back until empty", func(t *testing.T) {
		t.Parallel()

		l := list.New[int]()
		l.PushBack(1)
		l.PushBack(2)

		v, ok := l.PopBack()
		require.True(t, ok)
		assert.Equal(t, 2, v)

		v, ok = l.PopBack()
		require.True(t, ok)
		assert.Equal(t, 1, v)

		_, ok = l.PopBack()
		assert.False(t, ok)
		assert.Equal(t, 0, l.Len())
		assert.True(t, l.IsEmpty())
	})

	t.Run("front until empty", func(t *testing.T) {
		t.Parallel()

		var l list.List[int]
		l.PushBack(1)
		l.PushBack(2)

		v, ok := l.PopFront()
		require.True(t, ok)
		assert.Equal(t, 1, v)

		v, ok = l.PopFront()
		require.True(t, ok)
		assert.Equal(t, 2, v)

		_, ok = l.PopFront()
		assert.False(t, ok)
		assert.Equal(t, 0, l.Len())
	})

	t.Run("empty", func(t *testing.T) {
		t.Parallel()

		var l list.List[string]

		v, ok := l.PopFront()
		assert.False(t, ok)
		assert.Empty(t, v)

		_, ok = l.PopBack()
		assert.False(t, ok)

		_, ok = l.Front()
		assert.False(t, ok)

		_, ok = l.Back()
		assert.False(t, ok)

		assert.Equal(t, 0, l.Len())
	})
}

func TestInsert(t *testing.T) {
	t.Parallel()

	t.Run("scenario", func(t *testing.T) {
		t.Parallel()

		l := list.New[int]()
		l.Insert(2, 0) // first and last
		l.Insert(4, 1) // last
		l.Insert(3, 1) // middle
		l.Insert(1, 0) // first

		front, _ := l.Front()
		back, _ := l.Back()
		assert.Equal(t, 1, front)
		assert.Equal(t, 4, back)

		assert.Equal(t, []int{1, 2, 3, 4}, slices.Collect(l.Drain()))
	})

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()

		base := []string{"a", "b", "c", "d", "e", "f"}

		for index := 0; index <= len(base); index++ {
			l := list.New[string]()
			for _, v := range base {
				l.PushBack(v)
			}

			l.Insert("x", index)
			require.Equal(t, "x", l.At(index))
			require.Equal(t, "x", l.Remove(index))

			assert.Equal(t, base, slices.Collect(l.All()), "index %d", index)
			assert.Equal(t, len(base), l.Len())
		}
	})

	t.Run("out of bounds", func(t *testing.T) {
		t.Parallel()

		l := list.New[int]()
		testutil.RequireViolation(t, errors.ErrOutOfBounds, func() { l.Insert(0, 1) })
		testutil.RequireViolation(t, errors.ErrOutOfBounds, func() { l.Insert(0, -1) })

		l.PushBack(1)
		testutil.RequireViolation(t, errors.ErrOutOfBounds, func() { l.Insert(0, 2) })
		assert.Equal(t, []int{1}, slices.Collect(l.All()))
	})
}

func TestRemove(t *testing.T) {
	t.Parallel()

	t.Run("positions", func(t *testing.T) {
		t.Parallel()

		l := list.New[int]()
		for _, v := range []int{1, 2, 3, 4} {
			l.PushBack(v)
		}
		require.Equal(t, 4, l.Len())

		assert.Equal(t, 2, l.Remove(1)) // middle
		assert.Equal(t, 1, l.Remove(0)) // first
		assert.Equal(t, 4, l.Remove(1)) // last

		assert.Equal(t, 3, l.At(0))
		assert.Equal(t, 1, l.Len())

		assert.Equal(t, 3, l.Remove(0)) // first and last
		assert.Equal(t, 0, l.Len())
		assert.True(t, l.IsEmpty())
		assert.Empty(t, slices.Collect(l.All()))
	})

	t.Run("out of bounds", func(t *testing.T) {
		t.Parallel()

		l := list.New[int]()
		testutil.RequireViolation(t, errors.ErrOutOfBounds, func() { l.Remove(0) })
		testutil.RequireViolation(t, errors.ErrOutOfBounds, func() { l.At(0) })

		l.PushBack(1)
		testutil.RequireViolation(t, errors.ErrOutOfBounds, func() { l.Remove(1) })
		testutil.RequireViolation(t, errors.ErrOutOfBounds, func() { l.Remove(-1) })
		testutil.RequireViolation(t, errors.ErrOutOfBounds, func() { l.At(1) })
		assert.Equal(t, 1, l.Len())
	})
}

func TestAt(t *testing.T) {
	t.Parallel()

	l := list.New[int]()
	for i := range 101 {
		l.PushBack(i * 10)
	}

	for i := range 101 {
		assert.Equal(t, i*10, l.At(i))
	}
}

func TestNodesFreedOnce(t *testing.T) {
	t.Parallel()

	t.Run("remove", func(t *testing.T) {
		t.Parallel()

		l := list.New[int]()
		for i := range 8 {
			l.PushBack(i)
		}

		l.Remove(3)
		l.PopFront()
		l.PopBack()

		s := l.Stats()
		assert.Equal(t, 8, s.Acquired)
		assert.Equal(t, 3, s.Released)
		assert.Equal(t, 5, s.Live())
	})

	t.Run("free", func(t *testing.T) {
		t.Parallel()

		l := list.New[int]()
		for i := range 8 {
			l.PushBack(i)
		}

		l.Free()

		s := l.Stats()
		assert.Equal(t, 8, s.Released)
		assert.Equal(t, 0, s.LiveBytes)

		testutil.RequireViolation(t, errors.ErrReleased, func() { l.PushBack(1) })
		testutil.RequireViolation(t, errors.ErrReleased, func() { l.Free() })
	})

	t.Run("clear keeps list usable", func(t *testing.T) {
		t.Parallel()

		l := list.New[int]()
		l.PushBack(1)
		l.PushBack(2)
		l.Clear()

		assert.Equal(t, 0, l.Stats().Live())

		l.PushBack(3)
		assert.Equal(t, []int{3}, slices.Collect(l.All()))
	})
}

func TestIntoIter(t *testing.T) {
	t.Parallel()

	t.Run("exhaust", func(t *testing.T) {
		t.Parallel()

		l := list.New[int]()
		l.PushBack(1)
		l.PushBack(2)

		it := l.IntoIter()

		v, ok := it.Next()
		require.True(t, ok)
		assert.Equal(t, 1, v)
		assert.Equal(t, 1, it.Stats().Live())

		v, ok = it.Next()
		require.True(t, ok)
		assert.Equal(t, 2, v)

		_, ok = it.Next()
		assert.False(t, ok)
		assert.Equal(t, 0, it.Stats().Live())
	})

	t.Run("partial", func(t *testing.T) {
		t.Parallel()

		l := list.New[int]()
		for i := range 10 {
			l.PushBack(i)
		}

		it := l.IntoIter()
		it.Next()
		it.Next()
		it.Close()
		it.Close()

		s := it.Stats()
		assert.Equal(t, 10, s.Acquired)
		assert.Equal(t, 10, s.Released)

		_, ok := it.Next()
		assert.False(t, ok)
	})

	t.Run("break out of drain", func(t *testing.T) {
		t.Parallel()

		l := list.New[int]()
		for i := range 10 {
			l.PushBack(i)
		}

		var got []int
		for v := range l.Drain() {
			got = append(got, v)
			if len(got) == 3 {
				break
			}
		}

		assert.Equal(t, []int{0, 1, 2}, got)
	})

	t.Run("source is released", func(t *testing.T) {
		t.Parallel()

		l := list.New[int]()
		l.PushBack(1)
		it := l.IntoIter()
		defer it.Close()

		assert.Equal(t, 0, l.Len())
		testutil.RequireViolation(t, errors.ErrReleased, func() { l.PushFront(1) })
		testutil.RequireViolation(t, errors.ErrReleased, func() { l.PopBack() })
		testutil.RequireViolation(t, errors.ErrReleased, func() { l.At(0) })
		testutil.RequireViolation(t, errors.ErrReleased, func() { l.IntoIter() })
	})
}

func BenchmarkPushBack(b *testing.B) {
	for b.Loop() {
		l := list.New[int]()
		for i := range 1024 {
			l.PushBack(i)
		}
		l.Free()
	}
}

func BenchmarkAt(b *testing.B) {
	l := list.New[int]()
	for i := range 1024 {
		l.PushBack(i)
	}

	for i := 0; b.Loop(); i++ {
		l.At(i % 1024)
	}
}
