package component

import (
	"context"
	"errors"
	"slices"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/genidx"
)

type planet struct{}

type planetID = genidx.ID[planet, uint32, uint32]

func TestStore_InsertAndGet(t *testing.T) {
	a := genidx.NewDynamic[planet, uint32, uint32]()
	s := New[planetID, string](0)

	x, err := a.CreateOrReuse()
	require.NoError(t, err)
	y, err := a.CreateOrReuse()
	require.NoError(t, err)

	s.Insert(x, "mars")
	s.Insert(y, "venus")
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, "mars", s.Get(x))
	assert.Equal(t, "venus", s.Get(y))

	t.Run("overwrite below len", func(t *testing.T) {
		s.Insert(x, "earth")
		assert.Equal(t, "earth", s.Get(x))
		assert.Equal(t, 2, s.Len())
	})

	t.Run("ptr mutates in place", func(t *testing.T) {
		*s.Ptr(y) = "jupiter"
		assert.Equal(t, "jupiter", s.Get(y))
	})
}

func TestStore_GapPanics(t *testing.T) {
	s := New[planetID, int](0)
	assert.Panics(t, func() {
		s.Insert(genidx.NewID[planet](uint32(1), uint32(1)), 5)
	})
}

func TestStore_OutOfBoundsPanics(t *testing.T) {
	s := New[planetID, int](0)
	id := genidx.NewID[planet](uint32(0), uint32(1))

	assert.Panics(t, func() { s.Get(id) })
	assert.Panics(t, func() { s.Ptr(id) })
	assert.False(t, s.Has(id))
}

func TestStore_GrowsAcrossSegments(t *testing.T) {
	s := New[planetID, int](0)
	first := genidx.NewID[planet](uint32(0), uint32(1))
	s.Insert(first, -1)
	p := s.Ptr(first)

	for i := 1; i < 3*segmentSize+7; i++ {
		s.Insert(genidx.NewID[planet](uint32(i), uint32(1)), i)
	}

	assert.Equal(t, 3*segmentSize+7, s.Len())
	assert.Same(t, p, s.Ptr(first), "segments never move")
	assert.Equal(t, 2*segmentSize, s.Get(genidx.NewID[planet](uint32(2*segmentSize), uint32(1))))

	var sum int
	for i, v := range s.All() {
		if i > 0 {
			sum += v
		}
	}
	n := 3*segmentSize + 6
	assert.Equal(t, n*(n+1)/2, sum)
}

func TestStore_ValidOwner(t *testing.T) {
	a := genidx.NewDynamic[planet, uint32, uint32]()
	s := New[genidx.Valid[planet, uint32, uint32], float64](4)

	v, err := a.Create()
	require.NoError(t, err)
	s.Insert(v, 1.5)
	assert.Equal(t, 1.5, s.Get(v))

	w, err := a.Create()
	require.NoError(t, err)
	a.Kill(w.ID())

	assert.Panics(t, func() { s.Get(v) }, "stale proof fails loudly")
}

func TestStore_Slots(t *testing.T) {
	s := New[planetID, int](0)
	for i := range 4 {
		s.Insert(genidx.NewID[planet](uint32(i), uint32(1)), i)
	}
	for _, p := range s.Slots() {
		*p *= 10
	}

	var got []int
	for _, v := range s.All() {
		got = append(got, v)
	}
	assert.Equal(t, []int{0, 10, 20, 30}, got)
}

func TestStore_ParallelRange(t *testing.T) {
	a := genidx.NewDynamic[planet, uint32, uint32]()
	s := New[genidx.Valid[planet, uint32, uint32], int](0)

	owners := make([]genidx.Valid[planet, uint32, uint32], 0, 5000)
	for i := range 5000 {
		v, err := a.Create()
		require.NoError(t, err)
		s.Insert(v, i)
		owners = append(owners, v)
	}

	t.Run("visits every owner", func(t *testing.T) {
		var sum atomic.Int64
		err := s.ParallelRange(context.Background(), owners, 8, func(_ context.Context, _ genidx.Valid[planet, uint32, uint32], v int) error {
			sum.Add(int64(v))
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, int64(4999*5000/2), sum.Load())
	})

	t.Run("first error is returned", func(t *testing.T) {
		boom := errors.New("boom")
		err := s.ParallelRange(context.Background(), owners, 0, func(_ context.Context, o genidx.Valid[planet, uint32, uint32], _ int) error {
			if o.Slot() == 1234 {
				return boom
			}
			return nil
		})
		assert.ErrorIs(t, err, boom)
	})

	t.Run("empty owners", func(t *testing.T) {
		err := s.ParallelRange(context.Background(), nil, 4, func(context.Context, genidx.Valid[planet, uint32, uint32], int) error {
			t.Fatal("unexpected call")
			return nil
		})
		assert.NoError(t, err)
	})

	t.Run("unwritten owner panics in caller", func(t *testing.T) {
		extra, err := a.Create()
		require.NoError(t, err)
		bad := append(slices.Clone(owners[:3]), extra)
		assert.Panics(t, func() {
			_ = s.ParallelRange(context.Background(), bad, 2, func(context.Context, genidx.Valid[planet, uint32, uint32], int) error {
				return nil
			})
		})
	})
}
