package column

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/genidx"
	"github.com/hupe1980/genidx/testutil"
)

type unit struct{}

type unitID = genidx.ID[unit, uint32, uint32]

func newUnits(t *testing.T, n int) (*genidx.Dynamic[unit, uint32, uint32], []genidx.Valid[unit, uint32, uint32]) {
	t.Helper()
	a := genidx.NewDynamic[unit, uint32, uint32]()
	out := make([]genidx.Valid[unit, uint32, uint32], n)
	for i := range out {
		v, err := a.Create()
		require.NoError(t, err)
		out[i] = v
	}
	return a, out
}

func TestIDColumn(t *testing.T) {
	a, u := newUnits(t, 3)
	c := NewIDColumn[row, unit, uint32, uint32](4)

	p0 := c.Push(u[0])
	p1 := c.Push(u[1])
	pn := c.PushNone()
	p2 := c.Push(u[2])
	assert.Equal(t, 4, c.Len())

	id, ok := c.Get(p1)
	require.True(t, ok)
	assert.Equal(t, u[1].ID(), id)
	_, ok = c.Get(pn)
	assert.False(t, ok)

	a.Kill(u[1].Unchecked())
	view := c.Validate(a)
	assert.Equal(t, 4, view.Len(), "dead rows are cleared, not removed")
	_, ok = view.Get(p1)
	assert.False(t, ok)
	v, ok := view.Get(p0)
	require.True(t, ok)
	assert.Equal(t, u[0].Unchecked(), v.ID())

	var got []int
	for p := range view.All() {
		got = append(got, p.Row())
	}
	assert.Equal(t, []int{0, 3}, got)

	t.Run("swap remove", func(t *testing.T) {
		id, ok := c.SwapRemove(p0)
		require.True(t, ok)
		assert.Equal(t, u[0].Unchecked(), id)
		moved, ok := c.Get(p0)
		require.True(t, ok)
		assert.Equal(t, u[2].Unchecked(), moved)
		_, ok = c.Get(p2)
		assert.False(t, ok)
	})

	t.Run("stale view panics", func(t *testing.T) {
		a.Kill(u[2].Unchecked())
		assert.Panics(t, func() { view.Len() })
		assert.ErrorIs(t, view.Stamp().Check(), genidx.ErrStaleProof)
	})
}

func TestIDColumn_KillAndRawPush(t *testing.T) {
	a, u := newUnits(t, 3)
	var c IDColumn[row, unit, uint32, uint32]
	c.Push(u[0])
	c.Push(u[1])
	c.Push(u[0])
	c.Validate(a)

	a.Kill(u[0].Unchecked())
	assert.Equal(t, 2, c.Kill(u[0].Unchecked()))

	dead := u[0].Unchecked()
	c.Push(dead)
	c.Validate(a)

	var live []unitID
	for _, id := range c.All() {
		live = append(live, id)
	}
	assert.Equal(t, []unitID{u[1].Unchecked()}, live)
}

func TestIDColumn_RandomOpsMatchLiveSet(t *testing.T) {
	rng := testutil.NewRNG(8)
	w := testutil.NewWorld[unit, uint16, uint16]()
	var c IDColumn[row, unit, uint16, uint16]
	var want []genidx.ID[unit, uint16, uint16]

	check := func() {
		view := c.Validate(w.Alloc)
		require.Equal(t, len(want), view.Len())
		for i, id := range want {
			got, ok := view.Get(Position[row]{row: i})
			// Empty rows hold the zero id, which is never live.
			if !w.IsLive(id) {
				want[i] = genidx.ID[unit, uint16, uint16]{}
				assert.False(t, ok, "row %d", i)
				continue
			}
			require.True(t, ok, "row %d", i)
			assert.Equal(t, id, got.ID())
		}
	}

	for _, op := range rng.Ops(1500, testutil.DefaultMix) {
		switch op.Kind {
		case testutil.OpCreate:
			_, err := w.Create()
			require.NoError(t, err)
		case testutil.OpKill:
			w.Kill(op)
		case testutil.OpKillDead:
			w.KillDead(op)
		case testutil.OpInsert:
			id, ok := w.Pick(op)
			if !ok {
				c.PushNone()
				want = append(want, genidx.ID[unit, uint16, uint16]{})
				continue
			}
			if op.Pick%2 == 0 {
				c.Push(id)
			} else {
				v, _ := w.Alloc.Validate(id)
				c.Push(v)
			}
			want = append(want, id)
		case testutil.OpValidate:
			check()
		}
	}
	check()
}
