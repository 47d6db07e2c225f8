package genidx

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextGeneration(t *testing.T) {
	assert.Equal(t, uint8(1), NextGeneration(uint8(255)))
	assert.Equal(t, uint16(1), NextGeneration(uint16(65535)))
	assert.Equal(t, uint32(1), NextGeneration(^uint32(0)))
	assert.Equal(t, uint64(1), NextGeneration(^uint64(0)))

	assert.Equal(t, uint8(2), NextGeneration(FirstGeneration[uint8]()))
	assert.Equal(t, uint64(2), NextGeneration(FirstGeneration[uint64]()))
}

func TestID_Equality(t *testing.T) {
	a := NewID[ship](uint32(4), uint32(1))
	b := NewID[ship](uint32(4), uint32(2))
	c := NewID[ship](uint32(4), uint32(1))

	assert.NotEqual(t, a, b)
	assert.Equal(t, a, c)

	m := map[shipID]int{a: 1}
	_, ok := m[b]
	assert.False(t, ok)
	assert.Equal(t, 1, m[c])
}

func TestID_Compare(t *testing.T) {
	ids := []shipID{
		NewID[ship](uint32(2), uint32(1)),
		NewID[ship](uint32(0), uint32(3)),
		NewID[ship](uint32(0), uint32(1)),
		NewID[ship](uint32(1), uint32(9)),
	}
	slices.SortFunc(ids, shipID.Compare)

	assert.Equal(t, []shipID{
		NewID[ship](uint32(0), uint32(1)),
		NewID[ship](uint32(0), uint32(3)),
		NewID[ship](uint32(1), uint32(9)),
		NewID[ship](uint32(2), uint32(1)),
	}, ids)

	assert.True(t, ids[0].Less(ids[1]))
	assert.False(t, ids[1].Less(ids[0]))
	assert.Equal(t, 0, ids[2].Compare(ids[2]))
}

func TestID_Accessors(t *testing.T) {
	id := NewID[ship](uint32(12), uint32(3))

	assert.Equal(t, uint32(12), id.Index())
	assert.Equal(t, uint32(3), id.Generation())
	assert.Equal(t, 12, id.Slot())
	assert.Equal(t, id, id.ID())
	assert.Equal(t, "12#3", id.String())
	assert.False(t, id.IsZero())
	assert.True(t, shipID{}.IsZero())

	var h Handle[ship, uint32, uint32] = &id
	assert.Equal(t, id, h.ID())
}
