//go:build amd64 || arm64

package conv

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

type slot uint16

func TestMaxOf(t *testing.T) {
	assert.Equal(t, uint8(math.MaxUint8), MaxOf[uint8]())
	assert.Equal(t, uint16(math.MaxUint16), MaxOf[uint16]())
	assert.Equal(t, uint32(math.MaxUint32), MaxOf[uint32]())
	assert.Equal(t, uint64(math.MaxUint64), MaxOf[uint64]())
	assert.Equal(t, slot(math.MaxUint16), MaxOf[slot]())
}

func TestIntToUnsigned(t *testing.T) {
	t.Run("valid zero", func(t *testing.T) {
		got, err := IntToUnsigned[uint8](0)
		assert.NoError(t, err)
		assert.Equal(t, uint8(0), got)
	})

	t.Run("valid max uint8", func(t *testing.T) {
		got, err := IntToUnsigned[uint8](math.MaxUint8)
		assert.NoError(t, err)
		assert.Equal(t, uint8(math.MaxUint8), got)
	})

	t.Run("invalid too large uint8", func(t *testing.T) {
		_, err := IntToUnsigned[uint8](math.MaxUint8 + 1)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "integer overflow")
	})

	t.Run("invalid negative", func(t *testing.T) {
		_, err := IntToUnsigned[uint32](-1)
		assert.Error(t, err)
	})

	t.Run("named type", func(t *testing.T) {
		got, err := IntToUnsigned[slot](1234)
		assert.NoError(t, err)
		assert.Equal(t, slot(1234), got)

		_, err = IntToUnsigned[slot](math.MaxUint16 + 1)
		assert.Error(t, err)
	})

	t.Run("valid max int as uint64", func(t *testing.T) {
		got, err := IntToUnsigned[uint64](math.MaxInt)
		assert.NoError(t, err)
		assert.Equal(t, uint64(math.MaxInt), got)
	})
}

func TestUint64ToUnsigned(t *testing.T) {
	got, err := Uint64ToUnsigned[uint16](math.MaxUint16)
	assert.NoError(t, err)
	assert.Equal(t, uint16(math.MaxUint16), got)

	_, err = Uint64ToUnsigned[uint16](math.MaxUint16 + 1)
	assert.Error(t, err)

	big, err := Uint64ToUnsigned[uint64](math.MaxUint64)
	assert.NoError(t, err)
	assert.Equal(t, uint64(math.MaxUint64), big)
}

func TestUnsignedToInt(t *testing.T) {
	got, err := UnsignedToInt(uint32(math.MaxUint32))
	assert.NoError(t, err)
	assert.Equal(t, int(math.MaxUint32), got)

	_, err = UnsignedToInt(uint64(math.MaxInt) + 1)
	assert.Error(t, err)
}
