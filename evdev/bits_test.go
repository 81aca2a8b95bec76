package evdev

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitsetSetHasClear(t *testing.T) {
	b := newBitset(100)
	assert.False(t, b.has(42), "fresh bitset must have no bits set")
	b.set(42)
	assert.True(t, b.has(42), "set(42) then has(42) should be true")
	b.clear(42)
	assert.False(t, b.has(42), "clear(42) then has(42) should be false")
}

func TestBitsetSetGrow(t *testing.T) {
	b := newBitset(0)
	b.setGrow(200)
	assert.True(t, b.has(200), "setGrow(200) should grow the backing store and set the bit")
	assert.Greater(t, b.len(), 200)
}

func TestBitsetOutOfRangeIsFalse(t *testing.T) {
	b := newBitset(8)
	assert.False(t, b.has(1000), "has() on an out-of-range index must be false, not panic")
}
