package evdev

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyedStateGetSetDefault(t *testing.T) {
	s := newKeyedState(10)
	assert.EqualValues(t, 0, s.get(3), "unset code must read back 0")
	s.set(3, 1)
	assert.EqualValues(t, 1, s.get(3))
}

func TestKeyedStateGrowsPastInitialSize(t *testing.T) {
	s := newKeyedState(2)
	s.set(50, 7)
	assert.EqualValues(t, 7, s.get(50), "set beyond initial size should grow and retain the value")
	assert.EqualValues(t, 0, s.get(0), "growing must not disturb existing zero values")
}

func TestKeyedStateOutOfRangeGetIsZero(t *testing.T) {
	s := newKeyedState(4)
	assert.EqualValues(t, 0, s.get(-1), "out-of-range get must return 0, not panic")
	assert.EqualValues(t, 0, s.get(1000))
}
