package evdev

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDriverVersionTripleDecode(t *testing.T) {
	major, minor, micro := driverVersionTriple(0x010203)
	assert.Equal(t, 1, major)
	assert.Equal(t, 2, minor)
	assert.Equal(t, 3, micro)
}

func TestDriverVersionTripleZero(t *testing.T) {
	major, minor, micro := driverVersionTriple(0)
	assert.Zero(t, major)
	assert.Zero(t, minor)
	assert.Zero(t, micro)
}
