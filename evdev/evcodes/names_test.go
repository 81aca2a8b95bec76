package evcodes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeFromNameAliasResolution(t *testing.T) {
	code, ok := CodeFromName(EV_KEY, "BTN_A")
	assert.True(t, ok)
	assert.Equal(t, uint16(BTN_SOUTH), code)

	code, ok = CodeFromName(EV_KEY, "BTN_SOUTH")
	assert.True(t, ok)
	assert.Equal(t, uint16(BTN_SOUTH), code)
}

func TestCodeNameReturnsCanonicalSpelling(t *testing.T) {
	name, ok := CodeName(EV_KEY, BTN_SOUTH)
	assert.True(t, ok)
	assert.Equal(t, "BTN_SOUTH", name)
}

func TestCodeFromNameUnknown(t *testing.T) {
	_, ok := CodeFromName(EV_KEY, "KEY_DOES_NOT_EXIST")
	assert.False(t, ok)
}

func TestTypeFromName(t *testing.T) {
	tcode, ok := TypeFromName("EV_ABS")
	assert.True(t, ok)
	assert.Equal(t, uint16(EV_ABS), tcode)
}

func TestMaxForType(t *testing.T) {
	max, ok := MaxForType(EV_KEY)
	assert.True(t, ok)
	assert.Equal(t, uint16(KEY_MAX), max)

	_, ok = MaxForType(EV_SYN)
	assert.False(t, ok, "MaxForType(EV_SYN) should have no max")
}

func TestIsMTCode(t *testing.T) {
	cases := map[uint16]bool{
		ABS_MT_SLOT:       true,
		ABS_MT_POSITION_X: true,
		ABS_X:             false,
		ABS_MISC:          false,
	}
	for code, want := range cases {
		assert.Equal(t, want, IsMTCode(code), "IsMTCode(%d)", code)
	}
}

func TestPropFromName(t *testing.T) {
	p, ok := PropFromName("INPUT_PROP_DIRECT")
	assert.True(t, ok)
	assert.Equal(t, uint16(INPUT_PROP_DIRECT), p)
}
