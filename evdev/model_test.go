package evdev

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/temoto/goevdev/evdev/evcodes"
)

func TestCapabilityConsistencyInvariant(t *testing.T) {
	m := New()
	m.EnableType(evcodes.EV_KEY)
	require.NoError(t, m.EnableCode(evcodes.EV_KEY, evcodes.KEY_A, nil, nil))
	assert.True(t, m.Caps.HasCode(evcodes.EV_KEY, evcodes.KEY_A), "HasCode should be true right after EnableCode")

	require.NoError(t, m.DisableType(evcodes.EV_KEY))
	assert.False(t, m.Caps.HasCode(evcodes.EV_KEY, evcodes.KEY_A), "HasCode must be false once the type itself is disabled")
}

func TestDisableTypeRejectsEVSYN(t *testing.T) {
	m := New()
	assert.Error(t, m.DisableType(evcodes.EV_SYN))
}

func TestEnableCodeRequiresAbsInfoForEVABS(t *testing.T) {
	m := New()
	assert.Error(t, m.EnableCode(evcodes.EV_ABS, evcodes.ABS_X, nil, nil), "EnableCode(EV_ABS, ...) without AbsInfo must fail")

	info := AbsInfo{Minimum: 0, Maximum: 255}
	require.NoError(t, m.EnableCode(evcodes.EV_ABS, evcodes.ABS_X, &info, nil))

	got, ok := m.GetAbsInfo(evcodes.ABS_X)
	require.True(t, ok)
	assert.EqualValues(t, 255, got.Maximum)
}

func TestEnableCodeRejectsPayloadForOrdinaryTypes(t *testing.T) {
	m := New()
	info := AbsInfo{}
	assert.Error(t, m.EnableCode(evcodes.EV_KEY, evcodes.KEY_A, &info, nil), "EnableCode(EV_KEY, ..., absInfo) must reject the payload")
}

func TestDiffTypesReportsAddedAndRemoved(t *testing.T) {
	a := New()
	a.EnableType(evcodes.EV_KEY)
	a.EnableType(evcodes.EV_REL)

	b := New()
	b.EnableType(evcodes.EV_KEY)
	b.EnableType(evcodes.EV_LED)

	added, removed := a.Caps.DiffTypes(&b.Caps)
	assert.Equal(t, []uint16{evcodes.EV_LED}, added)
	assert.Equal(t, []uint16{evcodes.EV_REL}, removed)
}
