package evdev

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/temoto/goevdev/evdev/evcodes"
)

func TestApplyEventKey(t *testing.T) {
	m := New()
	m.EnableType(evcodes.EV_KEY)
	require.NoError(t, m.EnableCode(evcodes.EV_KEY, evcodes.KEY_A, nil, nil))

	m.applyEvent(evcodes.EV_KEY, evcodes.KEY_A, 1)
	assert.EqualValues(t, 1, m.GetEventValue(evcodes.EV_KEY, evcodes.KEY_A))
}

func TestFetchEventValueRejectsDisabledCode(t *testing.T) {
	m := New()
	_, ok := m.FetchEventValue(evcodes.EV_KEY, evcodes.KEY_A)
	assert.False(t, ok, "FetchEventValue on a disabled code must report not-ok")
}

func TestSetEventValueRejectsMTCodeWhenSlotTableExists(t *testing.T) {
	m := newMTModel(t, 2)
	assert.Error(t, m.SetEventValue(evcodes.EV_ABS, evcodes.ABS_MT_POSITION_X, 1), "SetEventValue must reject ABS_MT_* codes when a slot table exists")
}

// TestFakeMTRoutesThroughOrdinaryAxisPath: a fake-MT device has no slot
// table, so its ABS_MT_* codes behave like ordinary EV_ABS axes.
func TestFakeMTRoutesThroughOrdinaryAxisPath(t *testing.T) {
	m := New()
	info := AbsInfo{Minimum: 0, Maximum: 10}
	require.NoError(t, m.EnableCode(evcodes.EV_ABS, evcodes.ABS_MT_POSITION_X, &info, nil))

	// m.slots stays nil: this is the fake-MT (or no-MT) shape.
	require.NoError(t, m.SetEventValue(evcodes.EV_ABS, evcodes.ABS_MT_POSITION_X, 7), "SetEventValue on a fake-MT device must succeed")
	assert.EqualValues(t, 7, m.GetEventValue(evcodes.EV_ABS, evcodes.ABS_MT_POSITION_X))
	assert.Equal(t, -1, m.NumSlots())
}

func TestSetEventValueDoesNotClamp(t *testing.T) {
	m := New()
	info := AbsInfo{Minimum: 0, Maximum: 10}
	require.NoError(t, m.EnableCode(evcodes.EV_ABS, evcodes.ABS_X, &info, nil))

	require.NoError(t, m.SetEventValue(evcodes.EV_ABS, evcodes.ABS_X, -1))
	assert.EqualValues(t, -1, m.GetEventValue(evcodes.EV_ABS, evcodes.ABS_X), "no clamping expected")
}
