package evdev

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/temoto/goevdev/evdev/evcodes"
)

func newMTModel(t *testing.T, numSlots int) *DeviceModel {
	t.Helper()
	m := New()
	info := AbsInfo{Minimum: 0, Maximum: int32(numSlots - 1)}
	require.NoError(t, m.EnableCode(evcodes.EV_ABS, evcodes.ABS_MT_SLOT, &info, nil))
	posInfo := AbsInfo{Minimum: 0, Maximum: 1000}
	require.NoError(t, m.EnableCode(evcodes.EV_ABS, evcodes.ABS_MT_POSITION_X, &posInfo, nil))
	require.NoError(t, m.EnableCode(evcodes.EV_ABS, evcodes.ABS_MT_TRACKING_ID, &posInfo, nil))
	m.slots = newSlotTable(numSlots)
	return m
}

func TestCurrentSlotClampedToRange(t *testing.T) {
	m := newMTModel(t, 4)
	m.applyMTSlotEvent(2)
	assert.Equal(t, 2, m.CurrentSlot())
	m.applyMTSlotEvent(99)
	assert.Equal(t, 3, m.CurrentSlot(), "out-of-range slot index should clamp to N-1=3")
	m.applyMTSlotEvent(-1)
	assert.Equal(t, 3, m.CurrentSlot(), "negative slot index must leave current_slot unchanged")
}

func TestApplyMTCodeEventWritesCurrentSlot(t *testing.T) {
	m := newMTModel(t, 2)
	m.applyMTSlotEvent(1)
	m.applyMTCodeEvent(evcodes.ABS_MT_POSITION_X, 500)
	assert.EqualValues(t, 500, m.GetSlotValue(1, evcodes.ABS_MT_POSITION_X))
	assert.EqualValues(t, 0, m.GetSlotValue(0, evcodes.ABS_MT_POSITION_X), "slot 0 must be untouched")
}

func TestNumSlotsMinusOneWhenNoSlotTable(t *testing.T) {
	m := New()
	assert.Equal(t, -1, m.NumSlots())
}

func TestSetSlotValueRejectsNonMTCode(t *testing.T) {
	m := newMTModel(t, 2)
	assert.Error(t, m.SetSlotValue(0, evcodes.ABS_X, 1), "SetSlotValue with a non-MT code must fail")
}

func TestSetSlotValueRejectsOutOfBounds(t *testing.T) {
	m := newMTModel(t, 2)
	assert.Error(t, m.SetSlotValue(5, evcodes.ABS_MT_POSITION_X, 1), "SetSlotValue with an out-of-bounds slot must fail")
}
