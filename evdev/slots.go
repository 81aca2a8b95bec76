package evdev

import "github.com/temoto/goevdev/evdev/evcodes"

// mtCodeCount is the number of distinct ABS_MT_* codes in the numbering
// space (ABS_MT_SLOT..ABS_MAX inclusive).
const mtCodeCount = evcodes.ABS_MAX - evcodes.ABS_MT_SLOT + 1

func mtIndex(code uint16) (int, bool) {
	if code < evcodes.ABS_MT_SLOT || code > evcodes.ABS_MAX {
		return 0, false
	}
	return int(code - evcodes.ABS_MT_SLOT), true
}

// slotTable is the N x K per-contact state table: N slots (bounded by
// MaxTrackedSlots), K = mtCodeCount columns, plus the current-slot index
// the kernel's ABS_MT_SLOT event updates.
type slotTable struct {
	numSlots    int
	currentSlot int
	rows        [][mtCodeCount]int32
}

func newSlotTable(numSlots int) *slotTable {
	if numSlots > MaxTrackedSlots {
		numSlots = MaxTrackedSlots
	}
	if numSlots < 0 {
		numSlots = 0
	}
	return &slotTable{
		numSlots: numSlots,
		rows:     make([][mtCodeCount]int32, numSlots),
	}
}

func (t *slotTable) setCurrentSlotFromEvent(v int32) {
	if v < 0 {
		return
	}
	clamped := int(v)
	if clamped >= t.numSlots {
		clamped = t.numSlots - 1
	}
	if clamped < 0 {
		return
	}
	t.currentSlot = clamped
}

func (t *slotTable) setAtCurrent(code uint16, v int32) bool {
	idx, ok := mtIndex(code)
	if !ok {
		return false
	}
	if t.currentSlot < 0 || t.currentSlot >= t.numSlots {
		return false
	}
	t.rows[t.currentSlot][idx] = v
	return true
}

func (t *slotTable) get(slot int, code uint16) (int32, bool) {
	idx, ok := mtIndex(code)
	if !ok || slot < 0 || slot >= t.numSlots {
		return 0, false
	}
	return t.rows[slot][idx], true
}

func (t *slotTable) set(slot int, code uint16, v int32) bool {
	idx, ok := mtIndex(code)
	if !ok || slot < 0 || slot >= t.numSlots {
		return false
	}
	t.rows[slot][idx] = v
	return true
}

// --- DeviceModel public surface ---

// NumSlots returns the device's tracked slot count, or -1 if the device has
// no multi-touch slots or was detected as fake-MT.
func (m *DeviceModel) NumSlots() int {
	if m.noMT || m.slots == nil {
		return -1
	}
	return m.slots.numSlots
}

// CurrentSlot returns the active slot index, meaningless if NumSlots() < 0.
func (m *DeviceModel) CurrentSlot() int {
	if m.slots == nil {
		return 0
	}
	return m.slots.currentSlot
}

// GetSlotValue returns the shadowed value for code in slot, or 0 if the
// device has no slot table, the slot is out of range, or code isn't an MT
// code.
func (m *DeviceModel) GetSlotValue(slot int, code uint16) int32 {
	v, _ := m.FetchSlotValue(slot, code)
	return v
}

// FetchSlotValue combines the existence check and the read: ok is false
// when there's no slot table, the slot is out of bounds, or code is not a
// supported MT code.
func (m *DeviceModel) FetchSlotValue(slot int, code uint16) (int32, bool) {
	if m.slots == nil {
		return 0, false
	}
	if !m.Caps.HasCode(evcodes.EV_ABS, code) || !evcodes.IsMTCode(code) {
		return 0, false
	}
	return m.slots.get(slot, code)
}

// SetSlotValue writes the shadow only. Fails when the slot is out of
// bounds, code is not an MT code, or code is not enabled.
func (m *DeviceModel) SetSlotValue(slot int, code uint16, v int32) error {
	if m.slots == nil {
		return errInvalidArgf("SetSlotValue: device has no slot table")
	}
	if !evcodes.IsMTCode(code) {
		return errInvalidArgf("SetSlotValue: code %d is not an ABS_MT_* code", code)
	}
	if !m.Caps.HasCode(evcodes.EV_ABS, code) {
		return errInvalidArgf("SetSlotValue: code %d not enabled", code)
	}
	if !m.slots.set(slot, code, v) {
		return errInvalidArgf("SetSlotValue: slot %d out of range [0,%d)", slot, m.slots.numSlots)
	}
	return nil
}

// applyMTSlotEvent processes (EV_ABS, ABS_MT_SLOT, v): clamps to [0, N-1]
// if v >= 0, otherwise leaves current_slot unchanged.
func (m *DeviceModel) applyMTSlotEvent(v int32) {
	if m.slots == nil {
		return
	}
	m.slots.setCurrentSlotFromEvent(v)
}

// applyMTCodeEvent processes (EV_ABS, mtCode, v) for any MT code other than
// ABS_MT_SLOT: writes into the current slot, silently dropped if the
// current slot is invalid.
func (m *DeviceModel) applyMTCodeEvent(code uint16, v int32) {
	if m.slots == nil {
		return
	}
	m.slots.setAtCurrent(code, v)
}
