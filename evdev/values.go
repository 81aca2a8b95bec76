package evdev

import "github.com/temoto/goevdev/evdev/evcodes"

// GetEventValue returns the shadowed value for (t, code), or 0 if it is not
// a supported non-MT code.
func (m *DeviceModel) GetEventValue(t, code uint16) int32 {
	v, _ := m.FetchEventValue(t, code)
	return v
}

// FetchEventValue combines the existence check and the read: ok is false
// when (t, code) is not enabled, or code is an ABS_MT_* code on a device
// with a slot table (those live in the slot table, see FetchSlotValue). On a
// device without a slot table, ABS_MT_* codes read like any other axis.
func (m *DeviceModel) FetchEventValue(t, code uint16) (int32, bool) {
	if !m.Caps.HasCode(t, code) {
		return 0, false
	}
	switch t {
	case evcodes.EV_ABS:
		if m.slots != nil && evcodes.IsMTCode(code) {
			return 0, false
		}
		info, ok := m.axes.get(code)
		if !ok {
			return 0, false
		}
		return info.Value, true
	case evcodes.EV_KEY:
		return m.keyState.get(int(code)), true
	case evcodes.EV_LED:
		return m.ledState.get(int(code)), true
	case evcodes.EV_SW:
		return m.swState.get(int(code)), true
	default:
		return 0, false
	}
}

// SetEventValue writes the shadow for (t, code). This does not clamp
// EV_ABS values to [min, max] — the source doesn't and callers occasionally
// rely on writing out-of-range sentinels (e.g. -1 tracking IDs handled
// separately via the slot table). Fails if the code is not enabled, or is an
// ABS_MT_* code on a device with a slot table (use SetSlotValue for those).
func (m *DeviceModel) SetEventValue(t, code uint16, v int32) error {
	if !m.Caps.HasCode(t, code) {
		return errInvalidArgf("SetEventValue: (%d,%d) not enabled", t, code)
	}
	switch t {
	case evcodes.EV_ABS:
		if m.slots != nil && evcodes.IsMTCode(code) {
			return errInvalidArgf("SetEventValue: %d is an ABS_MT_* code, use SetSlotValue", code)
		}
		if !m.axes.setValue(code, v) {
			return errInvalidArgf("SetEventValue: ABS code %d has no axis info", code)
		}
	case evcodes.EV_KEY:
		m.keyState.set(int(code), v)
	case evcodes.EV_LED:
		m.ledState.set(int(code), v)
	case evcodes.EV_SW:
		m.swState.set(int(code), v)
	default:
		return errInvalidArgf("SetEventValue: type %d has no scalar value", t)
	}
	return nil
}

// applyEvent updates the model's shadow state from one real (non-SYN)
// kernel event, the same update EventReader.Next performs for events
// returned in Normal mode and for each synthesized event drained in Sync
// mode: the cached model is updated as each synthesized event is drained.
func (m *DeviceModel) applyEvent(t, code uint16, v int32) {
	switch t {
	case evcodes.EV_ABS:
		if m.slots != nil && code == evcodes.ABS_MT_SLOT {
			m.applyMTSlotEvent(v)
			return
		}
		if m.slots != nil && evcodes.IsMTCode(code) {
			m.applyMTCodeEvent(code, v)
			return
		}
		// Fake-MT devices have no slot table; ABS_MT_* codes are shadowed
		// like any ordinary EV_ABS axis.
		m.axes.setValue(code, v)
	case evcodes.EV_KEY:
		m.keyState.set(int(code), v)
	case evcodes.EV_LED:
		m.ledState.set(int(code), v)
	case evcodes.EV_SW:
		m.swState.set(int(code), v)
	case evcodes.EV_REP:
		if code == evcodes.REP_DELAY {
			m.repDelay = v
		} else if code == evcodes.REP_PERIOD {
			m.repPeriod = v
		}
	}
}
