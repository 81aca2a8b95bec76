package evdev

import (
	"github.com/temoto/goevdev/evdev/evcodes"
	"github.com/temoto/goevdev/evdev/internal/wire"
)

// snapshot is the fresh kernel-side state runSync diffs against the cached
// model: key, LED and switch state, axis info, and per-slot MT values.
// Identity, capability bits and repeat settings are not re-read.
type snapshot struct {
	keys, leds, sws keyedState
	axes            axisStore
	slotValues      [][mtCodeCount]int32 // one row per tracked slot, only if the device has a slot table
}

func takeSnapshot(m *DeviceModel) snapshot {
	snap := snapshot{
		keys: newKeyedState(int(evcodes.KEY_MAX) + 1),
		leds: newKeyedState(int(evcodes.LED_MAX) + 1),
		sws:  newKeyedState(int(evcodes.SW_MAX) + 1),
		axes: newAxisStore(),
	}

	if m.Caps.HasType(evcodes.EV_KEY) {
		if bits, err := wire.GetKeyBits(m.fd, int(evcodes.KEY_MAX)+1); err == nil {
			for _, code := range m.Caps.supportedCodes(evcodes.EV_KEY) {
				if wire.HasBit(bits, int(code)) {
					snap.keys.set(int(code), 1)
				}
			}
		}
	}
	if m.Caps.HasType(evcodes.EV_LED) {
		if bits, err := wire.GetLedBits(m.fd, int(evcodes.LED_MAX)+1); err == nil {
			for _, code := range m.Caps.supportedCodes(evcodes.EV_LED) {
				if wire.HasBit(bits, int(code)) {
					snap.leds.set(int(code), 1)
				}
			}
		}
	}
	if m.Caps.HasType(evcodes.EV_SW) {
		if bits, err := wire.GetSwBits(m.fd, int(evcodes.SW_MAX)+1); err == nil {
			for _, code := range m.Caps.supportedCodes(evcodes.EV_SW) {
				if wire.HasBit(bits, int(code)) {
					snap.sws.set(int(code), 1)
				}
			}
		}
	}
	for _, code := range m.Caps.supportedCodes(evcodes.EV_ABS) {
		if m.slots != nil && evcodes.IsMTCode(code) {
			continue
		}
		info, err := wire.GetAbsInfo(m.fd, code)
		if err != nil {
			continue
		}
		snap.axes.set(code, fromWireAbsInfo(info))
	}

	if m.slots != nil {
		n := m.slots.numSlots
		snap.slotValues = make([][mtCodeCount]int32, n)
		for _, code := range m.Caps.supportedCodes(evcodes.EV_ABS) {
			if !evcodes.IsMTCode(code) || code == evcodes.ABS_MT_SLOT {
				continue
			}
			idx, _ := mtIndex(code)
			values, err := wire.GetMTSlots(m.fd, code, n)
			if err != nil {
				continue
			}
			for slot, v := range values {
				snap.slotValues[slot][idx] = v
			}
		}
	}

	return snap
}

// runSync is the shared entry point for SYN_DROPPED-triggered and forced
// sync: it snapshots fresh kernel state and diffs it against the cached
// model via applySyncDelta. ts is stamped onto every synthesized event in
// the resulting delta: the triggering SYN_DROPPED event's own timestamp for
// a kernel-reported drop, or the current time for a forced sync.
func (m *DeviceModel) runSync(ts wire.Timeval, force bool) {
	m.applySyncDelta(takeSnapshot(m), ts, force)
}

// applySyncDelta computes and enqueues the delta between the cached model
// and snap (plus a terminating SYN_REPORT), every event stamped with ts.
// Split out from runSync so the diff algorithm can be exercised against a
// hand-built snapshot without a real kernel descriptor. force does not
// change the output: the SYN_REPORT is emitted on every run, with or
// without deltas, so a forced sync always yields at least that event.
func (m *DeviceModel) applySyncDelta(snap snapshot, ts wire.Timeval, force bool) {
	m.queue.discard()

	for _, code := range m.Caps.supportedCodes(evcodes.EV_KEY) {
		if old, new := m.keyState.get(int(code)), snap.keys.get(int(code)); old != new {
			m.queue.push(queuedEvent{Time: ts, Type: evcodes.EV_KEY, Code: code, Value: new})
		}
	}
	for _, code := range m.Caps.supportedCodes(evcodes.EV_LED) {
		if old, new := m.ledState.get(int(code)), snap.leds.get(int(code)); old != new {
			m.queue.push(queuedEvent{Time: ts, Type: evcodes.EV_LED, Code: code, Value: new})
		}
	}
	for _, code := range m.Caps.supportedCodes(evcodes.EV_SW) {
		if old, new := m.swState.get(int(code)), snap.sws.get(int(code)); old != new {
			m.queue.push(queuedEvent{Time: ts, Type: evcodes.EV_SW, Code: code, Value: new})
		}
	}
	for _, code := range m.Caps.supportedCodes(evcodes.EV_ABS) {
		if m.slots != nil && evcodes.IsMTCode(code) {
			continue
		}
		oldInfo, _ := m.axes.get(code)
		newInfo, ok := snap.axes.get(code)
		if !ok || oldInfo.Value == newInfo.Value {
			continue
		}
		m.queue.push(queuedEvent{Time: ts, Type: evcodes.EV_ABS, Code: code, Value: newInfo.Value})
	}

	if m.slots != nil {
		n := m.slots.numSlots
		if n > len(snap.slotValues) {
			n = len(snap.slotValues)
		}
		for s := 0; s < n; s++ {
			m.emitSlotDelta(s, snap.slotValues[s], ts)
		}
	}

	m.queue.push(queuedEvent{Time: ts, Type: evcodes.EV_SYN, Code: evcodes.SYN_REPORT, Value: 0})
}

// emitSlotDelta diffs slot s's cached row against fresh, emitting ABS_MT_SLOT
// first if anything in the row changed, then one event per changed code.
// ABS_MT_TRACKING_ID is ordered last when the touch is ending (new == -1)
// and first when the touch is beginning (old == -1, new != -1), so a
// consumer replaying the stream never observes other MT fields outliving
// or missing their tracking id.
func (m *DeviceModel) emitSlotDelta(slot int, fresh [mtCodeCount]int32, ts wire.Timeval) {
	old := m.slots.rows[slot]
	changed := false
	for i := range fresh {
		if fresh[i] != old[i] {
			changed = true
			break
		}
	}
	if !changed {
		return
	}

	m.queue.push(queuedEvent{Time: ts, Type: evcodes.EV_ABS, Code: evcodes.ABS_MT_SLOT, Value: int32(slot)})

	trackIdx, _ := mtIndex(evcodes.ABS_MT_TRACKING_ID)
	oldTrack, newTrack := old[trackIdx], fresh[trackIdx]

	emitCode := func(code uint16) {
		idx, _ := mtIndex(code)
		if fresh[idx] != old[idx] {
			m.queue.push(queuedEvent{Time: ts, Type: evcodes.EV_ABS, Code: code, Value: fresh[idx]})
		}
	}

	touchBeginning := oldTrack == -1 && newTrack != -1
	touchEnding := newTrack == -1 && oldTrack != -1

	if touchBeginning {
		emitCode(evcodes.ABS_MT_TRACKING_ID)
	}
	for i := range fresh {
		code := evcodes.ABS_MT_SLOT + uint16(i)
		if code == evcodes.ABS_MT_TRACKING_ID {
			continue
		}
		emitCode(code)
	}
	if touchEnding || (!touchBeginning && oldTrack != newTrack) {
		emitCode(evcodes.ABS_MT_TRACKING_ID)
	}
}

// abandonSync discards the queue and fast-forwards the shadow state to a
// freshly taken snapshot, used when the caller stops draining a sync
// sequence and resumes normal reads.
func (m *DeviceModel) abandonSync() {
	snap := takeSnapshot(m)
	m.queue.discard()
	m.applySnapshot(snap)
}

func (m *DeviceModel) applySnapshot(snap snapshot) {
	for _, code := range m.Caps.supportedCodes(evcodes.EV_KEY) {
		m.keyState.set(int(code), snap.keys.get(int(code)))
	}
	for _, code := range m.Caps.supportedCodes(evcodes.EV_LED) {
		m.ledState.set(int(code), snap.leds.get(int(code)))
	}
	for _, code := range m.Caps.supportedCodes(evcodes.EV_SW) {
		m.swState.set(int(code), snap.sws.get(int(code)))
	}
	for _, code := range m.Caps.supportedCodes(evcodes.EV_ABS) {
		if m.slots != nil && evcodes.IsMTCode(code) {
			continue
		}
		if info, ok := snap.axes.get(code); ok {
			m.axes.setValue(code, info.Value)
		}
	}
	if m.slots != nil {
		n := m.slots.numSlots
		if n > len(snap.slotValues) {
			n = len(snap.slotValues)
		}
		for s := 0; s < n; s++ {
			m.slots.rows[s] = snap.slotValues[s]
		}
	}
}
