package evdev

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/temoto/goevdev/evdev/evcodes"
	"github.com/temoto/goevdev/evdev/internal/wire"
)

var testSyncTime = wire.Timeval{Sec: 1000, Usec: 1}

func drainQueue(m *DeviceModel) []queuedEvent {
	var out []queuedEvent
	for {
		e, ok := m.queue.pop()
		if !ok {
			return out
		}
		out = append(out, e)
	}
}

func newBareSnapshot() snapshot {
	return snapshot{
		keys: newKeyedState(int(evcodes.KEY_MAX) + 1),
		leds: newKeyedState(int(evcodes.LED_MAX) + 1),
		sws:  newKeyedState(int(evcodes.SW_MAX) + 1),
		axes: newAxisStore(),
	}
}

// TestSyncResyncsKeyState: shadow has KEY_A=1; kernel
// snapshot has KEY_A=0, KEY_B=1; the synthesized sequence must contain both
// key deltas and end with SYN_REPORT.
func TestSyncResyncsKeyState(t *testing.T) {
	m := New()
	m.EnableType(evcodes.EV_KEY)
	for _, code := range []uint16{evcodes.KEY_A, evcodes.KEY_B} {
		require.NoError(t, m.EnableCode(evcodes.EV_KEY, code, nil, nil))
	}
	m.keyState.set(int(evcodes.KEY_A), 1)

	snap := newBareSnapshot()
	snap.keys.set(int(evcodes.KEY_A), 0)
	snap.keys.set(int(evcodes.KEY_B), 1)

	m.applySyncDelta(snap, testSyncTime, false)
	events := drainQueue(m)

	require.Len(t, events, 3, "want KEY_A, KEY_B, SYN_REPORT")
	last := events[len(events)-1]
	assert.Equal(t, uint16(evcodes.EV_SYN), last.Type)
	assert.Equal(t, uint16(evcodes.SYN_REPORT), last.Code)

	seen := map[uint16]int32{}
	for _, e := range events[:len(events)-1] {
		require.Equal(t, uint16(evcodes.EV_KEY), e.Type, "unexpected non-key event in the key delta: %+v", e)
		assert.Equal(t, testSyncTime, e.Time)
		seen[e.Code] = e.Value
	}
	assert.EqualValues(t, 0, seen[evcodes.KEY_A])
	assert.EqualValues(t, 1, seen[evcodes.KEY_B])

	// applySyncDelta only computes and queues the delta; the shadow updates
	// as the reader drains it, not here.
	assert.EqualValues(t, 1, m.keyState.get(int(evcodes.KEY_A)), "applySyncDelta must not mutate the shadow directly")
}

// TestSyncIdempotence: running the sync algorithm twice over identical
// kernel state produces a second delta of length 1 (just SYN_REPORT).
func TestSyncIdempotence(t *testing.T) {
	m := New()
	m.EnableType(evcodes.EV_KEY)
	require.NoError(t, m.EnableCode(evcodes.EV_KEY, evcodes.KEY_A, nil, nil))

	snap := newBareSnapshot()
	snap.keys.set(int(evcodes.KEY_A), 1)

	m.applySyncDelta(snap, testSyncTime, false)
	for _, e := range drainQueue(m) {
		m.applyEvent(e.Type, e.Code, e.Value)
	}

	m.applySyncDelta(snap, testSyncTime, false)
	events := drainQueue(m)
	require.Len(t, events, 1, "second identical sync should produce only SYN_REPORT")
	assert.Equal(t, uint16(evcodes.EV_SYN), events[0].Type)
	assert.Equal(t, uint16(evcodes.SYN_REPORT), events[0].Code)
}

// TestSyncCorrectness: after draining, the shadow equals the snapshot the
// sync observed.
func TestSyncCorrectness(t *testing.T) {
	m := New()
	m.EnableType(evcodes.EV_KEY)
	require.NoError(t, m.EnableCode(evcodes.EV_KEY, evcodes.KEY_A, nil, nil))

	snap := newBareSnapshot()
	snap.keys.set(int(evcodes.KEY_A), 1)

	m.applySyncDelta(snap, testSyncTime, false)
	for _, e := range drainQueue(m) {
		m.applyEvent(e.Type, e.Code, e.Value)
	}

	assert.EqualValues(t, 1, m.GetEventValue(evcodes.EV_KEY, evcodes.KEY_A))
}

// TestSyncMTSlotResync: cached slot0.POSITION_X=100;
// kernel has slot0.POSITION_X=150, slot1.TRACKING_ID=17, slot1.POSITION_X=200.
func TestSyncMTSlotResync(t *testing.T) {
	m := newMTModel(t, 2)
	m.slots.set(0, evcodes.ABS_MT_POSITION_X, 100)
	m.slots.set(1, evcodes.ABS_MT_TRACKING_ID, -1)

	snap := newBareSnapshot()
	snap.slotValues = make([][mtCodeCount]int32, 2)
	snap.slotValues[0] = m.slots.rows[0]
	posIdx, _ := mtIndex(evcodes.ABS_MT_POSITION_X)
	trackIdx, _ := mtIndex(evcodes.ABS_MT_TRACKING_ID)
	snap.slotValues[0][posIdx] = 150
	snap.slotValues[1][trackIdx] = 17
	snap.slotValues[1][posIdx] = 200

	m.applySyncDelta(snap, testSyncTime, false)
	events := drainQueue(m)

	require.NotEmpty(t, events)
	assert.Equal(t, uint16(evcodes.SYN_REPORT), events[len(events)-1].Code, "delta must end with SYN_REPORT")

	// Expect: SLOT=0, POSITION_X=150, SLOT=1, TRACKING_ID=17, POSITION_X=200, SYN_REPORT
	want := []queuedEvent{
		{Time: testSyncTime, Type: evcodes.EV_ABS, Code: evcodes.ABS_MT_SLOT, Value: 0},
		{Time: testSyncTime, Type: evcodes.EV_ABS, Code: evcodes.ABS_MT_POSITION_X, Value: 150},
		{Time: testSyncTime, Type: evcodes.EV_ABS, Code: evcodes.ABS_MT_SLOT, Value: 1},
		{Time: testSyncTime, Type: evcodes.EV_ABS, Code: evcodes.ABS_MT_TRACKING_ID, Value: 17},
		{Time: testSyncTime, Type: evcodes.EV_ABS, Code: evcodes.ABS_MT_POSITION_X, Value: 200},
		{Time: testSyncTime, Type: evcodes.EV_SYN, Code: evcodes.SYN_REPORT, Value: 0},
	}
	require.Equal(t, want, events)
}

func TestAbandonSyncFastForwards(t *testing.T) {
	m := New()
	m.EnableType(evcodes.EV_KEY)
	require.NoError(t, m.EnableCode(evcodes.EV_KEY, evcodes.KEY_A, nil, nil))

	snap := newBareSnapshot()
	snap.keys.set(int(evcodes.KEY_A), 1)
	m.applySyncDelta(snap, testSyncTime, false)

	m.applySnapshot(snap)
	m.queue.discard()

	assert.EqualValues(t, 1, m.GetEventValue(evcodes.EV_KEY, evcodes.KEY_A), "fast-forwarding must apply the full snapshot even though the queue was discarded")
	assert.True(t, m.queue.empty(), "queue must be empty after abandoning sync")
}
