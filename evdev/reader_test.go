package evdev

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/temoto/goevdev/evdev/evcodes"
	"github.com/temoto/goevdev/evdev/internal/wire"
)

func newPipeModel(t *testing.T) (*DeviceModel, *os.File) {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)
	t.Cleanup(func() { r.Close(); w.Close() })

	m := New()
	m.EnableType(evcodes.EV_KEY)
	require.NoError(t, m.EnableCode(evcodes.EV_KEY, evcodes.KEY_A, nil, nil))
	m.EnableType(evcodes.EV_REL)
	m.fd = r.Fd()
	m.attached = true
	m.queue.reset(capacityFor(m))
	return m, w
}

func writeRaw(t *testing.T, w *os.File, typ, code uint16, value int32) {
	t.Helper()
	require.NoError(t, wire.WriteEvent(w, wire.InputEvent{Type: typ, Code: code, Value: value}))
}

func writeRawAt(t *testing.T, w *os.File, ts wire.Timeval, typ, code uint16, value int32) {
	t.Helper()
	require.NoError(t, wire.WriteEvent(w, wire.InputEvent{Time: ts, Type: typ, Code: code, Value: value}))
}

// TestReaderKeyboardSingleKey: a (EV_KEY, KEY_A, 1) event
// followed by SYN_REPORT is returned in order and the shadow updates after
// the first.
func TestReaderKeyboardSingleKey(t *testing.T) {
	m, w := newPipeModel(t)
	writeRaw(t, w, evcodes.EV_KEY, evcodes.KEY_A, 1)
	writeRaw(t, w, evcodes.EV_SYN, evcodes.SYN_REPORT, 0)

	status, ev, err := m.Next(FlagNormal)
	require.NoError(t, err)
	assert.Equal(t, StatusSuccess, status)
	assert.Equal(t, uint16(evcodes.EV_KEY), ev.Type)
	assert.Equal(t, uint16(evcodes.KEY_A), ev.Code)
	assert.EqualValues(t, 1, ev.Value)
	assert.EqualValues(t, 1, m.GetEventValue(evcodes.EV_KEY, evcodes.KEY_A), "shadow must update after the first event, before SYN_REPORT is read")

	status, ev, err = m.Next(FlagNormal)
	require.NoError(t, err)
	assert.Equal(t, StatusSuccess, status)
	assert.Equal(t, uint16(evcodes.EV_SYN), ev.Type)
	assert.Equal(t, uint16(evcodes.SYN_REPORT), ev.Code)
}

// TestReaderFiltersDisabledCode: a code disabled locally
// after being enabled is filtered by the reader rather than returned.
func TestReaderFiltersDisabledCode(t *testing.T) {
	m, w := newPipeModel(t)
	require.NoError(t, m.EnableCode(evcodes.EV_REL, evcodes.REL_X, nil, nil))
	require.NoError(t, m.DisableCode(evcodes.EV_REL, evcodes.REL_X))
	writeRaw(t, w, evcodes.EV_REL, evcodes.REL_X, 3)
	writeRaw(t, w, evcodes.EV_KEY, evcodes.KEY_A, 1)

	status, _, err := m.Next(FlagNormal)
	require.NoError(t, err)
	assert.Equal(t, StatusAgain, status, "disabled-code event should be filtered")

	status, ev, err := m.Next(FlagNormal)
	require.NoError(t, err)
	assert.Equal(t, StatusSuccess, status)
	assert.Equal(t, uint16(evcodes.KEY_A), ev.Code, "next real event should surface after the filtered one")
}

// TestReaderSynDroppedEntersSyncMode covers the Normal->Sync transition: a
// SYN_DROPPED marker on the descriptor switches mode and returns the
// dropped event itself, with at least a terminating SYN_REPORT queued for
// the subsequent sync drain.
func TestReaderSynDroppedEntersSyncMode(t *testing.T) {
	m, w := newPipeModel(t)
	writeRaw(t, w, evcodes.EV_SYN, evcodes.SYN_DROPPED, 0)

	status, ev, err := m.Next(FlagNormal)
	require.NoError(t, err)
	assert.Equal(t, StatusSync, status)
	assert.Equal(t, uint16(evcodes.EV_SYN), ev.Type)
	assert.Equal(t, uint16(evcodes.SYN_DROPPED), ev.Code)

	status, ev, err = m.Next(FlagSync)
	require.NoError(t, err)
	assert.Equal(t, StatusSync, status, "draining a degraded sync over a non-ioctl descriptor should still terminate with SYN_REPORT")
	assert.Equal(t, uint16(evcodes.EV_SYN), ev.Type)
	assert.Equal(t, uint16(evcodes.SYN_REPORT), ev.Code)

	status, _, err = m.Next(FlagSync)
	require.NoError(t, err)
	assert.Equal(t, StatusAgain, status, "draining an empty queue should return StatusAgain")
}

// TestSyncedEventsInheritDroppedTimestamp: the synthesized events produced
// by a SYN_DROPPED-triggered sync must carry the timestamp of the
// SYN_DROPPED event itself, not a zero value.
func TestSyncedEventsInheritDroppedTimestamp(t *testing.T) {
	m, w := newPipeModel(t)
	ts := wire.Timeval{Sec: 4242, Usec: 7}
	writeRawAt(t, w, ts, evcodes.EV_SYN, evcodes.SYN_DROPPED, 0)

	status, ev, err := m.Next(FlagNormal)
	require.NoError(t, err)
	require.Equal(t, StatusSync, status)
	assert.Equal(t, ts, ev.Time, "the SYN_DROPPED event itself keeps its own timestamp")

	status, ev, err = m.Next(FlagSync)
	require.NoError(t, err)
	require.Equal(t, StatusSync, status)
	assert.Equal(t, ts, ev.Time, "synthesized sync events must inherit the triggering SYN_DROPPED's timestamp")
}

// TestForcedSyncAlwaysTerminates: forced sync with no
// state change still produces a queue that, once drained, yields exactly
// one SYN_REPORT event before returning EAGAIN.
func TestForcedSyncAlwaysTerminates(t *testing.T) {
	m, _ := newPipeModel(t)

	status, _, err := m.Next(FlagForceSync)
	require.NoError(t, err)
	assert.Equal(t, StatusSync, status)

	status, ev, err := m.Next(FlagSync)
	require.NoError(t, err)
	assert.Equal(t, StatusSync, status)
	assert.Equal(t, uint16(evcodes.SYN_REPORT), ev.Code)

	status, _, err = m.Next(FlagSync)
	require.NoError(t, err)
	assert.Equal(t, StatusAgain, status)
}
