package evdev

import (
	"github.com/temoto/goevdev/evdev/evcodes"
	"github.com/temoto/goevdev/evdev/internal/wire"
)

// queuedEvent is one synthesized (type, code, value) triple produced by the
// sync delta, stamped with the timestamp the whole delta frame shares: the
// triggering SYN_DROPPED event's time, or the moment a forced sync ran.
type queuedEvent struct {
	Time       wire.Timeval
	Type, Code uint16
	Value      int32
}

// eventQueue is the bounded single-producer/single-consumer FIFO: sized by
// Attach from capacityFor, refilled on each sync, and drained to empty
// before the reader returns to normal mode.
type eventQueue struct {
	buf   []queuedEvent
	head  int
	count int
}

// capacityFor computes the worst-case sync delta size: one event per
// supported code across EV_KEY/EV_LED/EV_SW/EV_ABS(non-MT), plus one event
// per (slot, MT-code) pair and one ABS_MT_SLOT marker per slot, plus a
// small constant for the SYN_REPORT terminator.
func capacityFor(m *DeviceModel) int {
	n := 0
	for _, t := range []uint16{evcodes.EV_KEY, evcodes.EV_LED, evcodes.EV_SW} {
		n += len(m.Caps.supportedCodes(t))
	}
	for _, code := range m.Caps.supportedCodes(evcodes.EV_ABS) {
		if !evcodes.IsMTCode(code) {
			n++
		}
	}
	if m.slots != nil {
		n += m.slots.numSlots * (mtCodeCount + 1) // +1 per slot for the ABS_MT_SLOT marker
	}
	return n + 4 // SYN_REPORT and slack
}

func newEventQueue(capacity int) eventQueue {
	if capacity < 1 {
		capacity = 1
	}
	return eventQueue{buf: make([]queuedEvent, capacity)}
}

func (q *eventQueue) reset(capacity int) {
	*q = newEventQueue(capacity)
}

func (q *eventQueue) empty() bool { return q.count == 0 }

func (q *eventQueue) push(e queuedEvent) {
	if q.count == len(q.buf) {
		// Grown past the derived bound: this would indicate a bug in the
		// capacity estimate, not a legitimate overflow condition. Grow
		// rather than drop so the delta is never truncated.
		grown := make([]queuedEvent, len(q.buf)*2+1)
		for i := 0; i < q.count; i++ {
			grown[i] = q.buf[(q.head+i)%len(q.buf)]
		}
		q.buf = grown
		q.head = 0
	}
	q.buf[(q.head+q.count)%len(q.buf)] = e
	q.count++
}

func (q *eventQueue) pop() (queuedEvent, bool) {
	if q.count == 0 {
		return queuedEvent{}, false
	}
	e := q.buf[q.head]
	q.head = (q.head + 1) % len(q.buf)
	q.count--
	return e, true
}

func (q *eventQueue) discard() {
	q.head = 0
	q.count = 0
}
