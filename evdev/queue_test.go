package evdev

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/temoto/goevdev/evdev/evcodes"
)

func TestEventQueuePushPopOrder(t *testing.T) {
	q := newEventQueue(4)
	q.push(queuedEvent{Type: evcodes.EV_KEY, Code: evcodes.KEY_A, Value: 1})
	q.push(queuedEvent{Type: evcodes.EV_KEY, Code: evcodes.KEY_B, Value: 1})

	e, ok := q.pop()
	require.True(t, ok)
	assert.Equal(t, uint16(evcodes.KEY_A), e.Code)

	e, ok = q.pop()
	require.True(t, ok)
	assert.Equal(t, uint16(evcodes.KEY_B), e.Code)

	assert.True(t, q.empty(), "queue should be empty after draining both pushes")
}

func TestEventQueueGrowsPastCapacity(t *testing.T) {
	q := newEventQueue(1)
	q.push(queuedEvent{Code: 1})
	q.push(queuedEvent{Code: 2})
	q.push(queuedEvent{Code: 3})

	for i := uint16(1); i <= 3; i++ {
		e, ok := q.pop()
		require.True(t, ok)
		assert.Equal(t, i, e.Code)
	}
}

func TestEventQueueDiscard(t *testing.T) {
	q := newEventQueue(4)
	q.push(queuedEvent{Code: 1})
	q.discard()
	assert.True(t, q.empty(), "discard() should empty the queue")
	_, ok := q.pop()
	assert.False(t, ok, "pop() after discard() should report nothing available")
}

func TestCapacityForAccountsForSlotsAndCodes(t *testing.T) {
	m := newMTModel(t, 3)
	m.EnableType(evcodes.EV_KEY)
	require.NoError(t, m.EnableCode(evcodes.EV_KEY, evcodes.KEY_A, nil, nil))
	// 1 key code + 3 slots x (MT codes + ABS_MT_SLOT marker) + 4; the
	// model's ABS codes are all MT codes, so no non-MT axis term.
	assert.Equal(t, 1+3*(mtCodeCount+1)+4, capacityFor(m))
}
