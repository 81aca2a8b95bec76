package evdev

import (
	"time"

	"github.com/juju/errors"
	"golang.org/x/sys/unix"

	"github.com/temoto/goevdev/evdev/evcodes"
	"github.com/temoto/goevdev/evdev/internal/wire"
)

// timevalNow is the timestamp stamped onto a forced sync's delta: there is
// no kernel-reported event to copy a time from, so the library's own clock
// stands in, the same way the teacher's mdb package timestamps operations
// it initiates itself rather than ones it reads off the wire.
func timevalNow() wire.Timeval {
	now := time.Now()
	return wire.Timeval{Sec: now.Unix(), Usec: int64(now.Nanosecond() / 1000)}
}

// ReadFlag is a bitmask combining one mode bit (Normal, Sync, or ForceSync —
// mutually exclusive) with the Blocking modifier.
type ReadFlag uint8

const (
	FlagNormal    ReadFlag = 1 << iota // consume from the kernel descriptor
	FlagSync                           // drain the synthesized sync queue
	FlagForceSync                      // request a sync even without SYN_DROPPED
	FlagBlocking                       // documentary only: this library never touches O_NONBLOCK, the caller does
)

func (f ReadFlag) modeBits() ReadFlag { return f & (FlagNormal | FlagSync | FlagForceSync) }

// Status is the outcome of one Next call.
type Status int

const (
	StatusSuccess Status = iota // a real event was read and applied
	StatusSync                  // a synthesized (or SYN_DROPPED) event was returned
	StatusAgain                 // no event available right now
)

// Event is one input_event as seen by the caller: a real event in Normal
// mode, or a synthesized one drained from the sync queue.
type Event struct {
	Time  wire.Timeval
	Type  uint16
	Code  uint16
	Value int32
}

type readerMode int

const (
	modeNormal readerMode = iota
	modeSync
)

// Next is the single streaming operation: it multiplexes between the kernel
// descriptor and the internal sync queue depending on mode and flags,
// updates the cached model from whatever it returns, and switches modes
// when SYN_DROPPED is observed or a forced sync is requested.
//
// flags must set exactly one of FlagNormal/FlagSync/FlagForceSync, combined
// with FlagBlocking if the descriptor should be read in blocking mode.
func (m *DeviceModel) Next(flags ReadFlag) (Status, Event, error) {
	if !m.attached {
		return StatusAgain, Event{}, errNotAttached()
	}
	switch flags.modeBits() {
	case FlagNormal:
	case FlagSync:
	case FlagForceSync:
	default:
		return StatusAgain, Event{}, errInvalidArgf("Next: exactly one of FlagNormal/FlagSync/FlagForceSync required, got %d", flags.modeBits())
	}

	switch m.mode {
	case modeSync:
		if flags.modeBits() == FlagNormal {
			m.abandonSync()
			m.mode = modeNormal
			return m.nextNormal(flags)
		}
		return m.nextSync()

	default: // modeNormal
		if flags.modeBits() == FlagForceSync {
			m.runSync(timevalNow(), true)
			m.mode = modeSync
			return StatusSync, Event{}, nil
		}
		return m.nextNormal(flags)
	}
}

func (m *DeviceModel) nextNormal(flags ReadFlag) (Status, Event, error) {
	raw, err := m.readOne()
	if err != nil {
		if IsWouldBlock(err) {
			return StatusAgain, Event{}, nil
		}
		return StatusAgain, Event{}, err
	}

	ev := Event{Time: raw.Time, Type: raw.Type, Code: raw.Code, Value: raw.Value}

	if ev.Type == evcodes.EV_SYN && ev.Code == evcodes.SYN_DROPPED {
		m.runSync(ev.Time, false)
		m.mode = modeSync
		return StatusSync, ev, nil
	}

	if ev.Type != evcodes.EV_SYN && !m.Caps.HasCode(ev.Type, ev.Code) {
		// Disabled locally: filter and let the caller ask again.
		return StatusAgain, Event{}, nil
	}

	m.applyEvent(ev.Type, ev.Code, ev.Value)
	return StatusSuccess, ev, nil
}

func (m *DeviceModel) nextSync() (Status, Event, error) {
	qe, ok := m.queue.pop()
	if !ok {
		m.mode = modeNormal
		return StatusAgain, Event{}, nil
	}
	m.applyEvent(qe.Type, qe.Code, qe.Value)
	return StatusSync, Event{Time: qe.Time, Type: qe.Type, Code: qe.Code, Value: qe.Value}, nil
}

// fdReader adapts a raw descriptor to io.Reader via unix.Read, the same
// style used for the raw ioctl wrapper in package wire.
type fdReader struct{ fd uintptr }

func (r fdReader) Read(p []byte) (int, error) {
	n, err := unix.Read(int(r.fd), p)
	if err != nil {
		return 0, err
	}
	return n, nil
}

// readOne reads exactly one input_event frame from the descriptor. The
// library never touches O_NONBLOCK itself; whether this blocks is entirely
// a property of how the caller opened or fcntl'd the descriptor.
func (m *DeviceModel) readOne() (wire.InputEvent, error) {
	ev, err := wire.ReadEvent(fdReader{fd: m.fd})
	if err == nil {
		return ev, nil
	}
	if err == unix.EAGAIN || err == unix.EWOULDBLOCK {
		return wire.InputEvent{}, errors.Trace(ErrWouldBlock)
	}
	return wire.InputEvent{}, errors.Trace(err)
}
