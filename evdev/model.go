// Package evdev mediates access to Linux evdev character devices
// (/dev/input/event*): a queryable capability model plus an event-reader
// state machine that recovers a consistent client-visible state after the
// kernel reports SYN_DROPPED.
//
// The caller owns the file descriptor: open it, put it in the read mode you
// want (blocking or not), and close it when done. This package never closes
// a descriptor it didn't open itself.
package evdev

import (
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/temoto/goevdev/evdev/evcodes"
)

// MaxTrackedSlots bounds the number of multi-touch slots this package
// tracks. Slots at or beyond this index are ignored; this is a historical
// limit carried forward as a named constant rather than left as a magic
// number.
const MaxTrackedSlots = 60

// ClockId selects the timebase evdev timestamps are reported in.
type ClockId int

const (
	ClockRealtime ClockId = iota
	ClockMonotonic
)

// GrabState is whether this handle currently holds an exclusive EVIOCGRAB
// subscription on the descriptor.
type GrabState int

const (
	Ungrabbed GrabState = iota
	Grabbed
)

// DeviceIdentity is the device's self-reported identity: name and the
// bus/vendor/product/version quad plus the evdev driver version. Owned by
// the DeviceModel; caller-set values are overwritten by Attach.
type DeviceIdentity struct {
	Name string
	Phys string
	Uniq string

	BusType uint16
	Vendor  uint16
	Product uint16
	Version uint16

	DriverVersionMajor int
	DriverVersionMinor int
	DriverVersionMicro int
}

// CapabilityBits is the three-level bitset: input properties, supported
// event types, and per-type supported event codes.
type CapabilityBits struct {
	props    bitset
	types    bitset
	codes    map[uint16]bitset // evtype -> code bitset, only for supported types
}

func newCapabilityBits() CapabilityBits {
	return CapabilityBits{
		props: newBitset(evcodes.INPUT_PROP_MAX + 1),
		types: newBitset(evcodes.EV_MAX + 1),
		codes: make(map[uint16]bitset),
	}
}

// HasProperty reports whether input property p is set.
func (c *CapabilityBits) HasProperty(p uint16) bool { return c.props.has(int(p)) }

// HasType reports whether event type t is supported.
func (c *CapabilityBits) HasType(t uint16) bool { return c.types.has(int(t)) }

// HasCode reports whether code c of event type t is supported. Always
// false when t itself is not supported, regardless of the per-type bit.
func (c *CapabilityBits) HasCode(t, code uint16) bool {
	if !c.types.has(int(t)) {
		return false
	}
	bits, ok := c.codes[t]
	if !ok {
		return false
	}
	return bits.has(int(code))
}

func (c *CapabilityBits) enableProperty(p uint16) { c.props.set(int(p)) }

func (c *CapabilityBits) enableType(t uint16) {
	if c.types.has(int(t)) {
		return
	}
	c.types.set(int(t))
	if _, ok := c.codes[t]; !ok {
		max, hasMax := evcodes.MaxForType(t)
		size := 0
		if hasMax {
			size = int(max) + 1
		}
		c.codes[t] = newBitset(size)
	}
}

func (c *CapabilityBits) disableType(t uint16) {
	c.types.clear(int(t))
	delete(c.codes, t)
}

func (c *CapabilityBits) enableCode(t, code uint16) {
	c.enableType(t)
	bits := c.codes[t]
	bits.setGrow(int(code))
	c.codes[t] = bits
}

func (c *CapabilityBits) disableCode(t, code uint16) {
	if bits, ok := c.codes[t]; ok {
		bits.clear(int(code))
	}
}

// supportedTypes lists the event types currently marked supported.
func (c *CapabilityBits) supportedTypes() []uint16 {
	out := make([]uint16, 0, 8)
	for t := 0; t < c.types.len(); t++ {
		if c.types.has(t) {
			out = append(out, uint16(t))
		}
	}
	return out
}

func (c *CapabilityBits) supportedCodes(t uint16) []uint16 {
	bits, ok := c.codes[t]
	if !ok {
		return nil
	}
	out := make([]uint16, 0, 8)
	for i := 0; i < bits.len(); i++ {
		if bits.has(i) {
			out = append(out, uint16(i))
		}
	}
	return out
}

// SupportedTypes returns the event types currently marked supported.
func (c *CapabilityBits) SupportedTypes() []uint16 { return c.supportedTypes() }

// SupportedCodes returns the codes currently marked supported under event
// type t, or nil if t itself is not supported.
func (c *CapabilityBits) SupportedCodes(t uint16) []uint16 { return c.supportedCodes(t) }

// typeSet is the set-backed view of supportedTypes, used where set algebra
// (difference, union) reads clearer than a pair of nested loops.
func (c *CapabilityBits) typeSet() mapset.Set[uint16] {
	return mapset.NewThreadUnsafeSet(c.supportedTypes()...)
}

// DiffTypes reports which event types are present in other but not in c
// (added) and present in c but not in other (removed). Intended for
// before/after capability reports, e.g. across a resync or a firmware
// update that changes what a device exposes.
func (c *CapabilityBits) DiffTypes(other *CapabilityBits) (added, removed []uint16) {
	mine, theirs := c.typeSet(), other.typeSet()
	return theirs.Difference(mine).ToSlice(), mine.Difference(theirs).ToSlice()
}

// DeviceModel is the aggregate device-capability shadow: it is created
// empty, becomes attached by Attach, and holds no lock — callers serialize
// their own access.
type DeviceModel struct {
	Identity DeviceIdentity
	Caps     CapabilityBits

	axes  axisStore
	slots *slotTable // nil until Attach finds ABS_MT_SLOT and the device is not fake-MT

	keyState             keyedState
	ledState             keyedState
	swState              keyedState
	repDelay, repPeriod int32

	clock ClockId
	grab  GrabState

	attached bool
	fd       uintptr

	queue eventQueue
	mode  readerMode

	noMT bool // fake-MT device: ABS_MT_* treated as plain EV_ABS, no SlotTable
}

// New returns an empty, unattached device model.
func New() *DeviceModel {
	return &DeviceModel{
		Caps:     newCapabilityBits(),
		axes:     newAxisStore(),
		keyState: newKeyedState(evcodes.KEY_MAX + 1),
		ledState: newKeyedState(evcodes.LED_MAX + 1),
		swState:  newKeyedState(evcodes.SW_MAX + 1),
		clock:    ClockRealtime,
		mode:     modeNormal,
	}
}

// IsAttached reports whether Attach has succeeded on this model and
// Dispose has not since reset it. ChangeFd keeps the model attached.
func (m *DeviceModel) IsAttached() bool { return m.attached }

// Fd returns the descriptor this model is attached to, or (0, false) if
// unattached.
func (m *DeviceModel) Fd() (uintptr, bool) {
	if !m.attached {
		return 0, false
	}
	return m.fd, true
}

// ChangeFd swaps the underlying descriptor without re-probing capabilities,
// matching libevdev_change_fd: useful when the caller reopens the same
// device node (e.g. after a suspend/resume cycle) and knows the kernel-side
// capabilities haven't changed.
func (m *DeviceModel) ChangeFd(fd uintptr) error {
	if !m.attached {
		return errNotAttached()
	}
	m.fd = fd
	return nil
}

// SetClockId selects the timebase for future reads. Takes effect before the
// next read is meaningful; it does not retroactively relabel events already
// returned.
func (m *DeviceModel) SetClockId(c ClockId) error {
	if m.attached {
		if err := setClockIDIoctl(m.fd, c); err != nil {
			return err
		}
	}
	m.clock = c
	return nil
}

// ClockIdOf returns the currently configured timebase.
func (m *DeviceModel) ClockIdOf() ClockId { return m.clock }

// --- identity getters/setters; setters are caller-local until Attach ---

func (m *DeviceModel) SetName(s string)    { m.Identity.Name = s }
func (m *DeviceModel) SetPhys(s string)    { m.Identity.Phys = s }
func (m *DeviceModel) SetUniq(s string)    { m.Identity.Uniq = s }
func (m *DeviceModel) SetBusType(v uint16) { m.Identity.BusType = v }
func (m *DeviceModel) SetVendor(v uint16)  { m.Identity.Vendor = v }
func (m *DeviceModel) SetProduct(v uint16) { m.Identity.Product = v }
func (m *DeviceModel) SetVersion(v uint16) { m.Identity.Version = v }

// --- capability mutations (caller-local shadow only) ---

// EnableProperty sets input property p in the shadow capability bits.
func (m *DeviceModel) EnableProperty(p uint16) { m.Caps.enableProperty(p) }

// EnableType marks event type t as supported.
func (m *DeviceModel) EnableType(t uint16) { m.Caps.enableType(t) }

// DisableType rejects disabling EV_SYN (every device must support
// synchronization) and otherwise clears the type and all its codes.
func (m *DeviceModel) DisableType(t uint16) error {
	if t == evcodes.EV_SYN {
		return errInvalidArgf("cannot disable EV_SYN")
	}
	m.Caps.disableType(t)
	return nil
}

// EnableCode marks code as supported under type t. For EV_ABS, absInfo must
// be non-nil and supplies the axis metadata; for EV_REP, repeat must be
// non-nil and supplies (delay, period); for every other type both must be
// nil.
func (m *DeviceModel) EnableCode(t, code uint16, absInfo *AbsInfo, repeat *RepeatInfo) error {
	switch t {
	case evcodes.EV_ABS:
		if absInfo == nil {
			return errInvalidArgf("EnableCode(EV_ABS, %d): absInfo required", code)
		}
		m.Caps.enableCode(t, code)
		m.axes.set(code, *absInfo)
	case evcodes.EV_REP:
		if repeat == nil {
			return errInvalidArgf("EnableCode(EV_REP, %d): repeat required", code)
		}
		m.Caps.enableCode(t, code)
		m.repDelay, m.repPeriod = repeat.Delay, repeat.Period
	default:
		if absInfo != nil || repeat != nil {
			return errInvalidArgf("EnableCode(%d, %d): payload not applicable to this type", t, code)
		}
		m.Caps.enableCode(t, code)
		if s := m.stateFor(t); s != nil {
			s.ensure(int(code))
		}
	}
	return nil
}

// DisableCode clears code under type t.
func (m *DeviceModel) DisableCode(t, code uint16) error {
	if t == evcodes.EV_SYN {
		return errInvalidArgf("cannot disable an EV_SYN code")
	}
	m.Caps.disableCode(t, code)
	return nil
}

// RepeatInfo is the (delay, period) pair for EV_REP, in milliseconds.
type RepeatInfo struct{ Delay, Period int32 }

func (m *DeviceModel) stateFor(t uint16) *keyedState {
	switch t {
	case evcodes.EV_KEY:
		return &m.keyState
	case evcodes.EV_LED:
		return &m.ledState
	case evcodes.EV_SW:
		return &m.swState
	default:
		return nil
	}
}
