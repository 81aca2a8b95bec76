package evdev

import (
	"golang.org/x/sys/unix"

	"github.com/temoto/goevdev/evdev/evcodes"
	"github.com/temoto/goevdev/evdev/internal/wire"
)

type fdWriter struct{ fd uintptr }

func (w fdWriter) Write(p []byte) (int, error) { return unix.Write(int(w.fd), p) }

func writeEvent(fd uintptr, t, code uint16, v int32) error {
	return wire.WriteEvent(fdWriter{fd: fd}, wire.InputEvent{Type: t, Code: code, Value: v})
}

// Grab acquires an exclusive kernel-level subscription on the descriptor.
// A second grab of an already-grabbed handle is a no-op returning success;
// the kernel enforces at most one grabbed handle per descriptor and its
// EBUSY surfaces unwrapped when some other handle holds the grab.
func (m *DeviceModel) Grab() error {
	if !m.attached {
		return errNotAttached()
	}
	if m.grab == Grabbed {
		return nil
	}
	if err := wire.Grab(m.fd, true); err != nil {
		return err
	}
	m.grab = Grabbed
	return nil
}

// Ungrab releases a grab taken by Grab. A no-op on an already-ungrabbed
// handle.
func (m *DeviceModel) Ungrab() error {
	if !m.attached {
		return errNotAttached()
	}
	if m.grab == Ungrabbed {
		return nil
	}
	if err := wire.Grab(m.fd, false); err != nil {
		return err
	}
	m.grab = Ungrabbed
	return nil
}

// GrabStateOf returns whether this handle currently holds the grab.
func (m *DeviceModel) GrabStateOf() GrabState { return m.grab }

// KernelSetLEDValue issues EVIOCSKEYCODE-adjacent EVIOCSLED-equivalent
// behavior for a single LED: writes one (EV_LED, code, value) event to the
// descriptor and, on success, updates the shadow. Go's evdev ioctl surface
// has no distinct EVIOCSLED; LEDs are driven by writing an input_event, so
// this issues a raw write rather than an ioctl.
func (m *DeviceModel) KernelSetLEDValue(code uint16, v int32) error {
	return m.KernelSetLEDValues(LEDValue{Code: code, Value: v})
}

// LEDValue is one (code, value) pair for a batched LED write.
type LEDValue struct {
	Code  uint16
	Value int32
}

// KernelSetLEDValues writes a batch of LED events to the descriptor followed
// by a SYN_REPORT, then updates the shadow for each on success. This
// replaces the historical sentinel-terminated variadic argument list with
// an ordinary Go slice — there is no terminator to forget.
func (m *DeviceModel) KernelSetLEDValues(values ...LEDValue) error {
	if !m.attached {
		return errNotAttached()
	}
	for _, lv := range values {
		if !m.Caps.HasCode(evcodes.EV_LED, lv.Code) {
			return errInvalidArgf("KernelSetLEDValues: LED code %d not enabled", lv.Code)
		}
	}
	for _, lv := range values {
		if err := writeEvent(m.fd, evcodes.EV_LED, lv.Code, lv.Value); err != nil {
			return err
		}
	}
	if err := writeEvent(m.fd, evcodes.EV_SYN, evcodes.SYN_REPORT, 0); err != nil {
		return err
	}
	for _, lv := range values {
		m.ledState.set(int(lv.Code), lv.Value)
	}
	return nil
}

// KernelSetRepeat issues EVIOCSREP and, on success, updates the shadow.
func (m *DeviceModel) KernelSetRepeat(delay, period int32) error {
	if !m.attached {
		return errNotAttached()
	}
	if err := wire.SetRepeat(m.fd, delay, period); err != nil {
		return err
	}
	m.repDelay, m.repPeriod = delay, period
	return nil
}

// GetRepeat returns the shadowed (delay, period) repeat settings in
// milliseconds.
func (m *DeviceModel) GetRepeat() (delay, period int32) { return m.repDelay, m.repPeriod }

// Dispose detaches the model from its descriptor without closing it — the
// caller owns the descriptor's lifetime. A disposed model returns to the
// same state as one returned by New, except identity/capabilities are
// cleared rather than never having been set and the selected clock id is
// kept.
func (m *DeviceModel) Dispose() {
	*m = DeviceModel{
		Caps:     newCapabilityBits(),
		axes:     newAxisStore(),
		keyState: newKeyedState(0),
		ledState: newKeyedState(0),
		swState:  newKeyedState(0),
		clock:    m.clock,
		mode:     modeNormal,
	}
}
