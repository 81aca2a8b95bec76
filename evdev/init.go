package evdev

import (
	"github.com/temoto/goevdev/evdev/evcodes"
	"github.com/temoto/goevdev/evdev/internal/wire"
	"github.com/temoto/goevdev/helpers"
)

// clockIDFor maps the library's ClockId to the kernel's CLOCK_* constant
// expected by EVIOCSCLOCKID.
func clockIDFor(c ClockId) int32 {
	switch c {
	case ClockMonotonic:
		return 1 // CLOCK_MONOTONIC
	default:
		return 0 // CLOCK_REALTIME
	}
}

func setClockIDIoctl(fd uintptr, c ClockId) error {
	return wire.SetClockID(fd, clockIDFor(c))
}

// driverVersionTriple decodes the single EVIOCGVERSION integer into the
// major.minor.micro triple the kernel packs into it, the same layout
// KERNEL_VERSION() uses: major in bits 16-23, minor in bits 8-15, micro in
// bits 0-7.
func driverVersionTriple(v int32) (major, minor, micro int) {
	return int(v>>16) & 0xff, int(v>>8) & 0xff, int(v) & 0xff
}

// Attach probes fd once and populates m's identity, capabilities, and
// per-axis/per-slot state from the kernel. Fails with a not-an-evdev-device
// error if the version ioctl fails, or an already-attached error if m has
// already been successfully attached.
func Attach(m *DeviceModel, fd uintptr) error {
	if m.attached {
		return errAlreadyAttached()
	}

	version, err := wire.GetVersion(fd)
	if err != nil {
		return errNotAnEvdevDevice(err)
	}
	m.Identity.DriverVersionMajor, m.Identity.DriverVersionMinor, m.Identity.DriverVersionMicro = driverVersionTriple(version)

	id, err := wire.GetID(fd)
	if err != nil {
		return err
	}
	m.Identity.BusType = id.BusType
	m.Identity.Vendor = id.Vendor
	m.Identity.Product = id.Product
	m.Identity.Version = id.Version

	// Optional probes: a device lacking name/phys/uniq or any of the bitfield
	// reports below is not an error, just missing detail. Failures are
	// folded into one debug-level log line rather than silently dropped, so
	// a degraded attach is still visible to whoever enabled logging.
	var softErrs []error

	if name, err := wire.GetName(fd); err == nil {
		m.Identity.Name = name
	} else {
		softErrs = append(softErrs, err)
	}
	if phys, err := wire.GetPhys(fd); err == nil {
		m.Identity.Phys = phys
	} else {
		softErrs = append(softErrs, err)
	}
	if uniq, err := wire.GetUniq(fd); err == nil {
		m.Identity.Uniq = uniq
	} else {
		softErrs = append(softErrs, err)
	}

	caps := newCapabilityBits()

	if propBits, err := wire.GetPropBits(fd, evcodes.INPUT_PROP_MAX+1); err == nil {
		for p := 0; p <= evcodes.INPUT_PROP_MAX; p++ {
			if wire.HasBit(propBits, p) {
				caps.enableProperty(uint16(p))
			}
		}
	} else {
		softErrs = append(softErrs, err)
	}

	typeBits, err := wire.GetTypeBits(fd, int(evcodes.EV_MAX)+1)
	if err != nil {
		return err
	}
	for t := 0; t <= int(evcodes.EV_MAX); t++ {
		if t == int(evcodes.EV_SYN) || wire.HasBit(typeBits, t) {
			caps.enableType(uint16(t))
		}
	}

	axes := newAxisStore()
	keyState := newKeyedState(int(evcodes.KEY_MAX) + 1)
	ledState := newKeyedState(int(evcodes.LED_MAX) + 1)
	swState := newKeyedState(int(evcodes.SW_MAX) + 1)

	for _, t := range caps.supportedTypes() {
		if t == evcodes.EV_SYN {
			continue
		}
		max, hasMax := evcodes.MaxForType(t)
		if !hasMax {
			continue
		}
		codeBits, err := wire.GetCodeBits(fd, int(t), int(max)+1)
		if err != nil {
			softErrs = append(softErrs, err)
			continue
		}
		for c := 0; c <= int(max); c++ {
			if wire.HasBit(codeBits, c) {
				caps.enableCode(t, uint16(c))
			}
		}
	}

	if caps.HasType(evcodes.EV_ABS) {
		for _, code := range caps.supportedCodes(evcodes.EV_ABS) {
			info, err := wire.GetAbsInfo(fd, code)
			if err != nil {
				softErrs = append(softErrs, err)
				continue
			}
			axes.set(code, fromWireAbsInfo(info))
		}
	}

	if caps.HasType(evcodes.EV_KEY) {
		if bits, err := wire.GetKeyBits(fd, int(evcodes.KEY_MAX)+1); err == nil {
			for _, code := range caps.supportedCodes(evcodes.EV_KEY) {
				if wire.HasBit(bits, int(code)) {
					keyState.set(int(code), 1)
				}
			}
		} else {
			softErrs = append(softErrs, err)
		}
	}
	if caps.HasType(evcodes.EV_LED) {
		if bits, err := wire.GetLedBits(fd, int(evcodes.LED_MAX)+1); err == nil {
			for _, code := range caps.supportedCodes(evcodes.EV_LED) {
				if wire.HasBit(bits, int(code)) {
					ledState.set(int(code), 1)
				}
			}
		} else {
			softErrs = append(softErrs, err)
		}
	}
	if caps.HasType(evcodes.EV_SW) {
		if bits, err := wire.GetSwBits(fd, int(evcodes.SW_MAX)+1); err == nil {
			for _, code := range caps.supportedCodes(evcodes.EV_SW) {
				if wire.HasBit(bits, int(code)) {
					swState.set(int(code), 1)
				}
			}
		} else {
			softErrs = append(softErrs, err)
		}
	}

	var repDelay, repPeriod int32
	if delay, period, err := wire.GetRepeat(fd); err == nil {
		repDelay, repPeriod = delay, period
	} else {
		softErrs = append(softErrs, err)
	}

	slots, noMT := buildSlotTable(fd, caps)

	m.Caps = caps
	m.axes = axes
	m.keyState = keyState
	m.ledState = ledState
	m.swState = swState
	m.repDelay, m.repPeriod = repDelay, repPeriod
	m.slots = slots
	m.noMT = noMT
	m.fd = fd
	m.attached = true
	m.mode = modeNormal
	m.queue.reset(capacityFor(m))

	if err := setClockIDIoctl(fd, m.clock); err != nil {
		softErrs = append(softErrs, err)
	}

	if folded := helpers.FoldErrors(softErrs); folded != nil {
		logf(LogDebug, "Attach: degraded, %d optional probe(s) failed: %v", len(softErrs), folded)
	}

	return nil
}

// readMTSlotCount asks the kernel how many slots it tracks for
// ABS_MT_SLOT by issuing EVIOCGABS(ABS_MT_SLOT) and reading its Maximum.
func readMTSlotCount(fd uintptr) (int, error) {
	info, err := wire.GetAbsInfo(fd, evcodes.ABS_MT_SLOT)
	if err != nil {
		return 0, err
	}
	return int(info.Maximum) + 1, nil
}

// buildSlotTable implements the fake-MT detection rule: a device exposing
// both ABS_MT_SLOT and ABS_MT_SLOT-1 has incidental rather than semantic MT
// axis numbering, so no slot table is built and its ABS_MT_* codes are left
// to the ordinary axis-store path.
func buildSlotTable(fd uintptr, caps CapabilityBits) (slots *slotTable, noMT bool) {
	if !caps.HasCode(evcodes.EV_ABS, evcodes.ABS_MT_SLOT) {
		return nil, false
	}
	if evcodes.ABS_MT_SLOT > 0 && caps.HasCode(evcodes.EV_ABS, evcodes.ABS_MT_SLOT-1) {
		return nil, true
	}
	n, err := readMTSlotCount(fd)
	if err != nil {
		n = 0
	}
	slots = newSlotTable(n)
	fillMTSlots(fd, caps, slots)
	return slots, false
}

func fillMTSlots(fd uintptr, caps CapabilityBits, slots *slotTable) {
	if slots == nil || slots.numSlots == 0 {
		return
	}
	for _, code := range caps.supportedCodes(evcodes.EV_ABS) {
		if !evcodes.IsMTCode(code) || code == evcodes.ABS_MT_SLOT {
			continue
		}
		values, err := wire.GetMTSlots(fd, code, slots.numSlots)
		if err != nil {
			continue
		}
		for slot, v := range values {
			slots.set(slot, code, v)
		}
	}
}
