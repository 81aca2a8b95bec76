package evdev

import (
	"github.com/temoto/goevdev/evdev/evcodes"
	"github.com/temoto/goevdev/evdev/internal/wire"
)

// AbsInfo is the per-axis metadata tuple for one ABS_* code: current value,
// range, and the fuzz/flat/resolution noise parameters the kernel reports.
type AbsInfo struct {
	Value      int32
	Minimum    int32
	Maximum    int32
	Fuzz       int32
	Flat       int32
	Resolution int32
}

func fromWireAbsInfo(w wire.AbsInfo) AbsInfo {
	return AbsInfo{
		Value: w.Value, Minimum: w.Minimum, Maximum: w.Maximum,
		Fuzz: w.Fuzz, Flat: w.Flat, Resolution: w.Resolution,
	}
}

func (a AbsInfo) toWire() wire.AbsInfo {
	return wire.AbsInfo{
		Value: a.Value, Minimum: a.Minimum, Maximum: a.Maximum,
		Fuzz: a.Fuzz, Flat: a.Flat, Resolution: a.Resolution,
	}
}

// axisStore holds one AbsInfo per ABS_* code marked supported.
type axisStore struct {
	m map[uint16]AbsInfo
}

func newAxisStore() axisStore { return axisStore{m: make(map[uint16]AbsInfo)} }

func (s *axisStore) set(code uint16, info AbsInfo) { s.m[code] = info }

func (s *axisStore) get(code uint16) (AbsInfo, bool) {
	info, ok := s.m[code]
	return info, ok
}

func (s *axisStore) setValue(code uint16, v int32) bool {
	info, ok := s.m[code]
	if !ok {
		return false
	}
	info.Value = v
	s.m[code] = info
	return true
}

// GetAbsInfo returns the full axis tuple for code, or (AbsInfo{}, false) if
// code is not a supported ABS_* code on this model.
func (m *DeviceModel) GetAbsInfo(code uint16) (AbsInfo, bool) {
	if !m.Caps.HasCode(evcodes.EV_ABS, code) {
		return AbsInfo{}, false
	}
	return m.axes.get(code)
}

// SetAbsInfo replaces the axis tuple wholesale in the library's shadow
// only; it does not touch the kernel. Fails if code is not enabled.
func (m *DeviceModel) SetAbsInfo(code uint16, info AbsInfo) error {
	if !m.Caps.HasCode(evcodes.EV_ABS, code) {
		return errInvalidArgf("SetAbsInfo: ABS code %d not enabled", code)
	}
	m.axes.set(code, info)
	return nil
}

// KernelSetAbsInfo issues EVIOCSABS and, on success, updates the shadow to
// whatever the kernel returns when re-read via EVIOCGABS (the kernel may
// clamp or otherwise adjust the written values).
func (m *DeviceModel) KernelSetAbsInfo(code uint16, info AbsInfo) error {
	if !m.attached {
		return errNotAttached()
	}
	if !m.Caps.HasCode(evcodes.EV_ABS, code) {
		return errInvalidArgf("KernelSetAbsInfo: ABS code %d not enabled", code)
	}
	if err := wire.SetAbsInfo(m.fd, code, info.toWire()); err != nil {
		return err
	}
	got, err := wire.GetAbsInfo(m.fd, code)
	if err != nil {
		return err
	}
	m.axes.set(code, fromWireAbsInfo(got))
	return nil
}

// abs scalar accessors: 0 for unsupported codes rather than an error,
// matching the historical contract (avoids a branch at every call site).

func (m *DeviceModel) absField(code uint16, pick func(AbsInfo) int32) int32 {
	info, ok := m.GetAbsInfo(code)
	if !ok {
		return 0
	}
	return pick(info)
}

func (m *DeviceModel) GetAbsMinimum(code uint16) int32 {
	return m.absField(code, func(a AbsInfo) int32 { return a.Minimum })
}
func (m *DeviceModel) GetAbsMaximum(code uint16) int32 {
	return m.absField(code, func(a AbsInfo) int32 { return a.Maximum })
}
func (m *DeviceModel) GetAbsFuzz(code uint16) int32 {
	return m.absField(code, func(a AbsInfo) int32 { return a.Fuzz })
}
func (m *DeviceModel) GetAbsFlat(code uint16) int32 {
	return m.absField(code, func(a AbsInfo) int32 { return a.Flat })
}
func (m *DeviceModel) GetAbsResolution(code uint16) int32 {
	return m.absField(code, func(a AbsInfo) int32 { return a.Resolution })
}
