package evdev

import (
	"github.com/juju/errors"
)

// Error kinds surfaced by this package. Each is a sentinel; use errors.Cause
// against these values (or the Is* helpers below) rather than comparing
// wrapped errors directly, matching the juju/errors idiom used throughout
// the vending-machine hardware packages this library was adapted from.
var (
	ErrNotAttached     = errors.New("evdev: device model is not attached to a descriptor")
	ErrAlreadyAttached = errors.New("evdev: device model is already attached")
	ErrInvalidArgument = errors.New("evdev: invalid argument")
	ErrNotAnEvdevDevice = errors.New("evdev: not an evdev character device")
	ErrNotSupported    = errors.New("evdev: operation not supported by this kernel/device")
	ErrWouldBlock      = errors.New("evdev: read would block")
)

func errNotAttached() error { return errors.Trace(ErrNotAttached) }

func errAlreadyAttached() error { return errors.Trace(ErrAlreadyAttached) }

func errNotAnEvdevDevice(cause error) error {
	return errors.Annotatef(ErrNotAnEvdevDevice, "EVIOCGVERSION: %v", cause)
}

func errInvalidArgf(format string, args ...interface{}) error {
	return errors.Annotatef(ErrInvalidArgument, format, args...)
}

func errNotSupportedf(format string, args ...interface{}) error {
	return errors.Annotatef(ErrNotSupported, format, args...)
}

// IsNotAttached reports whether err (or its cause) is ErrNotAttached.
func IsNotAttached(err error) bool { return errors.Cause(err) == ErrNotAttached }

// IsAlreadyAttached reports whether err (or its cause) is ErrAlreadyAttached.
func IsAlreadyAttached(err error) bool { return errors.Cause(err) == ErrAlreadyAttached }

// IsInvalidArgument reports whether err (or its cause) is ErrInvalidArgument.
func IsInvalidArgument(err error) bool { return errors.Cause(err) == ErrInvalidArgument }

// IsNotAnEvdevDevice reports whether err (or its cause) is ErrNotAnEvdevDevice.
func IsNotAnEvdevDevice(err error) bool { return errors.Cause(err) == ErrNotAnEvdevDevice }

// IsNotSupported reports whether err (or its cause) is ErrNotSupported.
func IsNotSupported(err error) bool { return errors.Cause(err) == ErrNotSupported }

// IsWouldBlock reports whether err (or its cause) is ErrWouldBlock.
func IsWouldBlock(err error) bool { return errors.Cause(err) == ErrWouldBlock }
