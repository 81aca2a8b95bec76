// Package wire holds the kernel-facing byte shapes and ioctl numbers for
// /dev/input/event* character devices: struct input_event, struct
// input_absinfo, struct input_id, and the EVIOC* command numbers derived
// the same way the kernel's <linux/ioctl.h> macros do.
//
// Everything here is a direct translation of the wire format; no caching,
// no retries, no interpretation of the values. Callers in package evdev own
// that.
package wire

import (
	"encoding/binary"
	"io"
	"os"
	"unsafe"

	"github.com/juju/errors"
	"golang.org/x/sys/unix"
)

// Timeval mirrors the kernel's struct timeval as embedded in input_event:
// two longs, 8 bytes each on 64-bit Linux.
type Timeval struct {
	Sec  int64
	Usec int64
}

// InputEvent mirrors struct input_event.
type InputEvent struct {
	Time  Timeval
	Type  uint16
	Code  uint16
	Value int32
}

// EventSize is sizeof(struct input_event) on this platform.
const EventSize = int(unsafe.Sizeof(InputEvent{}))

// InputID mirrors struct input_id.
type InputID struct {
	BusType uint16
	Vendor  uint16
	Product uint16
	Version uint16
}

// AbsInfo mirrors struct input_absinfo.
type AbsInfo struct {
	Value      int32
	Minimum    int32
	Maximum    int32
	Fuzz       int32
	Flat       int32
	Resolution int32
}

// ReadEvent decodes one input_event frame from r. Returns io.ErrUnexpectedEOF
// on a short read (torn frame), which callers should treat like any other
// IoError since a character device never delivers partial frames in
// practice; we still decode defensively.
func ReadEvent(r io.Reader) (InputEvent, error) {
	buf := make([]byte, EventSize)
	if _, err := io.ReadFull(r, buf); err != nil {
		return InputEvent{}, err
	}
	return decodeEvent(buf), nil
}

// WriteEvent encodes and writes one input_event frame to w.
func WriteEvent(w io.Writer, ev InputEvent) error {
	buf := make([]byte, EventSize)
	encodeEvent(buf, ev)
	_, err := w.Write(buf)
	return err
}

func encodeEvent(buf []byte, ev InputEvent) {
	binary.LittleEndian.PutUint64(buf[0:8], uint64(ev.Time.Sec))
	binary.LittleEndian.PutUint64(buf[8:16], uint64(ev.Time.Usec))
	binary.LittleEndian.PutUint16(buf[16:18], ev.Type)
	binary.LittleEndian.PutUint16(buf[18:20], ev.Code)
	binary.LittleEndian.PutUint32(buf[20:24], uint32(ev.Value))
}

func decodeEvent(buf []byte) InputEvent {
	var ev InputEvent
	ev.Time.Sec = int64(binary.LittleEndian.Uint64(buf[0:8]))
	ev.Time.Usec = int64(binary.LittleEndian.Uint64(buf[8:16]))
	ev.Type = binary.LittleEndian.Uint16(buf[16:18])
	ev.Code = binary.LittleEndian.Uint16(buf[18:20])
	ev.Value = int32(binary.LittleEndian.Uint32(buf[20:24]))
	return ev
}

// --- ioctl number derivation, same scheme as <asm-generic/ioctl.h> ---

const (
	iocNone  = 0x0
	iocWrite = 0x1
	iocRead  = 0x2

	iocNrBits   = 8
	iocTypeBits = 8
	iocSizeBits = 14

	iocNrShift   = 0
	iocTypeShift = iocNrShift + iocNrBits
	iocSizeShift = iocTypeShift + iocTypeBits
	iocDirShift  = iocSizeShift + iocSizeBits
)

func ioc(dir, typ, nr, size int) uintptr {
	return uintptr((dir << iocDirShift) | (typ << iocTypeShift) | (nr << iocNrShift) | (size << iocSizeShift))
}

func ior(typ, nr, size int) uintptr { return ioc(iocRead, typ, nr, size) }
func iow(typ, nr, size int) uintptr { return ioc(iocWrite, typ, nr, size) }
func io_(typ, nr int) uintptr       { return ioc(iocNone, typ, nr, 0) }

const evBase = 'E'

var (
	sizeofInt     = int(unsafe.Sizeof(int32(0)))
	sizeofID      = int(unsafe.Sizeof(InputID{}))
	sizeofAbsInfo = int(unsafe.Sizeof(AbsInfo{}))

	eviocgversion = ior(evBase, 0x01, sizeofInt)
	eviocgid      = ior(evBase, 0x02, sizeofID)
	eviocgrep     = ior(evBase, 0x03, sizeofInt*2)
	eviocsrep     = iow(evBase, 0x03, sizeofInt*2)
	eviocgrab     = iow(evBase, 0x90, sizeofInt)
	eviocsclockid = iow(evBase, 0xa0, sizeofInt)
)

func eviocgname(n int) uintptr  { return ioc(iocRead, evBase, 0x06, n) }
func eviocgphys(n int) uintptr  { return ioc(iocRead, evBase, 0x07, n) }
func eviocguniq(n int) uintptr  { return ioc(iocRead, evBase, 0x08, n) }
func eviocgprop(n int) uintptr  { return ioc(iocRead, evBase, 0x09, n) }
func eviocgmtslots(n int) uintptr { return ioc(iocRead, evBase, 0x0a, n) }
func eviocgkey(n int) uintptr   { return ioc(iocRead, evBase, 0x18, n) }
func eviocgled(n int) uintptr   { return ioc(iocRead, evBase, 0x19, n) }
func eviocgsnd(n int) uintptr   { return ioc(iocRead, evBase, 0x1a, n) }
func eviocgsw(n int) uintptr    { return ioc(iocRead, evBase, 0x1b, n) }
func eviocgbit(ev, n int) uintptr { return ioc(iocRead, evBase, 0x20+ev, n) }
func eviocgabs(abs int) uintptr { return ior(evBase, 0x40+abs, sizeofAbsInfo) }
func eviocsabs(abs int) uintptr { return iow(evBase, 0xc0+abs, sizeofAbsInfo) }

// ioctl issues a raw SYS_IOCTL against fd via unix.Syscall, errno surfaced
// via os.NewSyscallError so callers get a recognizable *os.SyscallError.
func ioctl(fd uintptr, req uintptr, arg uintptr) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, fd, req, arg)
	if errno != 0 {
		return os.NewSyscallError("ioctl", errno)
	}
	return nil
}

// GetVersion issues EVIOCGVERSION, returning the raw bcd-ish driver version int.
func GetVersion(fd uintptr) (int32, error) {
	var v int32
	if err := ioctl(fd, eviocgversion, uintptr(unsafe.Pointer(&v))); err != nil {
		return 0, errors.Trace(err)
	}
	return v, nil
}

// GetID issues EVIOCGID.
func GetID(fd uintptr) (InputID, error) {
	var id InputID
	if err := ioctl(fd, eviocgid, uintptr(unsafe.Pointer(&id))); err != nil {
		return InputID{}, errors.Trace(err)
	}
	return id, nil
}

func ioctlString(fd uintptr, reqFor func(int) uintptr, n int) (string, error) {
	buf := make([]byte, n)
	if err := ioctl(fd, reqFor(n), uintptr(unsafe.Pointer(&buf[0]))); err != nil {
		return "", errors.Trace(err)
	}
	for i, b := range buf {
		if b == 0 {
			return string(buf[:i]), nil
		}
	}
	return string(buf), nil
}

// GetName issues EVIOCGNAME with a generous fixed buffer.
func GetName(fd uintptr) (string, error) { return ioctlString(fd, eviocgname, 256) }

// GetPhys issues EVIOCGPHYS. Kernels without a physical path return ENOENT;
// callers treat that as "absent", not fatal.
func GetPhys(fd uintptr) (string, error) { return ioctlString(fd, eviocgphys, 256) }

// GetUniq issues EVIOCGUNIQ. Same missing-is-fine contract as GetPhys.
func GetUniq(fd uintptr) (string, error) { return ioctlString(fd, eviocguniq, 256) }

func ioctlBits(fd uintptr, reqFor func(int) uintptr, numBits int) ([]byte, error) {
	nbytes := (numBits + 7) / 8
	buf := make([]byte, nbytes)
	if nbytes == 0 {
		return buf, nil
	}
	if err := ioctl(fd, reqFor(nbytes), uintptr(unsafe.Pointer(&buf[0]))); err != nil {
		return nil, errors.Trace(err)
	}
	return buf, nil
}

// GetPropBits issues EVIOCGPROP, numProps bits wide.
func GetPropBits(fd uintptr, numProps int) ([]byte, error) { return ioctlBits(fd, eviocgprop, numProps) }

// GetTypeBits issues EVIOCGBIT(0, EV_MAX), numTypes bits wide.
func GetTypeBits(fd uintptr, numTypes int) ([]byte, error) {
	return ioctlBits(fd, func(n int) uintptr { return eviocgbit(0, n) }, numTypes)
}

// GetCodeBits issues EVIOCGBIT(evType, max), numCodes bits wide.
func GetCodeBits(fd uintptr, evType int, numCodes int) ([]byte, error) {
	return ioctlBits(fd, func(n int) uintptr { return eviocgbit(evType, n) }, numCodes)
}

// GetKeyBits issues EVIOCGKEY.
func GetKeyBits(fd uintptr, numCodes int) ([]byte, error) { return ioctlBits(fd, eviocgkey, numCodes) }

// GetLedBits issues EVIOCGLED.
func GetLedBits(fd uintptr, numCodes int) ([]byte, error) { return ioctlBits(fd, eviocgled, numCodes) }

// GetSwBits issues EVIOCGSW.
func GetSwBits(fd uintptr, numCodes int) ([]byte, error) { return ioctlBits(fd, eviocgsw, numCodes) }

// GetAbsInfo issues EVIOCGABS(code).
func GetAbsInfo(fd uintptr, code uint16) (AbsInfo, error) {
	var info AbsInfo
	if err := ioctl(fd, eviocgabs(int(code)), uintptr(unsafe.Pointer(&info))); err != nil {
		return AbsInfo{}, errors.Trace(err)
	}
	return info, nil
}

// SetAbsInfo issues EVIOCSABS(code).
func SetAbsInfo(fd uintptr, code uint16, info AbsInfo) error {
	return errors.Trace(ioctl(fd, eviocsabs(int(code)), uintptr(unsafe.Pointer(&info))))
}

// GetMTSlots issues EVIOCGMTSLOTS for one ABS_MT_* code across numSlots
// slots. The kernel wants the requested code in values[0] and fills
// values[1:] with one value per slot.
func GetMTSlots(fd uintptr, code uint16, numSlots int) ([]int32, error) {
	values := make([]int32, numSlots+1)
	values[0] = int32(code)
	nbytes := len(values) * sizeofInt
	req := ior(evBase, 0x0a, nbytes)
	if err := ioctl(fd, req, uintptr(unsafe.Pointer(&values[0]))); err != nil {
		return nil, errors.Trace(err)
	}
	return values[1:], nil
}

// Grab issues EVIOCGRAB. value 1 grabs, 0 ungrabs.
func Grab(fd uintptr, grab bool) error {
	v := int32(0)
	if grab {
		v = 1
	}
	return errors.Trace(ioctl(fd, eviocgrab, uintptr(v)))
}

// SetClockID issues EVIOCSCLOCKID.
func SetClockID(fd uintptr, clockid int32) error {
	return errors.Trace(ioctl(fd, eviocsclockid, uintptr(unsafe.Pointer(&clockid))))
}

// GetRepeat issues EVIOCGREP, returning (delay, period) in milliseconds.
func GetRepeat(fd uintptr) (delay, period int32, err error) {
	var v [2]int32
	if e := ioctl(fd, eviocgrep, uintptr(unsafe.Pointer(&v[0]))); e != nil {
		return 0, 0, errors.Trace(e)
	}
	return v[0], v[1], nil
}

// SetRepeat issues EVIOCSREP.
func SetRepeat(fd uintptr, delay, period int32) error {
	v := [2]int32{delay, period}
	return errors.Trace(ioctl(fd, eviocsrep, uintptr(unsafe.Pointer(&v[0]))))
}

// HasBit reports whether bit index i is set in a kernel bitfield buffer.
func HasBit(bits []byte, i int) bool {
	byteIdx := i / 8
	if byteIdx < 0 || byteIdx >= len(bits) {
		return false
	}
	return bits[byteIdx]&(1<<uint(i%8)) != 0
}
