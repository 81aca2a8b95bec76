package evdev

import (
	"fmt"
	"runtime"
	"sync/atomic"
)

// LogPriority is the severity of one log message. Values match the evdev
// wire convention: lower numbers are more severe, matching the historical
// source this package replaces.
type LogPriority int32

const (
	LogError LogPriority = 10
	LogInfo  LogPriority = 20
	LogDebug LogPriority = 30
)

// LogFunc receives one formatted log message along with its priority and
// the source location that produced it. Set via SetLogFunc.
type LogFunc func(priority LogPriority, file string, line int, message string)

// Logging is process-wide, not per-DeviceModel: the historical library
// treated the log function and level as globals and this package preserves
// that scope explicitly rather than hiding it behind a per-instance option.
// Unset by default: no sink means no I/O at all, not even string formatting
// beyond what fmt.Sprintf does internally.
var (
	logPriority int32 = int32(LogInfo)
	logFunc     atomic.Pointer[LogFunc]
)

// SetLogPriority sets the process-wide minimum priority. Messages with a
// numerically higher priority (i.e. less severe) than this are dropped
// before the sink is invoked.
func SetLogPriority(p LogPriority) { atomic.StoreInt32(&logPriority, int32(p)) }

// LogPriorityLevel returns the current process-wide minimum priority.
func LogPriorityLevel() LogPriority { return LogPriority(atomic.LoadInt32(&logPriority)) }

// SetLogFunc installs the process-wide log sink. A nil fn unsets it (no
// logging is performed), restoring the initial "never logs" state.
func SetLogFunc(fn LogFunc) {
	if fn == nil {
		logFunc.Store(nil)
		return
	}
	logFunc.Store(&fn)
}

func logf(priority LogPriority, format string, args ...interface{}) {
	if int32(priority) > atomic.LoadInt32(&logPriority) {
		return
	}
	p := logFunc.Load()
	if p == nil || *p == nil {
		return
	}
	_, file, line, ok := runtime.Caller(1)
	if !ok {
		file, line = "?", 0
	}
	(*p)(priority, file, line, fmt.Sprintf(format, args...))
}
