// Package evcodes is the compile-time name<->number mapping for evdev event
// types, event codes, and input properties. It is a closed set fixed at
// build time: no ioctl, no device, no allocation beyond the tables
// themselves, matching the "signal-safe, static lifetime" contract asked of
// BitSets & Names by the device-model package built on top of it.
package evcodes

import "strings"

type entry struct {
	name      string
	code      uint16
	canonical bool
}

// typeEntries has no aliases; event types are a small closed set.
var typeEntries = []entry{
	{"EV_SYN", EV_SYN, true},
	{"EV_KEY", EV_KEY, true},
	{"EV_REL", EV_REL, true},
	{"EV_ABS", EV_ABS, true},
	{"EV_MSC", EV_MSC, true},
	{"EV_SW", EV_SW, true},
	{"EV_LED", EV_LED, true},
	{"EV_SND", EV_SND, true},
	{"EV_REP", EV_REP, true},
	{"EV_FF", EV_FF, true},
	{"EV_PWR", EV_PWR, true},
	{"EV_FF_STATUS", EV_FF_STATUS, true},
}

var synEntries = []entry{
	{"SYN_REPORT", SYN_REPORT, true},
	{"SYN_CONFIG", SYN_CONFIG, true},
	{"SYN_MT_REPORT", SYN_MT_REPORT, true},
	{"SYN_DROPPED", SYN_DROPPED, true},
}

var relEntries = []entry{
	{"REL_X", REL_X, true},
	{"REL_Y", REL_Y, true},
	{"REL_Z", REL_Z, true},
	{"REL_RX", REL_RX, true},
	{"REL_RY", REL_RY, true},
	{"REL_RZ", REL_RZ, true},
	{"REL_HWHEEL", REL_HWHEEL, true},
	{"REL_DIAL", REL_DIAL, true},
	{"REL_WHEEL", REL_WHEEL, true},
	{"REL_MISC", REL_MISC, true},
	{"REL_WHEEL_HI_RES", REL_WHEEL_HI_RES, true},
	{"REL_HWHEEL_HI_RES", REL_HWHEEL_HI_RES, true},
}

var absEntries = []entry{
	{"ABS_X", ABS_X, true},
	{"ABS_Y", ABS_Y, true},
	{"ABS_Z", ABS_Z, true},
	{"ABS_RX", ABS_RX, true},
	{"ABS_RY", ABS_RY, true},
	{"ABS_RZ", ABS_RZ, true},
	{"ABS_THROTTLE", ABS_THROTTLE, true},
	{"ABS_RUDDER", ABS_RUDDER, true},
	{"ABS_WHEEL", ABS_WHEEL, true},
	{"ABS_GAS", ABS_GAS, true},
	{"ABS_BRAKE", ABS_BRAKE, true},
	{"ABS_HAT0X", ABS_HAT0X, true},
	{"ABS_HAT0Y", ABS_HAT0Y, true},
	{"ABS_HAT1X", ABS_HAT1X, true},
	{"ABS_HAT1Y", ABS_HAT1Y, true},
	{"ABS_HAT2X", ABS_HAT2X, true},
	{"ABS_HAT2Y", ABS_HAT2Y, true},
	{"ABS_HAT3X", ABS_HAT3X, true},
	{"ABS_HAT3Y", ABS_HAT3Y, true},
	{"ABS_PRESSURE", ABS_PRESSURE, true},
	{"ABS_DISTANCE", ABS_DISTANCE, true},
	{"ABS_TILT_X", ABS_TILT_X, true},
	{"ABS_TILT_Y", ABS_TILT_Y, true},
	{"ABS_TOOL_WIDTH", ABS_TOOL_WIDTH, true},
	{"ABS_VOLUME", ABS_VOLUME, true},
	{"ABS_MISC", ABS_MISC, true},
	{"ABS_MT_SLOT", ABS_MT_SLOT, true},
	{"ABS_MT_TOUCH_MAJOR", ABS_MT_TOUCH_MAJOR, true},
	{"ABS_MT_TOUCH_MINOR", ABS_MT_TOUCH_MINOR, true},
	{"ABS_MT_WIDTH_MAJOR", ABS_MT_WIDTH_MAJOR, true},
	{"ABS_MT_WIDTH_MINOR", ABS_MT_WIDTH_MINOR, true},
	{"ABS_MT_ORIENTATION", ABS_MT_ORIENTATION, true},
	{"ABS_MT_POSITION_X", ABS_MT_POSITION_X, true},
	{"ABS_MT_POSITION_Y", ABS_MT_POSITION_Y, true},
	{"ABS_MT_TOOL_TYPE", ABS_MT_TOOL_TYPE, true},
	{"ABS_MT_BLOB_ID", ABS_MT_BLOB_ID, true},
	{"ABS_MT_TRACKING_ID", ABS_MT_TRACKING_ID, true},
	{"ABS_MT_PRESSURE", ABS_MT_PRESSURE, true},
	{"ABS_MT_DISTANCE", ABS_MT_DISTANCE, true},
	{"ABS_MT_TOOL_X", ABS_MT_TOOL_X, true},
	{"ABS_MT_TOOL_Y", ABS_MT_TOOL_Y, true},
}

// keyEntries covers both KEY_* and BTN_* names: they share the EV_KEY type
// and numbering space. A handful of values have more than one name
// (BTN_A/BTN_SOUTH, BTN_MOUSE/BTN_LEFT style); exactly one entry per
// value is marked canonical, the rest are aliases. Declaration order below
// is the from-name resolution order: CodeFromName returns the first match
// in this slice, CodeName returns the canonical entry regardless of
// position.
var keyEntries = []entry{
	{"KEY_RESERVED", KEY_RESERVED, true},
	{"KEY_ESC", KEY_ESC, true},
	{"KEY_1", KEY_1, true}, {"KEY_2", KEY_2, true}, {"KEY_3", KEY_3, true},
	{"KEY_4", KEY_4, true}, {"KEY_5", KEY_5, true}, {"KEY_6", KEY_6, true},
	{"KEY_7", KEY_7, true}, {"KEY_8", KEY_8, true}, {"KEY_9", KEY_9, true},
	{"KEY_0", KEY_0, true},
	{"KEY_MINUS", KEY_MINUS, true}, {"KEY_EQUAL", KEY_EQUAL, true},
	{"KEY_BACKSPACE", KEY_BACKSPACE, true}, {"KEY_TAB", KEY_TAB, true},
	{"KEY_Q", KEY_Q, true}, {"KEY_W", KEY_W, true}, {"KEY_E", KEY_E, true},
	{"KEY_R", KEY_R, true}, {"KEY_T", KEY_T, true}, {"KEY_Y", KEY_Y, true},
	{"KEY_U", KEY_U, true}, {"KEY_I", KEY_I, true}, {"KEY_O", KEY_O, true},
	{"KEY_P", KEY_P, true},
	{"KEY_LEFTBRACE", KEY_LEFTBRACE, true}, {"KEY_RIGHTBRACE", KEY_RIGHTBRACE, true},
	{"KEY_ENTER", KEY_ENTER, true}, {"KEY_LEFTCTRL", KEY_LEFTCTRL, true},
	{"KEY_A", KEY_A, true}, {"KEY_S", KEY_S, true}, {"KEY_D", KEY_D, true},
	{"KEY_F", KEY_F, true}, {"KEY_G", KEY_G, true}, {"KEY_H", KEY_H, true},
	{"KEY_J", KEY_J, true}, {"KEY_K", KEY_K, true}, {"KEY_L", KEY_L, true},
	{"KEY_SEMICOLON", KEY_SEMICOLON, true}, {"KEY_APOSTROPHE", KEY_APOSTROPHE, true},
	{"KEY_GRAVE", KEY_GRAVE, true}, {"KEY_LEFTSHIFT", KEY_LEFTSHIFT, true},
	{"KEY_BACKSLASH", KEY_BACKSLASH, true},
	{"KEY_Z", KEY_Z, true}, {"KEY_X", KEY_X, true}, {"KEY_C", KEY_C, true},
	{"KEY_V", KEY_V, true}, {"KEY_B", KEY_B, true}, {"KEY_N", KEY_N, true},
	{"KEY_M", KEY_M, true},
	{"KEY_COMMA", KEY_COMMA, true}, {"KEY_DOT", KEY_DOT, true}, {"KEY_SLASH", KEY_SLASH, true},
	{"KEY_RIGHTSHIFT", KEY_RIGHTSHIFT, true}, {"KEY_KPASTERISK", KEY_KPASTERISK, true},
	{"KEY_LEFTALT", KEY_LEFTALT, true}, {"KEY_SPACE", KEY_SPACE, true},
	{"KEY_CAPSLOCK", KEY_CAPSLOCK, true},
	{"KEY_F1", KEY_F1, true}, {"KEY_F2", KEY_F2, true}, {"KEY_F3", KEY_F3, true},
	{"KEY_F4", KEY_F4, true}, {"KEY_F5", KEY_F5, true}, {"KEY_F6", KEY_F6, true},
	{"KEY_F7", KEY_F7, true}, {"KEY_F8", KEY_F8, true}, {"KEY_F9", KEY_F9, true},
	{"KEY_F10", KEY_F10, true},
	{"KEY_NUMLOCK", KEY_NUMLOCK, true}, {"KEY_SCROLLLOCK", KEY_SCROLLLOCK, true},
	{"KEY_KP7", KEY_KP7, true}, {"KEY_KP8", KEY_KP8, true}, {"KEY_KP9", KEY_KP9, true},
	{"KEY_KPMINUS", KEY_KPMINUS, true},
	{"KEY_KP4", KEY_KP4, true}, {"KEY_KP5", KEY_KP5, true}, {"KEY_KP6", KEY_KP6, true},
	{"KEY_KPPLUS", KEY_KPPLUS, true},
	{"KEY_KP1", KEY_KP1, true}, {"KEY_KP2", KEY_KP2, true}, {"KEY_KP3", KEY_KP3, true},
	{"KEY_KP0", KEY_KP0, true}, {"KEY_KPDOT", KEY_KPDOT, true},
	{"KEY_F11", KEY_F11, true}, {"KEY_F12", KEY_F12, true},
	{"KEY_KPENTER", KEY_KPENTER, true}, {"KEY_RIGHTCTRL", KEY_RIGHTCTRL, true},
	{"KEY_KPSLASH", KEY_KPSLASH, true}, {"KEY_SYSRQ", KEY_SYSRQ, true},
	{"KEY_RIGHTALT", KEY_RIGHTALT, true},
	{"KEY_HOME", KEY_HOME, true}, {"KEY_UP", KEY_UP, true}, {"KEY_PAGEUP", KEY_PAGEUP, true},
	{"KEY_LEFT", KEY_LEFT, true}, {"KEY_RIGHT", KEY_RIGHT, true}, {"KEY_END", KEY_END, true},
	{"KEY_DOWN", KEY_DOWN, true}, {"KEY_PAGEDOWN", KEY_PAGEDOWN, true},
	{"KEY_INSERT", KEY_INSERT, true}, {"KEY_DELETE", KEY_DELETE, true},
	{"KEY_MUTE", KEY_MUTE, true}, {"KEY_VOLUMEDOWN", KEY_VOLUMEDOWN, true},
	{"KEY_VOLUMEUP", KEY_VOLUMEUP, true}, {"KEY_POWER", KEY_POWER, true},
	{"KEY_KPEQUAL", KEY_KPEQUAL, true}, {"KEY_PAUSE", KEY_PAUSE, true},
	{"KEY_KPCOMMA", KEY_KPCOMMA, true},
	{"KEY_LEFTMETA", KEY_LEFTMETA, true}, {"KEY_RIGHTMETA", KEY_RIGHTMETA, true},
	{"KEY_COMPOSE", KEY_COMPOSE, true},
	{"KEY_STOP", KEY_STOP, true}, {"KEY_AGAIN", KEY_AGAIN, true}, {"KEY_PROPS", KEY_PROPS, true},
	{"KEY_UNDO", KEY_UNDO, true}, {"KEY_FRONT", KEY_FRONT, true}, {"KEY_COPY", KEY_COPY, true},
	{"KEY_OPEN", KEY_OPEN, true}, {"KEY_PASTE", KEY_PASTE, true}, {"KEY_FIND", KEY_FIND, true},
	{"KEY_CUT", KEY_CUT, true}, {"KEY_HELP", KEY_HELP, true}, {"KEY_MENU", KEY_MENU, true},
	{"KEY_CALC", KEY_CALC, true}, {"KEY_SLEEP", KEY_SLEEP, true}, {"KEY_WAKEUP", KEY_WAKEUP, true},
	{"KEY_MAIL", KEY_MAIL, true}, {"KEY_BOOKMARKS", KEY_BOOKMARKS, true},
	{"KEY_BACK", KEY_BACK, true}, {"KEY_FORWARD", KEY_FORWARD, true},
	{"KEY_EJECTCD", KEY_EJECTCD, true},
	{"KEY_NEXTSONG", KEY_NEXTSONG, true}, {"KEY_PLAYPAUSE", KEY_PLAYPAUSE, true},
	{"KEY_PREVIOUSSONG", KEY_PREVIOUSSONG, true}, {"KEY_STOPCD", KEY_STOPCD, true},
	{"KEY_REFRESH", KEY_REFRESH, true},
	{"KEY_F13", KEY_F13, true}, {"KEY_F14", KEY_F14, true}, {"KEY_F15", KEY_F15, true},
	{"KEY_F16", KEY_F16, true}, {"KEY_F17", KEY_F17, true}, {"KEY_F18", KEY_F18, true},
	{"KEY_F19", KEY_F19, true}, {"KEY_F20", KEY_F20, true}, {"KEY_F21", KEY_F21, true},
	{"KEY_F22", KEY_F22, true}, {"KEY_F23", KEY_F23, true}, {"KEY_F24", KEY_F24, true},
	{"KEY_UNKNOWN", KEY_UNKNOWN, true},

	{"BTN_0", BTN_0, true}, {"BTN_MISC", BTN_MISC, false},
	{"BTN_1", BTN_1, true}, {"BTN_2", BTN_2, true}, {"BTN_3", BTN_3, true},
	{"BTN_4", BTN_4, true}, {"BTN_5", BTN_5, true}, {"BTN_6", BTN_6, true},
	{"BTN_7", BTN_7, true}, {"BTN_8", BTN_8, true}, {"BTN_9", BTN_9, true},
	{"BTN_LEFT", BTN_LEFT, true}, {"BTN_MOUSE", BTN_MOUSE, false},
	{"BTN_RIGHT", BTN_RIGHT, true}, {"BTN_MIDDLE", BTN_MIDDLE, true},
	{"BTN_SIDE", BTN_SIDE, true}, {"BTN_EXTRA", BTN_EXTRA, true},
	{"BTN_FORWARD", BTN_FORWARD, true}, {"BTN_BACK", BTN_BACK, true}, {"BTN_TASK", BTN_TASK, true},
	{"BTN_TRIGGER", BTN_TRIGGER, true}, {"BTN_JOYSTICK", BTN_JOYSTICK, false},
	{"BTN_THUMB", BTN_THUMB, true}, {"BTN_THUMB2", BTN_THUMB2, true},
	{"BTN_TOP", BTN_TOP, true}, {"BTN_TOP2", BTN_TOP2, true}, {"BTN_PINKIE", BTN_PINKIE, true},
	{"BTN_BASE", BTN_BASE, true}, {"BTN_BASE2", BTN_BASE2, true}, {"BTN_BASE3", BTN_BASE3, true},
	{"BTN_BASE4", BTN_BASE4, true}, {"BTN_BASE5", BTN_BASE5, true}, {"BTN_BASE6", BTN_BASE6, true},
	{"BTN_DEAD", BTN_DEAD, true},
	{"BTN_SOUTH", BTN_SOUTH, true}, {"BTN_A", BTN_A, false}, {"BTN_GAMEPAD", BTN_GAMEPAD, false},
	{"BTN_EAST", BTN_EAST, true}, {"BTN_B", BTN_B, false},
	{"BTN_C", BTN_C, true},
	{"BTN_NORTH", BTN_NORTH, true}, {"BTN_X", BTN_X, false},
	{"BTN_WEST", BTN_WEST, true}, {"BTN_Y", BTN_Y, false},
	{"BTN_Z", BTN_Z, true},
	{"BTN_TL", BTN_TL, true}, {"BTN_TR", BTN_TR, true},
	{"BTN_TL2", BTN_TL2, true}, {"BTN_TR2", BTN_TR2, true},
	{"BTN_SELECT", BTN_SELECT, true}, {"BTN_START", BTN_START, true}, {"BTN_MODE", BTN_MODE, true},
	{"BTN_THUMBL", BTN_THUMBL, true}, {"BTN_THUMBR", BTN_THUMBR, true},
	{"BTN_TOOL_PEN", BTN_TOOL_PEN, true}, {"BTN_DIGI", BTN_DIGI, false},
	{"BTN_TOOL_RUBBER", BTN_TOOL_RUBBER, true}, {"BTN_TOOL_BRUSH", BTN_TOOL_BRUSH, true},
	{"BTN_TOOL_PENCIL", BTN_TOOL_PENCIL, true}, {"BTN_TOOL_AIRBRUSH", BTN_TOOL_AIRBRUSH, true},
	{"BTN_TOOL_FINGER", BTN_TOOL_FINGER, true}, {"BTN_TOOL_MOUSE", BTN_TOOL_MOUSE, true},
	{"BTN_TOOL_LENS", BTN_TOOL_LENS, true}, {"BTN_TOOL_QUINTTAP", BTN_TOOL_QUINTTAP, true},
	{"BTN_STYLUS3", BTN_STYLUS3, true},
	{"BTN_TOUCH", BTN_TOUCH, true}, {"BTN_STYLUS", BTN_STYLUS, true}, {"BTN_STYLUS2", BTN_STYLUS2, true},
	{"BTN_TOOL_DOUBLETAP", BTN_TOOL_DOUBLETAP, true}, {"BTN_TOOL_TRIPLETAP", BTN_TOOL_TRIPLETAP, true},
	{"BTN_TOOL_QUADTAP", BTN_TOOL_QUADTAP, true},
	{"BTN_WHEEL", BTN_WHEEL, true}, {"BTN_GEAR_DOWN", BTN_GEAR_DOWN, false}, {"BTN_GEAR_UP", BTN_GEAR_UP, true},
}

var mscEntries = []entry{
	{"MSC_SERIAL", MSC_SERIAL, true},
	{"MSC_PULSELED", MSC_PULSELED, true},
	{"MSC_GESTURE", MSC_GESTURE, true},
	{"MSC_RAW", MSC_RAW, true},
	{"MSC_SCAN", MSC_SCAN, true},
	{"MSC_TIMESTAMP", MSC_TIMESTAMP, true},
}

var swEntries = []entry{
	{"SW_LID", SW_LID, true},
	{"SW_TABLET_MODE", SW_TABLET_MODE, true},
	{"SW_HEADPHONE_INSERT", SW_HEADPHONE_INSERT, true},
	{"SW_RFKILL_ALL", SW_RFKILL_ALL, true},
	{"SW_MICROPHONE_INSERT", SW_MICROPHONE_INSERT, true},
	{"SW_DOCK", SW_DOCK, true},
	{"SW_LINEOUT_INSERT", SW_LINEOUT_INSERT, true},
	{"SW_JACK_PHYSICAL_INSERT", SW_JACK_PHYSICAL_INSERT, true},
	{"SW_VIDEOOUT_INSERT", SW_VIDEOOUT_INSERT, true},
	{"SW_CAMERA_LENS_COVER", SW_CAMERA_LENS_COVER, true},
	{"SW_KEYPAD_SLIDE", SW_KEYPAD_SLIDE, true},
	{"SW_FRONT_PROXIMITY", SW_FRONT_PROXIMITY, true},
	{"SW_ROTATE_LOCK", SW_ROTATE_LOCK, true},
	{"SW_LINEIN_INSERT", SW_LINEIN_INSERT, true},
	{"SW_MUTE_DEVICE", SW_MUTE_DEVICE, true},
	{"SW_PEN_INSERTED", SW_PEN_INSERTED, true},
	{"SW_MACHINE_COVER", SW_MACHINE_COVER, true},
}

var ledEntries = []entry{
	{"LED_NUML", LED_NUML, true},
	{"LED_CAPSL", LED_CAPSL, true},
	{"LED_SCROLLL", LED_SCROLLL, true},
	{"LED_COMPOSE", LED_COMPOSE, true},
	{"LED_KANA", LED_KANA, true},
	{"LED_SLEEP", LED_SLEEP, true},
	{"LED_SUSPEND", LED_SUSPEND, true},
	{"LED_MUTE", LED_MUTE, true},
	{"LED_MISC", LED_MISC, true},
	{"LED_MAIL", LED_MAIL, true},
	{"LED_CHARGING", LED_CHARGING, true},
}

var sndEntries = []entry{
	{"SND_CLICK", SND_CLICK, true},
	{"SND_BELL", SND_BELL, true},
	{"SND_TONE", SND_TONE, true},
}

var repEntries = []entry{
	{"REP_DELAY", REP_DELAY, true},
	{"REP_PERIOD", REP_PERIOD, true},
}

var ffEntries = []entry{
	{"FF_RUMBLE", FF_RUMBLE, true},
	{"FF_PERIODIC", FF_PERIODIC, true},
	{"FF_CONSTANT", FF_CONSTANT, true},
	{"FF_SPRING", FF_SPRING, true},
	{"FF_FRICTION", FF_FRICTION, true},
	{"FF_DAMPER", FF_DAMPER, true},
	{"FF_INERTIA", FF_INERTIA, true},
	{"FF_RAMP", FF_RAMP, true},
	{"FF_SQUARE", FF_SQUARE, true},
	{"FF_TRIANGLE", FF_TRIANGLE, true},
	{"FF_SINE", FF_SINE, true},
	{"FF_SAW_UP", FF_SAW_UP, true},
	{"FF_SAW_DOWN", FF_SAW_DOWN, true},
	{"FF_CUSTOM", FF_CUSTOM, true},
	{"FF_GAIN", FF_GAIN, true},
	{"FF_AUTOCENTER", FF_AUTOCENTER, true},
}

var propEntries = []entry{
	{"INPUT_PROP_POINTER", INPUT_PROP_POINTER, true},
	{"INPUT_PROP_DIRECT", INPUT_PROP_DIRECT, true},
	{"INPUT_PROP_BUTTONPAD", INPUT_PROP_BUTTONPAD, true},
	{"INPUT_PROP_SEMI_MT", INPUT_PROP_SEMI_MT, true},
	{"INPUT_PROP_TOPBUTTONPAD", INPUT_PROP_TOPBUTTONPAD, true},
	{"INPUT_PROP_POINTING_STICK", INPUT_PROP_POINTING_STICK, true},
	{"INPUT_PROP_ACCELEROMETER", INPUT_PROP_ACCELEROMETER, true},
}

// codeTables and maxForType are keyed by event type; built once at package
// init so lookups stay O(len(table)) with no per-call allocation beyond the
// returned string.
var codeTables = map[uint16][]entry{
	EV_SYN: synEntries,
	EV_KEY: keyEntries,
	EV_REL: relEntries,
	EV_ABS: absEntries,
	EV_MSC: mscEntries,
	EV_SW:  swEntries,
	EV_LED: ledEntries,
	EV_SND: sndEntries,
	EV_REP: repEntries,
	EV_FF:  ffEntries,
}

var maxForType = map[uint16]uint16{
	EV_KEY: KEY_MAX,
	EV_REL: REL_MAX,
	EV_ABS: ABS_MAX,
	EV_MSC: MSC_MAX,
	EV_SW:  SW_MAX,
	EV_LED: LED_MAX,
	EV_SND: SND_MAX,
	EV_REP: REP_MAX,
	EV_FF:  FF_MAX,
}

// TypeName returns the symbolic name of event type t, or ("", false) if t is
// not a known event type.
func TypeName(t uint16) (string, bool) {
	for _, e := range typeEntries {
		if e.code == t {
			return e.name, true
		}
	}
	return "", false
}

// TypeFromName returns the event type numbered by the exact symbolic name s.
func TypeFromName(s string) (uint16, bool) {
	for _, e := range typeEntries {
		if e.name == s {
			return e.code, true
		}
	}
	return 0, false
}

// CodeName returns the canonical symbolic name of code c under event type t,
// or ("", false) if t has no code table or c is not in it.
func CodeName(t, c uint16) (string, bool) {
	table, ok := codeTables[t]
	if !ok {
		return "", false
	}
	for _, e := range table {
		if e.code == c && e.canonical {
			return e.name, true
		}
	}
	// No entry was flagged canonical for this value (shouldn't happen for
	// tables above, but keep the lookup total): fall back to first match.
	for _, e := range table {
		if e.code == c {
			return e.name, true
		}
	}
	return "", false
}

// CodeFromName resolves a full symbolic code name under event type t.
// Alias spellings sharing one numeric value (BTN_A / BTN_SOUTH, ...) all
// resolve; CodeFromName returns the first declared match.
func CodeFromName(t uint16, s string) (uint16, bool) {
	return CodeFromNameN(t, s, len(s))
}

// CodeFromNameN is CodeFromName but matches only the first n bytes of s
// against each table entry's full name — i.e. it still requires an exact,
// full-length match of the candidate name, just without requiring a NUL
// terminator on the caller's buffer.
func CodeFromNameN(t uint16, s string, n int) (uint16, bool) {
	if n > len(s) {
		n = len(s)
	}
	name := s[:n]
	table, ok := codeTables[t]
	if !ok {
		return 0, false
	}
	for _, e := range table {
		if e.name == name {
			return e.code, true
		}
	}
	return 0, false
}

// PropName returns the symbolic name of input property p.
func PropName(p uint16) (string, bool) {
	for _, e := range propEntries {
		if e.code == p {
			return e.name, true
		}
	}
	return "", false
}

// PropFromName resolves a full symbolic input-property name.
func PropFromName(s string) (uint16, bool) {
	for _, e := range propEntries {
		if e.name == s {
			return e.code, true
		}
	}
	return 0, false
}

// MaxForType returns the highest valid code for event type t, or
// (0, false) for types that carry no codes (EV_SYN, EV_PWR, EV_FF_STATUS).
func MaxForType(t uint16) (uint16, bool) {
	m, ok := maxForType[t]
	return m, ok
}

// IsMTCode reports whether c is one of the ABS_MT_* codes, i.e. carries
// per-slot rather than device-global state.
func IsMTCode(c uint16) bool {
	return c >= ABS_MT_SLOT && c <= ABS_MAX
}

// HasPrefix is a small string helper; not part of the core name-table
// contract. Nothing else in this module calls it.
func HasPrefix(name, prefix string) bool { return strings.HasPrefix(name, prefix) }
