package core

// Level represents the severity level of a log entry.
//
// The standard levels are spaced ten apart so that custom levels can
// be defined between them and still order correctly. Comparisons in
// the rest of the framework are threshold-based, never exact-match,
// so a Level of 25 behaves like "a bit more than Info".
type Level int8

const (
	// NotSetLevel is the unset floor below every real level
	NotSetLevel Level = 0
	// TraceLevel for very fine-grained tracing output
	TraceLevel Level = 5
	// DebugLevel for detailed debugging information
	DebugLevel Level = 10
	// InfoLevel for general informational messages (default)
	InfoLevel Level = 20
	// WarnLevel for warning messages
	WarnLevel Level = 30
	// ErrorLevel for error messages
	ErrorLevel Level = 40
	// CriticalLevel for unrecoverable failures
	CriticalLevel Level = 50
)

// String returns the display name of the level
func (l Level) String() string {
	switch l {
	case NotSetLevel:
		return "NOTSET"
	case TraceLevel:
		return "TRACE"
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARNING"
	case ErrorLevel:
		return "ERROR"
	case CriticalLevel:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

// LevelColumnWidth is the width of the widest standard display name
// ("CRITICAL"). Formatters use it to keep the level column aligned.
const LevelColumnWidth = 8

// pre-padded level columns to avoid per-call padding
const levelColumnPad = "        "

// Column returns the display name left-aligned to LevelColumnWidth.
// Names wider than the column are returned unpadded.
func (l Level) Column() string {
	switch l {
	case TraceLevel:
		return "TRACE   "
	case DebugLevel:
		return "DEBUG   "
	case InfoLevel:
		return "INFO    "
	case WarnLevel:
		return "WARNING "
	case ErrorLevel:
		return "ERROR   "
	case CriticalLevel:
		return "CRITICAL"
	}
	name := l.String()
	if len(name) >= LevelColumnWidth {
		return name
	}
	return name + levelColumnPad[:LevelColumnWidth-len(name)]
}
