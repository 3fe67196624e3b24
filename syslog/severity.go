package syslog

import "github.com/philipp01105/syslogformat/core"

// Severity identifies the importance of a message for syslog
// consumers, 0 being the most severe. The constants correspond to
// the codes defined in section 4.1.1 of RFC 3164.
type Severity int

const (
	Emergency     Severity = 0
	Alert         Severity = 1
	Critical      Severity = 2
	Error         Severity = 3
	Warning       Severity = 4
	Notice        Severity = 5
	Informational Severity = 6
	Debug         Severity = 7
)

// SeverityOf maps a log level to its syslog severity.
//
// Syslog severities grow in the opposite direction of log levels, so
// this is a threshold lookup, not an arithmetic transform. Levels
// between two standard levels take the severity of the next lower
// one; anything at or below DebugLevel (including NotSetLevel and
// negative values) floors at Debug. Emergency and Alert are never
// produced: the level model has no equivalents.
func SeverityOf(level core.Level) Severity {
	switch {
	case level >= core.CriticalLevel:
		return Critical
	case level >= core.ErrorLevel:
		return Error
	case level >= core.WarnLevel:
		return Warning
	case level >= core.InfoLevel:
		return Informational
	default:
		return Debug
	}
}
