package syslog

import "strconv"

// Priority is the combined facility and severity code transmitted as
// the PRI part of a syslog message, in [0, 191]. The encoding is
// lossless: Facility and Severity recover the original pair.
type Priority int

// NewPriority combines a facility and severity into a Priority.
func NewPriority(f Facility, s Severity) Priority {
	return Priority(int(f)*8 + int(s))
}

// Facility returns the facility encoded in the priority.
func (p Priority) Facility() Facility {
	return Facility(p / 8)
}

// Severity returns the severity encoded in the priority.
func (p Priority) Severity() Severity {
	return Severity(p % 8)
}

// String renders the priority as a syslog PRI prefix: the decimal
// value in angle brackets, no leading zeros.
func (p Priority) String() string {
	return "<" + strconv.Itoa(int(p)) + ">"
}

// AppendPRI appends the PRI prefix to b and returns the extended
// slice, for use with buffer Available/AppendX idioms.
func (p Priority) AppendPRI(b []byte) []byte {
	b = append(b, '<')
	b = strconv.AppendInt(b, int64(p), 10)
	return append(b, '>')
}
