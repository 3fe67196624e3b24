package syslog

import (
	"errors"
	"fmt"
)

// Facility identifies the subsystem generating a log message. The
// named constants correspond to the codes defined in section 4.1.1 of
// RFC 3164.
type Facility int

const (
	Kernel        Facility = 0
	User          Facility = 1
	Mail          Facility = 2
	SystemDaemon  Facility = 3
	Security4     Facility = 4
	Syslogd       Facility = 5
	LinePrinter   Facility = 6
	NetworkNews   Facility = 7
	UUCP          Facility = 8
	ClockDaemon9  Facility = 9
	Security10    Facility = 10
	FTPDaemon     Facility = 11
	NTP           Facility = 12
	LogAudit      Facility = 13
	LogAlert      Facility = 14
	ClockDaemon15 Facility = 15
	Local0        Facility = 16
	Local1        Facility = 17
	Local2        Facility = 18
	Local3        Facility = 19
	Local4        Facility = 20
	Local5        Facility = 21
	Local6        Facility = 22
	Local7        Facility = 23
)

// ErrFacilityRange reports a facility code outside the standard
// [0, 23] range. Returned errors wrap it, so callers can test with
// errors.Is.
var ErrFacilityRange = errors.New("syslog facility code invalid")

// Validate rejects facility codes outside the standard range. It is
// meant to run once at configuration time; nothing downstream clamps
// or wraps out-of-range values.
func (f Facility) Validate() error {
	if f < Kernel || f > Local7 {
		return fmt.Errorf("%w: %d", ErrFacilityRange, int(f))
	}
	return nil
}
