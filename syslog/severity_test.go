package syslog

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/philipp01105/syslogformat/core"
)

func TestSeverityOf_StandardLevels(t *testing.T) {
	cases := map[core.Level]Severity{
		core.CriticalLevel: Critical,
		core.ErrorLevel:    Error,
		core.WarnLevel:     Warning,
		core.InfoLevel:     Informational,
		core.DebugLevel:    Debug,
		core.TraceLevel:    Debug,
		core.NotSetLevel:   Debug,
	}
	for level, want := range cases {
		if got := SeverityOf(level); got != want {
			t.Errorf("SeverityOf(%v) = %d, want %d", level, got, want)
		}
	}
}

func TestSeverityOf_IntermediateLevels(t *testing.T) {
	// Levels between two standard levels resolve to the next lower
	// standard level's severity.
	cases := map[core.Level]Severity{
		core.InfoLevel + 5:     Informational,
		core.WarnLevel + 1:     Warning,
		core.ErrorLevel + 9:    Error,
		core.CriticalLevel + 7: Critical,
		core.DebugLevel + 3:    Debug,
	}
	for level, want := range cases {
		if got := SeverityOf(level); got != want {
			t.Errorf("SeverityOf(%d) = %d, want %d", level, got, want)
		}
	}
}

func TestSeverityOf_Total(t *testing.T) {
	// Every representable level value maps into [0, 7].
	for i := math.MinInt8; i <= math.MaxInt8; i++ {
		s := SeverityOf(core.Level(i))
		if s < Emergency || s > Debug {
			t.Fatalf("SeverityOf(%d) = %d, outside [0, 7]", i, s)
		}
	}
}

func TestSeverityOf_NeverEmergencyOrAlert(t *testing.T) {
	for i := math.MinInt8; i <= math.MaxInt8; i++ {
		if s := SeverityOf(core.Level(i)); s == Emergency || s == Alert {
			t.Fatalf("SeverityOf(%d) = %d; severities 0 and 1 are reserved", i, s)
		}
	}
}

func TestFacility_Validate(t *testing.T) {
	for f := Kernel; f <= Local7; f++ {
		if err := f.Validate(); err != nil {
			t.Errorf("Validate(%d) = %v, want nil", f, err)
		}
	}
	for _, f := range []Facility{-1, 24, 100} {
		err := f.Validate()
		if err == nil {
			t.Errorf("Validate(%d) = nil, want error", f)
			continue
		}
		if !errors.Is(err, ErrFacilityRange) {
			t.Errorf("Validate(%d) error does not wrap ErrFacilityRange: %v", f, err)
		}
		if !strings.Contains(err.Error(), "facility code invalid") {
			t.Errorf("Validate(%d) error message = %q", f, err)
		}
	}
}
