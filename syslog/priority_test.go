package syslog

import "testing"

func TestNewPriority_RoundTrip(t *testing.T) {
	for f := Kernel; f <= Local7; f++ {
		for s := Emergency; s <= Debug; s++ {
			p := NewPriority(f, s)
			if p < 0 || p > 191 {
				t.Fatalf("NewPriority(%d, %d) = %d, out of range", f, s, p)
			}
			if p.Facility() != f {
				t.Errorf("Priority(%d).Facility() = %d, want %d", p, p.Facility(), f)
			}
			if p.Severity() != s {
				t.Errorf("Priority(%d).Severity() = %d, want %d", p, p.Severity(), s)
			}
		}
	}
}

func TestPriority_String(t *testing.T) {
	cases := []struct {
		f    Facility
		s    Severity
		want string
	}{
		{Kernel, Emergency, "<0>"},
		{User, Debug, "<15>"},
		{User, Warning, "<12>"},
		{Local0, Informational, "<134>"},
		{Local7, Debug, "<191>"},
	}
	for _, tc := range cases {
		if got := NewPriority(tc.f, tc.s).String(); got != tc.want {
			t.Errorf("NewPriority(%d, %d).String() = %q, want %q", tc.f, tc.s, got, tc.want)
		}
	}
}

func TestPriority_AppendPRI(t *testing.T) {
	b := []byte("x")
	b = NewPriority(User, Debug).AppendPRI(b)
	if string(b) != "x<15>" {
		t.Errorf("AppendPRI = %q, want %q", b, "x<15>")
	}
}
