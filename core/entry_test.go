package core

import (
	"strings"
	"testing"
)

func TestGetEntry_ResetsState(t *testing.T) {
	e := GetEntry()
	e.Level = ErrorLevel
	e.Name = "worker"
	e.Message = "leftover"
	e.Fields = append(e.Fields, String("k", "v"))
	e.Caller = NewCallerInfo("/tmp/x.go", "pkg.fn", 1)
	e.Exc = &Traceback{Type: "x", Message: "y"}
	PutEntry(e)

	e2 := GetEntry()
	defer PutEntry(e2)
	if e2.Message != "" || e2.Name != "" {
		t.Errorf("pooled entry not reset: message=%q name=%q", e2.Message, e2.Name)
	}
	if len(e2.Fields) != 0 {
		t.Errorf("pooled entry has %d leftover fields", len(e2.Fields))
	}
	if e2.Caller.Defined {
		t.Error("pooled entry has leftover caller info")
	}
	if e2.Exc != nil {
		t.Error("pooled entry has leftover traceback")
	}
	if e2.Time.IsZero() {
		t.Error("GetEntry should stamp the current time")
	}
}

func TestPutEntry_Nil(t *testing.T) {
	PutEntry(nil) // must not panic
}

func TestNewCallerInfo(t *testing.T) {
	ci := NewCallerInfo("/home/app/internal/server/router.go", "github.com/acme/app/internal/server.(*Router).Handle", 42)
	if ci.Module != "router" {
		t.Errorf("Module = %q, want %q", ci.Module, "router")
	}
	if ci.Function != "(*Router).Handle" {
		t.Errorf("Function = %q, want %q", ci.Function, "(*Router).Handle")
	}
	if ci.Line != 42 || !ci.Defined {
		t.Errorf("unexpected caller info: %+v", ci)
	}
}

func TestGetCaller(t *testing.T) {
	ci := GetCaller(1)
	if !ci.Defined {
		t.Fatal("expected caller info to be defined")
	}
	if ci.Module != "entry_test" {
		t.Errorf("Module = %q, want %q", ci.Module, "entry_test")
	}
	if !strings.Contains(ci.Function, "TestGetCaller") {
		t.Errorf("Function = %q, want it to contain TestGetCaller", ci.Function)
	}
	if ci.Line <= 0 {
		t.Errorf("Line = %d, want > 0", ci.Line)
	}
}

func TestGetCaller_OutOfRange(t *testing.T) {
	ci := GetCaller(10_000)
	if ci.Defined {
		t.Errorf("expected undefined caller info, got %+v", ci)
	}
}
