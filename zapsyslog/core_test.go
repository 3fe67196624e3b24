package zapsyslog

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/syslogformat/core"
	"github.com/philipp01105/syslogformat/formatter"
)

// testSyncer is an in-memory zapcore.WriteSyncer.
type testSyncer struct {
	buf    bytes.Buffer
	synced bool
}

func (s *testSyncer) Write(p []byte) (int, error) { return s.buf.Write(p) }
func (s *testSyncer) Sync() error                 { s.synced = true; return nil }

func newZapTestLogger(t *testing.T, opts ...zap.Option) (*zap.Logger, *testSyncer) {
	t.Helper()
	ws := &testSyncer{}
	return zap.New(NewCore(nil, ws, zap.DebugLevel), opts...), ws
}

func TestCore_Basic(t *testing.T) {
	log, ws := newZapTestLogger(t)

	log.Info("bar")
	if got := ws.buf.String(); got != "<14>INFO    | bar\n" {
		t.Errorf("output = %q", got)
	}
}

func TestCore_CallerDetail(t *testing.T) {
	log, ws := newZapTestLogger(t, zap.AddCaller())

	log.Warn("baz")
	out := strings.TrimRight(ws.buf.String(), "\n")
	if !strings.HasPrefix(out, "<12>WARNING | baz | core_test.") {
		t.Errorf("output = %q, want call-site detail from this file", out)
	}
}

func TestCore_ErrorFieldBecomesTraceback(t *testing.T) {
	log, ws := newZapTestLogger(t)

	log.Error("oof", zap.Error(errors.New("this is bad")))
	out := strings.TrimRight(ws.buf.String(), "\n")
	if !strings.HasPrefix(out, "<11>ERROR   | oof") {
		t.Errorf("output = %q", out)
	}
	if !strings.HasSuffix(out, " --> errors.errorString: this is bad") {
		t.Errorf("output = %q, want traceback suffix", out)
	}
}

func TestCore_Fields(t *testing.T) {
	log, ws := newZapTestLogger(t)

	log.Info("req",
		zap.String("method", "GET"),
		zap.Int("status", 200),
		zap.Bool("cached", false),
		zap.Duration("took", 1500*time.Millisecond),
	)
	out := ws.buf.String()
	for _, want := range []string{"method=GET", "status=200", "cached=false", "took=1.5s"} {
		if !strings.Contains(out, want) {
			t.Errorf("output = %q, want %q", out, want)
		}
	}
}

func TestCore_With(t *testing.T) {
	log, ws := newZapTestLogger(t)

	log.With(zap.String("job", "sync")).Info("done")
	if !strings.Contains(ws.buf.String(), "job=sync") {
		t.Errorf("output = %q, want inherited field", ws.buf.String())
	}
}

func TestCore_LevelFiltering(t *testing.T) {
	ws := &testSyncer{}
	log := zap.New(NewCore(nil, ws, zap.WarnLevel))

	log.Debug("d")
	log.Info("i")
	log.Warn("w")
	out := ws.buf.String()
	if strings.Contains(out, "| d") || strings.Contains(out, "| i") {
		t.Errorf("messages below level leaked: %q", out)
	}
	if !strings.Contains(out, "<12>WARNING | w") {
		t.Errorf("warning missing: %q", out)
	}
}

func TestCore_PanicLevelSyncs(t *testing.T) {
	ws := &testSyncer{}
	log := zap.New(NewCore(nil, ws, zap.DebugLevel))

	func() {
		defer func() { _ = recover() }()
		log.Panic("gone")
	}()
	if !strings.Contains(ws.buf.String(), "<10>CRITICAL| gone") {
		t.Errorf("output = %q", ws.buf.String())
	}
	if !ws.synced {
		t.Error("panic-class write should sync the sink")
	}
}

func TestCore_CustomFormatter(t *testing.T) {
	f, err := formatter.NewSyslogFormatter(formatter.SyslogConfig{Template: "$message [$name]"})
	if err != nil {
		t.Fatal(err)
	}
	ws := &testSyncer{}
	log := zap.New(NewCore(f, ws, zap.DebugLevel)).Named("root")

	log.Info("bar")
	if got := ws.buf.String(); got != "<14>bar [root]\n" {
		t.Errorf("output = %q", got)
	}
}

func TestZapLevelToCore(t *testing.T) {
	cases := map[zapcore.Level]core.Level{
		zapcore.DebugLevel:  core.DebugLevel,
		zapcore.InfoLevel:   core.InfoLevel,
		zapcore.WarnLevel:   core.WarnLevel,
		zapcore.ErrorLevel:  core.ErrorLevel,
		zapcore.DPanicLevel: core.CriticalLevel,
		zapcore.PanicLevel:  core.CriticalLevel,
		zapcore.FatalLevel:  core.CriticalLevel,
	}
	for in, want := range cases {
		if got := zapLevelToCore(in); got != want {
			t.Errorf("zapLevelToCore(%v) = %v, want %v", in, got, want)
		}
	}
}
