package handler

import (
	"context"
	"log/slog"
	"runtime"

	"github.com/philipp01105/syslogformat/core"
)

// SlogHandler is an adapter that implements slog.Handler on top of a
// syslogformat Handler. It lets the standard library's log/slog front
// end emit syslog-style lines without knowing about this framework.
type SlogHandler struct {
	handler Handler
	level   core.Level
	attrs   []core.Field
	group   string
	recycle bool
}

// NewSlogHandler creates a new slog.Handler adapter wrapping the given Handler.
func NewSlogHandler(h Handler, level core.Level) *SlogHandler {
	s := &SlogHandler{
		handler: h,
		level:   level,
	}
	if rc, ok := h.(interface{ CanRecycleEntry() bool }); ok {
		s.recycle = rc.CanRecycleEntry()
	}
	return s
}

// Enabled reports whether the handler handles records at the given level.
func (s *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return slogLevelToCore(level) >= s.level
}

// Handle converts a slog.Record to a core.Entry and passes it on. The
// call site is recovered from the record's PC, and the first
// error-valued attribute becomes the entry's traceback instead of a
// plain field.
func (s *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	entry := core.GetEntry()

	entry.Time = record.Time
	entry.Level = slogLevelToCore(record.Level)
	entry.Message = record.Message

	if record.PC != 0 {
		frames := runtime.CallersFrames([]uintptr{record.PC})
		fr, _ := frames.Next()
		if fr.File != "" {
			entry.Caller = core.NewCallerInfo(fr.File, fr.Function, fr.Line)
		}
	}

	// Add pre-configured attrs
	if len(s.attrs) > 0 {
		entry.Fields = append(entry.Fields, s.attrs...)
	}

	// Add record attrs
	record.Attrs(func(a slog.Attr) bool {
		if err, ok := a.Value.Any().(error); ok && entry.Exc == nil {
			entry.Exc = core.TracebackFromError(err)
			return true
		}
		entry.Fields = append(entry.Fields, slogAttrToField(s.group, a))
		return true
	})

	err := s.handler.Handle(entry)
	if err == nil && s.recycle {
		core.PutEntry(entry)
	}
	return err
}

// WithAttrs returns a new SlogHandler with additional attributes.
func (s *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newAttrs := make([]core.Field, len(s.attrs), len(s.attrs)+len(attrs))
	copy(newAttrs, s.attrs)
	for _, a := range attrs {
		newAttrs = append(newAttrs, slogAttrToField(s.group, a))
	}
	return &SlogHandler{
		handler: s.handler,
		level:   s.level,
		attrs:   newAttrs,
		group:   s.group,
		recycle: s.recycle,
	}
}

// WithGroup returns a new SlogHandler with the given group name.
func (s *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	group := name
	if s.group != "" {
		group = s.group + "." + name
	}
	return &SlogHandler{
		handler: s.handler,
		level:   s.level,
		attrs:   s.attrs,
		group:   group,
		recycle: s.recycle,
	}
}

// slogLevelToCore maps slog levels onto the framework's levels.
// Thresholds, not exact matches: slog allows arbitrary intermediate
// values (LevelError+4 and above counts as critical).
func slogLevelToCore(l slog.Level) core.Level {
	switch {
	case l >= slog.LevelError+4:
		return core.CriticalLevel
	case l >= slog.LevelError:
		return core.ErrorLevel
	case l >= slog.LevelWarn:
		return core.WarnLevel
	case l >= slog.LevelInfo:
		return core.InfoLevel
	case l >= slog.LevelDebug:
		return core.DebugLevel
	default:
		return core.TraceLevel
	}
}

// slogAttrToField converts a slog.Attr to a core.Field, prefixing the
// key with the active group.
func slogAttrToField(group string, a slog.Attr) core.Field {
	key := a.Key
	if group != "" {
		key = group + "." + key
	}
	switch a.Value.Kind() {
	case slog.KindString:
		return core.String(key, a.Value.String())
	case slog.KindInt64:
		return core.Int64(key, a.Value.Int64())
	case slog.KindFloat64:
		return core.Float64(key, a.Value.Float64())
	case slog.KindBool:
		return core.Bool(key, a.Value.Bool())
	case slog.KindDuration:
		return core.Duration(key, a.Value.Duration())
	default:
		return core.Any(key, a.Value.Any())
	}
}
