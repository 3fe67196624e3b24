package zapsyslog

import (
	"math"
	"time"

	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/syslogformat/core"
	"github.com/philipp01105/syslogformat/formatter"
)

// Core is a zapcore.Core that renders zap entries through a
// syslogformat formatter, one line per entry. It lets applications
// built on zap emit syslog-style output without changing their
// logging calls.
//
// Like zapcore's own ioCore, Core does not serialize writes; wrap the
// WriteSyncer with zapcore.Lock when the same sink is shared.
type Core struct {
	zapcore.LevelEnabler
	formatter       formatter.Formatter
	bufferFormatter formatter.BufferFormatter
	out             zapcore.WriteSyncer
	fields          []core.Field
}

// NewCore creates a Core that formats entries with f and writes them
// to ws. If f is nil, a SyslogFormatter with the default
// configuration is used.
func NewCore(f formatter.Formatter, ws zapcore.WriteSyncer, enab zapcore.LevelEnabler) *Core {
	if f == nil {
		// The default syslog config always validates.
		f, _ = formatter.NewSyslogFormatter(formatter.SyslogConfig{})
	}
	c := &Core{
		LevelEnabler: enab,
		formatter:    f,
		out:          ws,
	}
	c.bufferFormatter, _ = f.(formatter.BufferFormatter)
	return c
}

// With returns a copy of the Core carrying the additional fields.
func (c *Core) With(fields []zapcore.Field) zapcore.Core {
	clone := *c
	clone.fields = make([]core.Field, len(c.fields), len(c.fields)+len(fields))
	copy(clone.fields, c.fields)
	for _, f := range fields {
		clone.fields = append(clone.fields, convertField(f))
	}
	return &clone
}

// Check adds the Core to the checked entry if its level is enabled.
func (c *Core) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

// Write converts the zap entry, formats it and writes one line to the
// sink. The first error-valued field becomes the entry's traceback;
// everything else renders as key=value fields.
func (c *Core) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	entry := core.GetEntry()
	defer core.PutEntry(entry)

	entry.Time = ent.Time
	entry.Level = zapLevelToCore(ent.Level)
	entry.Name = ent.LoggerName
	entry.Message = ent.Message
	if ent.Caller.Defined {
		entry.Caller = core.NewCallerInfo(ent.Caller.File, ent.Caller.Function, ent.Caller.Line)
	}

	entry.Fields = append(entry.Fields, c.fields...)
	for _, f := range fields {
		if f.Type == zapcore.ErrorType && entry.Exc == nil {
			if err, ok := f.Interface.(error); ok {
				entry.Exc = core.TracebackFromError(err)
				continue
			}
		}
		entry.Fields = append(entry.Fields, convertField(f))
	}

	buf := getBuffer()
	defer putBuffer(buf)
	if c.bufferFormatter != nil {
		c.bufferFormatter.FormatEntry(entry, buf)
	} else {
		line, err := c.formatter.Format(entry)
		if err != nil {
			return err
		}
		buf.Write(line)
	}
	buf.WriteByte('\n')

	_, err := c.out.Write(buf.Bytes())
	if err != nil {
		return err
	}
	if ent.Level > zapcore.ErrorLevel {
		// Match zapcore's ioCore: sync on panic-class entries, since
		// the process may be about to die.
		return c.Sync()
	}
	return nil
}

// Sync flushes the sink.
func (c *Core) Sync() error {
	return c.out.Sync()
}

// zapLevelToCore maps zap levels onto the framework's levels. The
// panic-class levels all collapse into CriticalLevel.
func zapLevelToCore(l zapcore.Level) core.Level {
	switch {
	case l >= zapcore.DPanicLevel:
		return core.CriticalLevel
	case l >= zapcore.ErrorLevel:
		return core.ErrorLevel
	case l >= zapcore.WarnLevel:
		return core.WarnLevel
	case l >= zapcore.InfoLevel:
		return core.InfoLevel
	case l >= zapcore.DebugLevel:
		return core.DebugLevel
	default:
		return core.TraceLevel
	}
}

// convertField maps a zapcore.Field to a core.Field. The common
// scalar types convert directly; anything exotic goes through a
// MapObjectEncoder so no value is silently dropped.
func convertField(f zapcore.Field) core.Field {
	switch f.Type {
	case zapcore.StringType:
		return core.String(f.Key, f.String)
	case zapcore.Int64Type, zapcore.Int32Type, zapcore.Int16Type, zapcore.Int8Type,
		zapcore.Uint64Type, zapcore.Uint32Type, zapcore.Uint16Type, zapcore.Uint8Type:
		return core.Int64(f.Key, f.Integer)
	case zapcore.Float64Type:
		return core.Float64(f.Key, math.Float64frombits(uint64(f.Integer)))
	case zapcore.Float32Type:
		return core.Float64(f.Key, float64(math.Float32frombits(uint32(f.Integer))))
	case zapcore.BoolType:
		return core.Bool(f.Key, f.Integer == 1)
	case zapcore.DurationType:
		return core.Duration(f.Key, time.Duration(f.Integer))
	case zapcore.ErrorType:
		if err, ok := f.Interface.(error); ok {
			return core.Err(err)
		}
		return core.Any(f.Key, f.Interface)
	default:
		enc := zapcore.NewMapObjectEncoder()
		f.AddTo(enc)
		return core.Any(f.Key, enc.Fields[f.Key])
	}
}
