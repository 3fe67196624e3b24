package formatter

import (
	"bytes"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/philipp01105/syslogformat/core"
	"github.com/philipp01105/syslogformat/syslog"
)

// DefaultLineBreakRepl is the token that replaces line-break runs in
// the final output.
const DefaultLineBreakRepl = " --> "

// SyslogConfig holds configuration for the syslog formatter. The zero
// value gives the documented defaults.
type SyslogConfig struct {
	// Facility is the syslog facility code (default: syslog.User).
	// The zero value selects User, not Kernel; facility 0 is reserved
	// for kernel messages, which user processes do not emit.
	Facility syslog.Facility
	// LineBreakRepl replaces each run of line breaks and adjacent
	// horizontal whitespace in the composed message (default: " --> ").
	LineBreakRepl string
	// PreserveLineBreaks disables line-break replacement entirely;
	// output may then span multiple physical lines.
	PreserveLineBreaks bool
	// DetailThreshold is the minimum level at which call-site detail
	// is appended (default: core.WarnLevel).
	DetailThreshold core.Level
	// OmitLevelName drops the fixed-width level-name column from the
	// default layout.
	OmitLevelName bool
	// Template, when non-empty, replaces the default layout with a
	// $-substitution template (os.Expand syntax). DetailThreshold and
	// OmitLevelName are ignored on this path; the PRI prefix is still
	// prepended. See SyslogFormatter for the available variables.
	Template string
	// TimestampFormat is the time layout for the $time template
	// variable (default: time.RFC3339).
	TimestampFormat string
}

// SyslogFormatter renders log entries as single-line syslog-style
// messages:
//
//	<13>WARNING | disk almost full | monitor.checkDisk.87
//
// The PRI prefix encodes facility and severity per RFC 3164. In the
// default layout the level-name column is aligned to the widest
// standard name, call-site detail is appended at or above the detail
// threshold, and an attached traceback is flattened onto the same
// line. A custom Template bypasses all of that; its $-variables are
// priority, message, name, level, levelname, levelno, module,
// function, line, time and fields. Unknown variables expand to the
// empty string.
//
// A SyslogFormatter is immutable and safe for concurrent use.
type SyslogFormatter struct {
	facility        syslog.Facility
	lineBreakRepl   string
	preserveBreaks  bool
	detailThreshold core.Level
	omitLevelName   bool
	template        string
	timestampFormat string
}

// NewSyslogFormatter validates the configuration and creates a new
// syslog formatter. The facility is checked once here; an
// out-of-range code returns an error wrapping syslog.ErrFacilityRange.
func NewSyslogFormatter(cfg SyslogConfig) (*SyslogFormatter, error) {
	if cfg.Facility == 0 {
		cfg.Facility = syslog.User
	}
	if err := cfg.Facility.Validate(); err != nil {
		return nil, err
	}
	if cfg.LineBreakRepl == "" {
		cfg.LineBreakRepl = DefaultLineBreakRepl
	}
	if cfg.DetailThreshold == core.NotSetLevel {
		cfg.DetailThreshold = core.WarnLevel
	}
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = time.RFC3339
	}
	return &SyslogFormatter{
		facility:        cfg.Facility,
		lineBreakRepl:   cfg.LineBreakRepl,
		preserveBreaks:  cfg.PreserveLineBreaks,
		detailThreshold: cfg.DetailThreshold,
		omitLevelName:   cfg.OmitLevelName,
		template:        cfg.Template,
		timestampFormat: cfg.TimestampFormat,
	}, nil
}

// Format formats an entry as a syslog-style line
func (f *SyslogFormatter) Format(entry *core.Entry) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.FormatEntry(entry, buf)

	// Copy buffer content to return
	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// FormatTo formats an entry and writes it directly to the writer
func (f *SyslogFormatter) FormatTo(entry *core.Entry, w io.Writer) error {
	buf := getBuffer()

	f.FormatEntry(entry, buf)

	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

// FormatEntry formats an entry into the given buffer (implements
// BufferFormatter). No trailing newline is written; handlers own the
// line terminator.
func (f *SyslogFormatter) FormatEntry(entry *core.Entry, buf *bytes.Buffer) {
	if f.preserveBreaks {
		f.compose(entry, buf)
		return
	}

	// Compose into a scratch buffer, then flatten into the target.
	// Flattening runs over the entire composed string, so breaks
	// inside a traceback collapse identically to breaks in the
	// original message.
	raw := getBuffer()
	f.compose(entry, raw)
	flattenInto(buf, raw.Bytes(), f.lineBreakRepl)
	putBuffer(raw)
}

// compose writes the unflattened message: PRI prefix, then either the
// custom template expansion or the default layout.
func (f *SyslogFormatter) compose(entry *core.Entry, buf *bytes.Buffer) {
	pri := syslog.NewPriority(f.facility, syslog.SeverityOf(entry.Level))
	buf.Write(pri.AppendPRI(buf.AvailableBuffer()))

	if f.template != "" {
		buf.WriteString(os.Expand(f.template, func(name string) string {
			return f.expand(entry, pri, name)
		}))
		// An attached traceback is still appended; the template only
		// controls the line itself.
		if entry.Exc != nil {
			appendTraceback(buf, entry.Exc)
		}
		return
	}

	if !f.omitLevelName {
		buf.WriteString(entry.Level.Column())
		buf.WriteString("| ")
	}

	buf.WriteString(entry.Message)

	for _, field := range entry.Fields {
		buf.WriteByte(' ')
		buf.WriteString(field.Key)
		buf.WriteByte('=')
		buf.WriteString(field.StringValue())
	}

	if entry.Level >= f.detailThreshold && entry.Caller.Defined {
		buf.WriteString(" | ")
		buf.WriteString(entry.Caller.Module)
		buf.WriteByte('.')
		buf.WriteString(entry.Caller.Function)
		buf.WriteByte('.')
		buf.Write(strconv.AppendInt(buf.AvailableBuffer(), int64(entry.Caller.Line), 10))
	}

	if entry.Exc != nil {
		appendTraceback(buf, entry.Exc)
	}
}

// appendTraceback writes the traceback block, one line per frame with
// the exception type and message last. Missing parts are skipped
// rather than reported; a completely empty traceback writes nothing.
func appendTraceback(buf *bytes.Buffer, tb *core.Traceback) {
	for _, fr := range tb.Frames {
		if fr.File == "" && fr.Function == "" {
			continue
		}
		buf.WriteByte('\n')
		buf.WriteString(fr.File)
		buf.WriteByte(':')
		buf.Write(strconv.AppendInt(buf.AvailableBuffer(), int64(fr.Line), 10))
		if fr.Function != "" {
			buf.WriteByte(' ')
			buf.WriteString(fr.Function)
		}
	}

	if tb.Type == "" && tb.Message == "" {
		return
	}
	buf.WriteByte('\n')
	switch {
	case tb.Type == "":
		buf.WriteString(tb.Message)
	case tb.Message == "":
		buf.WriteString(tb.Type)
	default:
		buf.WriteString(tb.Type)
		buf.WriteString(": ")
		buf.WriteString(tb.Message)
	}
}

// expand resolves a single template variable.
func (f *SyslogFormatter) expand(entry *core.Entry, pri syslog.Priority, name string) string {
	switch name {
	case "priority":
		return strconv.Itoa(int(pri))
	case "message":
		return entry.Message
	case "name":
		return entry.Name
	case "level", "levelname":
		return entry.Level.String()
	case "levelno":
		return strconv.Itoa(int(entry.Level))
	case "module":
		return entry.Caller.Module
	case "function":
		return entry.Caller.Function
	case "line":
		return strconv.Itoa(entry.Caller.Line)
	case "time":
		return entry.Time.Format(f.timestampFormat)
	case "fields":
		return fieldsString(entry.Fields)
	}
	return ""
}

func fieldsString(fields []core.Field) string {
	if len(fields) == 0 {
		return ""
	}
	buf := getBuffer()
	defer putBuffer(buf)
	for i, field := range fields {
		if i > 0 {
			buf.WriteByte(' ')
		}
		buf.WriteString(field.Key)
		buf.WriteByte('=')
		buf.WriteString(field.StringValue())
	}
	return buf.String()
}
