package handler

import (
	"io"
	"os"
	"sync"

	"github.com/philipp01105/syslogformat/core"
	"github.com/philipp01105/syslogformat/formatter"
)

// StreamHandler writes one formatted line per entry to an io.Writer.
// Delivery is synchronous: Handle returns once the line has been
// written. A mutex serializes writes, so a single StreamHandler is
// safe to share between goroutines.
type StreamHandler struct {
	mu              sync.Mutex
	writer          io.Writer
	formatter       formatter.Formatter
	bufferFormatter formatter.BufferFormatter
}

// StreamConfig holds configuration for a stream handler
type StreamConfig struct {
	// Writer to write to (default: os.Stdout)
	Writer io.Writer
	// Formatter to use (default: SyslogFormatter with default config)
	Formatter formatter.Formatter
}

// NewStreamHandler creates a new stream handler
func NewStreamHandler(cfg StreamConfig) *StreamHandler {
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}
	if cfg.Formatter == nil {
		// The default syslog config always validates.
		cfg.Formatter, _ = formatter.NewSyslogFormatter(formatter.SyslogConfig{})
	}

	h := &StreamHandler{
		writer:    cfg.Writer,
		formatter: cfg.Formatter,
	}

	// Cache BufferFormatter for the single-write path
	h.bufferFormatter, _ = cfg.Formatter.(formatter.BufferFormatter)

	return h
}

// Handle formats the entry and writes it followed by a line
// terminator. The formatter output itself carries no newline.
func (h *StreamHandler) Handle(entry *core.Entry) error {
	if h.bufferFormatter != nil {
		buf := getBuffer()
		h.bufferFormatter.FormatEntry(entry, buf)
		buf.WriteByte('\n')

		h.mu.Lock()
		_, err := h.writer.Write(buf.Bytes())
		h.mu.Unlock()

		putBuffer(buf)
		return err
	}

	line, err := h.formatter.Format(entry)
	if err != nil {
		return err
	}
	line = append(line, '\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err = h.writer.Write(line)
	return err
}

// CanRecycleEntry reports that entries may be returned to the pool
// after Handle returns; the handler retains no reference to them.
func (h *StreamHandler) CanRecycleEntry() bool {
	return true
}

// Close closes the underlying writer if it is closable, except for
// the process-wide stdout/stderr streams.
func (h *StreamHandler) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.writer == os.Stdout || h.writer == os.Stderr {
		return nil
	}
	if c, ok := h.writer.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
