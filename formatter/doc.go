// Package formatter defines how log entries are serialized into bytes.
//
// It exposes three interfaces: Formatter, which returns a []byte,
// WriterFormatter, which writes directly to an io.Writer, and
// BufferFormatter, which fills a caller-provided bytes.Buffer.
// Handlers check for the optional interfaces at construction time and
// prefer them when available, eliminating intermediate allocations on
// the write path.
//
// The built-in SyslogFormatter renders each entry as one syslog-style
// line: an RFC 3164 PRI prefix computed from the configured facility
// and the entry's level, an aligned level-name column, the message,
// optional call-site detail above a level threshold, and a flattened
// traceback when the entry carries one. As the final step the entire
// composed string is passed through Flatten, which collapses every
// run of line breaks and adjacent horizontal whitespace into a single
// replacement token, so the output never spans multiple lines unless
// that is explicitly requested via PreserveLineBreaks.
//
// Formatting never fails: the level-to-severity mapping is total and
// a malformed traceback degrades to whatever parts are present.
// Formatters use a pooled bytes.Buffer internally and Go's
// Append-style functions to avoid per-call allocations. Buffers
// larger than 64 KiB are not returned to the pool to prevent a single
// large log line from permanently inflating memory usage.
package formatter
