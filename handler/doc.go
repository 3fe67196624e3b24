// Package handler dispatches log entries to their destination.
//
// StreamHandler is the only sink: it writes one formatted line per
// entry to an io.Writer, synchronously, appending the line terminator
// itself so that formatters stay newline-free. There is no queueing
// or batching; a log call returns once the write has happened.
//
// SlogHandler adapts a Handler to the standard library's
// slog.Handler interface, so an slog.Logger front end can produce
// syslog-style output. The record's PC is resolved to call-site
// information and error-valued attributes are promoted to the entry's
// traceback, which the syslog formatter flattens onto the line.
package handler
