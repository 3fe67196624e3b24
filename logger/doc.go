// Package logger is the public API of syslogformat. Most users only
// need to import this package.
//
// A Logger is immutable after construction — the name, level, fields
// and handler are set once via the Builder and never modified. This
// makes Logger inherently safe for concurrent use without any locking
// on the read path.
//
// The package initializes a default Logger (InfoLevel, syslog-style
// lines to stdout) in init(). The package-level functions Info,
// Error, Exception, Debugf, etc. delegate to this default instance,
// so simple programs can log without any setup:
//
//	logger.Warn("disk almost full", logger.Int("free_mb", 312))
//	// <12>WARNING | disk almost full free_mb=312 | monitor.check.87
//
// For custom configuration, use the Builder:
//
//	log := logger.NewBuilder().
//	    WithHandler(myHandler).
//	    WithLevel(logger.DebugLevel).
//	    WithName("worker").
//	    Build()
//
// Call-site capture is on by default, because the syslog formatter
// appends module, function and line at or above its detail threshold.
// Exception logs an error together with the current stack; the
// formatter flattens the traceback onto the same output line.
//
// Child loggers with extra fields are created via With; Named creates
// a child with a dotted name. Level checks happen before any
// allocation, so filtered-out messages cost only a single integer
// comparison.
package logger
