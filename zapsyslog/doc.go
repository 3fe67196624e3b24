// Package zapsyslog bridges go.uber.org/zap to syslogformat.
//
// It provides a zapcore.Core whose output path is a syslogformat
// formatter instead of a zap encoder, so zap-based applications can
// produce single-line syslog-style messages:
//
//	core := zapsyslog.NewCore(nil, zapcore.Lock(os.Stdout), zap.DebugLevel)
//	log := zap.New(core, zap.AddCaller())
//	log.Warn("disk almost full", zap.Int("free_mb", 312))
//	// <12>WARNING | disk almost full free_mb=312 | monitor.check.87
//
// zap's caller annotation carries over into the formatter's call-site
// detail, and a zap.Error field is promoted to the entry's traceback
// rather than rendered as a plain key=value pair.
package zapsyslog
