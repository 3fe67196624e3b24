package logger_test

import (
	"github.com/philipp01105/syslogformat/handler"
	"github.com/philipp01105/syslogformat/logger"
)

func ExampleNewBuilder() {
	log := logger.NewBuilder().
		WithHandler(handler.NewStreamHandler(handler.StreamConfig{})).
		WithLevel(logger.DebugLevel).
		Build()

	log.Debug("foo")
	log.Info("bar", logger.Int("attempt", 2))
	// Output:
	// <15>DEBUG   | foo
	// <14>INFO    | bar attempt=2
}
