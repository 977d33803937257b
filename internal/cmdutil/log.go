// internal/cmdutil/log.go
package cmdutil

import (
	"io"

	"github.com/sirupsen/logrus"
)

// NewLogger builds the run logger. Verbosity 0 only surfaces errors, 1 adds
// run information, 2 adds per-file/per-read diagnostics. Output is injected
// so tests can capture it.
func NewLogger(w io.Writer, verbosity int) *logrus.Logger {
	lg := logrus.New()
	lg.SetOutput(w)
	lg.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		DisableColors:    true,
	})
	switch {
	case verbosity <= 0:
		lg.SetLevel(logrus.ErrorLevel)
	case verbosity == 1:
		lg.SetLevel(logrus.InfoLevel)
	default:
		lg.SetLevel(logrus.DebugLevel)
	}
	return lg
}
