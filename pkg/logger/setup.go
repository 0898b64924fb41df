package logger

import (
	"io"
	"os"

	charm "github.com/charmbracelet/log"

	"github.com/cloudposse/preform/pkg/schema"
)

// NewLoggerFromConfig builds a Logger from the `logs` section of the configuration.
// The returned closer releases the log file, if one was opened.
func NewLoggerFromConfig(cfg schema.Logs) (*Logger, io.Closer, error) {
	level, err := ParseLogLevel(cfg.Level)
	if err != nil {
		return nil, nil, err
	}

	var out io.Writer = os.Stderr
	var closer io.Closer = nopCloser{}

	switch cfg.File {
	case "", "/dev/stderr":
	case "/dev/stdout":
		out = os.Stdout
	default:
		f, err := os.OpenFile(cfg.File, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o644)
		if err != nil {
			return nil, nil, err
		}
		out = f
		closer = f
	}

	l := charm.NewWithOptions(out, charm.Options{ReportTimestamp: false})
	l.SetLevel(ConvertLogLevel(level))
	return NewLogger(l), closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
