package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
		Prefix:          "hanoi",
	})
}

// logLevel maps --verbose to a level.
func logLevel() log.Level {
	if flagVerbose {
		return log.DebugLevel
	}
	return log.InfoLevel
}

// openLogger builds the command logger. Logs go to --log-file when set and
// to fallback otherwise. The returned close func releases the file.
func openLogger(fallback io.Writer) (*log.Logger, func(), error) {
	if flagLogFile == "" {
		return newLogger(fallback, logLevel()), func() {}, nil
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	//nolint:errcheck // Best-effort close on exit
	return newLogger(f, logLevel()), func() { f.Close() }, nil
}
