package shared

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// SetupLogger configures a logger at the given level writing to stderr.
func SetupLogger(level string) *log.Logger {
	return newLogger(os.Stderr, level)
}

// SetupFileLogger configures a logger writing to a file. The TUI owns
// the terminal, so interactive commands log to a file instead; the
// caller closes the returned file.
func SetupFileLogger(path, level string) (*log.Logger, *os.File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o666)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create log file: %w", err)
	}
	return newLogger(f, level), f, nil
}

func newLogger(w io.Writer, level string) *log.Logger {
	parsed, err := log.ParseLevel(level)
	if err != nil {
		parsed = log.InfoLevel
	}

	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Level:           parsed,
	})
}
