// Package logging sets up the two output channels of claude-notifier:
// a zerolog debug logger on stderr and the colored status lines
// ([INFO], [WARN]) printed for the user.
package logging

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
)

// New returns a console logger writing to w. The level is warn, or debug
// when verbose is set.
func New(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	out := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.TimeOnly,
		NoColor:    color.NoColor,
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

// Status prints user-facing status lines
type Status struct {
	Out io.Writer // [INFO]
	Err io.Writer // [WARN] and plain notes

	info *color.Color
	warn *color.Color
}

// NewStatus creates a Status writing info lines to out and warnings to errOut
func NewStatus(out, errOut io.Writer) *Status {
	return &Status{
		Out:  out,
		Err:  errOut,
		info: color.New(color.FgGreen, color.Bold),
		warn: color.New(color.FgYellow, color.Bold),
	}
}

// Info prints a green [INFO] line to Out
func (s *Status) Info(format string, args ...any) {
	fmt.Fprintf(s.Out, "%s %s\n", s.info.Sprint("[INFO]"), fmt.Sprintf(format, args...))
}

// Warn prints a yellow [WARN] line to Err
func (s *Status) Warn(format string, args ...any) {
	fmt.Fprintf(s.Err, "%s %s\n", s.warn.Sprint("[WARN]"), fmt.Sprintf(format, args...))
}

// Note prints an uncolored [INFO] line to Err
func (s *Status) Note(format string, args ...any) {
	fmt.Fprintf(s.Err, "[INFO] %s\n", fmt.Sprintf(format, args...))
}
