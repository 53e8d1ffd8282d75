package progress

import (
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
)

// Display animates a spinner while a blocking step runs
type Display struct {
	capabilities TerminalCapabilities
	writer       io.Writer
	spinner      *spinner.Spinner
}

// NewDisplay creates a display writing to w, normally os.Stderr
func NewDisplay(caps TerminalCapabilities, w io.Writer) *Display {
	return &Display{capabilities: caps, writer: w}
}

// Start begins the animation. It is a no-op when the output is not a TTY
// or a spinner is already running.
func (d *Display) Start(msg string) {
	if !d.capabilities.IsTTY || d.spinner != nil {
		return
	}
	opt := spinner.WithWriter(d.writer)
	if f, ok := d.writer.(*os.File); ok {
		opt = spinner.WithWriterFile(f)
	}
	d.spinner = spinner.New(
		spinner.CharSets[SpinnerSet(d.capabilities)],
		100*time.Millisecond,
		opt,
	)
	d.spinner.Suffix = " " + msg
	d.spinner.Start()
}

// Stop halts the animation and clears its line
func (d *Display) Stop() {
	if d.spinner != nil {
		d.spinner.Stop()
		d.spinner = nil
	}
}

// Noop is an Indicator that prints nothing
type Noop struct{}

// Start does nothing
func (Noop) Start(string) {}

// Stop does nothing
func (Noop) Stop() {}
