package cli

import (
	"io"
	"os"

	"github.com/claude-notifier/claude-notifier/internal/notify"
	"github.com/claude-notifier/claude-notifier/internal/progress"
	"github.com/claude-notifier/claude-notifier/internal/registration"
	"github.com/claude-notifier/claude-notifier/internal/sound"
)

// Registrar manages the identity shortcut
type Registrar interface {
	IsRegistered() bool
	Register() error
	Unregister() error
}

// Dependencies constructs the components a run needs. Each factory receives
// options derived from the loaded configuration.
type Dependencies struct {
	NewDispatcher func(opts notify.Options) notify.Dispatcher
	NewPlayer     func(opts sound.Options) sound.Player
	NewRegistrar  func(opts registration.Options) Registrar
	NewIndicator  func(w io.Writer, ascii bool) progress.Indicator
}

// DefaultDependencies returns the build's platform implementations
func DefaultDependencies() Dependencies {
	return Dependencies{
		NewDispatcher: notify.NewDispatcher,
		NewPlayer:     sound.NewPlayer,
		NewRegistrar: func(opts registration.Options) Registrar {
			return registration.New(opts)
		},
		NewIndicator: newIndicator,
	}
}

// newIndicator shows a spinner only when w is a terminal
func newIndicator(w io.Writer, ascii bool) progress.Indicator {
	f, ok := w.(*os.File)
	if !ok {
		return progress.Noop{}
	}
	caps := progress.DetectTerminalCapabilities(f, ascii)
	if !caps.IsTTY {
		return progress.Noop{}
	}
	return progress.NewDisplay(caps, f)
}
