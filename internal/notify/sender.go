package notify

import (
	"github.com/claude-notifier/claude-notifier/internal/errors"
)

// Dispatcher submits a notification to the platform notification service
type Dispatcher interface {
	// Send shows n as a toast and returns once it has been handed to the shell
	Send(n Notification) error
}

// NewDispatcher creates the dispatcher for the current platform.
// On anything other than Windows the returned dispatcher always fails.
func NewDispatcher(opts Options) Dispatcher {
	return newPlatformDispatcher(opts.withDefaults())
}

// unsupportedDispatcher is the dispatcher for platforms without toast support
type unsupportedDispatcher struct{}

func (d *unsupportedDispatcher) Send(_ Notification) error {
	return errors.PlatformUnsupported("Toast notifications")
}
