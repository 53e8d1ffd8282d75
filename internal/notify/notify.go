package notify

import (
	"time"

	"github.com/claude-notifier/claude-notifier/internal/identity"
	"github.com/rs/zerolog"
)

// DefaultShowDelay is how long Send blocks after the toast is handed to the
// shell. Show returns before the popup is drawn; exiting immediately can drop
// the toast on some builds.
const DefaultShowDelay = 100 * time.Millisecond

// Notification is a single toast request built from the command line
type Notification struct {
	// Title is the first text line (e.g., "Claude Code")
	Title string

	// Message is the second text line
	Message string

	// Silent suppresses the toast's built-in sound
	Silent bool
}

// NewNotification creates a new Notification with the given parameters
func NewNotification(title, message string, silent bool) Notification {
	return Notification{
		Title:   title,
		Message: message,
		Silent:  silent,
	}
}

// Options configures a Dispatcher
type Options struct {
	// AppID is the Application User Model ID the toast is shown under (default: identity.AppID)
	AppID string

	// ShowDelay is the fixed wait after Show returns; the CLI passes DefaultShowDelay unless configured
	ShowDelay time.Duration

	// Logger receives debug traces of each platform step
	Logger zerolog.Logger
}

func (o Options) withDefaults() Options {
	if o.AppID == "" {
		o.AppID = identity.AppID
	}
	if o.ShowDelay < 0 {
		o.ShowDelay = 0
	}
	return o
}
