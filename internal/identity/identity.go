// Package identity holds the application identity shared by the shortcut
// registrar and the toast dispatcher.
package identity

const (
	// AppID is the Application User Model ID stamped on the Start Menu
	// shortcut and passed to the toast notifier. Windows only renders toasts
	// with the right name and icon when both sides agree on this value.
	AppID = "Claude.ClaudeNotifier"

	// ShortcutName is the file name of the shortcut in the Start Menu programs directory
	ShortcutName = "Claude Notifier.lnk"

	// Description is written into the shortcut's comment field
	Description = "Claude Code Notification Tool"
)
