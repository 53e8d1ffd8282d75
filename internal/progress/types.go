// Package progress shows a spinner on stderr while claude-notifier blocks on
// sound playback. Nothing is printed when stderr is not a terminal.
package progress

// TerminalCapabilities describes what the output terminal supports
type TerminalCapabilities struct {
	// IsTTY is true when the output is an interactive terminal
	IsTTY bool
	// SupportsUnicode is false when ASCII output is forced
	SupportsUnicode bool
}

// Indicator is started before a blocking step and stopped after it
type Indicator interface {
	Start(msg string)
	Stop()
}
