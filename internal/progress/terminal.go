package progress

import (
	"os"

	"golang.org/x/term"
)

// DetectTerminalCapabilities inspects f (normally os.Stderr). forceASCII
// selects the ASCII spinner even on a Unicode-capable terminal.
func DetectTerminalCapabilities(f *os.File, forceASCII bool) TerminalCapabilities {
	isTTY := term.IsTerminal(int(f.Fd()))

	return TerminalCapabilities{
		IsTTY:           isTTY,
		SupportsUnicode: isTTY && !forceASCII,
	}
}

// SpinnerSet returns the briandowns/spinner charset index for caps
func SpinnerSet(caps TerminalCapabilities) int {
	if caps.SupportsUnicode {
		return 14 // ⠋ ⠙ ⠹ ⠸ ⠼ ⠴ ⠦ ⠧ ⠇ ⠏
	}
	return 9 // | / - \
}
