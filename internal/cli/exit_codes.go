package cli

// Exit codes for the claude-notifier CLI
const (
	// ExitSuccess indicates the notification was shown (or registration changed)
	ExitSuccess = 0

	// ExitFailure indicates any error; the message is printed to stderr
	ExitFailure = 1
)

// ExitCode returns the process exit code for err
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	return ExitFailure
}
