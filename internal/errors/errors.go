// Package errors provides the categorized error type used across claude-notifier.
// Every failure that reaches the top level is a *CLIError (or wraps one), so the
// CLI can print a single colored line and exit with code 1.
package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCategory classifies a failure
type ErrorCategory int

const (
	// NotFound means a user-supplied file does not exist
	NotFound ErrorCategory = iota
	// UnsupportedFormat means a sound file has an extension the player cannot handle
	UnsupportedFormat
	// UnsupportedPlatform means the operation needs Windows
	UnsupportedPlatform
	// Platform wraps a failing OS call together with the step that failed
	Platform
	// Configuration means the config file or environment could not be loaded
	Configuration
	// Argument means the command line was invalid
	Argument
)

// String returns the human-readable category name
func (c ErrorCategory) String() string {
	switch c {
	case NotFound:
		return "Not Found"
	case UnsupportedFormat:
		return "Unsupported Format"
	case UnsupportedPlatform:
		return "Unsupported Platform"
	case Platform:
		return "Platform Error"
	case Configuration:
		return "Configuration Error"
	case Argument:
		return "Argument Error"
	default:
		return "Error"
	}
}

// CLIError is a categorized error with optional step context and remediation hints
type CLIError struct {
	Category    ErrorCategory
	Message     string
	Step        string   // platform step that failed, e.g. "save shortcut"
	Remediation []string // lines printed under "To fix this:"
	Err         error    // underlying cause
}

// Error returns the message followed by the cause chain
func (e *CLIError) Error() string {
	msg := e.Message
	if msg == "" && e.Step != "" {
		msg = "failed to " + e.Step
	}
	if e.Err == nil {
		return msg
	}
	if msg == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", msg, e.Err)
}

// Unwrap returns the underlying cause
func (e *CLIError) Unwrap() error {
	return e.Err
}

// Category sentinels for use with errors.Is
var (
	ErrNotFound            = &CLIError{Category: NotFound, Message: "not found"}
	ErrUnsupportedFormat   = &CLIError{Category: UnsupportedFormat, Message: "unsupported format"}
	ErrUnsupportedPlatform = &CLIError{Category: UnsupportedPlatform, Message: "unsupported platform"}
	ErrPlatform            = &CLIError{Category: Platform, Message: "platform call failed"}
)

// Is matches the category sentinels, so errors.Is(err, ErrNotFound) holds
// for any NotFound error in the chain.
func (e *CLIError) Is(target error) bool {
	switch target {
	case ErrNotFound, ErrUnsupportedFormat, ErrUnsupportedPlatform, ErrPlatform:
		return e.Category == target.(*CLIError).Category
	}
	return false
}

// New creates a CLIError with the given category and message
func New(category ErrorCategory, message string, remediation ...string) *CLIError {
	return &CLIError{
		Category:    category,
		Message:     message,
		Remediation: remediation,
	}
}

// Newf creates a CLIError with a formatted message
func Newf(category ErrorCategory, format string, args ...any) *CLIError {
	return &CLIError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// Wrap attaches a category to err. Returns nil if err is nil.
func Wrap(err error, category ErrorCategory, remediation ...string) *CLIError {
	if err == nil {
		return nil
	}
	return &CLIError{
		Category:    category,
		Err:         err,
		Remediation: remediation,
	}
}

// WrapWithMessage attaches a category and context message to err.
// Returns nil if err is nil.
func WrapWithMessage(err error, category ErrorCategory, message string) *CLIError {
	if err == nil {
		return nil
	}
	return &CLIError{
		Category: category,
		Message:  message,
		Err:      err,
	}
}

// PlatformStep wraps a failing platform call with the step that produced it.
// Returns nil if err is nil so callers can write `return PlatformStep("commit", err)`.
func PlatformStep(step string, err error) error {
	if err == nil {
		return nil
	}
	return &CLIError{
		Category: Platform,
		Step:     step,
		Err:      err,
	}
}

// AsCLIError returns the first *CLIError in err's chain, or nil
func AsCLIError(err error) *CLIError {
	var cliErr *CLIError
	if stderrors.As(err, &cliErr) {
		return cliErr
	}
	return nil
}

// HasCategory reports whether any *CLIError in err's chain has the given category
func HasCategory(err error, category ErrorCategory) bool {
	for err != nil {
		var cliErr *CLIError
		if !stderrors.As(err, &cliErr) {
			return false
		}
		if cliErr.Category == category {
			return true
		}
		err = cliErr.Err
	}
	return false
}

// StepOf returns the platform step recorded on the first Platform error in the chain
func StepOf(err error) string {
	for err != nil {
		var cliErr *CLIError
		if !stderrors.As(err, &cliErr) {
			return ""
		}
		if cliErr.Step != "" {
			return cliErr.Step
		}
		err = cliErr.Err
	}
	return ""
}
