package errors

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// ErrorPrefix is printed in bold red before every top-level error
const ErrorPrefix = "[ERROR]"

// FormatError renders err as "[ERROR] message" with colored prefix and
// remediation lines. Returns an empty string for nil.
func FormatError(err error) string {
	return format(err, color.New(color.FgRed, color.Bold).SprintFunc(), color.New(color.FgYellow).SprintFunc())
}

func format(err error, red, yellow func(a ...interface{}) string) string {
	if err == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(red(ErrorPrefix))
	b.WriteString(" ")
	b.WriteString(err.Error())
	b.WriteString("\n")

	if cliErr := AsCLIError(err); cliErr != nil && len(cliErr.Remediation) > 0 {
		b.WriteString(yellow("To fix this:"))
		b.WriteString("\n")
		for _, step := range cliErr.Remediation {
			b.WriteString("  - ")
			b.WriteString(step)
			b.WriteString("\n")
		}
	}

	return b.String()
}

// PrintError writes the formatted error to stderr
func PrintError(err error) {
	FprintError(os.Stderr, err)
}

// FprintError writes the formatted error to w. Nil errors print nothing.
func FprintError(w io.Writer, err error) {
	if err == nil {
		return
	}
	fmt.Fprint(w, FormatError(err))
}
