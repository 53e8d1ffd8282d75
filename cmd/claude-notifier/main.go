// claude-notifier - Windows toast notifications for Claude Code
// Source: https://github.com/claude-notifier/claude-notifier

package main

import (
	"os"

	"github.com/claude-notifier/claude-notifier/internal/cli"
	"github.com/claude-notifier/claude-notifier/internal/errors"
)

func main() {
	if err := cli.Execute(); err != nil {
		errors.PrintError(err)
		os.Exit(cli.ExitCode(err))
	}
}
