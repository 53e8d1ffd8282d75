// claude-notifier - Windows toast notifications for Claude Code
// Source: https://github.com/claude-notifier/claude-notifier

// Package cli provides the Cobra root command for claude-notifier. A plain
// invocation shows one toast (and optionally plays a .wav afterwards);
// --init and --uninstall manage the Start Menu shortcut that carries the
// application's identity.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/claude-notifier/claude-notifier/internal/build"
	"github.com/claude-notifier/claude-notifier/internal/config"
	"github.com/claude-notifier/claude-notifier/internal/errors"
)

// commandFlags holds the flags that are not part of Configuration
type commandFlags struct {
	configPath string
	init       bool
	uninstall  bool
}

// NewRootCmd builds the root command around deps
func NewRootCmd(deps Dependencies) *cobra.Command {
	var flags commandFlags

	cmd := &cobra.Command{
		Use:   "claude-notifier",
		Short: "Windows native notification tool for Claude Code",
		Long: `Windows native notification tool for Claude Code

Shows a toast notification under the "Claude.ClaudeNotifier" identity.
Run once with --init so Windows attributes the toasts to this tool.

Settings can also come from a config file (.json, .yaml, .yml, .toml) or
CLAUDE_NOTIFIER_* environment variables. Flags win over both.`,
		Example: `  # First run: register the Start Menu shortcut
  claude-notifier --init

  # Default notification
  claude-notifier

  # Custom text without sound
  claude-notifier -t "Build" -m "Tests passed" --no-sound

  # Play a custom sound after the toast
  claude-notifier -m "Waiting for input" -f C:\sounds\ping.wav

  # Remove the shortcut
  claude-notifier --uninstall`,
		Version:       build.Version,
		Args:          noPositionalArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, flags, deps)
		},
	}
	cmd.SetVersionTemplate("claude-notifier " + build.String() + "\n")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errors.Wrap(err, errors.Argument, "See claude-notifier --help")
	})

	f := cmd.Flags()
	f.StringP("title", "t", config.DefaultTitle, "Notification title")
	f.StringP("message", "m", config.DefaultMessage, "Notification message")
	f.StringP("sound", "s", "", "System sound name (e.g. \"Notification.Default\")")
	f.StringP("sound-file", "f", "", "Custom sound file path (.wav), played after the toast")
	f.Bool("no-sound", false, "Disable notification sound")
	f.BoolVar(&flags.init, "init", false, "First-run: register AUMID and create Start Menu shortcut")
	f.BoolVar(&flags.uninstall, "uninstall", false, "Remove registration and clean up")
	f.StringVarP(&flags.configPath, "config", "c", "", "Path to config file (default <user config dir>/claude-notifier/config.*)")
	f.BoolP("verbose", "v", false, "Enable debug logging")

	return cmd
}

// noPositionalArgs rejects arguments; title and message are flags, and a bare
// word usually means a missing -m.
func noPositionalArgs(_ *cobra.Command, args []string) error {
	if len(args) == 0 {
		return nil
	}
	err := errors.Newf(errors.Argument, "unexpected argument %q", args[0])
	err.Remediation = []string{"Pass the text with -t/--title or -m/--message"}
	return err
}

// Execute runs the root command with the platform implementations
func Execute() error {
	return NewRootCmd(DefaultDependencies()).Execute()
}

// flagKeys maps flag names to configuration keys
var flagKeys = map[string]string{
	"title":      "title",
	"message":    "message",
	"sound":      "sound",
	"sound-file": "sound_file",
	"no-sound":   "no_sound",
	"verbose":    "verbose",
}

// flagOverrides returns the configuration keys for flags set on the command line.
// Unset flags are left out so env and file values survive.
func flagOverrides(cmd *cobra.Command) map[string]interface{} {
	overrides := make(map[string]interface{})
	for name, key := range flagKeys {
		flag := cmd.Flags().Lookup(name)
		if flag == nil || !flag.Changed {
			continue
		}
		switch flag.Value.Type() {
		case "bool":
			v, _ := cmd.Flags().GetBool(name)
			overrides[key] = v
		default:
			overrides[key] = flag.Value.String()
		}
	}
	return overrides
}
