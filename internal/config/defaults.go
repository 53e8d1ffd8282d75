package config

import (
	"github.com/claude-notifier/claude-notifier/internal/notify"
	"github.com/claude-notifier/claude-notifier/internal/sound"
)

// Default values shared with the command-line flag definitions
const (
	DefaultTitle   = "Claude Code"
	DefaultMessage = "Task completed"
)

// GetDefaults returns the default configuration values
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"title":                DefaultTitle,
		"message":              DefaultMessage,
		"sound":                "",
		"sound_file":           "",
		"no_sound":             false,
		"start_menu_dir":       "",
		"show_delay":           notify.DefaultShowDelay,
		"playback_start_delay": sound.DefaultStartDelay,
		"playback_wait":        sound.DefaultPlaybackWait,
		"verbose":              false,
		"ascii":                false,
	}
}
