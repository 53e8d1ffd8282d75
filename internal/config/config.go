// Package config loads claude-notifier settings.
// Priority: command-line flags > environment variables > config file > defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/claude-notifier/claude-notifier/internal/errors"
)

// EnvPrefix is the prefix for environment overrides, e.g. CLAUDE_NOTIFIER_TITLE
const EnvPrefix = "CLAUDE_NOTIFIER_"

// Configuration represents the claude-notifier settings for one invocation
type Configuration struct {
	Title     string `koanf:"title"`
	Message   string `koanf:"message"`
	Sound     string `koanf:"sound"`      // system sound name, informational only
	SoundFile string `koanf:"sound_file"` // .wav played after the toast
	NoSound   bool   `koanf:"no_sound"`

	StartMenuDir string `koanf:"start_menu_dir"` // overrides the detected Start Menu programs directory

	ShowDelay          time.Duration `koanf:"show_delay" validate:"min=0,max=30s"`
	PlaybackStartDelay time.Duration `koanf:"playback_start_delay" validate:"min=0,max=30s"`
	PlaybackWait       time.Duration `koanf:"playback_wait" validate:"min=0,max=30s"`

	Verbose bool `koanf:"verbose"`
	ASCII   bool `koanf:"ascii"` // ASCII spinner instead of braille dots

	// ConfigPath is the file that was loaded, empty if none
	ConfigPath string `koanf:"-"`
}

// Silent reports whether the toast's built-in sound is suppressed.
// A custom sound file always silences the toast; the file is played afterwards.
func (c *Configuration) Silent() bool {
	return c.NoSound || c.SoundFile != ""
}

// Load builds the configuration. configPath may be empty, in which case the
// first existing file from DefaultConfigPaths is used (if any). An explicit
// configPath must exist. overrides are applied last, keyed like the koanf tags.
func Load(configPath string, overrides map[string]interface{}) (*Configuration, error) {
	k := koanf.New(".")

	// Apply defaults first
	for key, value := range GetDefaults() {
		k.Set(key, value)
	}

	loadedPath, err := resolveConfigPath(configPath)
	if err != nil {
		return nil, err
	}
	if loadedPath != "" {
		parser, err := parserFor(loadedPath)
		if err != nil {
			return nil, errors.ConfigParseError(loadedPath, err)
		}
		if err := k.Load(file.Provider(loadedPath), parser); err != nil {
			return nil, errors.ConfigParseError(loadedPath, err)
		}
	}

	// Environment variables override the file
	if err := k.Load(env.Provider(EnvPrefix, ".", envTransform), nil); err != nil {
		return nil, errors.WrapWithMessage(err, errors.Configuration, "failed to load environment")
	}

	// Command-line flags override everything
	for key, value := range overrides {
		k.Set(key, value)
	}

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.WrapWithMessage(err, errors.Configuration, "failed to unmarshal config")
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, errors.ConfigValidationError(err)
	}

	cfg.SoundFile = expandHomePath(cfg.SoundFile)
	cfg.StartMenuDir = expandHomePath(cfg.StartMenuDir)
	cfg.ConfigPath = loadedPath

	return &cfg, nil
}

func resolveConfigPath(configPath string) (string, error) {
	if configPath != "" {
		configPath = expandHomePath(configPath)
		if _, err := os.Stat(configPath); err != nil {
			return "", errors.ConfigParseError(configPath, err)
		}
		return configPath, nil
	}

	for _, candidate := range DefaultConfigPaths() {
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", nil
}

// DefaultConfigPaths returns the candidate config files in lookup order
func DefaultConfigPaths() []string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil
	}
	base := filepath.Join(dir, "claude-notifier")
	return []string{
		filepath.Join(base, "config.json"),
		filepath.Join(base, "config.yaml"),
		filepath.Join(base, "config.yml"),
		filepath.Join(base, "config.toml"),
	}
}

// envTransform converts environment variable names to config keys
// Example: CLAUDE_NOTIFIER_SOUND_FILE -> sound_file
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
}

// expandHomePath expands ~ to the user's home directory
func expandHomePath(path string) string {
	if strings.HasPrefix(path, "~/") || strings.HasPrefix(path, `~\`) {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(homeDir, path[2:])
		}
	}
	return path
}

// String renders the effective configuration for --verbose output
func (c *Configuration) String() string {
	return fmt.Sprintf(
		"title=%q message=%q sound=%q sound_file=%q no_sound=%t start_menu_dir=%q show_delay=%s playback_start_delay=%s playback_wait=%s config=%q",
		c.Title, c.Message, c.Sound, c.SoundFile, c.NoSound, c.StartMenuDir,
		c.ShowDelay, c.PlaybackStartDelay, c.PlaybackWait, c.ConfigPath,
	)
}
