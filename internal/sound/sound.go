// Package sound validates and plays custom notification sounds and maps
// friendly system sound names to Windows sound event ids.
package sound

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/claude-notifier/claude-notifier/internal/errors"
)

const (
	// SupportedExtension is the only container the Windows player accepts here
	SupportedExtension = ".wav"

	// DefaultStartDelay gives the media pipeline time to start after Play
	DefaultStartDelay = 100 * time.Millisecond

	// DefaultPlaybackWait is how long PlayFile blocks after playback starts.
	// There is no end-of-media signal; sounds longer than this are cut off
	// when the process exits.
	DefaultPlaybackWait = 3 * time.Second
)

// Player plays a custom sound file
type Player interface {
	// PlayFile validates path, starts playback and blocks for the configured waits
	PlayFile(path string) error
}

// Options configures a Player
type Options struct {
	StartDelay   time.Duration
	PlaybackWait time.Duration
	Logger       zerolog.Logger
}

func (o Options) withDefaults() Options {
	if o.StartDelay < 0 {
		o.StartDelay = 0
	}
	if o.PlaybackWait < 0 {
		o.PlaybackWait = 0
	}
	return o
}

// NewPlayer creates the player for the current platform.
// On anything other than Windows the returned player validates its input and
// then fails with an Unsupported Platform error.
func NewPlayer(opts Options) Player {
	return newPlatformPlayer(opts.withDefaults())
}

// ValidateSoundFile checks that path exists, is a regular file and has the
// .wav extension (case-insensitive). It returns the absolute path.
func ValidateSoundFile(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.SoundFileNotFound(path)
		}
		return "", errors.WrapWithMessage(err, errors.NotFound, "cannot access sound file "+path)
	}

	if info.IsDir() {
		return "", errors.SoundPathNotFile(path)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext != SupportedExtension {
		if ext == "" {
			ext = "no extension"
		}
		return "", errors.UnsupportedSoundFormat(ext)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", errors.PlatformStep("get absolute path", err)
	}
	return abs, nil
}

// FileURI converts an absolute path to the file:/// form accepted by Windows.Foundation.Uri
func FileURI(absPath string) string {
	p := strings.ReplaceAll(absPath, `\`, "/")
	return "file:///" + strings.TrimPrefix(p, "/")
}

// systemSounds maps lower-case aliases to Windows sound event ids
var systemSounds = map[string]string{
	"default":               "Notification.Default",
	"notification.default":  "Notification.Default",
	"mail":                  "Notification.Mail",
	"notification.mail":     "Notification.Mail",
	"reminder":              "Notification.Reminder",
	"notification.reminder": "Notification.Reminder",
	"im":                    "Notification.IM",
	"notification.im":       "Notification.IM",
	"alarm":                 "Alarm.Default",
	"alarm.default":         "Alarm.Default",
}

// ResolveSystemSound maps a sound name to its event id. Matching is
// case-insensitive; unknown names are returned unchanged.
func ResolveSystemSound(name string) string {
	if event, ok := systemSounds[strings.ToLower(name)]; ok {
		return event
	}
	return name
}

// unsupportedPlayer is the player for platforms without WinRT media playback
type unsupportedPlayer struct{}

func (p *unsupportedPlayer) PlayFile(path string) error {
	if _, err := ValidateSoundFile(path); err != nil {
		return err
	}
	return errors.PlatformUnsupported("Sound playback")
}
