// Package registration manages the Start Menu shortcut that gives
// claude-notifier its Application User Model ID. Windows only shows toasts
// under an AUMID when a shortcut carrying it exists; the shortcut's presence
// is the only registration state there is.
package registration

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/claude-notifier/claude-notifier/internal/errors"
	"github.com/claude-notifier/claude-notifier/internal/identity"
)

// Shortcut describes the .lnk file written by Register
type Shortcut struct {
	Path        string // where the .lnk is saved
	Target      string // executable the shortcut launches
	WorkingDir  string
	Description string
	AppID       string // System.AppUserModel.ID property value
}

// Platform is the OS-specific half of the registrar
type Platform interface {
	// StartMenuDir returns the Start Menu programs directory
	StartMenuDir() (string, error)

	// WriteLink creates the shortcut file described by s. The parent
	// directory already exists when this is called.
	WriteLink(s Shortcut) error
}

// Options configures a Registrar
type Options struct {
	// StartMenuDir overrides the detected Start Menu programs directory (Windows only)
	StartMenuDir string

	Logger zerolog.Logger
}

// Registrar creates, removes and detects the identity shortcut
type Registrar struct {
	platform   Platform
	executable func() (string, error)
	log        zerolog.Logger
}

// New creates a registrar for the current platform.
// On anything other than Windows, Register and Unregister fail with an
// Unsupported Platform error and IsRegistered is always false.
func New(opts Options) *Registrar {
	return NewWithPlatform(newPlatform(opts), opts.Logger)
}

// NewWithPlatform creates a registrar backed by a custom platform (for testing).
func NewWithPlatform(p Platform, log zerolog.Logger) *Registrar {
	return &Registrar{
		platform:   p,
		executable: DetectExecutable,
		log:        log,
	}
}

// DetectExecutable returns the absolute path of the running binary with symlinks resolved
func DetectExecutable() (string, error) {
	exePath, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(exePath)
}

// ShortcutPath returns <start-menu-dir>/Claude Notifier.lnk
func (r *Registrar) ShortcutPath() (string, error) {
	dir, err := r.platform.StartMenuDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, identity.ShortcutName), nil
}

// IsRegistered reports whether the shortcut file exists.
// Any error resolving the path counts as not registered.
func (r *Registrar) IsRegistered() bool {
	path, err := r.ShortcutPath()
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}

// Register writes the shortcut, creating the Start Menu directory if needed.
// An existing shortcut is overwritten.
func (r *Registrar) Register() error {
	exePath, err := r.executable()
	if err != nil {
		return errors.PlatformStep("get executable path", err)
	}

	shortcutPath, err := r.ShortcutPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(shortcutPath), 0o755); err != nil {
		return errors.PlatformStep("create Start Menu directory", err)
	}

	link := Shortcut{
		Path:        shortcutPath,
		Target:      exePath,
		WorkingDir:  filepath.Dir(exePath),
		Description: identity.Description,
		AppID:       identity.AppID,
	}
	r.log.Debug().
		Str("shortcut", link.Path).
		Str("target", link.Target).
		Str("app_id", link.AppID).
		Msg("writing shortcut")

	return r.platform.WriteLink(link)
}

// Unregister removes the shortcut. A missing shortcut is not an error.
func (r *Registrar) Unregister() error {
	shortcutPath, err := r.ShortcutPath()
	if err != nil {
		return err
	}

	err = os.Remove(shortcutPath)
	if err != nil && !os.IsNotExist(err) {
		return errors.PlatformStep("remove shortcut", err)
	}
	r.log.Debug().Str("shortcut", shortcutPath).Bool("existed", err == nil).Msg("shortcut removed")
	return nil
}

// unsupportedPlatform is the platform for systems without Start Menu shortcuts
type unsupportedPlatform struct{}

func (p *unsupportedPlatform) StartMenuDir() (string, error) {
	return "", errors.PlatformUnsupported("Registration")
}

func (p *unsupportedPlatform) WriteLink(_ Shortcut) error {
	return errors.PlatformUnsupported("Registration")
}
