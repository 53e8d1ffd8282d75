//go:build windows

package registration

import (
	"os"
	"path/filepath"
	"runtime"
	"unsafe"

	ole "github.com/go-ole/go-ole"
	"github.com/rs/zerolog"
	"golang.org/x/sys/windows"

	"github.com/claude-notifier/claude-notifier/internal/com"
	"github.com/claude-notifier/claude-notifier/internal/errors"
)

var (
	clsidShellLink    = ole.NewGUID("{00021401-0000-0000-C000-000000000046}")
	iidShellLinkW     = ole.NewGUID("{000214F9-0000-0000-C000-000000000046}")
	iidPropertyStore  = ole.NewGUID("{886D8EEB-8CF2-4446-8D02-CDBA1DBDCF99}")
	iidPersistFile    = ole.NewGUID("{0000010B-0000-0000-C000-000000000046}")
	fmtidAppUserModel = ole.NewGUID("{9F4C2855-9F79-4B39-A8D0-E1D42DE1D5F3}")
)

// PKEY_AppUserModel_ID property id within fmtidAppUserModel
const pidAppUserModelID = 5

const vtLPWSTR = 31

// vtable slots (IUnknown occupies 0-2)
const (
	slotShellLinkSetDescription      = 7
	slotShellLinkSetWorkingDirectory = 9
	slotShellLinkSetPath             = 20
	slotPropertyStoreSetValue        = 6
	slotPropertyStoreCommit          = 7
	slotPersistFileSave              = 6
)

type propertyKey struct {
	fmtid ole.GUID
	pid   uint32
}

// propVariant mirrors PROPVARIANT for the VT_LPWSTR case
type propVariant struct {
	vt       uint16
	reserved [3]uint16
	val      uintptr
	_        uintptr
}

// windowsPlatform writes shell links through IShellLinkW / IPropertyStore / IPersistFile
type windowsPlatform struct {
	startMenuDir string
	log          zerolog.Logger
}

func newPlatform(opts Options) Platform {
	return &windowsPlatform{
		startMenuDir: opts.StartMenuDir,
		log:          opts.Logger,
	}
}

// StartMenuDir returns the override if set, otherwise FOLDERID_Programs,
// otherwise %APPDATA%\Microsoft\Windows\Start Menu\Programs.
func (p *windowsPlatform) StartMenuDir() (string, error) {
	if p.startMenuDir != "" {
		return p.startMenuDir, nil
	}

	dir, err := windows.KnownFolderPath(windows.FOLDERID_Programs, windows.KF_FLAG_DEFAULT)
	if err == nil && dir != "" {
		return dir, nil
	}
	p.log.Debug().Err(err).Msg("known folder lookup failed, using APPDATA")

	appData, cfgErr := os.UserConfigDir()
	if cfgErr != nil {
		return "", errors.PlatformStep("get Start Menu path", cfgErr)
	}
	return filepath.Join(appData, "Microsoft", "Windows", "Start Menu", "Programs"), nil
}

// WriteLink enters a COM apartment for the duration of the write. The
// apartment is left on every return path.
func (p *windowsPlatform) WriteLink(s Shortcut) error {
	scope, err := com.EnterCOM()
	if err != nil {
		return errors.PlatformStep("initialize COM", err)
	}
	defer scope.Close()

	return writeShellLink(s)
}

func writeShellLink(s Shortcut) error {
	link, err := com.CreateInstance(clsidShellLink, iidShellLinkW)
	if err != nil {
		return errors.PlatformStep("create ShellLink", err)
	}
	defer com.Release(link)

	if err := callWithString(link, slotShellLinkSetPath, s.Target); err != nil {
		return errors.PlatformStep("set shortcut path", err)
	}

	if s.WorkingDir != "" {
		if err := callWithString(link, slotShellLinkSetWorkingDirectory, s.WorkingDir); err != nil {
			return errors.PlatformStep("set working directory", err)
		}
	}

	if err := callWithString(link, slotShellLinkSetDescription, s.Description); err != nil {
		return errors.PlatformStep("set description", err)
	}

	if err := setAppID(link, s.AppID); err != nil {
		return err
	}

	persist, err := com.QueryInterface(link, iidPersistFile)
	if err != nil {
		return errors.PlatformStep("get IPersistFile", err)
	}
	defer com.Release(persist)

	path, err := windows.UTF16PtrFromString(s.Path)
	if err != nil {
		return errors.PlatformStep("save shortcut", err)
	}
	err = com.Call(persist, slotPersistFileSave, uintptr(unsafe.Pointer(path)), 1)
	runtime.KeepAlive(path)
	if err != nil {
		return errors.PlatformStep("save shortcut", err)
	}
	return nil
}

func setAppID(link *ole.IUnknown, appID string) error {
	store, err := com.QueryInterface(link, iidPropertyStore)
	if err != nil {
		return errors.PlatformStep("get IPropertyStore", err)
	}
	defer com.Release(store)

	value, err := windows.UTF16PtrFromString(appID)
	if err != nil {
		return errors.PlatformStep("set AUMID property", err)
	}

	key := propertyKey{fmtid: *fmtidAppUserModel, pid: pidAppUserModelID}
	pv := propVariant{vt: vtLPWSTR, val: uintptr(unsafe.Pointer(value))}

	err = com.Call(store, slotPropertyStoreSetValue,
		uintptr(unsafe.Pointer(&key)),
		uintptr(unsafe.Pointer(&pv)),
	)
	runtime.KeepAlive(value)
	if err != nil {
		return errors.PlatformStep("set AUMID property", err)
	}

	if err := com.Call(store, slotPropertyStoreCommit); err != nil {
		return errors.PlatformStep("commit property store", err)
	}
	return nil
}

func callWithString(obj *ole.IUnknown, slot int, s string) error {
	p, err := windows.UTF16PtrFromString(s)
	if err != nil {
		return err
	}
	err = com.Call(obj, slot, uintptr(unsafe.Pointer(p)))
	runtime.KeepAlive(p)
	return err
}
