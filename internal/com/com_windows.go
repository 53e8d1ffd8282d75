//go:build windows

package com

import (
	"runtime"
	"syscall"
	"unsafe"

	ole "github.com/go-ole/go-ole"
	"golang.org/x/sys/windows"
)

const (
	sFalse          = 0x00000001
	rpcEChangedMode = 0x80010106

	roInitMultithreaded = 1
)

var (
	modcombase         = windows.NewLazySystemDLL("combase.dll")
	procRoUninitialize = modcombase.NewProc("RoUninitialize")
)

// Scope is an entered COM or WinRT apartment. Close must be called exactly
// once, on the goroutine that entered it.
type Scope struct {
	uninit func()
}

// Close leaves the apartment and unlocks the OS thread
func (s *Scope) Close() {
	if s.uninit != nil {
		s.uninit()
	}
	runtime.UnlockOSThread()
}

// EnterCOM initializes a single-threaded COM apartment on the current OS thread.
// Shell objects such as ShellLink require STA.
func EnterCOM() (*Scope, error) {
	runtime.LockOSThread()

	err := ole.CoInitializeEx(0, ole.COINIT_APARTMENTTHREADED)
	switch {
	case err == nil, hresult(err) == sFalse:
		return &Scope{uninit: ole.CoUninitialize}, nil
	case hresult(err) == rpcEChangedMode:
		// Already initialized in another mode by someone else; nothing to undo.
		return &Scope{}, nil
	default:
		runtime.UnlockOSThread()
		return nil, err
	}
}

// EnterRuntime initializes the Windows Runtime in a multi-threaded apartment
// on the current OS thread.
func EnterRuntime() (*Scope, error) {
	runtime.LockOSThread()

	err := ole.RoInitialize(roInitMultithreaded)
	switch {
	case err == nil, hresult(err) == sFalse:
		return &Scope{uninit: roUninitialize}, nil
	case hresult(err) == rpcEChangedMode:
		return &Scope{}, nil
	default:
		runtime.UnlockOSThread()
		return nil, err
	}
}

func roUninitialize() {
	procRoUninitialize.Call()
}

func hresult(err error) uint32 {
	if oleErr, ok := err.(*ole.OleError); ok {
		return uint32(oleErr.Code())
	}
	return 0
}

// Call invokes the method at slot in obj's vtable. The object pointer is
// passed as the implicit first argument. A negative HRESULT becomes an error.
func Call(obj *ole.IUnknown, slot int, args ...uintptr) error {
	vtbl := *(*uintptr)(unsafe.Pointer(obj))
	fn := *(*uintptr)(unsafe.Pointer(vtbl + uintptr(slot)*unsafe.Sizeof(uintptr(0))))

	callArgs := make([]uintptr, 0, len(args)+1)
	callArgs = append(callArgs, uintptr(unsafe.Pointer(obj)))
	callArgs = append(callArgs, args...)

	hr, _, _ := syscall.SyscallN(fn, callArgs...)
	if int32(hr) < 0 {
		return ole.NewError(hr)
	}
	return nil
}

// QueryInterface asks obj for the interface iid. The caller owns the result.
func QueryInterface(obj *ole.IUnknown, iid *ole.GUID) (*ole.IUnknown, error) {
	var out *ole.IUnknown
	if err := Call(obj, 0, uintptr(unsafe.Pointer(iid)), uintptr(unsafe.Pointer(&out))); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateInstance creates an in-process COM object and returns the interface iid
func CreateInstance(clsid, iid *ole.GUID) (*ole.IUnknown, error) {
	return ole.CreateInstance(clsid, iid)
}

// Activate creates an instance of a WinRT runtime class through its default constructor
func Activate(class string) (*ole.IUnknown, error) {
	ins, err := ole.RoActivateInstance(class)
	if err != nil {
		return nil, err
	}
	return &ins.IUnknown, nil
}

// Factory returns the activation factory (or statics interface) iid of a WinRT runtime class
func Factory(class string, iid *ole.GUID) (*ole.IUnknown, error) {
	ins, err := ole.RoGetActivationFactory(class, iid)
	if err != nil {
		return nil, err
	}
	return &ins.IUnknown, nil
}

// Release releases every non-nil object in order
func Release(objs ...*ole.IUnknown) {
	for _, obj := range objs {
		if obj != nil {
			obj.Release()
		}
	}
}

// HString is an owned WinRT string handle
type HString struct {
	h ole.HString
}

// NewHString allocates an HSTRING holding s
func NewHString(s string) (*HString, error) {
	h, err := ole.NewHString(s)
	if err != nil {
		return nil, err
	}
	return &HString{h: h}, nil
}

// Ptr returns the handle in the form expected by Call
func (s *HString) Ptr() uintptr {
	return uintptr(s.h)
}

// Close frees the handle
func (s *HString) Close() {
	ole.DeleteHString(s.h)
}
