// Package com wraps the small slice of COM and the Windows Runtime that
// claude-notifier needs: apartment scopes, HSTRINGs, runtime class activation
// and raw vtable calls. It is only populated on Windows builds.
//
// Objects are handled as *ole.IUnknown and methods are invoked by vtable
// slot. Slot numbers count from the start of the vtable, so IUnknown methods
// occupy 0-2 and IInspectable methods 3-5; the first method of a WinRT
// interface is therefore slot 6.
package com
