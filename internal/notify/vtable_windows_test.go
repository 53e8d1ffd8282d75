//go:build windows

package notify

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

// WinRT vtables in metadata order, IInspectable first

type inspectableVtbl struct {
	QueryInterface      uintptr
	AddRef              uintptr
	Release             uintptr
	GetIids             uintptr
	GetRuntimeClassName uintptr
	GetTrustLevel       uintptr
}

type xmlDocumentIOVtbl struct {
	inspectableVtbl
	LoadXml             uintptr
	LoadXmlWithSettings uintptr
	SaveToFileAsync     uintptr
}

type toastNotificationFactoryVtbl struct {
	inspectableVtbl
	CreateToastNotification uintptr
}

type toastNotificationManagerStaticsVtbl struct {
	inspectableVtbl
	CreateToastNotifier       uintptr
	CreateToastNotifierWithId uintptr
	GetTemplateContent        uintptr
}

type toastNotifierVtbl struct {
	inspectableVtbl
	Show uintptr
	Hide uintptr
}

func slotOf(offset uintptr) int {
	return int(offset / unsafe.Sizeof(uintptr(0)))
}

func TestVtableSlots(t *testing.T) {
	t.Parallel()

	var (
		docIO    xmlDocumentIOVtbl
		factory  toastNotificationFactoryVtbl
		manager  toastNotificationManagerStaticsVtbl
		notifier toastNotifierVtbl
	)

	tests := map[string]struct {
		got  int
		want int
	}{
		"IXmlDocumentIO.LoadXml":                                     {got: slotXMLDocumentIOLoadXML, want: slotOf(unsafe.Offsetof(docIO.LoadXml))},
		"IToastNotificationFactory.CreateToastNotification":          {got: slotToastFactoryCreateToastNotification, want: slotOf(unsafe.Offsetof(factory.CreateToastNotification))},
		"IToastNotificationManagerStatics.CreateToastNotifierWithId": {got: slotManagerCreateToastNotifierWithID, want: slotOf(unsafe.Offsetof(manager.CreateToastNotifierWithId))},
		"IToastNotifier.Show":                                        {got: slotToastNotifierShow, want: slotOf(unsafe.Offsetof(notifier.Show))},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.got)
		})
	}
}
