//go:build windows

package notify

import (
	"time"
	"unsafe"

	ole "github.com/go-ole/go-ole"
	"github.com/rs/zerolog"

	"github.com/claude-notifier/claude-notifier/internal/com"
	"github.com/claude-notifier/claude-notifier/internal/errors"
)

const (
	classXMLDocument          = "Windows.Data.Xml.Dom.XmlDocument"
	classToastNotification    = "Windows.UI.Notifications.ToastNotification"
	classToastNotificationMgr = "Windows.UI.Notifications.ToastNotificationManager"
)

var (
	iidXMLDocument                   = ole.NewGUID("{F7F3A506-1E87-42D6-BCFB-B8C809FA5494}")
	iidXMLDocumentIO                 = ole.NewGUID("{6CD0E74E-EE65-4489-9EBF-CA43E87BA637}")
	iidToastNotificationFactory      = ole.NewGUID("{04124B20-82C6-4229-B109-FD9ED4662B53}")
	iidToastNotificationManagerStats = ole.NewGUID("{50AC103F-D235-4598-BBEF-98FE4D1A3AD4}")
)

// vtable slots (IInspectable occupies 0-5)
const (
	slotXMLDocumentIOLoadXML                = 6
	slotToastFactoryCreateToastNotification = 6
	slotManagerCreateToastNotifierWithID    = 7
	slotToastNotifierShow                   = 6
)

// windowsDispatcher implements Dispatcher with the WinRT toast API
type windowsDispatcher struct {
	appID     string
	showDelay time.Duration
	log       zerolog.Logger
}

func newPlatformDispatcher(opts Options) Dispatcher {
	return &windowsDispatcher{
		appID:     opts.AppID,
		showDelay: opts.ShowDelay,
		log:       opts.Logger,
	}
}

// Send builds the markup, loads it into an XmlDocument and shows it through a
// notifier scoped to the dispatcher's AppID.
func (d *windowsDispatcher) Send(n Notification) error {
	markup := BuildToastXML(n.Title, n.Message, n.Silent)
	d.log.Debug().Str("app_id", d.appID).Bool("silent", n.Silent).Msg("showing toast")

	scope, err := com.EnterRuntime()
	if err != nil {
		return errors.PlatformStep("initialize Windows Runtime", err)
	}
	defer scope.Close()

	doc, err := loadXMLDocument(markup)
	if err != nil {
		return err
	}
	defer com.Release(doc)

	toast, err := createToast(doc)
	if err != nil {
		return err
	}
	defer com.Release(toast)

	notifier, err := createNotifier(d.appID)
	if err != nil {
		return err
	}
	defer com.Release(notifier)

	if err := com.Call(notifier, slotToastNotifierShow, uintptr(unsafe.Pointer(toast))); err != nil {
		return errors.PlatformStep("show notification", err)
	}
	d.log.Debug().Dur("delay", d.showDelay).Msg("toast handed to shell")

	time.Sleep(d.showDelay)
	return nil
}

func loadXMLDocument(markup string) (*ole.IUnknown, error) {
	inst, err := com.Activate(classXMLDocument)
	if err != nil {
		return nil, errors.PlatformStep("create XmlDocument", err)
	}
	defer com.Release(inst)

	docIO, err := com.QueryInterface(inst, iidXMLDocumentIO)
	if err != nil {
		return nil, errors.PlatformStep("create XmlDocument", err)
	}
	defer com.Release(docIO)

	hMarkup, err := com.NewHString(markup)
	if err != nil {
		return nil, errors.PlatformStep("load toast XML", err)
	}
	defer hMarkup.Close()

	if err := com.Call(docIO, slotXMLDocumentIOLoadXML, hMarkup.Ptr()); err != nil {
		return nil, errors.PlatformStep("load toast XML", err)
	}

	doc, err := com.QueryInterface(inst, iidXMLDocument)
	if err != nil {
		return nil, errors.PlatformStep("load toast XML", err)
	}
	return doc, nil
}

func createToast(doc *ole.IUnknown) (*ole.IUnknown, error) {
	factory, err := com.Factory(classToastNotification, iidToastNotificationFactory)
	if err != nil {
		return nil, errors.PlatformStep("create toast notification", err)
	}
	defer com.Release(factory)

	var toast *ole.IUnknown
	err = com.Call(factory, slotToastFactoryCreateToastNotification,
		uintptr(unsafe.Pointer(doc)),
		uintptr(unsafe.Pointer(&toast)),
	)
	if err != nil {
		return nil, errors.PlatformStep("create toast notification", err)
	}
	return toast, nil
}

func createNotifier(appID string) (*ole.IUnknown, error) {
	statics, err := com.Factory(classToastNotificationMgr, iidToastNotificationManagerStats)
	if err != nil {
		return nil, errors.PlatformStep("create toast notifier", err)
	}
	defer com.Release(statics)

	hAppID, err := com.NewHString(appID)
	if err != nil {
		return nil, errors.PlatformStep("create toast notifier", err)
	}
	defer hAppID.Close()

	var notifier *ole.IUnknown
	err = com.Call(statics, slotManagerCreateToastNotifierWithID,
		hAppID.Ptr(),
		uintptr(unsafe.Pointer(&notifier)),
	)
	if err != nil {
		return nil, errors.PlatformStep("create toast notifier", err)
	}
	return notifier, nil
}
