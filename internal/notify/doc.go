// Package notify builds toast markup and hands it to the Windows notification
// service under the application's registered identity.
//
// # Platform Support
//
//   - Windows: WinRT XmlDocument + ToastNotificationManager, called directly
//     through COM vtables (no PowerShell, no CGO)
//   - Everything else: Send fails with an Unsupported Platform error
//
// # Usage
//
//	d := notify.NewDispatcher(notify.Options{AppID: identity.AppID})
//	err := d.Send(notify.NewNotification("Claude Code", "Task completed", false))
package notify
