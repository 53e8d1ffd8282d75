package notify

import (
	"fmt"
	"strings"
)

const (
	// SilentAudio disables the toast's own sound
	SilentAudio = `<audio silent="true"/>`

	// DefaultAudio plays the default notification sound event. The --sound
	// flag does not change this element.
	DefaultAudio = `<audio src="ms-winsoundevent:Notification.Default"/>`
)

const toastTemplate = `<toast>
    <visual>
        <binding template="ToastGeneric">
            <text>%s</text>
            <text>%s</text>
        </binding>
    </visual>
    %s
</toast>`

// The replacer scans the input once, so an "&" it emits is never re-escaped.
var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// EscapeXML escapes the five XML metacharacters and leaves everything else untouched
func EscapeXML(s string) string {
	return xmlEscaper.Replace(s)
}

// BuildToastXML returns the ToastGeneric markup for a two-line toast
func BuildToastXML(title, message string, silent bool) string {
	audio := DefaultAudio
	if silent {
		audio = SilentAudio
	}
	return fmt.Sprintf(toastTemplate, EscapeXML(title), EscapeXML(message), audio)
}
