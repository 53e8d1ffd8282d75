package notify

import (
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/claude-notifier/claude-notifier/internal/errors"
	"github.com/claude-notifier/claude-notifier/internal/identity"
)

func TestNewNotification(t *testing.T) {
	t.Parallel()
	n := NewNotification("Build", "Done & done", true)

	assert.Equal(t, Notification{Title: "Build", Message: "Done & done", Silent: true}, n)
}

func TestNewDispatcher(t *testing.T) {
	t.Parallel()
	d := NewDispatcher(Options{AppID: identity.AppID})

	require.NotNil(t, d)
	var _ Dispatcher = d
}

func TestOptionsWithDefaults(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		in    Options
		appID string
		delay time.Duration
	}{
		"empty AppID falls back to identity": {
			in:    Options{},
			appID: identity.AppID,
			delay: 0,
		},
		"explicit AppID kept": {
			in:    Options{AppID: "Other.App", ShowDelay: DefaultShowDelay},
			appID: "Other.App",
			delay: DefaultShowDelay,
		},
		"negative delay clamped": {
			in:    Options{ShowDelay: -time.Second},
			appID: identity.AppID,
			delay: 0,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := tt.in.withDefaults()
			assert.Equal(t, tt.appID, got.AppID)
			assert.Equal(t, tt.delay, got.ShowDelay)
		})
	}
}

func TestUnsupportedDispatcher(t *testing.T) {
	t.Parallel()
	d := &unsupportedDispatcher{}

	err := d.Send(NewNotification("t", "m", false))
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.UnsupportedPlatform))
	assert.Contains(t, err.Error(), "only supported on Windows")
}

func TestNewDispatcher_NonWindows(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("sending would show a real toast")
	}
	t.Parallel()

	err := NewDispatcher(Options{}).Send(NewNotification("t", "m", false))
	assert.True(t, errors.HasCategory(err, errors.UnsupportedPlatform))
}
