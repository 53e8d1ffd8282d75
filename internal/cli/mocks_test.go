package cli

import (
	"errors"
	"io"
	"os"
	"sync"

	"github.com/claude-notifier/claude-notifier/internal/notify"
	"github.com/claude-notifier/claude-notifier/internal/progress"
	"github.com/claude-notifier/claude-notifier/internal/registration"
	"github.com/claude-notifier/claude-notifier/internal/sound"
)

// MockDispatcher records notifications and the toast markup they render to
// instead of showing them
type MockDispatcher struct {
	mu            sync.Mutex
	Options       notify.Options
	Notifications []notify.Notification
	Markup        []string
	SendError     error
}

func (m *MockDispatcher) Send(n notify.Notification) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Notifications = append(m.Notifications, n)
	m.Markup = append(m.Markup, notify.BuildToastXML(n.Title, n.Message, n.Silent))
	return m.SendError
}

// MockPlayer records played files; validation still runs like the real players
type MockPlayer struct {
	mu        sync.Mutex
	Options   sound.Options
	Played    []string
	PlayError error
}

func (m *MockPlayer) PlayFile(path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, err := sound.ValidateSoundFile(path); err != nil {
		return err
	}
	m.Played = append(m.Played, path)
	return m.PlayError
}

// MockIndicator counts Start/Stop calls
type MockIndicator struct {
	ASCII    bool
	Messages []string
	Stops    int
}

func (m *MockIndicator) Start(msg string) { m.Messages = append(m.Messages, msg) }
func (m *MockIndicator) Stop()            { m.Stops++ }

// linkPlatform stands in for the shell link writer: the Start Menu directory is
// a temp dir and the "shortcut" is a placeholder file.
type linkPlatform struct {
	dir      string
	writeErr error
}

func (p *linkPlatform) StartMenuDir() (string, error) {
	if p.dir == "" {
		return "", errors.New("no start menu")
	}
	return p.dir, nil
}

func (p *linkPlatform) WriteLink(s registration.Shortcut) error {
	if p.writeErr != nil {
		return p.writeErr
	}
	return os.WriteFile(s.Path, []byte(s.AppID), 0o644)
}

// testHarness wires mocks into Dependencies and keeps what the factories built
type testHarness struct {
	platform   *linkPlatform
	dispatcher *MockDispatcher
	player     *MockPlayer
	indicator  *MockIndicator

	registrarOpts registration.Options
}

func newTestHarness(startMenuDir string) *testHarness {
	return &testHarness{
		platform:   &linkPlatform{dir: startMenuDir},
		dispatcher: &MockDispatcher{},
		player:     &MockPlayer{},
		indicator:  &MockIndicator{},
	}
}

func (h *testHarness) deps() Dependencies {
	return Dependencies{
		NewDispatcher: func(opts notify.Options) notify.Dispatcher {
			h.dispatcher.Options = opts
			return h.dispatcher
		},
		NewPlayer: func(opts sound.Options) sound.Player {
			h.player.Options = opts
			return h.player
		},
		NewRegistrar: func(opts registration.Options) Registrar {
			h.registrarOpts = opts
			return registration.NewWithPlatform(h.platform, opts.Logger)
		},
		NewIndicator: func(_ io.Writer, ascii bool) progress.Indicator {
			h.indicator.ASCII = ascii
			return h.indicator
		},
	}
}
