package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/claude-notifier/claude-notifier/internal/errors"
)

func TestExitCode(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		err  error
		want int
	}{
		"nil":            {err: nil, want: ExitSuccess},
		"platform error": {err: errors.PlatformStep("show notification", assert.AnError), want: ExitFailure},
		"not found":      {err: errors.SoundFileNotFound("x.wav"), want: ExitFailure},
		"plain error":    {err: assert.AnError, want: ExitFailure},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}
