package errors

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestFormatError(t *testing.T) {
	// color.NoColor is process-wide; restored after the parallel subtests finish
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	t.Run("nil error returns empty string", func(t *testing.T) {
		t.Parallel()
		if result := FormatError(nil); result != "" {
			t.Errorf("Expected empty string, got %q", result)
		}
	})

	t.Run("prefix and message", func(t *testing.T) {
		t.Parallel()
		result := FormatError(PlatformStep("show notification", &testError{}))

		if !strings.HasPrefix(result, "[ERROR] failed to show notification: test error") {
			t.Errorf("Unexpected output %q", result)
		}
	})

	t.Run("remediation lines", func(t *testing.T) {
		t.Parallel()
		result := FormatError(UnsupportedSoundFormat(".mp3"))

		if !strings.Contains(result, "To fix this:") {
			t.Error("Expected output to contain 'To fix this:'")
		}
		if !strings.Contains(result, "Convert the sound to .wav") {
			t.Error("Expected remediation step in output")
		}
	})
}

func TestFprintError(t *testing.T) {
	t.Run("nil error does nothing", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		FprintError(&buf, nil)

		if buf.Len() != 0 {
			t.Errorf("Expected no output for nil error, got %q", buf.String())
		}
	})

	t.Run("writes error to buffer", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		FprintError(&buf, SoundFileNotFound("missing.wav"))

		if !strings.Contains(buf.String(), ErrorPrefix) {
			t.Error("Expected buffer to contain the error prefix")
		}
		if !strings.Contains(buf.String(), "missing.wav") {
			t.Error("Expected buffer to contain error message")
		}
	})
}
