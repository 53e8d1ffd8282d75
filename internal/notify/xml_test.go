package notify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeXML(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		input    string
		expected string
	}{
		"empty":               {input: "", expected: ""},
		"plain text":          {input: "Task completed", expected: "Task completed"},
		"ampersand":           {input: "Done & done", expected: "Done &amp; done"},
		"angle brackets":      {input: "<b>bold</b>", expected: "&lt;b&gt;bold&lt;/b&gt;"},
		"quotes":              {input: `say "hi" it's`, expected: "say &quot;hi&quot; it&apos;s"},
		"existing entity":     {input: "&amp;", expected: "&amp;amp;"},
		"all five":            {input: `&<>"'`, expected: "&amp;&lt;&gt;&quot;&apos;"},
		"unicode untouched":   {input: "完成 ✓ café", expected: "完成 ✓ café"},
		"newlines untouched":  {input: "a\nb\tc", expected: "a\nb\tc"},
		"repeated ampersands": {input: "&&", expected: "&amp;&amp;"},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, EscapeXML(tt.input))
		})
	}
}

// TestEscapeXML_NoRawMetacharacters checks that after removing the five
// entities nothing but the original non-metacharacters remain.
func TestEscapeXML_NoRawMetacharacters(t *testing.T) {
	t.Parallel()

	inputs := []string{
		`&<>"'`,
		`a&b<c>d"e'f`,
		"&&&<<<>>>",
		`"'"'"'`,
		"no metacharacters at all",
		"&lt; already looks escaped &gt;",
	}

	entities := strings.NewReplacer("&amp;", "", "&lt;", "", "&gt;", "", "&quot;", "", "&apos;", "")
	strip := strings.NewReplacer("&", "", "<", "", ">", "", `"`, "", "'", "")

	for _, in := range inputs {
		out := EscapeXML(in)
		rest := entities.Replace(out)

		assert.NotContains(t, rest, "&", "input %q", in)
		assert.NotContains(t, rest, "<", "input %q", in)
		assert.NotContains(t, rest, ">", "input %q", in)
		assert.NotContains(t, rest, `"`, "input %q", in)
		assert.NotContains(t, rest, "'", "input %q", in)
		assert.Equal(t, strip.Replace(in), rest, "non-metacharacters must be preserved for %q", in)
	}
}

func TestBuildToastXML(t *testing.T) {
	t.Parallel()

	t.Run("default sound", func(t *testing.T) {
		t.Parallel()
		markup := BuildToastXML("Claude Code", "Task completed", false)

		assert.Contains(t, markup, `<binding template="ToastGeneric">`)
		assert.Contains(t, markup, "<text>Claude Code</text>")
		assert.Contains(t, markup, "<text>Task completed</text>")
		assert.Contains(t, markup, DefaultAudio)
		assert.NotContains(t, markup, SilentAudio)
	})

	t.Run("silent", func(t *testing.T) {
		t.Parallel()
		markup := BuildToastXML("Claude Code", "Task completed", true)

		assert.Contains(t, markup, SilentAudio)
		assert.NotContains(t, markup, DefaultAudio)
	})

	t.Run("escapes title and message independently", func(t *testing.T) {
		t.Parallel()
		markup := BuildToastXML("Build <ci>", "Done & done", false)

		assert.Contains(t, markup, "<text>Build &lt;ci&gt;</text>")
		assert.Contains(t, markup, "<text>Done &amp; done</text>")
		assert.NotContains(t, markup, "Done & done")
	})

	t.Run("exactly two text elements and one audio element", func(t *testing.T) {
		t.Parallel()
		markup := BuildToastXML("<text>", "</text>", false)

		assert.Equal(t, 2, strings.Count(markup, "<text>"))
		assert.Equal(t, 1, strings.Count(markup, "<audio"))
	})

	t.Run("document shape", func(t *testing.T) {
		t.Parallel()
		markup := BuildToastXML("T", "M", true)

		assert.True(t, strings.HasPrefix(markup, "<toast>"))
		assert.True(t, strings.HasSuffix(markup, "</toast>"))
	})
}
