package themecheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		input string
		want  Severity
		ok    bool
	}{
		{"required", Required, true},
		{"WARNING", Warning, true},
		{"Recommended", Recommended, true},
		{"info", Info, true},
		{"fatal", Warning, false},
		{"", Warning, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseSeverity(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, `<span class="tc-lead tc-required">REQUIRED</span>: missing file`, Format(Required, "missing file"))
	assert.Equal(t, `<span class="tc-lead tc-recommended">RECOMMENDED</span>: add tags`, Format(Recommended, "add tags"))
	assert.Equal(t, `<span class="tc-lead tc-warning">WARNING</span>: x`, Format(Warning, "x"))
	assert.Equal(t, `<strong>eval()</strong>`, Code("eval()"))
	assert.Equal(t, `<a href="https://example.org">docs</a>`, Link("https://example.org", "docs"))
}

func TestCodeAndLinkEscape(t *testing.T) {
	assert.Equal(t, `<strong>a&amp;amp;b.css</strong>`, Code("a&amp;b.css"))
	assert.Equal(t, `<strong>&lt;x</strong>`, Code("<x"))
	assert.Equal(t, `<strong>$_SERVER[&#39;PHP_SELF&#39;]</strong>`, Code("$_SERVER['PHP_SELF']"))
	assert.Equal(t, `<a href="https://x.example/?a=1&amp;b=2">a &lt;b&gt;</a>`, Link("https://x.example/?a=1&b=2", "a <b>"))
}

func TestFindings(t *testing.T) {
	t.Run("empty passes", func(t *testing.T) {
		var f Findings
		passed, diagnostics := f.Result()
		assert.True(t, passed)
		assert.Empty(t, diagnostics)
	})

	t.Run("advisory findings keep the check passing", func(t *testing.T) {
		var f Findings
		f.Add(Recommended, "add %s", "tags")
		f.Add(Info, "fyi")
		passed, diagnostics := f.Result()
		assert.True(t, passed)
		assert.Equal(t, []string{
			`<span class="tc-lead tc-recommended">RECOMMENDED</span>: add tags`,
			`<span class="tc-lead tc-info">INFO</span>: fyi`,
		}, diagnostics)
	})

	t.Run("required or warning fails", func(t *testing.T) {
		for _, s := range []Severity{Required, Warning} {
			var f Findings
			f.Add(Info, "fyi")
			f.Add(s, "bad")
			assert.False(t, f.Passed(), s.String())
		}
	})

	t.Run("percent signs go through args", func(t *testing.T) {
		var f Findings
		f.Add(Info, "%s", "100% done")
		_, diagnostics := f.Result()
		assert.Equal(t, `<span class="tc-lead tc-info">INFO</span>: 100% done`, diagnostics[0])
	})
}
