package sanitize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
		{
			name:     "plain text is unchanged",
			input:    "Error: nothing to see",
			expected: "Error: nothing to see",
		},
		{
			name:     "required lead",
			input:    `<span class="tc-lead tc-required">REQUIRED</span>: found <strong>eval</strong> call`,
			expected: "REQUIRED: found `eval` call",
		},
		{
			name:     "single quoted recommended lead",
			input:    `<span class='tc-lead tc-recommended'>RECOMMENDED</span>: add tags`,
			expected: "RECOMMENDED: add tags",
		},
		{
			name:     "other leads are stripped as tags",
			input:    `<span class="tc-lead tc-warning">WARNING</span>: x`,
			expected: "WARNING: x",
		},
		{
			name:     "emphasis becomes backticks",
			input:    "Use <b>esc_html()</b> or <em>esc_attr()</em> on <strong>$title</strong>",
			expected: "Use `esc_html()` or `esc_attr()` on `$title`",
		},
		{
			name:     "anchor collapses to url",
			input:    `See <a href="https://developer.wordpress.org/themes/">the handbook</a>.`,
			expected: "See https://developer.wordpress.org/themes/.",
		},
		{
			name:     "anchors are matched one at a time",
			input:    `<a href="https://a.example/x">A</a> and <a href='https://b.example'>B</a>`,
			expected: "https://a.example/x and https://b.example",
		},
		{
			name:     "anchor case and extra attributes",
			input:    `<A class="ext" HREF="https://x.example" target="_blank">X</A>`,
			expected: "https://x.example",
		},
		{
			name:     "anchor spanning lines",
			input:    "<a href=\"https://x.example\">multi\nline</a>!",
			expected: "https://x.example!",
		},
		{
			name:     "unterminated anchor keeps its text",
			input:    `see <a href="https://x.example">docs`,
			expected: "see docs",
		},
		{
			name:     "nested anchor collapses to the outer url at the first close",
			input:    `<a href="https://outer.example">x <a href="https://inner.example">y</a> z</a>`,
			expected: "https://outer.example z",
		},
		{
			name:     "anchor without href is stripped like any tag",
			input:    `<a name="top">Top</a>`,
			expected: "Top",
		},
		{
			name:     "anchor with empty href keeps its text",
			input:    `<a href="">empty</a> tail <a href=''>quoted</a>`,
			expected: "empty tail quoted",
		},
		{
			name:     "entities are decoded after tag stripping",
			input:    "a &amp; b &lt;tag&gt; &quot;q&quot; &#39;s&#39;",
			expected: `a & b <tag> "q" 's'`,
		},
		{
			name:     "remaining tags and comments are stripped",
			input:    "<p>para</p><!-- note --><br/>next<?php ?>",
			expected: "paranext",
		},
		{
			name:     "lone angle bracket is text",
			input:    "a < b and c <= d",
			expected: "a < b and c <= d",
		},
		{
			name:     "full theme check diagnostic",
			input:    `<span class="tc-lead tc-required">REQUIRED</span>: The <strong>Text Domain</strong> header is missing in style.css. See <a href="https://developer.wordpress.org/themes/basics/main-stylesheet-style-css/">Main stylesheet</a>.`,
			expected: "REQUIRED: The `Text Domain` header is missing in style.css. See https://developer.wordpress.org/themes/basics/main-stylesheet-style-css/.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Sanitize(tt.input))
		})
	}
}

func TestSanitize_NoMarkersSurvive(t *testing.T) {
	inputs := []string{
		`<span class="tc-lead tc-required">REQUIRED</span>: a`,
		`<span class='tc-lead tc-required'>REQUIRED</span>: b`,
		`<span class="tc-lead tc-recommended">R</span><span class="tc-lead tc-required">Q</span>`,
		`<span class="tc-lead tc-required"><span class="tc-lead tc-required">x</span></span>`,
	}
	for _, in := range inputs {
		out := Sanitize(in)
		for _, m := range severityMarkers {
			assert.NotContains(t, out, m)
		}
		assert.NotContains(t, out, "<")
	}
}

func TestSanitize_Idempotent(t *testing.T) {
	inputs := []string{
		`<span class="tc-lead tc-required">REQUIRED</span>: found <strong>eval</strong> call`,
		`See <a href="https://example.org">docs</a> &amp; more`,
		"plain text, nothing to do",
		"Error: found `eval` call",
	}
	for _, in := range inputs {
		once := Sanitize(in)
		assert.Equal(t, once, Sanitize(once), in)
	}
}

func TestSanitize_DecodedMarkupIsNotAFixedPoint(t *testing.T) {
	once := Sanitize("Found &lt;title&gt; tag")
	assert.Equal(t, "Found <title> tag", once)
	assert.Equal(t, "Found  tag", Sanitize(once), "decoded markup is stripped on a second pass")
}

func TestSanitizeAll(t *testing.T) {
	in := []string{"<b>one</b>", "", "three &amp; four"}
	out := SanitizeAll(in)

	assert.Equal(t, []string{"`one`", "", "three & four"}, out)
	assert.Equal(t, "<b>one</b>", in[0], "input must not be modified")
	assert.Empty(t, SanitizeAll(nil))
}

func TestSanitize_SingleLineInputStaysSingleLine(t *testing.T) {
	out := Sanitize(`<span class="tc-lead tc-required">REQUIRED</span>: <a href="https://x.example">x</a>`)
	assert.False(t, strings.ContainsAny(out, "\r\n"))
}
