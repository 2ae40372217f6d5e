package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/leapstack-labs/themecheck/internal/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMode(t *testing.T) {
	assert.Equal(t, ModeText, Mode("text"))
	assert.Equal(t, ModeMarkdown, Mode("Markdown"))
	assert.Equal(t, ModeMarkdown, Mode("md"))
	assert.Equal(t, ModeJSON, Mode("json"))
	assert.Equal(t, ModeAuto, Mode("workflow"))
	assert.Equal(t, ModeAuto, Mode(""))
}

func TestEffectiveMode(t *testing.T) {
	var out, errOut bytes.Buffer

	assert.Equal(t, ModeText, NewRendererWithTTY(&out, &errOut, true, ModeAuto).EffectiveMode())
	assert.Equal(t, ModeMarkdown, NewRendererWithTTY(&out, &errOut, false, ModeAuto).EffectiveMode())
	assert.Equal(t, ModeJSON, NewRendererWithTTY(&out, &errOut, true, ModeJSON).EffectiveMode())
	assert.Equal(t, ModeText, NewRendererWithTTY(&out, &errOut, false, ModeText).EffectiveMode())
}

func TestNewRenderer_BufferIsNotTerminal(t *testing.T) {
	var out bytes.Buffer
	r := NewRenderer(&out, &out, ModeAuto)
	assert.False(t, r.IsTTY())
	assert.Equal(t, ModeMarkdown, r.EffectiveMode())
}

func TestStatusGoesToErrWriter(t *testing.T) {
	var out, errOut bytes.Buffer
	r := NewRendererWithTTY(&out, &errOut, false, ModeText)

	r.Success("all good")
	r.Warning("careful")
	r.Error("broken")

	assert.Empty(t, out.String())
	assert.Equal(t, "✓ all good\n! careful\n✗ broken\n", errOut.String())
}

func TestStatusPlainOutsideTextMode(t *testing.T) {
	var out, errOut bytes.Buffer
	r := NewRendererWithTTY(&out, &errOut, false, ModeMarkdown)

	r.Success("all good")
	assert.Equal(t, "all good\n", errOut.String())
}

func TestJSON(t *testing.T) {
	var out bytes.Buffer
	r := NewRendererWithTTY(&out, &out, false, ModeJSON)

	require.NoError(t, r.JSON(map[string]int{"a": 1}))
	assert.Equal(t, "{\n  \"a\": 1\n}\n", out.String())
}

func TestTable(t *testing.T) {
	var out bytes.Buffer
	r := NewRendererWithTTY(&out, &out, false, ModeText)

	r.Table([]string{"Category", "Source"}, [][]string{
		{"Bad_Checks", "builtin"},
		{"Custom", "starlark"},
	})

	got := out.String()
	assert.Contains(t, got, "CATEGORY")
	assert.Contains(t, got, "Bad_Checks")
	assert.Contains(t, got, "starlark")
	assert.Contains(t, got, "┌")
}

func TestTextEncoder(t *testing.T) {
	var out bytes.Buffer
	r := &report.Report{Categories: []report.Category{
		{ID: "Bad_Checks", Diagnostics: []string{"REQUIRED: eval was found", "WARNING: base64_decode was found"}},
		{ID: "File_Checks", Diagnostics: []string{"plain diagnostic"}},
	}}

	require.NoError(t, TextEncoder{Styles: NewStyles(&out)}.Encode(&out, r))

	got := out.String()
	assert.True(t, strings.HasPrefix(got, "✗ Theme check failed: 3 issue(s) in 2 category(ies)\n"))
	assert.Contains(t, got, "\nBad_Checks\n  • REQUIRED: eval was found\n  • WARNING: base64_decode was found\n")
	assert.Contains(t, got, "\nFile_Checks\n  • plain diagnostic\n")
	assert.NotContains(t, got, "\x1b[", "no ANSI codes when writing to a buffer")
}

func TestNewReportEncoder(t *testing.T) {
	enc, err := NewReportEncoder("text", nil)
	require.NoError(t, err)
	assert.IsType(t, TextEncoder{}, enc)

	enc, err = NewReportEncoder("json", nil)
	require.NoError(t, err)
	assert.IsType(t, report.JSONEncoder{}, enc)

	_, err = NewReportEncoder("xml", nil)
	assert.Error(t, err)
}

func TestPlainStyles(t *testing.T) {
	s := PlainStyles()
	assert.Equal(t, "x", s.Error.Render("x"))
	assert.Equal(t, "Bad_Checks", s.Category.Render("Bad_Checks"))
}

func TestTextEncoder_NilStylesArePlain(t *testing.T) {
	var out bytes.Buffer
	r := &report.Report{Categories: []report.Category{{ID: "a", Diagnostics: []string{"REQUIRED: x"}}}}

	require.NoError(t, TextEncoder{}.Encode(&out, r))
	assert.Contains(t, out.String(), "\na\n  • REQUIRED: x\n")
}
