package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Supported wire formats.
const (
	FormatWorkflow = "workflow"
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
)

// WireVersion is the version of the workflow and json formats.
const WireVersion = 1

// Formats lists the formats NewEncoder accepts.
func Formats() []string {
	return []string{FormatWorkflow, FormatJSON, FormatMarkdown}
}

// NewEncoder returns the encoder for format.
func NewEncoder(format string) (Encoder, error) {
	switch format {
	case FormatWorkflow, "":
		return WorkflowEncoder{Type: "error"}, nil
	case FormatJSON:
		return JSONEncoder{}, nil
	case FormatMarkdown:
		return MarkdownEncoder{}, nil
	default:
		return nil, fmt.Errorf("unknown report format %q", format)
	}
}

// WorkflowEncoder writes a single CI workflow command line:
//
//	::error::[ <id> ] %0A<d1>%0A<d2>%0A%0A[ <id2> ] %0A...%0A%0A
type WorkflowEncoder struct {
	Type string // workflow command, "error" by default
}

var workflowEscaper = strings.NewReplacer("%", "%25", "\r", "%0D", "\n", "%0A")

// Encode implements Encoder.
func (e WorkflowEncoder) Encode(w io.Writer, r *Report) error {
	typ := e.Type
	if typ == "" {
		typ = "error"
	}

	var b strings.Builder
	b.WriteString("::" + typ + "::")
	for _, c := range r.Categories {
		b.WriteString("[ " + workflowEscaper.Replace(c.ID) + " ] %0A")
		for i, d := range c.Diagnostics {
			if i > 0 {
				b.WriteString("%0A")
			}
			b.WriteString(workflowEscaper.Replace(d))
		}
		b.WriteString("%0A%0A")
	}
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// JSONEncoder writes one JSON document followed by a newline.
type JSONEncoder struct{}

type jsonReport struct {
	Version    int        `json:"version"`
	Type       string     `json:"type"`
	Passed     bool       `json:"passed"`
	Categories []Category `json:"categories"`
}

// Encode implements Encoder.
func (JSONEncoder) Encode(w io.Writer, r *Report) error {
	categories := r.Categories
	if categories == nil {
		categories = []Category{}
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(jsonReport{
		Version:    WireVersion,
		Type:       "error",
		Passed:     r.Passed,
		Categories: categories,
	})
}

// MarkdownEncoder writes a heading per category and a bullet per diagnostic.
type MarkdownEncoder struct{}

// Encode implements Encoder.
func (MarkdownEncoder) Encode(w io.Writer, r *Report) error {
	var b strings.Builder
	fmt.Fprintf(&b, "# Theme check failed\n\n%d issue(s) in %d categor%s.\n",
		r.Count(), len(r.Categories), plural(len(r.Categories), "y", "ies"))
	for _, c := range r.Categories {
		fmt.Fprintf(&b, "\n## %s\n\n", c.ID)
		for _, d := range c.Diagnostics {
			b.WriteString("- " + strings.ReplaceAll(d, "\n", " ") + "\n")
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
