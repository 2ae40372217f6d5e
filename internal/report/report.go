// Package report builds the sanitized report of a run and writes it in one
// of the supported wire formats.
package report

import (
	"bytes"
	"fmt"
	"io"

	"github.com/leapstack-labs/themecheck/internal/sanitize"
)

// Category is one failing rule category and its cleaned diagnostics.
type Category struct {
	ID          string   `json:"id"`
	Diagnostics []string `json:"diagnostics"`
}

// Report is the emitted result of a run.
type Report struct {
	Passed     bool       `json:"passed"`
	Categories []Category `json:"categories"`
}

// Source is the read side of a diagnostic registry.
type Source interface {
	Categories() []string
	Diagnostics(category string) []string
}

// Build creates a report from the verdict and raw diagnostics. Categories
// without diagnostics are omitted; the rest keep the source order and are
// sanitized one to one.
func Build(passed bool, src Source) *Report {
	r := &Report{Passed: passed}
	if src == nil {
		return r
	}
	for _, id := range src.Categories() {
		raw := src.Diagnostics(id)
		if len(raw) == 0 {
			continue
		}
		r.Categories = append(r.Categories, Category{ID: id, Diagnostics: sanitize.SanitizeAll(raw)})
	}
	return r
}

// Count returns the total number of diagnostics in the report.
func (r *Report) Count() int {
	n := 0
	for _, c := range r.Categories {
		n += len(c.Diagnostics)
	}
	return n
}

// Encoder renders a report.
type Encoder interface {
	Encode(w io.Writer, r *Report) error
}

// Emit renders r with enc and writes it to w in a single write. A passing
// report writes nothing. Nothing is written if rendering fails.
func Emit(w io.Writer, r *Report, enc Encoder) error {
	if r == nil || r.Passed {
		return nil
	}

	var buf bytes.Buffer
	if err := enc.Encode(&buf, r); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
