// Package pipeline runs one theme check: classify, check, sanitize and emit.
//
// Stages run in order and never re-enter an earlier stage. A fatal error in
// any stage stops the run before anything is written to the sink.
package pipeline

import (
	"io"
	"log/slog"
	"time"

	"github.com/leapstack-labs/themecheck/internal/checker"
	"github.com/leapstack-labs/themecheck/internal/classify"
	"github.com/leapstack-labs/themecheck/internal/report"
)

// Pipeline wires the stages of a run.
type Pipeline struct {
	classifier *classify.Classifier
	checker    *checker.Adapter
	encoder    report.Encoder
	logger     *slog.Logger
}

// Stats summarizes a run.
type Stats struct {
	Script      int
	Style       int
	Other       int
	Categories  int
	Diagnostics int
	Duration    time.Duration
}

// Outcome is the result of a completed run.
type Outcome struct {
	Passed bool
	Report *report.Report
	Stats  Stats
}

// New creates a pipeline. A nil classifier uses the default ignore markers
// and a nil encoder writes the workflow format.
func New(c *classify.Classifier, a *checker.Adapter, enc report.Encoder, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if c == nil {
		c = classify.New(classify.WithLogger(logger))
	}
	if a == nil {
		a = checker.New(nil, logger)
	}
	if enc == nil {
		enc = report.WorkflowEncoder{}
	}
	return &Pipeline{classifier: c, checker: a, encoder: enc, logger: logger}
}

// Run checks the theme at root and writes the report of a failing run to
// sink. A passing run writes nothing.
func (p *Pipeline) Run(root string, sink io.Writer) (*Outcome, error) {
	start := time.Now()
	p.logger.Debug("starting theme check", "root", root)

	buckets, err := p.classifier.Classify(root)
	if err != nil {
		return nil, err
	}

	result, err := p.checker.RunChecks(buckets)
	if err != nil {
		return nil, err
	}

	rep := report.Build(result.Passed, result.Registry)
	if err := report.Emit(sink, rep, p.encoder); err != nil {
		return nil, err
	}

	out := &Outcome{
		Passed: result.Passed,
		Report: rep,
		Stats: Stats{
			Script:      len(buckets.Script),
			Style:       len(buckets.Style),
			Other:       len(buckets.Other),
			Categories:  len(rep.Categories),
			Diagnostics: rep.Count(),
			Duration:    time.Since(start),
		},
	}

	p.logger.Info("theme check finished",
		"passed", out.Passed,
		"files", buckets.Len(),
		"categories", out.Stats.Categories,
		"diagnostics", out.Stats.Diagnostics,
		"duration", out.Stats.Duration)

	return out, nil
}
