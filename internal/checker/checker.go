// Package checker adapts classified theme files to the rule engine and
// collects its verdict and diagnostics.
package checker

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/leapstack-labs/themecheck/internal/classify"
	"github.com/leapstack-labs/themecheck/pkg/themecheck"
)

// ErrEngineUnavailable is returned when the rule engine cannot be located or
// loaded. There is no fallback verdict.
var ErrEngineUnavailable = errors.New("rule engine unavailable")

// SyntheticCategory holds the diagnostic recorded when the engine fails a
// theme without saying why.
const SyntheticCategory = "themecheck"

// Engine is the single entry point the adapter needs from a rule engine.
type Engine interface {
	Run(files themecheck.Files, rec themecheck.Recorder) bool
}

// Loader locates and initializes an Engine.
type Loader func() (Engine, error)

// Result is the outcome of one engine run. A failing result always carries
// at least one diagnostic.
type Result struct {
	Passed   bool
	Registry *Registry
}

// Adapter owns the engine lifecycle for a run.
type Adapter struct {
	load   Loader
	engine Engine
	logger *slog.Logger
}

// New creates an Adapter. The engine is not loaded until Load or RunChecks.
func New(load Loader, logger *slog.Logger) *Adapter {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Adapter{load: load, logger: logger}
}

// Load initializes the engine. It is a no-op once an engine is present.
func (a *Adapter) Load() error {
	if a.engine != nil {
		return nil
	}
	if a.load == nil {
		return fmt.Errorf("%w: no loader configured", ErrEngineUnavailable)
	}

	engine, err := a.load()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEngineUnavailable, err)
	}
	if engine == nil {
		return fmt.Errorf("%w: loader returned no engine", ErrEngineUnavailable)
	}

	a.engine = engine
	a.logger.Debug("rule engine ready")
	return nil
}

// RunChecks runs the engine over b and returns its verdict together with a
// fresh diagnostic registry.
func (a *Adapter) RunChecks(b *classify.Buckets) (*Result, error) {
	if err := a.Load(); err != nil {
		return nil, err
	}

	reg := NewRegistry()
	passed := a.engine.Run(ToFiles(b), reg)

	if !passed && reg.Empty() {
		a.logger.Warn("engine failed the theme without diagnostics")
		reg.Record(SyntheticCategory, []string{"The rule engine reported a failure without any diagnostics."})
	}

	a.logger.Debug("checks complete",
		"passed", passed,
		"categories", len(reg.Categories()),
		"diagnostics", reg.Len())

	return &Result{Passed: passed, Registry: reg}, nil
}

// ToFiles converts classifier buckets to the engine's file view.
func ToFiles(b *classify.Buckets) themecheck.Files {
	convert := func(entries []classify.Entry) []themecheck.File {
		files := make([]themecheck.File, len(entries))
		for i, e := range entries {
			files[i] = themecheck.File{Path: e.Path, Content: string(e.Content)}
		}
		return files
	}
	return themecheck.Files{
		Root:   b.Root,
		Script: convert(b.Script),
		Style:  convert(b.Style),
		Other:  convert(b.Other),
	}
}

// BuiltinLoader returns a Loader that assembles a themecheck.Engine.
func BuiltinLoader(opts themecheck.LoadOptions) Loader {
	return func() (Engine, error) {
		engine, err := themecheck.Load(opts)
		if err != nil {
			return nil, err
		}
		return engine, nil
	}
}
