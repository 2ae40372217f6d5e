package themecheck

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
)

// ErrNoChecks is returned by Load when no check is left to run.
var ErrNoChecks = errors.New("no checks enabled")

// LoadOptions controls which checks an Engine runs.
type LoadOptions struct {
	// Builtin includes the registered built-in checks.
	Builtin bool

	// RulesDir is a directory of *.star rule files. Empty means none; a
	// configured directory that does not exist is an error.
	RulesDir string

	// Extra checks are appended after the built-ins.
	Extra []Check

	// Disabled lists categories to drop.
	Disabled []string

	Logger *slog.Logger
}

// Engine runs an ordered set of checks against a classified theme.
type Engine struct {
	checks []Check
	infos  []CheckInfo
	logger *slog.Logger
}

// Load assembles an Engine: built-ins first, then Extra, then Starlark rules
// in file-name order. Duplicate categories are rejected.
func Load(opts LoadOptions) (*Engine, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	e := &Engine{logger: logger}
	seen := make(map[string]string)

	add := func(c Check, info CheckInfo) error {
		if c.Category() == "" {
			return fmt.Errorf("check from %s has an empty category", info.Source)
		}
		if prev, ok := seen[c.Category()]; ok {
			return fmt.Errorf("duplicate check category %q (%s and %s)", c.Category(), prev, info.Source)
		}
		seen[c.Category()] = info.Source
		if slices.Contains(opts.Disabled, c.Category()) {
			logger.Debug("check disabled", "category", c.Category())
			return nil
		}
		e.checks = append(e.checks, c)
		e.infos = append(e.infos, info)
		return nil
	}

	if opts.Builtin {
		for _, c := range Builtins() {
			if err := add(c, CheckInfo{Category: c.Category(), Description: c.Description(), Source: "builtin"}); err != nil {
				return nil, err
			}
		}
	}

	for _, c := range opts.Extra {
		if err := add(c, CheckInfo{Category: c.Category(), Description: c.Description(), Source: "go"}); err != nil {
			return nil, err
		}
	}

	if opts.RulesDir != "" {
		rules, err := NewStarlarkLoader(opts.RulesDir, logger).Load()
		if err != nil {
			return nil, err
		}
		for _, r := range rules {
			info := CheckInfo{Category: r.Category(), Description: r.Description(), Source: "starlark", Path: r.path}
			if err := add(r, info); err != nil {
				return nil, fmt.Errorf("%s: %w", r.path, err)
			}
		}
	}

	for _, d := range opts.Disabled {
		if _, ok := seen[d]; !ok {
			logger.Warn("disabled category is not loaded", "category", d)
		}
	}

	if len(e.checks) == 0 {
		return nil, ErrNoChecks
	}

	logger.Debug("rule engine loaded", "checks", len(e.checks))
	return e, nil
}

// Checks describes the loaded checks in run order.
func (e *Engine) Checks() []CheckInfo {
	return append([]CheckInfo(nil), e.infos...)
}

// Run executes every check in order and records each category, including
// clean ones, into rec. It returns true only if every check passed.
func (e *Engine) Run(files Files, rec Recorder) bool {
	passed := true
	for _, c := range e.checks {
		ok, diagnostics := c.Check(files)
		rec.Record(c.Category(), diagnostics)
		if !ok {
			passed = false
		}
		e.logger.Debug("check finished",
			"category", c.Category(),
			"passed", ok,
			"diagnostics", len(diagnostics))
	}
	return passed
}
