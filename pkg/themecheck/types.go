package themecheck

import (
	"path/filepath"
	"strings"
)

// =============================================================================
// Files
// =============================================================================

// File is one classified theme file.
type File struct {
	Path    string // absolute path
	Content string
}

// Files is the classified view of a theme handed to every check.
type Files struct {
	Root   string
	Script []File // *.php, comments and whitespace stripped
	Style  []File // *.css
	Other  []File
}

// Rel returns path relative to the theme root in slash form. Paths outside
// the root are returned unchanged.
func (f Files) Rel(path string) string {
	rel, err := filepath.Rel(f.Root, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	rel = filepath.ToSlash(rel)
	if rel == ".." || strings.HasPrefix(rel, "../") {
		return filepath.ToSlash(path)
	}
	return rel
}

// All returns every file regardless of bucket.
func (f Files) All() []File {
	all := make([]File, 0, len(f.Script)+len(f.Style)+len(f.Other))
	all = append(all, f.Script...)
	all = append(all, f.Style...)
	return append(all, f.Other...)
}

// =============================================================================
// Checks
// =============================================================================

// Recorder receives the diagnostics of one rule category. Categories are
// recorded in enumeration order; an empty slice means the category ran clean.
type Recorder interface {
	Record(category string, diagnostics []string)
}

// Check is a single rule category.
type Check interface {
	// Category returns the unique identifier, e.g. "Bad_Checks".
	Category() string

	// Description returns a one-line human-readable description.
	Description() string

	// Check inspects the theme and returns its verdict and raw diagnostics.
	Check(files Files) (passed bool, diagnostics []string)
}

// CheckFunc is the body of a data-driven check.
type CheckFunc func(files Files) (passed bool, diagnostics []string)

// Def is a data-driven Check definition used by the built-in checks.
type Def struct {
	ID   string // category identifier
	Desc string
	Run  CheckFunc
}

// Category implements Check.
func (d Def) Category() string { return d.ID }

// Description implements Check.
func (d Def) Description() string { return d.Desc }

// Check implements Check.
func (d Def) Check(files Files) (bool, []string) { return d.Run(files) }

// CheckInfo describes a loaded check for documentation and tooling.
type CheckInfo struct {
	Category    string `json:"category"`
	Description string `json:"description"`
	Source      string `json:"source"`         // "builtin", "go" or "starlark"
	Path        string `json:"path,omitempty"` // rule file, starlark only
}
