package themecheck

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/starlarkstruct"
	"go.starlark.net/syntax"
)

// StarlarkLoader loads *.star rule files from a directory.
type StarlarkLoader struct {
	dir    string
	logger *slog.Logger
}

// NewStarlarkLoader creates a loader for the specified directory.
func NewStarlarkLoader(dir string, logger *slog.Logger) *StarlarkLoader {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &StarlarkLoader{dir: dir, logger: logger}
}

// StarlarkCheck is a Check backed by a rule file.
type StarlarkCheck struct {
	category    string
	description string
	path        string
	fn          starlark.Callable
	logger      *slog.Logger
}

// Load reads every *.star file in file-name order. The directory must exist.
func (l *StarlarkLoader) Load() ([]*StarlarkCheck, error) {
	info, err := os.Stat(l.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to access rules directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("rules path is not a directory: %s", l.dir)
	}

	files, err := filepath.Glob(filepath.Join(l.dir, "*.star"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan rules directory: %w", err)
	}

	checks := make([]*StarlarkCheck, 0, len(files))
	for _, file := range files {
		c, err := l.loadFile(file)
		if err != nil {
			return nil, err
		}
		checks = append(checks, c)
	}
	l.logger.Debug("loaded starlark rules", "dir", l.dir, "count", len(checks))
	return checks, nil
}

func (l *StarlarkLoader) loadFile(path string) (*StarlarkCheck, error) {
	content, err := os.ReadFile(path) //nolint:gosec // G304: path comes from Glob within the rules directory
	if err != nil {
		return nil, &LoadError{File: path, Message: fmt.Sprintf("failed to read file: %v", err)}
	}

	thread := newThread("load:"+filepath.Base(path), l.logger)
	globals, err := starlark.ExecFileOptions(&syntax.FileOptions{}, thread, path, content, predeclared())
	if err != nil {
		return nil, &LoadError{File: path, Message: fmt.Sprintf("Starlark execution error: %v", err)}
	}

	c := &StarlarkCheck{
		category: strings.TrimSuffix(filepath.Base(path), ".star"),
		path:     path,
		logger:   l.logger,
	}

	if v, ok := globals["category"]; ok {
		s, ok := starlark.AsString(v)
		if !ok || s == "" {
			return nil, &LoadError{File: path, Message: "category must be a non-empty string"}
		}
		c.category = s
	}
	if v, ok := globals["description"]; ok {
		s, ok := starlark.AsString(v)
		if !ok {
			return nil, &LoadError{File: path, Message: "description must be a string"}
		}
		c.description = s
	}

	fn, ok := globals["check"].(starlark.Callable)
	if !ok {
		return nil, &LoadError{File: path, Message: "missing check(files) function"}
	}
	c.fn = fn

	return c, nil
}

func newThread(name string, logger *slog.Logger) *starlark.Thread {
	return &starlark.Thread{
		Name: name,
		Print: func(t *starlark.Thread, msg string) {
			logger.Debug("starlark print", "thread", t.Name, "msg", msg)
		},
	}
}

// Category implements Check.
func (c *StarlarkCheck) Category() string { return c.category }

// Description implements Check.
func (c *StarlarkCheck) Description() string { return c.description }

// Path returns the rule file the check was loaded from.
func (c *StarlarkCheck) Path() string { return c.path }

// Check implements Check. A rule that raises or returns a malformed value
// fails with a single required diagnostic describing the problem.
func (c *StarlarkCheck) Check(files Files) (bool, []string) {
	thread := newThread("check:"+c.category, c.logger)
	v, err := starlark.Call(thread, c.fn, starlark.Tuple{filesValue(files)}, nil)
	if err != nil {
		c.logger.Warn("starlark rule failed", "category", c.category, "error", err)
		return false, []string{Format(Required, fmt.Sprintf("rule %s failed to run: %v", filepath.Base(c.path), err))}
	}

	passed, diagnostics, err := convertResult(v)
	if err != nil {
		return false, []string{Format(Required, fmt.Sprintf("rule %s: %v", filepath.Base(c.path), err))}
	}
	return passed, diagnostics
}

// convertResult accepts None, a list of strings, or a (bool, list) tuple.
func convertResult(v starlark.Value) (bool, []string, error) {
	if v == starlark.None {
		return true, nil, nil
	}
	if t, ok := v.(starlark.Tuple); ok && len(t) == 2 {
		if b, ok := t[0].(starlark.Bool); ok {
			diagnostics, err := toStrings(t[1])
			if err != nil {
				return false, nil, err
			}
			return bool(b), diagnostics, nil
		}
	}
	diagnostics, err := toStrings(v)
	if err != nil {
		return false, nil, err
	}
	return len(diagnostics) == 0, diagnostics, nil
}

func toStrings(v starlark.Value) ([]string, error) {
	iterable, ok := v.(starlark.Iterable)
	if !ok {
		return nil, fmt.Errorf("check must return a list of strings, got %s", v.Type())
	}
	iter := iterable.Iterate()
	defer iter.Done()

	var out []string
	var item starlark.Value
	for iter.Next(&item) {
		s, ok := starlark.AsString(item)
		if !ok {
			return nil, fmt.Errorf("diagnostic must be a string, got %s", item.Type())
		}
		out = append(out, s)
	}
	return out, nil
}

// filesValue exposes the classified files as a frozen struct of dicts keyed
// by root-relative path.
func filesValue(files Files) starlark.Value {
	bucket := func(entries []File) *starlark.Dict {
		d := starlark.NewDict(len(entries))
		for _, f := range entries {
			_ = d.SetKey(starlark.String(files.Rel(f.Path)), starlark.String(f.Content))
		}
		return d
	}

	s := starlarkstruct.FromStringDict(starlarkstruct.Default, starlark.StringDict{
		"root":  starlark.String(files.Root),
		"php":   bucket(files.Script),
		"css":   bucket(files.Style),
		"other": bucket(files.Other),
	})
	s.Freeze()
	return s
}

// predeclared returns the helpers visible to every rule file.
func predeclared() starlark.StringDict {
	lead := func(s Severity) *starlark.Builtin {
		return starlark.NewBuiltin(s.String(), func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var msg string
			if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &msg); err != nil {
				return nil, err
			}
			return starlark.String(Format(s, msg)), nil
		})
	}

	return starlark.StringDict{
		"required":    lead(Required),
		"warning":     lead(Warning),
		"recommended": lead(Recommended),
		"info":        lead(Info),
		"link": starlark.NewBuiltin("link", func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var url, text string
			if err := starlark.UnpackArgs(b.Name(), args, kwargs, "url", &url, "text?", &text); err != nil {
				return nil, err
			}
			if text == "" {
				text = url
			}
			return starlark.String(Link(url, text)), nil
		}),
		"code": starlark.NewBuiltin("code", func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var s string
			if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &s); err != nil {
				return nil, err
			}
			return starlark.String(Code(s)), nil
		}),
	}
}

// LoadError represents an error loading a rule file.
type LoadError struct {
	File    string
	Message string
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("rules/%s: %s", filepath.Base(e.File), e.Message)
}
