// Package classify discovers the files of a theme package and buckets them
// by content type for the rule-checking engine.
//
// Classification is by file name only: "*.php" files are scripts and "*.css"
// files are styles, matched case-sensitively. Content is never sniffed,
// because the engine's pre-processing is keyed on the extension.
package classify

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/leapstack-labs/themecheck/internal/phpsrc"
)

// Category is the bucket a file is classified into.
type Category int

// File categories.
const (
	Other Category = iota
	Script
	Style
)

// String returns the lower-case name of the category.
func (c Category) String() string {
	switch c {
	case Script:
		return "script"
	case Style:
		return "style"
	default:
		return "other"
	}
}

// Glob patterns matched against a file's base name.
const (
	ScriptPattern = "*.php"
	StylePattern  = "*.css"
)

// DefaultIgnoreMarkers are path fragments that identify platform metadata
// rather than theme content.
var DefaultIgnoreMarkers = []string{"__MACOSX"}

// Entry is a discovered file and its (possibly pre-processed) content.
type Entry struct {
	Path    string // absolute path
	Content []byte
}

// Buckets holds the classified files of one theme package. Every discovered
// file appears in exactly one bucket, in discovery order.
type Buckets struct {
	Root   string // absolute root directory
	Script []Entry
	Style  []Entry
	Other  []Entry
}

// Len returns the total number of classified files.
func (b *Buckets) Len() int {
	return len(b.Script) + len(b.Style) + len(b.Other)
}

// FilesystemError reports that the theme directory could not be read.
type FilesystemError struct {
	Path string
	Err  error
}

func (e *FilesystemError) Error() string {
	return fmt.Sprintf("filesystem error at %s: %v", e.Path, e.Err)
}

func (e *FilesystemError) Unwrap() error {
	return e.Err
}

// Classifier walks a directory tree and buckets its files.
type Classifier struct {
	ignore []string
	logger *slog.Logger
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithIgnoreMarkers adds markers to DefaultIgnoreMarkers. The defaults
// always apply.
func WithIgnoreMarkers(markers []string) Option {
	return func(c *Classifier) {
		c.ignore = append(c.ignore, markers...)
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Classifier) {
		c.logger = logger
	}
}

// New creates a Classifier.
func New(opts ...Option) *Classifier {
	c := &Classifier{ignore: append([]string(nil), DefaultIgnoreMarkers...)}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = slog.New(slog.DiscardHandler)
	}
	return c
}

// Classify buckets all files below root using the default options.
func Classify(root string) (*Buckets, error) {
	return New().Classify(root)
}

// CategoryOf returns the category for a file name.
func CategoryOf(name string) Category {
	base := filepath.Base(name)
	if ok, _ := filepath.Match(ScriptPattern, base); ok {
		return Script
	}
	if ok, _ := filepath.Match(StylePattern, base); ok {
		return Style
	}
	return Other
}

// Classify walks root recursively and returns its files bucketed by
// category. Script contents are stripped of comments and insignificant
// whitespace. Any filesystem failure aborts the walk and no buckets are
// returned.
func (c *Classifier) Classify(root string) (*Buckets, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, &FilesystemError{Path: root, Err: err}
	}

	info, err := os.Stat(abs)
	if err != nil {
		return nil, &FilesystemError{Path: abs, Err: err}
	}
	if !info.IsDir() {
		return nil, &FilesystemError{Path: abs, Err: errors.New("not a directory")}
	}

	b := &Buckets{Root: abs}
	err = filepath.WalkDir(abs, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}

		if path != abs && c.ignored(abs, path) {
			c.logger.Debug("skipping ignored path", "path", path)
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}

		regular, err := isRegular(path, d)
		if err != nil {
			return err
		}
		if !regular {
			c.logger.Debug("skipping non-regular file", "path", path)
			return nil
		}

		return c.add(b, path)
	})
	if err != nil {
		var fsErr *FilesystemError
		if errors.As(err, &fsErr) {
			return nil, fsErr
		}
		return nil, &FilesystemError{Path: abs, Err: err}
	}

	c.logger.Debug("classified theme files",
		"root", abs,
		"script", len(b.Script),
		"style", len(b.Style),
		"other", len(b.Other))

	return b, nil
}

// add reads path and appends it to the matching bucket.
func (c *Classifier) add(b *Buckets, path string) error {
	content, err := os.ReadFile(path) //nolint:gosec // G304: path comes from WalkDir below the theme root
	if err != nil {
		return &FilesystemError{Path: path, Err: err}
	}

	switch CategoryOf(path) {
	case Script:
		b.Script = append(b.Script, Entry{Path: path, Content: phpsrc.Strip(content)})
	case Style:
		b.Style = append(b.Style, Entry{Path: path, Content: content})
	default:
		b.Other = append(b.Other, Entry{Path: path, Content: content})
	}
	return nil
}

// ignored reports whether the root-relative form of path contains any of
// the ignore markers, compared case-insensitively.
func (c *Classifier) ignored(root, path string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = path
	}
	lower := strings.ToLower(filepath.ToSlash(rel))
	for _, marker := range c.ignore {
		if marker != "" && strings.Contains(lower, strings.ToLower(marker)) {
			return true
		}
	}
	return false
}

// isRegular reports whether the entry is a regular file. Symlinks count
// when their target is a regular file.
func isRegular(path string, d fs.DirEntry) (bool, error) {
	if d.Type().IsRegular() {
		return true, nil
	}
	if d.Type()&fs.ModeSymlink == 0 {
		return false, nil
	}
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, &FilesystemError{Path: path, Err: err}
	}
	return info.Mode().IsRegular(), nil
}
