package report

import (
	"fmt"
	"os"
)

// FileSink is an io.WriteCloser that creates its file on the first write,
// so a run that emits nothing leaves no file behind.
type FileSink struct {
	path   string
	f      *os.File
	opened bool
	closed bool
}

// NewFileSink creates a sink for path. The file is not touched yet.
func NewFileSink(path string) *FileSink {
	return &FileSink{path: path}
}

// Write implements io.Writer. Writing after Close returns os.ErrClosed.
func (s *FileSink) Write(p []byte) (int, error) {
	if s.closed {
		return 0, fmt.Errorf("failed to write output %s: %w", s.path, os.ErrClosed)
	}
	if s.f == nil {
		f, err := os.Create(s.path) //nolint:gosec // G304: output path is user configuration
		if err != nil {
			return 0, fmt.Errorf("failed to open output: %w", err)
		}
		s.f = f
		s.opened = true
	}
	return s.f.Write(p)
}

// Opened reports whether the file has been created. It stays true after
// Close.
func (s *FileSink) Opened() bool {
	return s.opened
}

// Close closes the file if it was opened. It is safe to call more than once.
func (s *FileSink) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	if s.f == nil {
		return nil
	}
	return s.f.Close()
}
