package themecheck

import (
	"fmt"
	"html"
	"strings"
)

// Severity indicates the importance of a finding.
type Severity int

// Severity levels for findings. Required and Warning findings fail a check.
const (
	Required Severity = iota
	Warning
	Recommended
	Info
)

// String returns the string representation of the severity.
func (s Severity) String() string {
	switch s {
	case Required:
		return "required"
	case Warning:
		return "warning"
	case Recommended:
		return "recommended"
	case Info:
		return "info"
	default:
		return "unknown"
	}
}

// ParseSeverity converts a string to a Severity value.
// Returns the severity and true if valid, or Warning and false if invalid.
func ParseSeverity(s string) (Severity, bool) {
	switch strings.ToLower(s) {
	case "required":
		return Required, true
	case "warning":
		return Warning, true
	case "recommended":
		return Recommended, true
	case "info":
		return Info, true
	default:
		return Warning, false
	}
}

// Fails reports whether a finding of this severity fails its check.
func (s Severity) Fails() bool {
	return s == Required || s == Warning
}

// Format renders msg with the review markup lead for s, e.g.
// `<span class="tc-lead tc-required">REQUIRED</span>: msg`.
func Format(s Severity, msg string) string {
	return fmt.Sprintf(`<span class="tc-lead tc-%s">%s</span>: %s`, s, strings.ToUpper(s.String()), msg)
}

// Code marks s as a code fragment. s is escaped, so it comes back verbatim
// after sanitizing.
func Code(s string) string {
	return "<strong>" + html.EscapeString(s) + "</strong>"
}

// Link renders an anchor to url.
func Link(url, text string) string {
	return fmt.Sprintf(`<a href="%s">%s</a>`, html.EscapeString(url), html.EscapeString(text))
}

// Findings accumulates the diagnostics of one check run.
type Findings struct {
	messages []string
	failed   bool
}

// Add formats and appends a finding.
func (f *Findings) Add(s Severity, format string, args ...any) {
	f.messages = append(f.messages, Format(s, fmt.Sprintf(format, args...)))
	if s.Fails() {
		f.failed = true
	}
}

// Passed reports whether no failing finding was added.
func (f *Findings) Passed() bool {
	return !f.failed
}

// Result returns the verdict and the collected diagnostics.
func (f *Findings) Result() (bool, []string) {
	return !f.failed, f.messages
}
