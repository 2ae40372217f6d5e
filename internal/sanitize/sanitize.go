// Package sanitize turns engine diagnostics carrying review markup into
// plain text suitable for a single-line machine protocol.
package sanitize

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// severityMarkers are the lead spans removed in the first step.
var severityMarkers = []string{
	`<span class="tc-lead tc-required">`,
	`</span>`,
	`<span class='tc-lead tc-required'>`,
	`<span class="tc-lead tc-recommended">`,
	`<span class='tc-lead tc-recommended'>`,
}

var (
	markerReplacer   = newReplacer(severityMarkers, "")
	emphasisReplacer = newReplacer([]string{"<strong>", "</strong>", "<b>", "</b>", "<em>", "</em>"}, "`")
)

// anchor matches one complete anchor with a non-empty href, which is in
// group 1 or 2. Anchors with an empty href are left to tag stripping.
var anchor = regexp.MustCompile(`(?is)<a\s+(?:[^>]*?\s)?href\s*=\s*(?:"([^"]+)"|'([^']+)')[^>]*>.*?</a>`)

func newReplacer(olds []string, replacement string) *strings.Replacer {
	pairs := make([]string, 0, 2*len(olds))
	for _, old := range olds {
		pairs = append(pairs, old, replacement)
	}
	return strings.NewReplacer(pairs...)
}

// Sanitize cleans one diagnostic. The steps always run in this order:
//
//  1. severity lead spans are removed
//  2. bold and emphasis tags become backticks
//  3. anchors collapse to their bare URL
//  4. remaining tags are stripped and HTML entities decoded
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	s = markerReplacer.Replace(s)
	s = emphasisReplacer.Replace(s)
	s = anchor.ReplaceAllStringFunc(s, func(m string) string {
		sub := anchor.FindStringSubmatch(m)
		if sub[1] != "" {
			return sub[1]
		}
		return sub[2]
	})
	return html.UnescapeString(stripTags(s))
}

// SanitizeAll cleans diagnostics one to one, preserving order.
func SanitizeAll(diagnostics []string) []string {
	out := make([]string, len(diagnostics))
	for i, d := range diagnostics {
		out[i] = Sanitize(d)
	}
	return out
}

// stripTags keeps only the raw text between tags. Comments and doctypes
// are dropped along with the tags.
func stripTags(s string) string {
	if !strings.ContainsRune(s, '<') {
		return s
	}

	var b strings.Builder
	z := html.NewTokenizer(strings.NewReader(s))
	for {
		switch z.Next() {
		case html.ErrorToken:
			// io.EOF, or a tag left open at the end of input.
			return b.String()
		case html.TextToken:
			// Raw rather than Text: entities are decoded once, afterwards.
			b.Write(z.Raw())
		}
	}
}
