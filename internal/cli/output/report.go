package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/leapstack-labs/themecheck/internal/report"
)

// TextEncoder renders a report for a terminal. It implements report.Encoder.
type TextEncoder struct {
	Styles *Styles
}

// Encode implements report.Encoder.
func (e TextEncoder) Encode(w io.Writer, r *report.Report) error {
	styles := e.Styles
	if styles == nil {
		styles = PlainStyles()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", styles.Error.Render(fmt.Sprintf("✗ Theme check failed: %d issue(s) in %d category(ies)",
		r.Count(), len(r.Categories))))

	for _, c := range r.Categories {
		fmt.Fprintf(&b, "\n%s\n", styles.Category.Render(c.ID))
		for _, d := range c.Diagnostics {
			fmt.Fprintf(&b, "  %s %s\n", styles.Muted.Render("•"), lead(styles, d))
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// lead colors a leading severity word such as "REQUIRED:".
func lead(styles *Styles, d string) string {
	word, rest, ok := strings.Cut(d, ":")
	if !ok {
		return d
	}
	switch word {
	case "REQUIRED":
		return styles.Error.Render(word) + ":" + rest
	case "WARNING":
		return styles.Warning.Render(word) + ":" + rest
	case "RECOMMENDED", "INFO":
		return styles.Info.Render(word) + ":" + rest
	default:
		return d
	}
}

// NewReportEncoder returns the encoder for a check format. "text" renders
// for humans; every other format is a wire format.
func NewReportEncoder(format string, styles *Styles) (report.Encoder, error) {
	if format == "text" {
		return TextEncoder{Styles: styles}, nil
	}
	return report.NewEncoder(format)
}
