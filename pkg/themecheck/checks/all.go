package checks

import "github.com/leapstack-labs/themecheck/pkg/themecheck"

// Registration order is the report order.
func init() {
	themecheck.Register(BadChecks)
	themecheck.Register(StyleNeeded)
	themecheck.Register(FileChecks)
	themecheck.Register(ScreenshotChecks)
	themecheck.Register(SyntaxChecks)
}
