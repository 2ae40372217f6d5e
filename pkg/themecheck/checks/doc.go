// Package checks provides the built-in theme checks.
//
// Checks register with the themecheck catalogue from init(), in this order:
//   - Bad_Checks: forbidden PHP calls
//   - Style_Needed: style.css and its required headers
//   - File_Checks: forbidden files and the index.php template
//   - Screenshot_Checks: the theme screenshot
//   - Syntax_Checks: JavaScript and CSS parse cleanly
//
// Import the package for its side effects:
//
//	import _ "github.com/leapstack-labs/themecheck/pkg/themecheck/checks"
package checks
