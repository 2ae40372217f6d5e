package checks

import (
	"regexp"

	"github.com/leapstack-labs/themecheck/pkg/themecheck"
)

// BadChecks flags PHP calls that themes are not allowed to make.
var BadChecks = themecheck.Def{
	ID:   "Bad_Checks",
	Desc: "Scripts must not call eval, dynamic code or shell functions.",
	Run:  checkBadCalls,
}

type forbiddenCall struct {
	name     string
	pattern  *regexp.Regexp
	severity themecheck.Severity
	reason   string
}

// callPattern matches a free function call, not a method or static call.
func callPattern(name string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)(?:^|[^\w$>:])` + regexp.QuoteMeta(name) + `\s*\(`)
}

var forbiddenCalls = []forbiddenCall{
	{"eval", callPattern("eval"), themecheck.Required, "eval() is not allowed."},
	{"create_function", callPattern("create_function"), themecheck.Required, "create_function() is deprecated and not allowed."},
	{"base64_decode", callPattern("base64_decode"), themecheck.Warning, "base64_decode() is often used to hide code."},
	{"base64_encode", callPattern("base64_encode"), themecheck.Warning, "base64_encode() is often used to hide code."},
	{"str_rot13", callPattern("str_rot13"), themecheck.Warning, "str_rot13() is often used to hide code."},
	{"uudecode", callPattern("convert_uudecode"), themecheck.Warning, "convert_uudecode() is often used to hide code."},
	{"shell_exec", callPattern("shell_exec"), themecheck.Required, "Themes must not run shell commands."},
	{"passthru", callPattern("passthru"), themecheck.Required, "Themes must not run shell commands."},
	{"proc_open", callPattern("proc_open"), themecheck.Required, "Themes must not run shell commands."},
	{"popen", callPattern("popen"), themecheck.Required, "Themes must not run shell commands."},
	{"system", callPattern("system"), themecheck.Required, "Themes must not run shell commands."},
}

// phpSelf matches reads of $_SERVER['PHP_SELF'].
var phpSelf = regexp.MustCompile(`\$_SERVER\s*\[\s*['"]PHP_SELF['"]\s*\]`)

func checkBadCalls(files themecheck.Files) (bool, []string) {
	var f themecheck.Findings
	for _, file := range files.Script {
		rel := files.Rel(file.Path)
		for _, call := range forbiddenCalls {
			if call.pattern.MatchString(file.Content) {
				f.Add(call.severity, "%s was found in the file %s. %s",
					themecheck.Code(call.name+"()"), themecheck.Code(rel), call.reason)
			}
		}
		if phpSelf.MatchString(file.Content) {
			f.Add(themecheck.Warning, "%s was found in the file %s. Use %s instead.",
				themecheck.Code("$_SERVER['PHP_SELF']"), themecheck.Code(rel), themecheck.Code("home_url()"))
		}
	}
	return f.Result()
}
