// Package themecheck is the rule engine behind the themecheck CLI.
//
// # Architecture
//
// The engine is a flat, ordered list of checks. Each check owns one rule
// category and inspects the whole classified theme at once:
//
//  1. Built-in checks (pkg/themecheck/checks) register themselves from init()
//  2. Starlark checks are loaded from *.star files in a rules directory
//  3. Load merges both, drops disabled categories and returns an Engine
//
// # Check Registration
//
// Built-in checks are registered when their package is imported:
//
//	import _ "github.com/leapstack-labs/themecheck/pkg/themecheck/checks"
//
// # Recording Diagnostics
//
// The engine never keeps results. Run writes every category's diagnostics
// into the Recorder supplied by the caller and returns the overall verdict:
//
//	engine, err := themecheck.Load(themecheck.LoadOptions{Builtin: true})
//	passed := engine.Run(files, recorder)
//
// # Starlark Rules
//
// A rule file defines an optional category and description, and a check
// function taking the classified files:
//
//	category = "No_Eval"
//	description = "Scripts must not call eval"
//
//	def check(files):
//	    out = []
//	    for path, src in files.php.items():
//	        if "eval(" in src:
//	            out.append(required("found " + code("eval") + " in " + path))
//	    return out
//
// Returning a list passes when the list is empty. Returning a (passed, list)
// tuple sets the verdict explicitly.
package themecheck
