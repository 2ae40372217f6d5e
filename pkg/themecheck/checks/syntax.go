package checks

import (
	"fmt"
	"html"
	"strings"

	"github.com/evanw/esbuild/pkg/api"

	"github.com/leapstack-labs/themecheck/pkg/themecheck"
)

// SyntaxChecks parses every script asset and stylesheet with esbuild.
var SyntaxChecks = themecheck.Def{
	ID:   "Syntax_Checks",
	Desc: "JavaScript and CSS files must parse without errors.",
	Run:  checkSyntax,
}

// jsExts are the Other-bucket files parsed as JavaScript.
var jsExts = []string{".js", ".mjs"}

func checkSyntax(files themecheck.Files) (bool, []string) {
	var f themecheck.Findings

	for _, file := range files.Other {
		if !hasAnySuffix(file.Path, jsExts) {
			continue
		}
		parse(&f, files.Rel(file.Path), file.Content, api.LoaderJS)
	}
	for _, file := range files.Style {
		parse(&f, files.Rel(file.Path), file.Content, api.LoaderCSS)
	}

	return f.Result()
}

// parse transforms content and turns esbuild errors into required findings.
// CSS warnings usually mean a rule was dropped, so they are recommended fixes.
func parse(f *themecheck.Findings, rel, content string, loader api.Loader) {
	result := api.Transform(content, api.TransformOptions{
		Loader:     loader,
		Sourcefile: rel,
		LogLevel:   api.LogLevelSilent,
	})

	for _, msg := range result.Errors {
		f.Add(themecheck.Required, "Syntax error in %s: %s", themecheck.Code(location(rel, msg)), html.EscapeString(msg.Text))
	}
	if loader == api.LoaderCSS {
		for _, msg := range result.Warnings {
			f.Add(themecheck.Recommended, "CSS problem in %s: %s", themecheck.Code(location(rel, msg)), html.EscapeString(msg.Text))
		}
	}
}

func location(rel string, msg api.Message) string {
	if msg.Location == nil {
		return rel
	}
	return fmt.Sprintf("%s:%d:%d", rel, msg.Location.Line, msg.Location.Column)
}

func hasAnySuffix(s string, suffixes []string) bool {
	for _, suffix := range suffixes {
		if strings.HasSuffix(s, suffix) {
			return true
		}
	}
	return false
}
