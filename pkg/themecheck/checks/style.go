package checks

import (
	"regexp"
	"strings"

	"github.com/leapstack-labs/themecheck/pkg/themecheck"
)

// StyleNeeded requires a root style.css carrying the theme headers.
var StyleNeeded = themecheck.Def{
	ID:   "Style_Needed",
	Desc: "style.css must exist at the theme root and declare the theme headers.",
	Run:  checkStyle,
}

// headerWindow is how much of style.css is searched for headers.
const headerWindow = 8 * 1024

var (
	requiredHeaders    = []string{"Theme Name", "Description", "Author", "Version", "License", "License URI", "Text Domain"}
	recommendedHeaders = []string{"Requires at least", "Tested up to", "Requires PHP"}
)

const headersDoc = "https://developer.wordpress.org/themes/basics/main-stylesheet-style-css/"

func checkStyle(files themecheck.Files) (bool, []string) {
	var f themecheck.Findings

	var style *themecheck.File
	for i := range files.Style {
		if files.Rel(files.Style[i].Path) == "style.css" {
			style = &files.Style[i]
			break
		}
	}
	if style == nil {
		f.Add(themecheck.Required, "%s is missing from the theme root. See %s.",
			themecheck.Code("style.css"), themecheck.Link(headersDoc, "Main stylesheet"))
		return f.Result()
	}

	head := style.Content
	if len(head) > headerWindow {
		head = head[:headerWindow]
	}
	headers := ParseHeaders(head)

	for _, name := range requiredHeaders {
		if strings.TrimSpace(headers[name]) == "" {
			f.Add(themecheck.Required, "The %s header is missing in style.css. See %s.",
				themecheck.Code(name), themecheck.Link(headersDoc, "Main stylesheet"))
		}
	}
	for _, name := range recommendedHeaders {
		if strings.TrimSpace(headers[name]) == "" {
			f.Add(themecheck.Recommended, "The %s header is missing in style.css.", themecheck.Code(name))
		}
	}

	if domain := headers["Text Domain"]; domain != "" && strings.ContainsAny(domain, " _") {
		f.Add(themecheck.Warning, "The text domain %s should be lowercase and hyphenated.", themecheck.Code(domain))
	}

	return f.Result()
}

var headerLine = regexp.MustCompile(`(?m)^[ \t/*#@]*([A-Za-z][A-Za-z ]*?)[ \t]*:[ \t]*(.*?)[ \t]*(?:\*/.*)?\r?$`)

// ParseHeaders extracts "Name: value" file headers. The first occurrence
// of a header wins.
func ParseHeaders(content string) map[string]string {
	headers := make(map[string]string)
	for _, m := range headerLine.FindAllStringSubmatch(content, -1) {
		name := strings.TrimSpace(m[1])
		if _, ok := headers[name]; ok {
			continue
		}
		headers[name] = m[2]
	}
	return headers
}
