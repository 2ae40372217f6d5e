package checks

import (
	"bytes"

	"github.com/leapstack-labs/themecheck/pkg/themecheck"
)

// ScreenshotChecks requires a screenshot image at the theme root.
var ScreenshotChecks = themecheck.Def{
	ID:   "Screenshot_Checks",
	Desc: "A screenshot.png, .jpg, .jpeg or .webp must exist at the theme root.",
	Run:  checkScreenshot,
}

// screenshotMagic maps accepted screenshot names to their file signatures.
var screenshotMagic = map[string][][]byte{
	"screenshot.png":  {[]byte("\x89PNG\r\n\x1a\n")},
	"screenshot.jpg":  {[]byte("\xff\xd8\xff")},
	"screenshot.jpeg": {[]byte("\xff\xd8\xff")},
	"screenshot.webp": {[]byte("RIFF")},
}

func checkScreenshot(files themecheck.Files) (bool, []string) {
	var f themecheck.Findings
	found := false

	for _, file := range files.Other {
		rel := files.Rel(file.Path)
		if rel == "screenshot.gif" {
			f.Add(themecheck.Recommended, "%s was found. Use PNG, JPEG or WebP instead.", themecheck.Code(rel))
			continue
		}
		magic, ok := screenshotMagic[rel]
		if !ok {
			continue
		}
		found = true
		if !hasPrefix([]byte(file.Content), magic) {
			f.Add(themecheck.Warning, "%s does not look like the image its extension claims.", themecheck.Code(rel))
		}
	}

	if !found {
		f.Add(themecheck.Required, "The theme screenshot is missing. Add %s (1200x900 recommended) to the theme root.",
			themecheck.Code("screenshot.png"))
	}

	return f.Result()
}

func hasPrefix(content []byte, magic [][]byte) bool {
	for _, m := range magic {
		if bytes.HasPrefix(content, m) {
			return true
		}
	}
	return false
}
