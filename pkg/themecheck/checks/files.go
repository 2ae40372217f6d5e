package checks

import (
	"path"
	"slices"
	"strings"

	"github.com/leapstack-labs/themecheck/pkg/themecheck"
)

// FileChecks rejects files that do not belong in a theme package and
// requires the index.php fallback template.
var FileChecks = themecheck.Def{
	ID:   "File_Checks",
	Desc: "Themes must not ship system, VCS or archive files, and must have an index.php.",
	Run:  checkFiles,
}

// forbiddenNames are matched case-insensitively against a file's base name.
var forbiddenNames = map[string]string{
	".ds_store":          "macOS metadata",
	"thumbs.db":          "Windows thumbnail cache",
	"desktop.ini":        "Windows folder settings",
	"php.ini":            "PHP configuration",
	".htaccess":          "web server configuration",
	"project.properties": "IDE project file",
	".project":           "IDE project file",
	"phpcs.xml.dist":     "coding standards configuration",
}

// forbiddenDirs are VCS directories; any file below one is reported once.
var forbiddenDirs = []string{".git", ".svn", ".hg", ".bzr"}

// forbiddenExts are archives and executables.
var forbiddenExts = map[string]string{
	".zip":  "archive",
	".tar":  "archive",
	".gz":   "archive",
	".tgz":  "archive",
	".rar":  "archive",
	".7z":   "archive",
	".phar": "PHP archive",
	".exe":  "executable",
	".sh":   "shell script",
	".bat":  "batch file",
	".kpf":  "IDE project file",
}

func checkFiles(files themecheck.Files) (bool, []string) {
	var f themecheck.Findings
	reportedDirs := make(map[string]bool)
	hasIndex := false

	for _, file := range files.All() {
		rel := files.Rel(file.Path)
		if rel == "index.php" {
			hasIndex = true
		}

		if dir := vcsDir(rel); dir != "" {
			if !reportedDirs[dir] {
				reportedDirs[dir] = true
				f.Add(themecheck.Required, "%s was found. Version control directories are not permitted.", themecheck.Code(dir))
			}
			continue
		}

		base := strings.ToLower(path.Base(rel))
		if kind, ok := forbiddenNames[base]; ok {
			f.Add(themecheck.Required, "%s (%s) was found. It is not permitted in themes.", themecheck.Code(rel), kind)
			continue
		}
		if kind, ok := forbiddenExts[path.Ext(base)]; ok {
			f.Add(themecheck.Required, "%s (%s) was found. It is not permitted in themes.", themecheck.Code(rel), kind)
		}
	}

	if !hasIndex {
		f.Add(themecheck.Required, "%s is missing from the theme root. It is the fallback for every template.", themecheck.Code("index.php"))
	}

	return f.Result()
}

// vcsDir returns the root-relative VCS directory containing rel, if any.
func vcsDir(rel string) string {
	parts := strings.Split(rel, "/")
	for i, p := range parts[:len(parts)-1] {
		if slices.Contains(forbiddenDirs, strings.ToLower(p)) {
			return strings.Join(parts[:i+1], "/")
		}
	}
	return ""
}
