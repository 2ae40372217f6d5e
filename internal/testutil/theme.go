package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteTheme creates a theme directory under t.TempDir() containing files,
// keyed by slash-separated relative path. It returns the root directory.
func WriteTheme(t testing.TB, files map[string]string) string {
	t.Helper()

	root := filepath.Join(t.TempDir(), "theme")
	if err := os.MkdirAll(root, 0o755); err != nil {
		t.Fatalf("failed to create theme root: %v", err)
	}

	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("failed to create directory for %s: %v", rel, err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil { //nolint:gosec // test fixture
			t.Fatalf("failed to write %s: %v", rel, err)
		}
	}
	return root
}

// CompliantTheme returns the files of a minimal theme that passes the
// built-in checks.
func CompliantTheme() map[string]string {
	return map[string]string{
		"style.css": `/*
Theme Name: Fixture
Author: Theme Team
Description: A minimal fixture theme.
Version: 1.0.0
License: GNU General Public License v2 or later
License URI: http://www.gnu.org/licenses/gpl-2.0.html
Text Domain: fixture
*/
body { color: #333; }
`,
		"index.php":      "<?php\n// Main template.\nget_header();\n",
		"screenshot.png": "\x89PNG\r\n\x1a\n",
	}
}
