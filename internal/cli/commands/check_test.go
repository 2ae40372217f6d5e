package commands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/themecheck/internal/checker"
	"github.com/leapstack-labs/themecheck/internal/classify"
	"github.com/leapstack-labs/themecheck/internal/cli/config"
	"github.com/leapstack-labs/themecheck/internal/cli/output"
	"github.com/leapstack-labs/themecheck/internal/cli/testutil"
	ttestutil "github.com/leapstack-labs/themecheck/internal/testutil"
	"github.com/leapstack-labs/themecheck/pkg/themecheck"
)

// recordingEngine replays fixed categories.
type recordingEngine struct {
	passed  bool
	order   []string
	records map[string][]string
}

func (e *recordingEngine) Run(_ themecheck.Files, rec themecheck.Recorder) bool {
	for _, id := range e.order {
		rec.Record(id, e.records[id])
	}
	return e.passed
}

func loaderFor(e checker.Engine) checker.Loader {
	return func() (checker.Engine, error) { return e, nil }
}

func noEval() *recordingEngine {
	return &recordingEngine{
		order: []string{"no-eval"},
		records: map[string][]string{
			"no-eval": {`<span class="tc-lead tc-required">Error:</span> found <strong>eval</strong> call`},
		},
	}
}

func TestRunCheck_PassIsSilent(t *testing.T) {
	root := ttestutil.WriteTheme(t, map[string]string{"style.css": "", "index.php": "<?php"})
	c, tr := newTestContext(t, nil, output.ModeAuto)

	err := runCheck(c, root, loaderFor(&recordingEngine{passed: true}))
	require.NoError(t, err)
	assert.Empty(t, tr.Output())
	assert.Empty(t, tr.ErrorOutput())
}

func TestRunCheck_PassVerboseStatus(t *testing.T) {
	root := ttestutil.WriteTheme(t, map[string]string{"index.php": "<?php"})
	cfg := config.Default()
	cfg.Verbose = true
	c, tr := newTestContext(t, cfg, output.ModeText)

	require.NoError(t, runCheck(c, root, loaderFor(&recordingEngine{passed: true})))
	assert.Empty(t, tr.Output())
	assert.Contains(t, tr.ErrorOutput(), "passed all checks")
}

func TestRunCheck_FailWritesWorkflowLine(t *testing.T) {
	root := ttestutil.WriteTheme(t, map[string]string{"functions.php": "<?php eval($x);"})
	c, tr := newTestContext(t, nil, output.ModeAuto)

	err := runCheck(c, root, loaderFor(noEval()))
	require.ErrorIs(t, err, ErrChecksFailed)
	assert.Equal(t, "::error::[ no-eval ] %0AError: found `eval` call%0A%0A\n", tr.Output())
}

func TestRunCheck_Formats(t *testing.T) {
	root := ttestutil.WriteTheme(t, map[string]string{"functions.php": "<?php eval($x);"})

	tests := []struct {
		format string
		want   string
	}{
		{"json", `{"version":1,"type":"error","passed":false,"categories":[{"id":"no-eval","diagnostics":["Error: found ` + "`eval`" + ` call"]}]}` + "\n"},
		{"markdown", "# Theme check failed"},
		{"text", "✗ Theme check failed: 1 issue(s) in 1 category(ies)"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			cfg := config.Default()
			cfg.Format = tt.format
			c, tr := newTestContext(t, cfg, output.Mode(tt.format))

			err := runCheck(c, root, loaderFor(noEval()))
			require.ErrorIs(t, err, ErrChecksFailed)
			assert.True(t, strings.HasPrefix(tr.Output(), tt.want), "got %q", tr.Output())
			testutil.AssertNoANSI(t, tr.Output())
		})
	}
}

func TestRunCheck_UnknownFormat(t *testing.T) {
	root := ttestutil.WriteTheme(t, map[string]string{"index.php": "<?php"})
	cfg := config.Default()
	cfg.Format = "xml"
	c, _ := newTestContext(t, cfg, output.ModeAuto)

	err := runCheck(c, root, loaderFor(&recordingEngine{passed: true}))
	assert.ErrorContains(t, err, `unknown report format "xml"`)
}

func TestRunCheck_OutputFile(t *testing.T) {
	root := ttestutil.WriteTheme(t, map[string]string{"functions.php": "<?php eval($x);"})
	out := filepath.Join(t.TempDir(), "report.txt")

	cfg := config.Default()
	cfg.Output = out
	c, tr := newTestContext(t, cfg, output.ModeAuto)

	require.ErrorIs(t, runCheck(c, root, loaderFor(noEval())), ErrChecksFailed)
	assert.Empty(t, tr.Output())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "::error::[ no-eval ] %0AError: found `eval` call%0A%0A\n", string(data))
}

func TestRunCheck_PassLeavesNoOutputFile(t *testing.T) {
	root := ttestutil.WriteTheme(t, map[string]string{"index.php": "<?php"})
	out := filepath.Join(t.TempDir(), "report.txt")

	cfg := config.Default()
	cfg.Output = out
	c, _ := newTestContext(t, cfg, output.ModeAuto)

	require.NoError(t, runCheck(c, root, loaderFor(&recordingEngine{passed: true})))
	assert.NoFileExists(t, out)
}

func TestRunCheck_MissingRootNeverLoadsEngine(t *testing.T) {
	loads := 0
	load := func() (checker.Engine, error) {
		loads++
		return &recordingEngine{passed: true}, nil
	}
	c, tr := newTestContext(t, nil, output.ModeAuto)

	err := runCheck(c, filepath.Join(t.TempDir(), "nope"), load)

	var fsErr *classify.FilesystemError
	require.ErrorAs(t, err, &fsErr)
	assert.Zero(t, loads)
	assert.Empty(t, tr.Output())
}

func TestRunCheck_MetricsFile(t *testing.T) {
	root := ttestutil.WriteTheme(t, map[string]string{"functions.php": "<?php eval($x);"})
	promFile := filepath.Join(t.TempDir(), "themecheck.prom")

	cfg := config.Default()
	cfg.MetricsFile = promFile
	c, _ := newTestContext(t, cfg, output.ModeAuto)

	require.ErrorIs(t, runCheck(c, root, loaderFor(noEval())), ErrChecksFailed)

	data, err := os.ReadFile(promFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "themecheck_passed 0")
	assert.Contains(t, string(data), `themecheck_diagnostics{category="no-eval"} 1`)
}

func TestRunCheck_IgnoreMarkers(t *testing.T) {
	root := ttestutil.WriteTheme(t, map[string]string{
		"index.php":           "<?php",
		"node_modules/x.php":  "<?php eval($x);",
		"__MACOSX/._bad.php":  "<?php eval($x);",
		"vendor/lib/keep.php": "<?php",
	})

	cfg := config.Default()
	cfg.Ignore = []string{"node_modules"}
	c, _ := newTestContext(t, cfg, output.ModeAuto)

	var scripts int
	load := func() (checker.Engine, error) {
		return engineFunc(func(files themecheck.Files, _ themecheck.Recorder) bool {
			scripts = len(files.Script)
			return true
		}), nil
	}

	require.NoError(t, runCheck(c, root, load))
	assert.Equal(t, 2, scripts)
}

type engineFunc func(themecheck.Files, themecheck.Recorder) bool

func (f engineFunc) Run(files themecheck.Files, rec themecheck.Recorder) bool {
	return f(files, rec)
}
