package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/themecheck/internal/checker"
	"github.com/leapstack-labs/themecheck/internal/classify"
	"github.com/leapstack-labs/themecheck/internal/cli/config"
	"github.com/leapstack-labs/themecheck/internal/cli/output"
	"github.com/leapstack-labs/themecheck/internal/metrics"
	"github.com/leapstack-labs/themecheck/internal/pipeline"
	"github.com/leapstack-labs/themecheck/internal/report"
)

// ErrChecksFailed is returned when the theme fails at least one check. The
// report has already been written; callers only need the exit status.
var ErrChecksFailed = errors.New("theme checks failed")

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [dir]",
		Short: "Check a theme directory",
		Long: `Check a theme directory against the configured rule categories.

A passing theme produces no output and exits 0. A failing theme writes one
report for all failing categories and exits 1. Any other failure exits 2.

The default workflow format is a single CI workflow command line:
  ::error::[ <category> ] %0A<diagnostic>%0A%0A...`,
		Example: `  # Check ./test-theme/
  themecheck check

  # Check a build directory and write JSON to a file
  themecheck check ./build/my-theme -f json -o report.json

  # Skip screenshot checks and add custom Starlark rules
  themecheck check --disable Screenshot_Checks --rules-dir ./rules`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx := NewCommandContext(cmd)
			root := cmdCtx.Cfg.ThemeDir
			if len(args) > 0 {
				root = args[0]
			}
			return runCheck(cmdCtx, root, cmdCtx.EngineLoader())
		},
	}

	cmd.Flags().StringP("format", "f", "", "Report format (workflow|json|markdown|text)")
	cmd.Flags().StringP("output", "o", "", "Write the report to a file instead of stdout")
	cmd.Flags().StringSlice("disable", nil, "Rule categories to skip")

	_ = cmd.RegisterFlagCompletionFunc("format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return config.Formats, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func runCheck(c *CommandContext, root string, load checker.Loader) (err error) {
	cfg := c.Cfg

	var sink io.Writer = c.Renderer.Writer()
	styles := c.Renderer.Styles()
	if cfg.Output != "" {
		fs := report.NewFileSink(cfg.Output)
		defer func() {
			if cerr := fs.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("failed to close output: %w", cerr)
			}
		}()
		sink = fs
		styles = output.PlainStyles()
	}

	enc, err := output.NewReportEncoder(cfg.Format, styles)
	if err != nil {
		return err
	}

	classifier := classify.New(
		classify.WithIgnoreMarkers(cfg.Ignore),
		classify.WithLogger(c.Logger),
	)
	p := pipeline.New(classifier, checker.New(load, c.Logger), enc, c.Logger)

	outcome, err := p.Run(root, sink)
	if err != nil {
		return err
	}

	if cfg.MetricsFile != "" {
		collector := metrics.NewCollector()
		collector.Observe(outcome)
		if err := collector.WriteTextfile(cfg.MetricsFile); err != nil {
			return err
		}
		c.Logger.Debug("metrics written", "path", cfg.MetricsFile)
	}

	if !outcome.Passed {
		return ErrChecksFailed
	}
	if cfg.Verbose {
		c.Renderer.Success(fmt.Sprintf("%s passed all checks", root))
	}
	return nil
}
