package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/themecheck/internal/cli/output"
	"github.com/leapstack-labs/themecheck/pkg/themecheck"
)

// RulesOptions holds options for the rules command.
type RulesOptions struct {
	Format string // Output format
}

// NewRulesCommand creates the rules command.
func NewRulesCommand() *cobra.Command {
	opts := &RulesOptions{}
	cmd := &cobra.Command{
		Use:   "rules [category]",
		Short: "List the rule categories a check would run",
		Long: `List the rule categories the engine would run with the current
configuration: built-in checks, Starlark rules from --rules-dir, minus any
disabled categories.

Output adapts to environment:
  - Terminal: Table
  - Piped/Scripted: Markdown format
  - JSON: Machine-readable format`,
		Example: `  # List all categories
  themecheck rules

  # Include custom rules
  themecheck rules --rules-dir ./rules

  # Show one category
  themecheck rules Bad_Checks

  # Output as JSON
  themecheck rules --format json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx := NewCommandContext(cmd)
			r := cmdCtx.Renderer

			// Override renderer if format flag is set
			if opts.Format != "" {
				r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(opts.Format))
			}

			engine, err := themecheck.Load(cmdCtx.LoadOptions())
			if err != nil {
				return err
			}
			if len(args) > 0 {
				return showRule(r, engine.Checks(), args[0])
			}
			return listRules(r, engine.Checks())
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, json, markdown")

	return cmd
}

func listRules(r *output.Renderer, checks []themecheck.CheckInfo) error {
	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(map[string]any{"checks": checks})
	case output.ModeMarkdown:
		listRulesMarkdown(r, checks)
	default:
		listRulesText(r, checks)
	}
	return nil
}

func listRulesText(r *output.Renderer, checks []themecheck.CheckInfo) {
	styles := r.Styles()

	r.Println("")
	r.Println(styles.Header1.Render(fmt.Sprintf("Rule Categories (%d)", len(checks))))
	r.Println("")

	rows := make([][]string, 0, len(checks))
	for _, c := range checks {
		rows = append(rows, []string{c.Category, c.Source, c.Description})
	}
	r.Table([]string{"Category", "Source", "Description"}, rows)
}

func listRulesMarkdown(r *output.Renderer, checks []themecheck.CheckInfo) {
	r.Printf("# Rule Categories (%d)\n\n", len(checks))
	r.Println("| Category | Source | Description |")
	r.Println("|----------|--------|-------------|")
	for _, c := range checks {
		r.Printf("| %s | %s | %s |\n", c.Category, c.Source, escapePipes(c.Description))
	}
}

func showRule(r *output.Renderer, checks []themecheck.CheckInfo, category string) error {
	var info *themecheck.CheckInfo
	for i := range checks {
		if checks[i].Category == category {
			info = &checks[i]
			break
		}
	}
	if info == nil {
		return fmt.Errorf("rule category %q not found", category)
	}

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(info)
	case output.ModeMarkdown:
		r.Printf("# %s\n\n", info.Category)
		r.Printf("**Source:** %s\n", info.Source)
		if info.Path != "" {
			r.Printf("**Path:** `%s`\n", info.Path)
		}
		if info.Description != "" {
			r.Printf("\n%s\n", info.Description)
		}
	default:
		styles := r.Styles()
		r.Println(styles.Header1.Render(info.Category))
		r.Println(styles.Muted.Render("source: " + info.Source))
		if info.Path != "" {
			r.Println(styles.Muted.Render("path:   " + info.Path))
		}
		if info.Description != "" {
			r.Println("")
			r.Println(info.Description)
		}
	}
	return nil
}

func escapePipes(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
