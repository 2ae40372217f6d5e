// Package commands implements the themecheck subcommands.
package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/themecheck/internal/checker"
	"github.com/leapstack-labs/themecheck/internal/cli/config"
	"github.com/leapstack-labs/themecheck/internal/cli/output"
	"github.com/leapstack-labs/themecheck/pkg/themecheck"
	_ "github.com/leapstack-labs/themecheck/pkg/themecheck/checks" // register built-in checks
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext builds a CommandContext from the values the root
// command stored in the context.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := config.GetConfig(cmd.Context())
	return &CommandContext{
		Cfg:      cfg,
		Logger:   config.GetLogger(cmd.Context()),
		Renderer: output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(cfg.Format)),
	}
}

// LoadOptions returns the engine options selected by the configuration.
func (c *CommandContext) LoadOptions() themecheck.LoadOptions {
	return themecheck.LoadOptions{
		Builtin:  c.Cfg.Engine.Builtin,
		RulesDir: c.Cfg.Engine.RulesDir,
		Disabled: c.Cfg.Engine.Disabled,
		Logger:   c.Logger,
	}
}

// EngineLoader returns the loader for the configured rule engine.
func (c *CommandContext) EngineLoader() checker.Loader {
	return checker.BuiltinLoader(c.LoadOptions())
}
