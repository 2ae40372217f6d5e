package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leapstack-labs/themecheck/internal/cli/config"
	"github.com/leapstack-labs/themecheck/internal/cli/output"
	"github.com/leapstack-labs/themecheck/internal/cli/testutil"
	ttestutil "github.com/leapstack-labs/themecheck/internal/testutil"
)

// newTestContext returns a CommandContext with captured output.
func newTestContext(t *testing.T, cfg *config.Config, mode output.OutputMode) (*CommandContext, *testutil.TestRenderer) {
	t.Helper()
	if cfg == nil {
		cfg = config.Default()
	}
	tr := testutil.NewTestRenderer(mode, false)
	return &CommandContext{
		Cfg:      cfg,
		Logger:   ttestutil.NewTestLogger(t),
		Renderer: tr.Renderer,
	}, tr
}

func TestNewCheckCommand(t *testing.T) {
	cmd := NewCheckCommand()

	assert.Equal(t, "check [dir]", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotEmpty(t, cmd.Example, "Example should not be empty")

	flags := []string{"format", "output", "disable"}
	for _, flag := range flags {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %q should exist", flag)
	}
	assert.Equal(t, "f", cmd.Flags().Lookup("format").Shorthand)
	assert.Equal(t, "o", cmd.Flags().Lookup("output").Shorthand)
}

func TestCommandContext_LoadOptions(t *testing.T) {
	cfg := config.Default()
	cfg.Engine.RulesDir = "./rules"
	cfg.Engine.Disabled = []string{"File_Checks"}

	c, _ := newTestContext(t, cfg, output.ModeAuto)
	opts := c.LoadOptions()

	assert.True(t, opts.Builtin)
	assert.Equal(t, "./rules", opts.RulesDir)
	assert.Equal(t, []string{"File_Checks"}, opts.Disabled)
	assert.NotNil(t, opts.Logger)
	assert.NotNil(t, c.EngineLoader())
}
