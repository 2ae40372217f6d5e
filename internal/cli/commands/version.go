package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/themecheck/internal/report"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display themecheck version and report wire format information.`,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "themecheck v%s\n", version)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Report wire format v%d\n", report.WireVersion)
		},
	}
}
