package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newFormatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "format",
		Short: "Format C-family files in place with clang-format",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Format(cmd.Context())
		},
	}
}

func (c *CLI) newStagedFormattedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "staged-is-formatted",
		Short: "Fail if staged C-family files need formatting",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.StagedFormatted(cmd.Context())
		},
	}
}
