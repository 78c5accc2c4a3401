package commands

import (
	"github.com/rgreenblatt/cmake-cli/internal/app"
	"github.com/spf13/cobra"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Build, then rebuild whenever the source tree changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := buildConfig(cmd)
			if err != nil {
				return err
			}

			var opts app.BuildOptions
			if target, _ := cmd.Flags().GetString("target"); target != "" {
				opts.ExtraBuildArgs = []string{"--target", target}
			}

			return c.app.Watch(cmd.Context(), cfg, opts)
		},
	}
	addBuildFlags(cmd)
	cmd.Flags().String("target", "", "cmake target")
	return cmd
}
