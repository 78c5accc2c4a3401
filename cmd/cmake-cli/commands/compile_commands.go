package commands

import (
	"path/filepath"

	"github.com/rgreenblatt/cmake-cli/internal/core/domain"
	"github.com/spf13/cobra"
)

func (c *CLI) newCompileCommandsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compile-commands",
		Short: "Generate compile_commands.json",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := baseConfig(cmd)
			flags := cmd.Flags()

			// The compilation database does not care about optimization,
			// so the build type is pinned.
			cfg.BuildType = domain.BuildTypeDebug

			cfg.Directory, _ = flags.GetString("directory")
			if cfg.Directory == "" {
				cfg.Directory = filepath.Join(domain.DefaultBuildDir, "compile_commands_dir")
			}
			cfg.GenArgs, _ = flags.GetString("gen-args")
			cfg.SkipGen, _ = flags.GetBool("skip-gen")

			return c.app.CompileCommands(cmd.Context(), cfg)
		},
	}
	cmd.Flags().String("directory", "", "force specific directory")
	cmd.Flags().String("gen-args", "", "additional arguments for cmake generation")
	cmd.Flags().Bool("skip-gen", false, "don't generate, assume already generated")
	return cmd
}
