package commands

import (
	"path/filepath"

	"github.com/rgreenblatt/cmake-cli/internal/app"
	"github.com/rgreenblatt/cmake-cli/internal/core/domain"
	"github.com/spf13/cobra"
)

// addBuildFlags registers the flags shared by build-like commands.
func addBuildFlags(cmd *cobra.Command) {
	cmd.Flags().String("directory", "", "force specific directory")
	cmd.Flags().Bool("release", false, "optimized build")
	cmd.Flags().Bool("debug", false, "unoptimized build (default)")
	cmd.Flags().Bool("debug-info", true, "keep debug info (default)")
	cmd.Flags().Bool("no-debug-info", false, "strip debug info")
	cmd.Flags().Bool("build-testing", false, "set BUILD_TESTING=ON")
	cmd.Flags().Bool("no-build-testing", false, "set BUILD_TESTING=OFF")
	cmd.Flags().String("gen-args", "", "additional arguments for cmake generation")
	cmd.Flags().String("build-args", "", "additional arguments for cmake building")
	cmd.Flags().Bool("skip-gen", false, "don't generate, assume already generated")
}

// buildConfig reads the build-like flags into a full configuration. It is
// fatal to ask for a Debug build without debug info.
func buildConfig(cmd *cobra.Command) (domain.BuildConfig, error) {
	cfg := baseConfig(cmd)
	flags := cmd.Flags()

	release := pairedBool(flags, "release", "debug")
	debugInfo := pairedBool(flags, "debug-info", "no-debug-info")

	buildType, err := domain.ResolveBuildType(release, debugInfo)
	if err != nil {
		return domain.BuildConfig{}, err
	}
	cfg.BuildType = buildType

	cfg.Directory, _ = flags.GetString("directory")
	if cfg.Directory == "" {
		base := "debug"
		if release {
			base = "release"
		}
		cfg.Directory = filepath.Join(domain.DefaultBuildDir, base)
	}

	cfg.TestBuilding = pairedTristate(flags, "build-testing", "no-build-testing")
	cfg.GenArgs, _ = flags.GetString("gen-args")
	cfg.BuildArgs, _ = flags.GetString("build-args")
	cfg.SkipGen, _ = flags.GetBool("skip-gen")

	return cfg, nil
}

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the project",
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

			return c.app.Build(cmd.Context(), cfg, opts)
		},
	}
	addBuildFlags(cmd)
	cmd.Flags().String("target", "", "cmake target")
	return cmd
}
