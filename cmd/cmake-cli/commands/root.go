// Package commands implements the CLI commands for cmake-cli.
package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/rgreenblatt/cmake-cli/internal/app"
	"github.com/rgreenblatt/cmake-cli/internal/build"
	"github.com/rgreenblatt/cmake-cli/internal/core/domain"
	"github.com/rgreenblatt/cmake-cli/internal/core/ports"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// CLI represents the command line interface for cmake-cli.
type CLI struct {
	app     Application
	loader  ports.ConfigLoader
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Build(ctx context.Context, cfg domain.BuildConfig, opts app.BuildOptions) error
	CompileCommands(ctx context.Context, cfg domain.BuildConfig) error
	Clean(ctx context.Context) error
	Format(ctx context.Context) error
	StagedFormatted(ctx context.Context) error
	Watch(ctx context.Context, cfg domain.BuildConfig, opts app.BuildOptions) error
}

// New creates a new CLI instance with the given app and defaults loader.
func New(a Application, loader ports.ConfigLoader) *CLI {
	rootCmd := &cobra.Command{
		Use:           "cmake-cli",
		Short:         "Simple and extensible cmake wrapper",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().String("generator", domain.GeneratorNinja, "cmake generator (Ninja, Unix Makefiles, ...)")
	rootCmd.PersistentFlags().BoolP("pager", "p", false, "page output")
	rootCmd.PersistentFlags().BoolP("no-pager", "P", false, "don't page output")
	rootCmd.PersistentFlags().Bool("ccache", false, "use ccache")
	rootCmd.PersistentFlags().Bool("no-ccache", false, "don't use ccache")
	rootCmd.PersistentFlags().IntP("threads", "j", 0, "set num threads")
	rootCmd.PersistentFlags().BoolP("keep-going", "k", false, "keep going after build failure")
	rootCmd.PersistentFlags().String("source-dir", "", "source directory")

	c := &CLI{
		app:     a,
		loader:  loader,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		return c.applyProjectDefaults(cmd)
	}

	rootCmd.AddCommand(c.newBuildCmd())
	rootCmd.AddCommand(c.newCompileCommandsCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newFormatCmd())
	rootCmd.AddCommand(c.newStagedFormattedCmd())
	rootCmd.AddCommand(c.newWatchCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// applyProjectDefaults merges the .cmake-cli.yaml defaults into flags the
// user did not pass explicitly. A missing defaults file is a no-op.
func (c *CLI) applyProjectDefaults(cmd *cobra.Command) error {
	if c.loader == nil {
		return nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return err
	}
	defaults, err := c.loader.Load(cwd)
	if err != nil {
		return err
	}

	flags := cmd.Root().PersistentFlags()
	if defaults.Generator != nil && !flags.Changed("generator") {
		_ = flags.Set("generator", *defaults.Generator)
	}
	if defaults.Pager != nil && !flags.Changed("pager") && !flags.Changed("no-pager") {
		_ = flags.Set("pager", strconv.FormatBool(*defaults.Pager))
	}
	if defaults.CCache != nil && !flags.Changed("ccache") && !flags.Changed("no-ccache") {
		_ = flags.Set("ccache", strconv.FormatBool(*defaults.CCache))
	}
	if defaults.Threads != nil && !flags.Changed("threads") {
		_ = flags.Set("threads", strconv.Itoa(*defaults.Threads))
	}
	if defaults.KeepGoing != nil && !flags.Changed("keep-going") {
		_ = flags.Set("keep-going", strconv.FormatBool(*defaults.KeepGoing))
	}
	if defaults.SourceDir != nil && !flags.Changed("source-dir") {
		_ = flags.Set("source-dir", *defaults.SourceDir)
	}
	return nil
}

// pairedBool resolves a --foo/--no-foo flag pair. The negative flag wins
// when both are passed.
func pairedBool(flags *pflag.FlagSet, pos, neg string) bool {
	if flags.Changed(neg) {
		return false
	}
	v, _ := flags.GetBool(pos)
	return v
}

// pairedTristate resolves a --foo/--no-foo pair that distinguishes "neither
// passed" from an explicit choice.
func pairedTristate(flags *pflag.FlagSet, pos, neg string) domain.Tristate {
	switch {
	case flags.Changed(neg):
		return domain.TristateOff
	case flags.Changed(pos):
		return domain.TristateOn
	default:
		return domain.TristateUnset
	}
}

// baseConfig reads the persistent flags shared by every build-like command.
func baseConfig(cmd *cobra.Command) domain.BuildConfig {
	flags := cmd.Flags()
	generator, _ := flags.GetString("generator")
	threads, _ := flags.GetInt("threads")
	keepGoing, _ := flags.GetBool("keep-going")
	sourceDir, _ := flags.GetString("source-dir")

	return domain.BuildConfig{
		Generator: generator,
		SourceDir: sourceDir,
		CCache:    pairedBool(flags, "ccache", "no-ccache"),
		Threads:   threads,
		KeepGoing: keepGoing,
		Paginate:  pairedBool(flags, "pager", "no-pager"),
	}
}
