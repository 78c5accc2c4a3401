// Package app implements the application layer for cmake-cli.
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rgreenblatt/cmake-cli/internal/adapters/detector"
	"github.com/rgreenblatt/cmake-cli/internal/adapters/watcher"
	"github.com/rgreenblatt/cmake-cli/internal/core/domain"
	"github.com/rgreenblatt/cmake-cli/internal/core/ports"
	"github.com/rgreenblatt/cmake-cli/internal/engine/assemble"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	assembler  *assemble.Assembler
	runner     ports.PipelineRunner
	probe      ports.ToolProbe
	stamps     ports.StampStore
	watcher    ports.Watcher
	logger     ports.Logger
	isTerminal func() bool
}

// New creates a new App instance.
func New(
	assembler *assemble.Assembler,
	runner ports.PipelineRunner,
	probe ports.ToolProbe,
	stamps ports.StampStore,
	w ports.Watcher,
	log ports.Logger,
) *App {
	return &App{
		assembler:  assembler,
		runner:     runner,
		probe:      probe,
		stamps:     stamps,
		watcher:    w,
		logger:     log,
		isTerminal: detector.StdoutIsTerminal,
	}
}

// WithTerminalCheck overrides TTY detection. Used by tests.
func (a *App) WithTerminalCheck(check func() bool) *App {
	a.isTerminal = check
	return a
}

// BuildOptions are the per-subcommand fixed arguments merged into the
// assembled commands ahead of the config's free-form args.
type BuildOptions struct {
	// ExtraGenArgs are appended to the generation command, e.g.
	// -DCMAKE_EXPORT_COMPILE_COMMANDS=YES.
	ExtraGenArgs []string
	// ExtraBuildArgs are appended to the build command, e.g. --target.
	ExtraBuildArgs []string
}

// Build assembles and runs the generation command and the build pipeline
// for the given configuration. Either phase can be skipped; skipping both is
// a warned no-op.
func (a *App) Build(ctx context.Context, cfg domain.BuildConfig, opts BuildOptions) error {
	if cfg.SkipGen && cfg.SkipBuild {
		a.logger.Warn("no commands will be run as generation and build were both skipped")
		return nil
	}

	genCmd := a.assembler.Generation(cfg, opts.ExtraGenArgs...)

	var tail []domain.CommandLine
	if cfg.Paginate {
		tail = a.pagerStage()
	}

	buildCmd := a.assembler.Build(cfg, len(tail) > 0, opts.ExtraBuildArgs...)

	if cfg.SkipGen {
		a.warnOnStaleStamp(cfg.Directory, genCmd)
	} else {
		if err := a.runner.Run(ctx, domain.Pipeline{genCmd}); err != nil {
			return err
		}
		if err := a.stamps.Put(cfg.Directory, genCmd); err != nil {
			// The stamp only backs an advisory warning; failing to
			// write it must not fail the build.
			a.logger.Warn("could not record generation stamp: " + err.Error())
		}
	}

	if cfg.SkipBuild {
		return nil
	}

	pipeline := append(domain.Pipeline{buildCmd}, tail...)
	return a.runner.Run(ctx, pipeline)
}

// pagerStage returns the pager pipeline stage, or nil when paging is not
// possible: no pager installed, or stdout is not a terminal.
func (a *App) pagerStage() []domain.CommandLine {
	if !a.isTerminal() {
		return nil
	}
	pager := a.probe.Pager()
	if pager == nil {
		a.logger.Warn("no pager found in PATH, output will not be paged")
		return nil
	}
	return []domain.CommandLine{domain.CommandLine(pager)}
}

// warnOnStaleStamp warns when a --skip-gen run would have generated a
// different command than the one that last configured the build tree.
func (a *App) warnOnStaleStamp(directory string, genCmd domain.CommandLine) {
	stored, err := a.stamps.Get(directory)
	if err != nil || stored == "" {
		return
	}
	if stored != a.stamps.Digest(genCmd) {
		a.logger.Warn("generation flags changed since " + directory + " was configured, rerun without --skip-gen")
	}
}

// CompileCommandsLink is the symlink created in the working directory.
const CompileCommandsLink = "compile_commands.json"

// CompileCommands generates a build tree with an exported compilation
// database and symlinks it into the working directory. An existing link (or
// file) is left alone.
func (a *App) CompileCommands(ctx context.Context, cfg domain.BuildConfig) error {
	cfg.SkipBuild = true

	err := a.Build(ctx, cfg, BuildOptions{
		ExtraGenArgs: []string{"-DCMAKE_EXPORT_COMPILE_COMMANDS=YES"},
	})
	if err != nil {
		return err
	}

	if _, err := os.Lstat(CompileCommandsLink); err == nil {
		a.logger.Info(CompileCommandsLink + " exists - not overriding")
		return nil
	}

	target := filepath.Join(cfg.Directory, CompileCommandsLink)
	if err := os.Symlink(target, CompileCommandsLink); err != nil {
		return zerr.Wrap(err, domain.ErrSymlinkFailed.Error())
	}
	return nil
}

// Clean removes the build tree.
func (a *App) Clean(_ context.Context) error {
	a.logger.Info("removing " + domain.DefaultBuildDir + "...")
	if err := os.RemoveAll(domain.DefaultBuildDir); err != nil {
		return zerr.Wrap(err, domain.ErrCleanFailed.Error())
	}
	a.logger.Info("removed " + domain.DefaultBuildDir)
	return nil
}

// Format rewrites all C-family files in place with clang-format. The file
// list is composed dynamically by fd, so this one command intentionally goes
// through a shell.
func (a *App) Format(ctx context.Context) error {
	if err := a.checkNeeded("can't format", "bash", "clang-format", "fd"); err != nil {
		return err
	}

	return a.runner.Run(ctx, domain.Pipeline{
		{"bash", "-c", "clang-format -i $(" + findCFamilyFiles() + ")"},
	})
}

// StagedFormatted exits non-zero when any staged C-family file needs
// formatting. Like Format, it composes its file list through a shell.
func (a *App) StagedFormatted(ctx context.Context) error {
	if err := a.checkNeeded("can't check staged files", "bash", "clang-format", "git", "fd"); err != nil {
		return err
	}

	return a.runner.Run(ctx, domain.Pipeline{
		{"bash", "-c", "clang-format --dry-run --Werror $(" + findStagedCFamilyFiles() + ")"},
	})
}

// Watch runs a build, then watches the source tree and rebuilds on change
// until the context is canceled. Build failures are logged and watching
// continues; only watcher failures end the loop.
func (a *App) Watch(ctx context.Context, cfg domain.BuildConfig, opts BuildOptions) error {
	a.buildAndReport(ctx, cfg, opts)

	root := cfg.SourceDir
	if root == "" {
		root = "."
	}

	if err := a.watcher.Start(ctx, root); err != nil {
		return err
	}
	defer func() { _ = a.watcher.Stop() }()

	rebuild := make(chan []string, 1)
	debouncer := watcher.NewDebouncer(watcher.DefaultDebounceWindow, func(paths []string) {
		select {
		case rebuild <- paths:
		default:
			// A rebuild is already queued; the pending one covers
			// these paths too.
		}
	})

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		for event := range a.watcher.Events() {
			debouncer.Add(event.Path)
		}
		return nil
	})

	g.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return nil
			case paths := <-rebuild:
				a.logger.Info(fmt.Sprintf("%d file(s) changed, rebuilding", len(paths)))
				a.buildAndReport(ctx, cfg, opts)
			}
		}
	})

	return g.Wait()
}

// buildAndReport runs a build and logs failures instead of returning them,
// unless the context itself is done.
func (a *App) buildAndReport(ctx context.Context, cfg domain.BuildConfig, opts BuildOptions) {
	if err := a.Build(ctx, cfg, opts); err != nil && ctx.Err() == nil {
		a.logger.Error(err)
	}
}

// checkNeeded verifies that all required tools resolve on PATH and returns
// a fatal error naming the missing ones otherwise.
func (a *App) checkNeeded(what string, needed ...string) error {
	var missing []string
	for _, tool := range needed {
		if !a.probe.Exists(tool) {
			missing = append(missing, tool)
		}
	}
	if len(missing) > 0 {
		return zerr.With(
			zerr.Wrap(domain.ErrMissingTools, what),
			"missing", strings.Join(missing, ", "))
	}
	return nil
}

// findCFamilyFiles composes the fd invocation listing every C-family file,
// honoring ignore files.
func findCFamilyFiles() string {
	parts := make([]string, 0, len(domain.CFamilyExtensions)+1)
	parts = append(parts, "fd")
	for _, ext := range domain.CFamilyExtensions {
		parts = append(parts, "-e "+ext)
	}
	return strings.Join(parts, " ")
}

// findStagedCFamilyFiles composes the git/fd chain listing staged C-family
// files. fd re-filters the git output so ignore files still apply.
func findStagedCFamilyFiles() string {
	globs := make([]string, 0, len(domain.CFamilyExtensions))
	for _, ext := range domain.CFamilyExtensions {
		globs = append(globs, `"*.`+ext+`"`)
	}
	return "git diff --cached --name-only --diff-filter=ACMR " +
		strings.Join(globs, " ") +
		" | xargs --no-run-if-empty -n 1 fd --fixed-strings --full-path"
}
