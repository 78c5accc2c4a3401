// Package assemble turns a BuildConfig into cmake command lines.
package assemble

import (
	"runtime"
	"strconv"
	"strings"

	"github.com/rgreenblatt/cmake-cli/internal/core/domain"
	"github.com/rgreenblatt/cmake-cli/internal/core/ports"
)

// CMakeCommand is the base executable for both generation and build.
const CMakeCommand = "cmake"

// unbufferCommand forces line-buffered output from cmake so relay stages of
// a multi-stage pipeline see lines as they are produced.
const unbufferCommand = "unbuffer"

// ccacheCommand is the compiler cache probed for launcher injection.
const ccacheCommand = "ccache"

// Assembler composes generation and build command lines from a BuildConfig.
// It is a pure function of the config plus the tool-presence oracle: probing
// only gates flag inclusion and emits advisory warnings, it never fails an
// assembly.
type Assembler struct {
	probe ports.ToolProbe
	cores int
}

// NewAssembler creates an Assembler using the host's logical core count as
// the Makefiles parallelism default.
func NewAssembler(probe ports.ToolProbe) *Assembler {
	return &Assembler{
		probe: probe,
		cores: runtime.NumCPU(),
	}
}

// WithCores overrides the detected core count. Used by tests.
func (a *Assembler) WithCores(cores int) *Assembler {
	a.cores = cores
	return a
}

// Generation assembles the generation command. extra holds per-subcommand
// fixed arguments (e.g. -DCMAKE_EXPORT_COMPILE_COMMANDS=YES); they are
// appended before the config's free-form GenArgs, which always come last.
func (a *Assembler) Generation(cfg domain.BuildConfig, extra ...string) domain.CommandLine {
	cmd := domain.CommandLine{
		CMakeCommand,
		"-G" + cfg.Generator,
		"-B" + cfg.Directory,
		"-DCMAKE_BUILD_TYPE=" + string(cfg.BuildType),
	}

	if cfg.SourceDir != "" {
		cmd = append(cmd, cfg.SourceDir)
	}

	if cfg.CCache && a.probe.ExistsWarn(ccacheCommand) {
		cmd = append(cmd,
			"-DCMAKE_C_COMPILER_LAUNCHER="+ccacheCommand,
			"-DCMAKE_CXX_COMPILER_LAUNCHER="+ccacheCommand,
			"-DCMAKE_CUDA_COMPILER_LAUNCHER="+ccacheCommand,
		)
	}

	switch cfg.TestBuilding {
	case domain.TristateOn:
		cmd = append(cmd, "-DBUILD_TESTING=ON")
	case domain.TristateOff:
		cmd = append(cmd, "-DBUILD_TESTING=OFF")
	case domain.TristateUnset:
	}

	cmd = append(cmd, extra...)
	cmd = append(cmd, strings.Fields(cfg.GenArgs)...)

	return cmd
}

// Build assembles the build command. multiStage reports whether the command
// will be a relay stage of a larger pipeline; only then is the unbuffer
// wrapper considered, since a directly-invoked cmake already writes straight
// to the terminal. extra holds per-subcommand fixed arguments such as
// --target.
func (a *Assembler) Build(cfg domain.BuildConfig, multiStage bool, extra ...string) domain.CommandLine {
	var cmd domain.CommandLine
	if multiStage && a.probe.Exists(unbufferCommand) {
		cmd = domain.CommandLine{unbufferCommand, CMakeCommand}
	} else {
		cmd = domain.CommandLine{CMakeCommand}
	}

	cmd = append(cmd, "--build", cfg.Directory)
	cmd = append(cmd, extra...)
	cmd = append(cmd, strings.Fields(cfg.BuildArgs)...)

	switch {
	case cfg.Threads > 0:
		cmd = append(cmd, "-j", strconv.Itoa(cfg.Threads))
	case cfg.Generator == domain.GeneratorMakefiles:
		// Make runs serially by default; other generators pick their
		// own parallelism.
		cmd = append(cmd, "-j", strconv.Itoa(a.cores))
	}

	if cfg.KeepGoing {
		if kg := domain.KeepGoingArgs(cfg.Generator); kg != nil {
			cmd = append(cmd, "--")
			cmd = append(cmd, kg...)
		}
	}

	return cmd
}
