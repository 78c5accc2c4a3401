// Package domain holds the core types for composing cmake invocations.
package domain

// File and directory permissions used across adapters.
const (
	// DirPerm is the permission used when creating directories.
	DirPerm = 0o750
	// FilePerm is the permission used when creating files.
	FilePerm = 0o600
)

// DefaultBuildDir is the base directory for generated build trees.
const DefaultBuildDir = "build"

// Recognized generator dialects. Any other generator string is passed to
// cmake verbatim; it just gets no parallelism default and no keep-going flag.
const (
	// GeneratorNinja is the Ninja generator.
	GeneratorNinja = "Ninja"
	// GeneratorMakefiles is the Unix Makefiles generator.
	GeneratorMakefiles = "Unix Makefiles"
)

// BuildType is the CMAKE_BUILD_TYPE value of a configuration.
type BuildType string

const (
	// BuildTypeDebug is an unoptimized build with debug info.
	BuildTypeDebug BuildType = "Debug"
	// BuildTypeRelease is an optimized build without debug info.
	BuildTypeRelease BuildType = "Release"
	// BuildTypeRelWithDebInfo is an optimized build that keeps debug info.
	BuildTypeRelWithDebInfo BuildType = "RelWithDebInfo"
)

// ResolveBuildType derives the build type from the release and debug-info
// toggles. A debug build without debug info is contradictory and rejected
// here, before any command is assembled.
func ResolveBuildType(release, debugInfo bool) (BuildType, error) {
	switch {
	case release && debugInfo:
		return BuildTypeRelWithDebInfo, nil
	case release:
		return BuildTypeRelease, nil
	case debugInfo:
		return BuildTypeDebug, nil
	default:
		return "", ErrDebugWithoutDebugInfo
	}
}

// KeepGoingArgs returns the generator-specific spelling of "keep going after
// a failure", to be passed through to the native build tool. Generators
// without a known spelling return nil; keep-going is silently unsupported
// for them.
func KeepGoingArgs(generator string) []string {
	switch generator {
	case GeneratorMakefiles:
		return []string{"-k"}
	case GeneratorNinja:
		return []string{"-k", "0"}
	default:
		return nil
	}
}

// Tristate is a flag value that distinguishes "explicitly off" from "never
// set". Unset means the flag is not passed at all.
type Tristate int

const (
	// TristateUnset means the flag was never set.
	TristateUnset Tristate = iota
	// TristateOn means the flag was explicitly enabled.
	TristateOn
	// TristateOff means the flag was explicitly disabled.
	TristateOff
)

// BuildConfig describes one generate-and-build invocation. It is constructed
// fresh per subcommand from parsed flags and never mutated afterwards; every
// optional field has an explicit unset representation (empty string, zero
// threads, TristateUnset) so consumers only ever ask "what is the value",
// never "does the field exist".
type BuildConfig struct {
	// Generator is the cmake generator name, selecting the flag dialect.
	Generator string
	// Directory is the build tree the generation writes into.
	Directory string
	// SourceDir is the project root to configure from. Empty means omitted.
	SourceDir string
	// BuildType is derived once via ResolveBuildType.
	BuildType BuildType
	// TestBuilding controls -DBUILD_TESTING. Unset passes no flag.
	TestBuilding Tristate
	// CCache requests compiler-launcher overrides when ccache is present.
	CCache bool
	// Threads is the -j value. Zero means unset: the Makefiles generator
	// then defaults to the host core count, others get no -j at all.
	Threads int
	// KeepGoing requests the generator's keep-going spelling.
	KeepGoing bool
	// GenArgs are free-form extra generation arguments, whitespace-split
	// and appended last.
	GenArgs string
	// BuildArgs are free-form extra build arguments, whitespace-split.
	BuildArgs string
	// SkipGen skips the generation command.
	SkipGen bool
	// SkipBuild skips the build pipeline.
	SkipBuild bool
	// Paginate pages the build output through the best available pager.
	Paginate bool
}

// CFamilyExtensions are the file extensions the format subcommands operate on.
var CFamilyExtensions = []string{
	"C", "cc", "cpp", "cxx", "c++", "h", "H", "hh", "hpp", "hxx",
	"h++", "c", "cu", "cuh",
}
