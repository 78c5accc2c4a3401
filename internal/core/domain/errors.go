package domain

import "go.trai.ch/zerr"

var (
	// ErrDebugWithoutDebugInfo is returned when a debug build is requested
	// without keeping debug info, which is contradictory.
	ErrDebugWithoutDebugInfo = zerr.New("a Debug build requires debug info, use --release with --no-debug-info instead")

	// ErrEmptyPipeline is returned when a pipeline with no stages is run.
	ErrEmptyPipeline = zerr.New("pipeline has no stages")

	// ErrEmptyCommand is returned when a pipeline stage has no argv tokens.
	ErrEmptyCommand = zerr.New("pipeline stage has an empty command")

	// ErrStageFailed is the sentinel wrapped by StageExitError.
	ErrStageFailed = zerr.New("pipeline stage failed")

	// ErrStageLaunchFailed is returned when a stage cannot even be spawned.
	ErrStageLaunchFailed = zerr.New("failed to launch pipeline stage")

	// ErrMissingTools is returned when required external tools are absent.
	ErrMissingTools = zerr.New("required tools not found in PATH")

	// ErrConfigReadFailed is returned when the defaults file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read defaults file")

	// ErrConfigParseFailed is returned when the defaults file is malformed.
	ErrConfigParseFailed = zerr.New("failed to parse defaults file")

	// ErrStampWriteFailed is returned when the generation stamp cannot be written.
	ErrStampWriteFailed = zerr.New("failed to write generation stamp")

	// ErrSymlinkFailed is returned when the compile_commands.json link
	// cannot be created.
	ErrSymlinkFailed = zerr.New("failed to symlink compile_commands.json")

	// ErrCleanFailed is returned when removing the build tree fails.
	ErrCleanFailed = zerr.New("failed to remove build directory")

	// ErrWatchFailed is returned when the file watcher cannot be started.
	ErrWatchFailed = zerr.New("failed to watch source tree")
)
