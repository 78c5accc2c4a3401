// Package ports defines the core interfaces for the application.
package ports

// ToolProbe answers whether an executable is resolvable on the system path.
// Probing is advisory: a missing optional tool gates flag inclusion, it never
// aborts a run.
//
//go:generate mockgen -source=toolprobe.go -destination=mocks/mock_toolprobe.go -package=mocks
type ToolProbe interface {
	// Exists reports whether the named executable resolves on PATH.
	Exists(name string) bool

	// ExistsWarn is like Exists but logs a warning when the tool is absent.
	ExistsWarn(name string) bool

	// Pager returns the first available pager invocation out of the
	// candidate list, or nil if none is installed.
	Pager() []string
}
