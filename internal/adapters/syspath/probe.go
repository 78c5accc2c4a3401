// Package syspath implements the tool-presence oracle over exec.LookPath.
package syspath

import (
	"os/exec"

	"github.com/rgreenblatt/cmake-cli/internal/core/ports"
)

// pagerCandidates are probed in order; the first whose executable resolves
// wins. less keeps color escapes, bat is asked for plain output.
var pagerCandidates = [][]string{
	{"less", "-R"},
	{"bat", "-p"},
	{"more"},
}

// Probe implements ports.ToolProbe by resolving executables on PATH.
type Probe struct {
	logger ports.Logger
	look   func(name string) (string, error)
}

// NewProbe creates a new Probe with the given logger.
func NewProbe(logger ports.Logger) *Probe {
	return &Probe{
		logger: logger,
		look:   exec.LookPath,
	}
}

// NewProbeWithLookup creates a Probe with a custom lookup function. Used by
// tests to simulate missing tools.
func NewProbeWithLookup(logger ports.Logger, look func(name string) (string, error)) *Probe {
	return &Probe{
		logger: logger,
		look:   look,
	}
}

// Exists reports whether the named executable resolves on PATH.
func (p *Probe) Exists(name string) bool {
	_, err := p.look(name)
	return err == nil
}

// ExistsWarn is like Exists but logs a warning when the tool is absent.
func (p *Probe) ExistsWarn(name string) bool {
	if p.Exists(name) {
		return true
	}
	p.logger.Warn(name + " not found in PATH")
	return false
}

// Pager returns the first available pager invocation, or nil if none of the
// candidates is installed.
func (p *Probe) Pager() []string {
	for _, pager := range pagerCandidates {
		if p.Exists(pager[0]) {
			return pager
		}
	}
	return nil
}
