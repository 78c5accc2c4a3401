// Package detector provides environment detection for pager gating.
package detector

import (
	"os"

	"golang.org/x/term"
)

// StdoutIsTerminal reports whether stdout is an interactive terminal. Paging
// build output only makes sense when a human is watching; in CI or when the
// output is already redirected, the pager stage is skipped even if requested.
func StdoutIsTerminal() bool {
	if ci := os.Getenv("CI"); ci == "true" || ci == "1" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}
