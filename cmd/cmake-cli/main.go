// Package main is the entry point for the cmake-cli wrapper.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"github.com/rgreenblatt/cmake-cli/cmd/cmake-cli/commands"
	"github.com/rgreenblatt/cmake-cli/internal/app"
	"github.com/rgreenblatt/cmake-cli/internal/core/domain"
	_ "github.com/rgreenblatt/cmake-cli/internal/wiring"
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, func(), error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stderr, func(ctx context.Context) (*app.Components, func(), error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx)
		return c, func() {}, err
	}))
}

func run(
	ctx context.Context,
	args []string,
	stderr io.Writer,
	provider ComponentProvider,
) int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 1. Initialize application components
	components, _, err := provider(ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		// Write directly to stderr passed in
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return 1
	}

	// 2. Interface - CLI
	cli := commands.New(components.App, components.Loader)
	cli.SetArgs(args)
	cli.SetOutput(os.Stdout, stderr)

	// 3. Execution
	if err := cli.Execute(ctx); err != nil {
		if !errors.Is(err, domain.ErrStageFailed) {
			// A failed pipeline stage already wrote its own diagnostics;
			// everything else is ours to report.
			components.Logger.Error(err)
		}
		return domain.ExitStatus(err)
	}
	return 0
}
