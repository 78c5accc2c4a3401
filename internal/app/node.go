package app

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/rgreenblatt/cmake-cli/internal/adapters/config"
	"github.com/rgreenblatt/cmake-cli/internal/adapters/logger"
	"github.com/rgreenblatt/cmake-cli/internal/adapters/proc"
	"github.com/rgreenblatt/cmake-cli/internal/adapters/stamp"
	"github.com/rgreenblatt/cmake-cli/internal/adapters/syspath"
	"github.com/rgreenblatt/cmake-cli/internal/adapters/watcher"
	"github.com/rgreenblatt/cmake-cli/internal/core/ports"
	"github.com/rgreenblatt/cmake-cli/internal/engine/assemble"
)

// Components bundles everything the CLI entry point needs.
type Components struct {
	App    *App
	Logger ports.Logger
	Loader ports.ConfigLoader
}

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			assemble.NodeID,
			proc.NodeID,
			syspath.NodeID,
			stamp.NodeID,
			watcher.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			assembler, err := graft.Dep[*assemble.Assembler](ctx)
			if err != nil {
				return nil, err
			}

			runner, err := graft.Dep[ports.PipelineRunner](ctx)
			if err != nil {
				return nil, err
			}

			probe, err := graft.Dep[ports.ToolProbe](ctx)
			if err != nil {
				return nil, err
			}

			stamps, err := graft.Dep[ports.StampStore](ctx)
			if err != nil {
				return nil, err
			}

			w, err := graft.Dep[ports.Watcher](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(assembler, runner, probe, stamps, w, log), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			config.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{
				App:    a,
				Logger: log,
				Loader: loader,
			}, nil
		},
	})
}
