// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/rgreenblatt/cmake-cli/internal/adapters/config"
	_ "github.com/rgreenblatt/cmake-cli/internal/adapters/logger"
	_ "github.com/rgreenblatt/cmake-cli/internal/adapters/proc"
	_ "github.com/rgreenblatt/cmake-cli/internal/adapters/stamp"
	_ "github.com/rgreenblatt/cmake-cli/internal/adapters/syspath"
	_ "github.com/rgreenblatt/cmake-cli/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "github.com/rgreenblatt/cmake-cli/internal/app"
	_ "github.com/rgreenblatt/cmake-cli/internal/engine/assemble"
)
