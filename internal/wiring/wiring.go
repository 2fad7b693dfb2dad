// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/fanout/internal/adapters/cas"
	_ "go.trai.ch/fanout/internal/adapters/config"
	_ "go.trai.ch/fanout/internal/adapters/fs"
	_ "go.trai.ch/fanout/internal/adapters/logger"
	_ "go.trai.ch/fanout/internal/adapters/plugin"
	_ "go.trai.ch/fanout/internal/adapters/shell"
	_ "go.trai.ch/fanout/internal/adapters/telemetry/progrock"
	_ "go.trai.ch/fanout/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/fanout/internal/app"
	_ "go.trai.ch/fanout/internal/engine/builder"
)
