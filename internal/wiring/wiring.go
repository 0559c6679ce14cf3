// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/evalrs/internal/adapters/cache"
	_ "go.trai.ch/evalrs/internal/adapters/cargo"
	_ "go.trai.ch/evalrs/internal/adapters/config"
	_ "go.trai.ch/evalrs/internal/adapters/logger"
	_ "go.trai.ch/evalrs/internal/adapters/shell"
	// Register app and engine nodes.
	_ "go.trai.ch/evalrs/internal/app"
	_ "go.trai.ch/evalrs/internal/engine/evaluator"
)
