// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "swiftwrap/internal/adapters/compiler"
	_ "swiftwrap/internal/adapters/config"
	_ "swiftwrap/internal/adapters/fs"
	_ "swiftwrap/internal/adapters/logger"
	_ "swiftwrap/internal/adapters/outputmap"
	// Register app and engine nodes.
	_ "swiftwrap/internal/app"
	_ "swiftwrap/internal/engine/worker"
)
