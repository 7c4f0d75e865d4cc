// Package app implements the application layer for swiftwrap.
package app

import (
	"context"

	"go.trai.ch/zerr"

	"swiftwrap/internal/adapters/outputmap"
	"swiftwrap/internal/core/domain"
	"swiftwrap/internal/core/ports"
	"swiftwrap/internal/engine/worker"
)

// App represents the main application logic.
type App struct {
	processor *worker.Processor
	server    *worker.Server
	maps      *outputmap.Factory
	logger    ports.Logger
}

// New creates a new App instance.
func New(processor *worker.Processor, server *worker.Server, maps *outputmap.Factory, logger ports.Logger) *App {
	return &App{
		processor: processor,
		server:    server,
		maps:      maps,
		logger:    logger,
	}
}

// Compile processes a single compilation request built from the given
// compiler arguments. The response carries the compiler's exit code and
// combined diagnostics.
func (a *App) Compile(ctx context.Context, args []string) domain.WorkResponse {
	return a.processor.Process(ctx, domain.WorkRequest{Arguments: args})
}

// Worker runs the persistent worker loop until stdin closes or the
// context is canceled. extraArgs are prepended to every request.
func (a *App) Worker(ctx context.Context, extraArgs []string) error {
	return a.server.Serve(ctx, extraArgs)
}

// Rewrite loads and rewrites the output file map at inPath, optionally
// persists the rewritten document to outPath, and returns the relocation
// table.
func (a *App) Rewrite(inPath, outPath string) (*domain.IncrementalOutputs, error) {
	m := a.maps.NewMap()
	if err := m.ReadFromPath(inPath); err != nil {
		return nil, zerr.Wrap(err, "failed to rewrite output file map")
	}
	if outPath != "" {
		if err := m.WriteToPath(outPath); err != nil {
			return nil, zerr.Wrap(err, "failed to persist rewritten output file map")
		}
	}
	return m.IncrementalOutputs(), nil
}
