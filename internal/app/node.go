package app

import (
	"context"

	"github.com/grindlemire/graft"

	"swiftwrap/internal/adapters/logger"
	"swiftwrap/internal/adapters/outputmap"
	"swiftwrap/internal/core/ports"
	"swiftwrap/internal/engine/worker"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components
	// Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			worker.ProcessorNodeID,
			worker.ServerNodeID,
			outputmap.FactoryNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			processor, err := graft.Dep[*worker.Processor](ctx)
			if err != nil {
				return nil, err
			}
			server, err := graft.Dep[*worker.Server](ctx)
			if err != nil {
				return nil, err
			}
			maps, err := graft.Dep[*outputmap.Factory](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(processor, server, maps, log), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{AppNodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewComponents(application, log), nil
		},
	})
}
