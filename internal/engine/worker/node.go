package worker

import (
	"context"
	"os"

	"github.com/grindlemire/graft"

	"swiftwrap/internal/adapters/compiler"
	"swiftwrap/internal/adapters/fs"
	"swiftwrap/internal/adapters/logger"
	"swiftwrap/internal/adapters/outputmap"
	"swiftwrap/internal/core/ports"
)

const (
	// ProcessorNodeID is the unique identifier for the Processor Graft node.
	ProcessorNodeID graft.ID = "engine.worker.processor"
	// ServerNodeID is the unique identifier for the Server Graft node.
	ServerNodeID graft.ID = "engine.worker.server"
)

func init() {
	graft.Register(graft.Node[*Processor]{
		ID:        ProcessorNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			outputmap.FactoryNodeID,
			compiler.NodeID,
			fs.ReconcilerNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Processor, error) {
			maps, err := graft.Dep[*outputmap.Factory](ctx)
			if err != nil {
				return nil, err
			}
			runner, err := graft.Dep[ports.Runner](ctx)
			if err != nil {
				return nil, err
			}
			reconciler, err := graft.Dep[*fs.Reconciler](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewProcessor(maps, runner, reconciler, log), nil
		},
	})

	graft.Register(graft.Node[*Server]{
		ID:        ServerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{ProcessorNodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Server, error) {
			processor, err := graft.Dep[*Processor](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewServer(processor, log, os.Stdin, os.Stdout), nil
		},
	})
}
