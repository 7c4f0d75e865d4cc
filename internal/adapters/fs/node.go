package fs

import (
	"context"

	"github.com/grindlemire/graft"

	"swiftwrap/internal/adapters/logger"
	"swiftwrap/internal/core/ports"
)

// ReconcilerNodeID is the unique identifier for the reconciler Graft node.
const ReconcilerNodeID graft.ID = "adapter.fs.reconciler"

func init() {
	graft.Register(graft.Node[*Reconciler]{
		ID:        ReconcilerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*Reconciler, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewReconciler(log), nil
		},
	})
}
