package compiler

import (
	"context"

	"github.com/grindlemire/graft"

	"swiftwrap/internal/adapters/config"
	"swiftwrap/internal/core/domain"
	"swiftwrap/internal/core/ports"
)

// NodeID is the unique identifier for the compiler runner Graft node.
const NodeID graft.ID = "adapter.compiler_runner"

func init() {
	graft.Register(graft.Node[ports.Runner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.ConfigNodeID},
		Run: func(ctx context.Context) (ports.Runner, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return NewRunner(cfg), nil
		},
	})
}
