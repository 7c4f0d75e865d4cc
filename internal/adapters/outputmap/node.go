package outputmap

import (
	"context"

	"github.com/grindlemire/graft"

	"swiftwrap/internal/adapters/config"
	"swiftwrap/internal/core/domain"
)

// FactoryNodeID is the unique identifier for the output file map factory
// Graft node.
const FactoryNodeID graft.ID = "adapter.outputmap.factory"

func init() {
	graft.Register(graft.Node[*Factory]{
		ID:        FactoryNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.ConfigNodeID},
		Run: func(ctx context.Context) (*Factory, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return NewFactory(cfg), nil
		},
	})
}
