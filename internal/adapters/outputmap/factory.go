package outputmap

import (
	"slices"

	"swiftwrap/internal/core/domain"
)

// Factory creates one Map per compilation request, carrying the
// build-wide storage root and redirect set from the configuration.
type Factory struct {
	storageRoot string
	kinds       []string
}

// NewFactory creates a Factory from the loaded configuration.
func NewFactory(cfg *domain.Config) *Factory {
	return &Factory{
		storageRoot: cfg.StorageRoot,
		kinds:       slices.Clone(cfg.IncrementalKinds),
	}
}

// NewMap creates a fresh, empty Map for one compilation request.
func (f *Factory) NewMap() *Map {
	return New(f.storageRoot, f.kinds)
}
