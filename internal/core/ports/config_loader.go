package ports

import "swiftwrap/internal/core/domain"

// ConfigLoader defines the interface for loading the wrapper configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration from the given working directory,
	// falling back to defaults when no configuration file is present.
	Load(cwd string) (*domain.Config, error)
}
