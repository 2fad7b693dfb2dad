package ports

import "go.trai.ch/fanout/internal/core/domain"

// ConfigLoader defines the interface for loading the build configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration file at path. An empty path searches for
	// fanout.yaml upwards from cwd. The returned options have their defaults
	// applied and Cwd set to the directory holding the configuration file.
	Load(cwd, path string) (*domain.BuildOptions, error)
}
