package ports

import "go.trai.ch/fanout/internal/core/domain"

// ManifestStore persists the record of artifacts written by the last build.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type ManifestStore interface {
	// Load returns the manifest stored under root.
	// Returns nil, nil if no manifest exists.
	Load(root string) (*domain.Manifest, error)

	// Save replaces the manifest stored under root.
	Save(root string, manifest *domain.Manifest) error

	// Remove deletes the manifest stored under root. A missing manifest is not an error.
	Remove(root string) error
}
