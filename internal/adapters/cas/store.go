// Package cas stores the build manifest below the project state directory.
package cas

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/fanout/internal/core/domain"
	"go.trai.ch/fanout/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ManifestStore = (*Store)(nil)

// Store implements ports.ManifestStore with one JSON file per project.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Load reads the manifest stored under root.
func (s *Store) Load(root string) (*domain.Manifest, error) {
	path := manifestPath(root)

	data, err := os.ReadFile(path) //nolint:gosec // Path is constructed from the project root
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, errors.Join(domain.ErrStoreReadFailed, zerr.With(err, "path", path))
	}

	var manifest domain.Manifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, errors.Join(domain.ErrStoreUnmarshalFailed, zerr.With(err, "path", path))
	}

	return &manifest, nil
}

// Save replaces the manifest stored under root.
func (s *Store) Save(root string, manifest *domain.Manifest) error {
	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return errors.Join(domain.ErrStoreMarshalFailed, err)
	}

	path := manifestPath(root)
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return errors.Join(domain.ErrStoreCreateFailed, zerr.With(err, "path", path))
	}

	//nolint:gosec // Path is constructed from the project root
	if err := os.WriteFile(path, data, domain.FilePerm); err != nil {
		return errors.Join(domain.ErrStoreWriteFailed, zerr.With(err, "path", path))
	}

	return nil
}

// Remove deletes the manifest stored under root.
func (s *Store) Remove(root string) error {
	path := manifestPath(root)
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return errors.Join(domain.ErrStoreWriteFailed, zerr.With(err, "path", path))
	}
	return nil
}

func manifestPath(root string) string {
	return filepath.Join(root, domain.DefaultManifestPath())
}
