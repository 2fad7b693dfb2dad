package fs

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/fanout/internal/core/domain"
	"go.trai.ch/fanout/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.OverrideResolver = (*OverrideResolver)(nil)

// OverrideResolver reads hand-authored override files. Their content is
// returned verbatim.
type OverrideResolver struct{}

// NewOverrideResolver creates a new OverrideResolver.
func NewOverrideResolver() *OverrideResolver {
	return &OverrideResolver{}
}

// Resolve reads {root}/{segment}/{fileName}.
func (r *OverrideResolver) Resolve(root, segment, fileName string) (string, bool, error) {
	path := filepath.Join(root, filepath.FromSlash(segment), filepath.FromSlash(fileName))

	data, err := os.ReadFile(path) //nolint:gosec // Path is derived from the configured override root
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return "", false, nil
		}
		return "", false, errors.Join(domain.ErrOverrideReadFailed, zerr.With(err, "path", path))
	}
	return string(data), true, nil
}
