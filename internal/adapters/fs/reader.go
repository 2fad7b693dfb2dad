package fs

import (
	"errors"
	"os"
	"path/filepath"

	"go.trai.ch/fanout/internal/core/domain"
	"go.trai.ch/fanout/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.SourceReader = (*Reader)(nil)

// Reader reads ancillary sources below the glob base.
type Reader struct{}

// NewReader creates a new Reader.
func NewReader() *Reader {
	return &Reader{}
}

// ReadSource reads path, relative to the glob base of opts.
func (r *Reader) ReadSource(opts *domain.BuildOptions, path string) ([]byte, error) {
	base, _ := domain.SplitGlob(opts.Files)
	full := filepath.Join(opts.Resolve(base), filepath.FromSlash(path))

	data, err := os.ReadFile(full) //nolint:gosec // Path is produced by discovery
	if err != nil {
		return nil, errors.Join(domain.ErrSourceReadFailed, zerr.With(err, "path", path))
	}
	return data, nil
}
