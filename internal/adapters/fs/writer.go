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

var _ ports.OutputWriter = (*Writer)(nil)

// Writer writes artifacts, skipping files whose content is unchanged.
// Writes are not atomic.
type Writer struct {
	hasher ports.Hasher
}

// NewWriter creates a new Writer.
func NewWriter(hasher ports.Hasher) *Writer {
	return &Writer{hasher: hasher}
}

// Write creates the parent directories of path and writes content to it.
func (w *Writer) Write(path string, content []byte) (string, bool, error) {
	digest := w.hasher.Sum(content)

	existing, err := w.hasher.SumFile(path)
	if err == nil && existing == digest {
		return digest, false, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return "", false, errors.Join(domain.ErrOutputWriteFailed, zerr.With(err, "path", path))
	}

	//nolint:gosec // Path is derived from the configured destination
	if err := os.WriteFile(path, content, domain.FilePerm); err != nil {
		return "", false, errors.Join(domain.ErrOutputWriteFailed, zerr.With(err, "path", path))
	}

	return digest, true, nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, iofs.ErrNotExist)
}
