package fs

import (
	"context"
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/fanout/internal/core/domain"
	"go.trai.ch/fanout/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Cleaner = (*Cleaner)(nil)

// Cleaner removes stale artifacts below the destination root.
type Cleaner struct {
	walker *Walker
}

// NewCleaner creates a new Cleaner.
func NewCleaner(walker *Walker) *Cleaner {
	return &Cleaner{walker: walker}
}

// Clean deletes every file below dest whose dest-relative path matches
// **/{tail}, then every stale dest-relative path that still exists.
func (c *Cleaner) Clean(ctx context.Context, dest, tail string, stale []string) (int, error) {
	g, err := CompileGlob("**/" + tail)
	if err != nil {
		return 0, err
	}

	var doomed []string
	for p, err := range c.walker.WalkFiles(dest) {
		if err != nil {
			return 0, errors.Join(domain.ErrCleanFailed, zerr.With(err, "dest", dest))
		}
		if g.Match(p) {
			doomed = append(doomed, p)
		}
	}
	doomed = append(doomed, stale...)

	removed := 0
	for _, p := range doomed {
		if err := ctx.Err(); err != nil {
			return removed, err
		}

		rel := filepath.FromSlash(p)
		if !filepath.IsLocal(rel) {
			continue
		}
		full := filepath.Join(dest, rel)
		if !exists(full) {
			continue
		}
		if err := os.Remove(full); err != nil && !errors.Is(err, iofs.ErrNotExist) {
			return removed, errors.Join(domain.ErrCleanFailed, zerr.With(err, "path", full))
		}
		removed++
	}

	return removed, nil
}
