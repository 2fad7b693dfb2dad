// Package fs provides file system adapters for discovering, reading, writing
// and cleaning build files.
package fs

import (
	"errors"
	iofs "io/fs"
	"iter"
	"path/filepath"

	"go.trai.ch/fanout/internal/core/domain"
)

// skippedDirs are never descended into.
var skippedDirs = map[string]bool{
	".git":              true,
	".jj":               true,
	"node_modules":      true,
	domain.StateDirName: true,
}

// Walker provides file walking functionality.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkFiles yields every regular file below root as a slash separated path
// relative to root, in lexical order. A missing root yields nothing.
// Directories listed in skip, relative to root, are not descended into.
func (w *Walker) WalkFiles(root string, skip ...string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		skipped := make(map[string]bool, len(skip))
		for _, s := range skip {
			skipped[filepath.Clean(s)] = true
		}

		err := filepath.WalkDir(root, func(path string, d iofs.DirEntry, err error) error {
			if err != nil {
				if path == root && errors.Is(err, iofs.ErrNotExist) {
					return filepath.SkipAll
				}
				return err
			}

			rel, err := filepath.Rel(root, path)
			if err != nil {
				return err
			}

			if d.IsDir() {
				if rel != "." && (skippedDirs[d.Name()] || skipped[rel]) {
					return filepath.SkipDir
				}
				return nil
			}
			if !d.Type().IsRegular() {
				return nil
			}

			if !yield(filepath.ToSlash(rel), nil) {
				return filepath.SkipAll
			}
			return nil
		})
		if err != nil {
			yield("", err)
		}
	}
}
