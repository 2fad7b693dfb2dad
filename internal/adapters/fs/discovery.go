package fs

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/fanout/internal/core/domain"
	"go.trai.ch/fanout/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

var _ ports.Discovery = (*Discovery)(nil)

// Discovery implements ports.Discovery on the local file system.
type Discovery struct {
	walker *Walker
}

// NewDiscovery creates a new Discovery.
func NewDiscovery(walker *Walker) *Discovery {
	return &Discovery{walker: walker}
}

// DiscoverComponents globs opts.Files, keeps component files and parses them
// concurrently. The first parse failure aborts discovery.
func (d *Discovery) DiscoverComponents(
	ctx context.Context,
	opts *domain.BuildOptions,
	parser ports.Parser,
) ([]domain.Component, error) {
	base, paths, err := d.match(opts, func(p string) bool {
		return domain.IsComponentFile(p, opts.Extension)
	})
	if err != nil {
		return nil, err
	}

	components := make([]domain.Component, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(opts.Concurrency, 1))

	for i, p := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			//nolint:gosec // Path is produced by walking the configured base directory
			source, err := os.ReadFile(filepath.Join(base, filepath.FromSlash(p)))
			if err != nil {
				return errors.Join(domain.ErrSourceReadFailed, zerr.With(err, "path", p))
			}

			doc, err := parser.Parse(ctx, p, source)
			if err != nil {
				return errors.Join(domain.ErrParseFailed, zerr.With(err, "path", p))
			}

			components[i] = domain.Component{Path: p, Doc: doc}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return components, nil
}

// DiscoverAncillary globs opts.Files and keeps plain source files that are
// not components.
func (d *Discovery) DiscoverAncillary(_ context.Context, opts *domain.BuildOptions) ([]string, error) {
	_, paths, err := d.match(opts, func(p string) bool {
		return domain.IsAncillaryFile(p, opts.Extension)
	})
	return paths, err
}

// match walks the glob base and returns the base directory together with
// every base-relative path matching both the glob tail and keep.
func (d *Discovery) match(opts *domain.BuildOptions, keep func(string) bool) (string, []string, error) {
	baseRel, tail := domain.SplitGlob(opts.Files)
	g, err := CompileGlob(tail)
	if err != nil {
		return "", nil, err
	}

	base := opts.Resolve(baseRel)
	skip := skippedOutputs(opts, base)

	var paths []string
	for p, err := range d.walker.WalkFiles(base, skip...) {
		if err != nil {
			return "", nil, errors.Join(domain.ErrDiscoveryFailed, zerr.With(err, "base", base))
		}
		if g.Match(p) && keep(p) {
			paths = append(paths, p)
		}
	}
	return base, paths, nil
}

// skippedOutputs returns the destination and override roots when they live
// below base, so that generated files are never rediscovered as sources.
func skippedOutputs(opts *domain.BuildOptions, base string) []string {
	var skip []string
	for _, dir := range []string{opts.DestDir(), opts.OverridesRoot()} {
		rel, err := filepath.Rel(base, dir)
		if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
			continue
		}
		skip = append(skip, rel)
	}
	return skip
}
