package ports

import (
	"context"

	"go.trai.ch/fanout/internal/core/domain"
)

//go:generate mockgen -source=filesystem.go -destination=mocks/mock_filesystem.go -package=mocks

// Discovery finds the inputs of a build.
type Discovery interface {
	// DiscoverComponents globs opts.Files, keeps component files and parses
	// each of them. The result is sorted by path.
	DiscoverComponents(ctx context.Context, opts *domain.BuildOptions, parser Parser) ([]domain.Component, error)
	// DiscoverAncillary globs opts.Files and keeps plain source files.
	DiscoverAncillary(ctx context.Context, opts *domain.BuildOptions) ([]string, error)
}

// SourceReader reads ancillary source files.
type SourceReader interface {
	// ReadSource reads the file at path, relative to the glob base of opts.
	ReadSource(opts *domain.BuildOptions, path string) ([]byte, error)
}

// OverrideResolver looks up hand-authored replacements of output files.
type OverrideResolver interface {
	// Resolve reads {root}/{segment}/{fileName}. found is false when no such
	// file exists.
	Resolve(root, segment, fileName string) (content string, found bool, err error)
}

// OutputWriter writes artifacts to disk.
type OutputWriter interface {
	// Write creates missing parent directories and writes content to path.
	// Identical content is not rewritten. It returns the content digest and
	// whether the file changed.
	Write(path string, content []byte) (digest string, changed bool, err error)
}

// Cleaner removes stale artifacts before a build.
type Cleaner interface {
	// Clean deletes every file below dest whose dest-relative path matches
	// **/{tail}, plus every listed stale path. It returns the number of
	// files removed.
	Clean(ctx context.Context, dest, tail string, stale []string) (int, error)
}
