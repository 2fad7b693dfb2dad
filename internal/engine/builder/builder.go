// Package builder implements the fan-out build: one component tree compiled
// for many targets at once.
package builder

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"go.trai.ch/fanout/internal/core/domain"
	"go.trai.ch/fanout/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

var now = time.Now

// Builder runs builds. It holds no per-build state and may be reused.
type Builder struct {
	toolchain ports.Toolchain
	discovery ports.Discovery
	reader    ports.SourceReader
	overrides ports.OverrideResolver
	writer    ports.OutputWriter
	cleaner   ports.Cleaner
	store     ports.ManifestStore
	telemetry ports.Telemetry
	logger    ports.Logger
	registry  *Registry
}

// New creates a new Builder.
func New(
	toolchain ports.Toolchain,
	discovery ports.Discovery,
	reader ports.SourceReader,
	overrides ports.OverrideResolver,
	writer ports.OutputWriter,
	cleaner ports.Cleaner,
	store ports.ManifestStore,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *Builder {
	return &Builder{
		toolchain: toolchain,
		discovery: discovery,
		reader:    reader,
		overrides: overrides,
		writer:    writer,
		cleaner:   cleaner,
		store:     store,
		telemetry: telemetry,
		logger:    logger,
		registry:  NewRegistry(toolchain, logger),
	}
}

// run is the state shared by every unit of one build.
type run struct {
	*Builder
	opts          *domain.BuildOptions
	dest          string
	overridesRoot string
	sem           *semaphore.Weighted
	fail          context.CancelCauseFunc

	transpiler ports.Transpiler
	post       ports.PostProcessor
	contexts   ports.ContextGenerator

	mu        sync.Mutex
	artifacts []domain.Artifact
	outcomes  map[domain.UnitOutcome]int
}

// Build compiles every discovered component and ancillary file for every
// target in opts. Target resolution, cleaning and discovery complete before
// any output is written. The first failing unit cancels the rest.
func (b *Builder) Build(ctx context.Context, opts *domain.BuildOptions) error {
	if len(opts.Targets) == 0 {
		b.logger.Info("no targets configured, nothing to build")
		return nil
	}

	targets, err := b.resolveTargets(opts)
	if err != nil {
		return err
	}

	removed, err := b.Clean(ctx, opts)
	if err != nil {
		return err
	}
	if removed > 0 {
		b.logger.Info(fmt.Sprintf("removed %d stale files from %s", removed, opts.Dest))
	}

	components, err := b.discovery.DiscoverComponents(ctx, opts, b.toolchain.Parser(opts))
	if err != nil {
		return err
	}
	ancillary, err := b.discovery.DiscoverAncillary(ctx, opts)
	if err != nil {
		return err
	}

	r := &run{
		Builder:       b,
		opts:          opts,
		dest:          opts.DestDir(),
		overridesRoot: opts.OverridesRoot(),
		sem:           semaphore.NewWeighted(int64(max(opts.Concurrency, 1))),
		transpiler:    b.toolchain.Transpiler(opts),
		post:          b.toolchain.PostProcessor(opts),
		contexts:      b.toolchain.ContextGenerator(opts),
		outcomes:      make(map[domain.UnitOutcome]int),
	}

	bctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)
	r.fail = cancel

	g, gctx := errgroup.WithContext(bctx)
	for _, tc := range targets {
		owned := domain.CloneComponents(components)
		g.Go(func() error {
			return r.buildTarget(gctx, tc, owned, ancillary)
		})
	}
	buildErr := g.Wait()
	if cause := context.Cause(bctx); cause != nil {
		buildErr = cause
	}

	if err := r.saveManifest(); err != nil {
		if buildErr == nil {
			return err
		}
		b.logger.Error(err)
	}

	if buildErr != nil {
		return errors.Join(domain.ErrBuildExecutionFailed, buildErr)
	}

	b.logger.Info(r.summary(len(targets)))
	return nil
}

// resolveTargets resolves every requested identifier once, in order.
func (b *Builder) resolveTargets(opts *domain.BuildOptions) ([]*TargetContext, error) {
	targets := make([]*TargetContext, 0, len(opts.Targets))
	seen := make(map[string]struct{}, len(opts.Targets))
	for _, id := range opts.Targets {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		tc, err := b.registry.Resolve(id, opts)
		if err != nil {
			return nil, err
		}
		targets = append(targets, tc)
	}
	return targets, nil
}

// Clean removes the outputs a build of opts would replace: every file in
// the destination matching the source glob tail, plus every artifact
// recorded by the previous build into the same destination. An unreadable
// manifest is ignored with a warning. It returns the number of files removed.
func (b *Builder) Clean(ctx context.Context, opts *domain.BuildOptions) (int, error) {
	dest := opts.DestDir()

	manifest, err := b.store.Load(opts.Cwd)
	if err != nil {
		b.logger.Warn(fmt.Sprintf("ignoring unreadable build manifest: %v", err))
		manifest = nil
	}

	var stale []string
	if manifest != nil && manifest.Dest == dest {
		for _, a := range manifest.Artifacts {
			stale = append(stale, filepath.FromSlash(a.Path))
		}
	}

	_, tail := domain.SplitGlob(opts.Files)
	return b.cleaner.Clean(ctx, dest, tail, stale)
}

func (r *run) buildTarget(
	ctx context.Context,
	tc *TargetContext,
	components []domain.Component,
	ancillary []string,
) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return r.buildComponents(gctx, tc, components)
	})
	g.Go(func() error {
		return r.buildAncillary(gctx, tc, ancillary)
	})
	return g.Wait()
}

// unit runs fn as one bounded, recorded unit of work. fn reports how the
// artifact was produced and whether any written file changed on disk.
func (r *run) unit(
	ctx context.Context,
	tc *TargetContext,
	name string,
	fn func(ctx context.Context) (domain.UnitOutcome, bool, error),
) error {
	if err := r.sem.Acquire(ctx, 1); err != nil {
		return err
	}
	defer r.sem.Release(1)
	if err := ctx.Err(); err != nil {
		return err
	}

	ctx, vertex := r.telemetry.Record(ctx, name, ports.WithGroup(tc.Name))
	outcome, changed, err := fn(ctx)
	if err != nil {
		// Cancel before the slot is released so no waiting unit starts.
		r.fail(err)
	} else {
		r.record(outcome)
		vertex.Outcome(outcome)
		// Clean removes last build's artifacts, so content is only already
		// in place when two targets share an output tree (vue and vue3).
		if !changed {
			vertex.Cached()
		}
	}
	vertex.Complete(err)
	return err
}

// write writes one artifact below the target's segment and records it.
func (r *run) write(tc *TargetContext, source, rel string, kind domain.ArtifactKind, content string) (bool, error) {
	destRel := filepath.ToSlash(filepath.Join(filepath.FromSlash(tc.Spec.Segment), filepath.FromSlash(rel)))
	digest, changed, err := r.writer.Write(filepath.Join(r.dest, filepath.FromSlash(destRel)), []byte(content))
	if err != nil {
		return false, zerr.With(err, "target", tc.Name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.artifacts = append(r.artifacts, domain.Artifact{
		Target: tc.Name,
		Source: source,
		Path:   destRel,
		Kind:   kind,
		Hash:   digest,
	})
	return changed, nil
}

func (r *run) record(outcome domain.UnitOutcome) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.outcomes[outcome]++
}

func (r *run) saveManifest() error {
	r.mu.Lock()
	artifacts := slices.Clone(r.artifacts)
	r.mu.Unlock()

	slices.SortFunc(artifacts, func(a, b domain.Artifact) int {
		if c := cmp.Compare(a.Path, b.Path); c != 0 {
			return c
		}
		return cmp.Compare(a.Target, b.Target)
	})

	return r.store.Save(r.opts.Cwd, &domain.Manifest{
		Timestamp: now(),
		Dest:      r.dest,
		Artifacts: artifacts,
	})
}

func (r *run) summary(targets int) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	total := 0
	for _, n := range r.outcomes {
		total += n
	}
	return fmt.Sprintf("built %d files for %d targets (%d overridden)",
		total, targets, r.outcomes[domain.UnitOverridden])
}

// unitError classifies err and attaches the unit's path and target.
func unitError(sentinel, err error, tc *TargetContext, path string) error {
	return errors.Join(sentinel, zerr.With(zerr.With(zerr.Wrap(err, ""), "path", path), "target", tc.Name))
}
