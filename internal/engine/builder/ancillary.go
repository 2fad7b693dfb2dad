package builder

import (
	"context"

	"go.trai.ch/fanout/internal/core/domain"
	"go.trai.ch/fanout/internal/core/ports"
	"golang.org/x/sync/errgroup"
)

// buildAncillary carries every non-component source over to one target,
// one unit per file.
func (r *run) buildAncillary(ctx context.Context, tc *TargetContext, paths []string) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, p := range paths {
		g.Go(func() error {
			return r.unit(gctx, tc, p, func(ctx context.Context) (domain.UnitOutcome, bool, error) {
				return r.buildAncillaryFile(ctx, tc, p)
			})
		})
	}
	return g.Wait()
}

// buildAncillaryFile writes the target's version of the file at p. An
// override wins; context files are regenerated; anything else is read from
// the source tree. Typed output keeps the text and only rewrites imports,
// untyped output is transpiled.
func (r *run) buildAncillaryFile(ctx context.Context, tc *TargetContext, p string) (domain.UnitOutcome, bool, error) {
	typed := tc.Options.TypeScript
	outputPath := domain.AncillaryOutputPath(p, typed)

	override, overridden, err := r.overrides.Resolve(r.overridesRoot, tc.Spec.Segment, p)
	if err != nil {
		return "", false, unitError(domain.ErrOverrideReadFailed, err, tc, p)
	}

	var content string
	var outcome domain.UnitOutcome
	switch {
	case overridden:
		outcome = domain.UnitOverridden
		content, err = r.carryOver(ctx, tc, p, override)
		if err != nil {
			return "", false, unitError(domain.ErrTranspileFailed, err, tc, p)
		}

	case domain.IsContextFile(p):
		outcome = domain.UnitRegenerated
		source, err := r.reader.ReadSource(r.opts, p)
		if err != nil {
			return "", false, unitError(domain.ErrSourceReadFailed, err, tc, p)
		}
		content, err = r.contexts.GenerateContext(ctx, ports.ContextRequest{
			Target:  tc.Canonical,
			Path:    p,
			Source:  source,
			Options: tc.Options,
		})
		if err != nil {
			return "", false, unitError(domain.ErrContextGenerationFailed, err, tc, p)
		}

	default:
		outcome = domain.UnitCopied
		source, err := r.reader.ReadSource(r.opts, p)
		if err != nil {
			return "", false, unitError(domain.ErrSourceReadFailed, err, tc, p)
		}
		content, err = r.carryOver(ctx, tc, p, string(source))
		if err != nil {
			return "", false, unitError(domain.ErrTranspileFailed, err, tc, p)
		}
	}

	changed, err := r.write(tc, p, outputPath, domain.ArtifactAncillary, content)
	if err != nil {
		return "", false, err
	}
	return outcome, changed, nil
}

func (r *run) carryOver(ctx context.Context, tc *TargetContext, p, content string) (string, error) {
	if tc.Options.TypeScript {
		return r.toolchain.ImportRewriter(tc.Canonical)(content), nil
	}
	return r.transpiler.Transpile(ctx, ports.TranspileRequest{
		Target:  tc.Canonical,
		Path:    p,
		Content: content,
		Options: tc.Options,
	})
}
