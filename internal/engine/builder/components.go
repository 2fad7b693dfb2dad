package builder

import (
	"context"

	"go.trai.ch/fanout/internal/core/domain"
	"go.trai.ch/fanout/internal/core/ports"
	"golang.org/x/sync/errgroup"
)

// buildComponents compiles every component for one target, one unit per file.
func (r *run) buildComponents(ctx context.Context, tc *TargetContext, components []domain.Component) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, c := range components {
		g.Go(func() error {
			return r.unit(gctx, tc, c.Path, func(ctx context.Context) (domain.UnitOutcome, bool, error) {
				return r.buildComponent(ctx, tc, c)
			})
		})
	}
	return g.Wait()
}

// buildComponent produces the compiled artifact of c and, under typed
// output, the pre-post-processing text next to it.
func (r *run) buildComponent(ctx context.Context, tc *TargetContext, c domain.Component) (domain.UnitOutcome, bool, error) {
	outputPath := domain.ComponentOutputPath(c.Path, r.opts.Extension, tc.Target)

	original, overridden, err := r.overrides.Resolve(r.overridesRoot, tc.Spec.Segment, outputPath)
	if err != nil {
		return "", false, unitError(domain.ErrOverrideReadFailed, err, tc, c.Path)
	}
	outcome := domain.UnitOverridden
	if !overridden {
		outcome = domain.UnitGenerated
		original, err = tc.Generator.Generate(ctx, c.Path, c.Doc)
		if err != nil {
			return "", false, unitError(domain.ErrGenerationFailed, err, tc, c.Path)
		}
	}

	compiled, err := r.postProcess(ctx, tc, c, original)
	if err != nil {
		return "", false, unitError(domain.ErrPostProcessFailed, err, tc, c.Path)
	}

	changed, err := r.write(tc, c.Path, outputPath, domain.ArtifactCompiled, compiled)
	if err != nil {
		return "", false, err
	}

	if tc.Options.TypeScript {
		typedPath := domain.TypedSourcePath(c.Path, r.opts.Extension)
		typedChanged, err := r.write(tc, c.Path, typedPath, domain.ArtifactOriginal, original)
		if err != nil {
			return "", false, err
		}
		changed = changed || typedChanged
	}

	return outcome, changed, nil
}

func (r *run) postProcess(ctx context.Context, tc *TargetContext, c domain.Component, content string) (string, error) {
	switch tc.Spec.PostProcess {
	case domain.PostProcessSolid:
		return r.post.PostProcess(ctx, c.Path, content, c.Doc)
	case domain.PostProcessTranspile:
		return r.transpiler.Transpile(ctx, ports.TranspileRequest{
			Target:  tc.Canonical,
			Path:    c.Path,
			Content: content,
			Options: tc.Options,
		})
	default:
		return content, nil
	}
}
