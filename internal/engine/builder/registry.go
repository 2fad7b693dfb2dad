package builder

import (
	"go.trai.ch/fanout/internal/core/domain"
	"go.trai.ch/fanout/internal/core/ports"
	"go.trai.ch/zerr"
)

// TargetContext is everything one target needs for a build: its table row,
// its options and the generator built from them.
type TargetContext struct {
	// Name is the identifier as requested, e.g. "vue".
	Name string
	// Target is the requested row. Its segment and extension are used for
	// output paths.
	Target domain.Target
	// Canonical is the target whose generator and collaborators serve Target.
	Canonical domain.Target
	// Spec is the table row of Target.
	Spec domain.TargetSpec
	// Options is the option sub-object in effect.
	Options domain.TargetOptions
	// Generator is the generator built for Canonical from Options.
	Generator ports.Generator
}

// Registry resolves target identifiers into target contexts.
type Registry struct {
	toolchain ports.Toolchain
	logger    ports.Logger
}

// NewRegistry creates a new Registry.
func NewRegistry(toolchain ports.Toolchain, logger ports.Logger) *Registry {
	return &Registry{toolchain: toolchain, logger: logger}
}

// Resolve looks up id and constructs its generator. Alias identifiers log
// their diagnostic and use the options of the alias, falling back to those
// of the canonical target.
func (r *Registry) Resolve(id string, opts *domain.BuildOptions) (*TargetContext, error) {
	target, err := domain.ParseTarget(id)
	if err != nil {
		return nil, err
	}

	spec := target.Spec()
	canonical := target.Canonical()

	targetOpts, ok := opts.Options[id]
	if target.IsAlias() {
		r.logger.Warn(spec.Diagnostic)
		if !ok {
			targetOpts = opts.TargetOptions(canonical.String())
		}
	}

	generator, err := r.toolchain.Generator(opts, canonical, targetOpts)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to construct generator"), "target", id)
	}

	return &TargetContext{
		Name:      id,
		Target:    target,
		Canonical: canonical,
		Spec:      spec,
		Options:   targetOpts,
		Generator: generator,
	}, nil
}
