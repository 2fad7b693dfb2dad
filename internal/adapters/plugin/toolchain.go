package plugin

import (
	"go.trai.ch/fanout/internal/adapters/builtin"
	"go.trai.ch/fanout/internal/core/domain"
	"go.trai.ch/fanout/internal/core/ports"
)

var _ ports.Toolchain = (*Toolchain)(nil)

// Toolchain hands out command-backed collaborators where a command is
// configured and the builtin ones otherwise.
type Toolchain struct {
	runner ports.CommandRunner
}

// NewToolchain creates a new Toolchain.
func NewToolchain(runner ports.CommandRunner) *Toolchain {
	return &Toolchain{runner: runner}
}

// Parser implements ports.Toolchain.
func (t *Toolchain) Parser(opts *domain.BuildOptions) ports.Parser {
	if len(opts.Parser) > 0 {
		return NewParser(t.runner, opts.Parser, opts.Cwd)
	}
	return builtin.NewParser()
}

// Generator implements ports.Toolchain.
func (t *Toolchain) Generator(
	opts *domain.BuildOptions,
	target domain.Target,
	targetOpts domain.TargetOptions,
) (ports.Generator, error) {
	if len(targetOpts.Generator) > 0 {
		return NewGenerator(t.runner, opts.Cwd, target, targetOpts)
	}
	return builtin.NewGenerator(target, targetOpts)
}

// Transpiler implements ports.Toolchain.
func (t *Toolchain) Transpiler(opts *domain.BuildOptions) ports.Transpiler {
	if len(opts.Plugins.Transpiler) > 0 {
		return NewTranspiler(t.runner, opts.Plugins.Transpiler, opts.Cwd)
	}
	return builtin.NewTranspiler()
}

// PostProcessor implements ports.Toolchain.
func (t *Toolchain) PostProcessor(opts *domain.BuildOptions) ports.PostProcessor {
	if len(opts.Plugins.PostProcessor) > 0 {
		return NewPostProcessor(t.runner, opts.Plugins.PostProcessor, opts.Cwd)
	}
	return builtin.NewSolidRewriter()
}

// ContextGenerator implements ports.Toolchain.
func (t *Toolchain) ContextGenerator(opts *domain.BuildOptions) ports.ContextGenerator {
	if len(opts.Plugins.Context) > 0 {
		return NewContextGenerator(t.runner, opts.Plugins.Context, opts.Cwd)
	}
	return builtin.NewContextGenerator()
}

// ImportRewriter implements ports.Toolchain.
func (t *Toolchain) ImportRewriter(target domain.Target) ports.ImportRewriter {
	return builtin.ImportRewriter(target)
}
