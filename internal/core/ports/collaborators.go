package ports

import (
	"context"

	"go.trai.ch/fanout/internal/core/domain"
)

//go:generate mockgen -source=collaborators.go -destination=mocks/mock_collaborators.go -package=mocks

// Parser turns raw component source into a component description.
type Parser interface {
	// Parse fails with a parse error on malformed input.
	Parse(ctx context.Context, path string, source []byte) (domain.Document, error)
}

// Generator turns a component description into target-native source text.
// One instance serves one target and is built from that target's options.
type Generator interface {
	Generate(ctx context.Context, path string, doc domain.Document) (string, error)
}

// TranspileRequest is the input of one transpile call.
type TranspileRequest struct {
	Target  domain.Target
	Path    string
	Content string
	Options domain.TargetOptions
}

// Transpiler runs the target-aware transpile and import rewrite step.
type Transpiler interface {
	Transpile(ctx context.Context, req TranspileRequest) (string, error)
}

// PostProcessor is the dedicated source-to-source rewrite used by the solid target.
type PostProcessor interface {
	PostProcess(ctx context.Context, path, contents string, doc domain.Document) (string, error)
}

// ContextRequest is the input of one context regeneration.
type ContextRequest struct {
	Target  domain.Target
	Path    string
	Source  []byte
	Options domain.TargetOptions
}

// ContextGenerator regenerates the content of a context file for a target.
type ContextGenerator interface {
	GenerateContext(ctx context.Context, req ContextRequest) (string, error)
}

// ImportRewriter rewrites target-specific module aliases in source text.
// It is pure and synchronous.
type ImportRewriter func(content string) string

// Toolchain hands out the collaborators of one build.
type Toolchain interface {
	// Parser returns the configured parser or the builtin one.
	Parser(opts *domain.BuildOptions) Parser
	// Generator constructs the generator of a canonical target. It fails
	// when targetOpts cannot configure a generator.
	Generator(opts *domain.BuildOptions, target domain.Target, targetOpts domain.TargetOptions) (Generator, error)
	Transpiler(opts *domain.BuildOptions) Transpiler
	PostProcessor(opts *domain.BuildOptions) PostProcessor
	ContextGenerator(opts *domain.BuildOptions) ContextGenerator
	ImportRewriter(target domain.Target) ImportRewriter
}
