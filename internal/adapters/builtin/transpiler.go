package builtin

import (
	"context"
	"regexp"

	"go.trai.ch/fanout/internal/core/ports"
)

var _ ports.Transpiler = (*Transpiler)(nil)

var typeImportPattern = regexp.MustCompile(`(?m)^import\s+type\s[^\n]*\n?`)

// Transpiler rewrites the imports of a target and drops type-only import
// statements. Full type erasure needs a transpiler plugin.
type Transpiler struct{}

// NewTranspiler creates a new Transpiler.
func NewTranspiler() *Transpiler {
	return &Transpiler{}
}

// Transpile implements ports.Transpiler.
func (t *Transpiler) Transpile(_ context.Context, req ports.TranspileRequest) (string, error) {
	out := ImportRewriter(req.Target)(req.Content)
	if !req.Options.TypeScript {
		out = typeImportPattern.ReplaceAllString(out, "")
	}
	return out, nil
}
