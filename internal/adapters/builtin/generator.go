package builtin

import (
	"context"
	"fmt"
	"strings"

	"go.trai.ch/fanout/internal/core/domain"
	"go.trai.ch/fanout/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Generator = (*Generator)(nil)

// KnobBanner is the generator knob holding a header comment line.
const KnobBanner = "banner"

// Generator emits the component source of the description, prefixed with
// an optional banner. Relative component imports are pointed at the
// target's output files.
type Generator struct {
	target  domain.Target
	banner  string
	imports ports.ImportRewriter
}

// NewGenerator creates a Generator for target. Knobs other than the banner
// are ignored; a banner that is not a string is rejected.
func NewGenerator(target domain.Target, opts domain.TargetOptions) (*Generator, error) {
	g := &Generator{target: target, imports: ImportRewriter(target)}
	if raw, ok := opts.Knobs[KnobBanner]; ok {
		banner, ok := raw.(string)
		if !ok {
			return nil, zerr.With(zerr.Wrap(domain.ErrInvalidTargetOptions, "banner must be a string"),
				"target", target.String())
		}
		g.banner = banner
	}
	return g, nil
}

// Generate implements ports.Generator.
func (g *Generator) Generate(_ context.Context, _ string, doc domain.Document) (string, error) {
	src, err := sourceOf(doc)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	if g.banner != "" {
		for line := range strings.Lines(g.banner) {
			fmt.Fprintf(&b, "// %s\n", strings.TrimRight(line, "\n"))
		}
	}
	b.WriteString(g.imports(src))
	return b.String(), nil
}
