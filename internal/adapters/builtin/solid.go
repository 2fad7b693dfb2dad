package builtin

import (
	"context"
	"regexp"

	"go.trai.ch/fanout/internal/core/domain"
	"go.trai.ch/fanout/internal/core/ports"
)

var _ ports.PostProcessor = (*SolidRewriter)(nil)

var solidAttributes = map[string]string{
	"className": "class",
	"htmlFor":   "for",
}

var jsxAttributePattern = regexp.MustCompile(`(\s)(className|htmlFor)=`)

// SolidRewriter maps React attribute names to their Solid spelling and
// rewrites imports for the solid target.
type SolidRewriter struct{}

// NewSolidRewriter creates a new SolidRewriter.
func NewSolidRewriter() *SolidRewriter {
	return &SolidRewriter{}
}

// PostProcess implements ports.PostProcessor.
func (s *SolidRewriter) PostProcess(_ context.Context, _ string, contents string, _ domain.Document) (string, error) {
	out := jsxAttributePattern.ReplaceAllStringFunc(contents, func(m string) string {
		return m[:1] + solidAttributes[m[1:len(m)-1]] + "="
	})
	return ImportRewriter(domain.TargetSolid)(out), nil
}
