package builtin

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"go.trai.ch/fanout/internal/core/domain"
	"go.trai.ch/fanout/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ContextGenerator = (*ContextGenerator)(nil)

var defaultExportPattern = regexp.MustCompile(`(?s)export\s+default\s+(.*)$`)

// contextPackages lists the targets with a native context primitive and the
// module that provides createContext.
var contextPackages = map[domain.Target]string{
	domain.TargetReact:       "react",
	domain.TargetPreact:      "preact",
	domain.TargetReactNative: "react",
	domain.TargetSolid:       "solid-js",
}

// ContextGenerator turns the default export of a context file into the
// target's context value.
type ContextGenerator struct{}

// NewContextGenerator creates a new ContextGenerator.
func NewContextGenerator() *ContextGenerator {
	return &ContextGenerator{}
}

// GenerateContext implements ports.ContextGenerator.
func (g *ContextGenerator) GenerateContext(_ context.Context, req ports.ContextRequest) (string, error) {
	src := string(req.Source)
	loc := defaultExportPattern.FindStringSubmatchIndex(src)
	if loc == nil {
		return "", zerr.New("context file has no default export")
	}
	value := strings.TrimSuffix(strings.TrimSpace(src[loc[2]:loc[3]]), ";")
	if value == "" {
		return "", zerr.New("context file exports an empty value")
	}
	prelude := ImportRewriter(req.Target)(src[:loc[0]])

	pkg, ok := contextPackages[req.Target]
	if !ok {
		return fmt.Sprintf("%sexport default %s;\n", prelude, value), nil
	}
	return fmt.Sprintf("import { createContext } from %q;\n%sexport default createContext(%s);\n", pkg, prelude, value), nil
}
