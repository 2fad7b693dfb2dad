package builtin

import (
	"regexp"
	"strings"

	"go.trai.ch/fanout/internal/core/domain"
	"go.trai.ch/fanout/internal/core/ports"
)

var importPattern = regexp.MustCompile(`((?:\bfrom|\bimport)\s*\(?\s*)(['"])([^'"\n]+)(['"])`)

const liteSuffix = ".lite"

func importSpecifiers(src string) []string {
	matches := importPattern.FindAllStringSubmatch(src, -1)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m[3])
	}
	return out
}

// ImportRewriter returns the import rewrite of a target. Relative
// specifiers of context files lose the context marker, and relative
// specifiers of components lose the component marker. Targets that compile
// to single file components keep their native extension on component
// imports.
func ImportRewriter(target domain.Target) ports.ImportRewriter {
	sfc := ""
	switch ext := target.Spec().Extension; ext {
	case ".vue", ".svelte", ".marko":
		sfc = ext
	}

	return func(content string) string {
		return importPattern.ReplaceAllStringFunc(content, func(match string) string {
			m := importPattern.FindStringSubmatch(match)
			spec := m[3]
			if !strings.HasPrefix(spec, ".") {
				return match
			}
			switch {
			case strings.HasSuffix(spec, domain.ContextMarker):
				spec = strings.TrimSuffix(spec, domain.ContextMarker)
			case strings.HasSuffix(spec, liteSuffix):
				spec = strings.TrimSuffix(spec, liteSuffix) + sfc
			default:
				return match
			}
			return m[1] + m[2] + spec + m[4]
		})
	}
}
