package domain

import (
	"path"
	"strings"
)

const (
	// ContextMarker identifies context files, e.g. "theme.context.lite.ts".
	ContextMarker = ".context.lite"

	// TypedExtension is the ancillary output extension under typed output.
	TypedExtension = ".ts"
	// UntypedExtension is the ancillary output extension otherwise.
	UntypedExtension = ".js"
)

var ancillaryExtensions = []string{".ts", ".js"}

// SplitGlob splits a slash separated glob into its static base directory and
// the remaining pattern. "src/*" yields ("src", "*").
func SplitGlob(pattern string) (base, tail string) {
	pattern = strings.TrimPrefix(path.Clean(pattern), "./")
	segments := strings.Split(pattern, "/")
	i := 0
	for ; i < len(segments)-1; i++ {
		if strings.ContainsAny(segments[i], "*?[{\\") {
			break
		}
	}
	if i == 0 {
		return ".", pattern
	}
	return strings.Join(segments[:i], "/"), strings.Join(segments[i:], "/")
}

// IsComponentFile reports whether p carries the component suffix.
func IsComponentFile(p, extension string) bool {
	return strings.HasSuffix(p, "."+extension)
}

// IsAncillaryFile reports whether p is a plain source file that is not a
// component file.
func IsAncillaryFile(p, extension string) bool {
	if IsComponentFile(p, extension) {
		return false
	}
	for _, ext := range ancillaryExtensions {
		if strings.HasSuffix(p, ext) {
			return true
		}
	}
	return false
}

// IsContextFile reports whether p is a context file.
func IsContextFile(p string) bool {
	return strings.HasSuffix(strings.TrimSuffix(p, path.Ext(p)), ContextMarker)
}

// ComponentOutputPath returns the compiled artifact path of a component for
// the target: the component suffix is replaced by the target's extension.
// "button.lite.tsx" yields "button.jsx" for react.
func ComponentOutputPath(p, extension string, target Target) string {
	return strings.TrimSuffix(p, "."+extension) + target.Spec().Extension
}

// TypedSourcePath returns the path of the untouched typed artifact: the
// component marker is dropped and the final extension kept.
// "button.lite.tsx" yields "button.tsx".
func TypedSourcePath(p, extension string) string {
	stem := strings.TrimSuffix(p, "."+extension)
	return stem + path.Ext("."+extension)
}

// AncillaryExtension returns the ancillary output extension.
func AncillaryExtension(typed bool) string {
	if typed {
		return TypedExtension
	}
	return UntypedExtension
}

// AncillaryOutputPath returns the output path of an ancillary file. Context
// files lose their marker: "theme.context.lite.ts" yields "theme.js" when
// typed is false.
func AncillaryOutputPath(p string, typed bool) string {
	stem := strings.TrimSuffix(p, path.Ext(p))
	stem = strings.TrimSuffix(stem, ContextMarker)
	return stem + AncillaryExtension(typed)
}
