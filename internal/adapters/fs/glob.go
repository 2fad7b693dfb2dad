package fs

import (
	"errors"

	"github.com/gobwas/glob"
	"go.trai.ch/fanout/internal/core/domain"
	"go.trai.ch/zerr"
)

// CompileGlob compiles a slash separated pattern. "*" stays within one
// directory and "**" crosses directories.
func CompileGlob(pattern string) (glob.Glob, error) {
	g, err := glob.Compile(pattern, '/')
	if err != nil {
		return nil, errors.Join(domain.ErrInvalidGlob, zerr.With(err, "pattern", pattern))
	}
	return g, nil
}
