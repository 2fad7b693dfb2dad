// Package builtin provides the in-process collaborators used when no plugin
// command is configured.
package builtin

import (
	"context"
	"path"
	"strings"
	"unicode/utf8"

	"go.trai.ch/fanout/internal/core/domain"
	"go.trai.ch/fanout/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Parser = (*Parser)(nil)

// Document keys produced by Parser.
const (
	KeyName    = "name"
	KeyPath    = "path"
	KeySource  = "source"
	KeyImports = "imports"
)

// Parser records the raw component source together with its name and the
// module specifiers it imports.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse implements ports.Parser.
func (p *Parser) Parse(_ context.Context, filePath string, source []byte) (domain.Document, error) {
	if len(strings.TrimSpace(string(source))) == 0 {
		return nil, zerr.New("empty component source")
	}
	if !utf8.Valid(source) {
		return nil, zerr.New("component source is not valid UTF-8")
	}

	specifiers := importSpecifiers(string(source))
	imports := make([]any, len(specifiers))
	for i, s := range specifiers {
		imports[i] = s
	}

	return domain.Document{
		KeyName:    componentName(filePath),
		KeyPath:    filePath,
		KeySource:  string(source),
		KeyImports: imports,
	}, nil
}

// componentName derives the name from the file name up to its first dot.
func componentName(filePath string) string {
	base := path.Base(filePath)
	if i := strings.IndexByte(base, '.'); i > 0 {
		base = base[:i]
	}
	return base
}

func sourceOf(doc domain.Document) (string, error) {
	src, ok := doc[KeySource].(string)
	if !ok {
		return "", zerr.New("component has no source")
	}
	return src, nil
}
