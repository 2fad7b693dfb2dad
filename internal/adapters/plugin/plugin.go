// Package plugin implements the build collaborators on top of external
// commands. Each command reads its input on stdin and prints its result on
// stdout; the file path, target and typed flag travel in FANOUT_*
// environment variables.
package plugin

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"

	"go.trai.ch/fanout/internal/core/domain"
	"go.trai.ch/fanout/internal/core/ports"
	"go.trai.ch/zerr"
)

// Environment variables set for plugin commands.
const (
	EnvPath       = "FANOUT_PATH"
	EnvTarget     = "FANOUT_TARGET"
	EnvTypeScript = "FANOUT_TYPESCRIPT"
)

var (
	_ ports.Parser           = (*Parser)(nil)
	_ ports.Generator        = (*Generator)(nil)
	_ ports.Transpiler       = (*Transpiler)(nil)
	_ ports.PostProcessor    = (*PostProcessor)(nil)
	_ ports.ContextGenerator = (*ContextGenerator)(nil)
)

// command is the shared part of every plugin: the configured argv and the
// directory it runs in.
type command struct {
	runner ports.CommandRunner
	args   []string
	dir    string
}

func (c command) run(ctx context.Context, stdin []byte, env ...string) ([]byte, error) {
	return c.runner.Run(ctx, ports.Command{
		Args:  c.args,
		Dir:   c.dir,
		Env:   env,
		Stdin: stdin,
	})
}

func envVar(key, value string) string {
	return key + "=" + value
}

func invalidOutput(err error, name string) error {
	return errors.Join(domain.ErrPluginOutputInvalid, zerr.With(err, "command", name))
}

// Parser runs a parser command: stdin is the raw source, stdout is the
// JSON component description.
type Parser struct {
	command
}

// NewParser creates a Parser running args in dir.
func NewParser(runner ports.CommandRunner, args []string, dir string) *Parser {
	return &Parser{command{runner: runner, args: args, dir: dir}}
}

// Parse implements ports.Parser.
func (p *Parser) Parse(ctx context.Context, path string, source []byte) (domain.Document, error) {
	out, err := p.run(ctx, source, envVar(EnvPath, path))
	if err != nil {
		return nil, err
	}
	var doc domain.Document
	if err := json.Unmarshal(out, &doc); err != nil {
		return nil, invalidOutput(err, p.args[0])
	}
	if doc == nil {
		return nil, invalidOutput(zerr.New("parser printed no document"), p.args[0])
	}
	return doc, nil
}

type generateRequest struct {
	Target    string          `json:"target"`
	Path      string          `json:"path"`
	Component domain.Document `json:"component"`
	Options   map[string]any  `json:"options"`
}

// Generator runs a generator command for one target: stdin is a JSON
// request carrying the description and the target's knobs, stdout is the
// generated code.
type Generator struct {
	command
	target domain.Target
	opts   domain.TargetOptions
}

// NewGenerator creates a Generator for target from its option sub-object.
func NewGenerator(runner ports.CommandRunner, dir string, target domain.Target, opts domain.TargetOptions) (*Generator, error) {
	if len(opts.Generator) == 0 {
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidTargetOptions, "generator command is empty"),
			"target", target.String())
	}
	return &Generator{
		command: command{runner: runner, args: opts.Generator, dir: dir},
		target:  target,
		opts:    opts,
	}, nil
}

// Generate implements ports.Generator.
func (g *Generator) Generate(ctx context.Context, path string, doc domain.Document) (string, error) {
	knobs := make(map[string]any, len(g.opts.Knobs)+1)
	for k, v := range g.opts.Knobs {
		knobs[k] = v
	}
	knobs["typescript"] = g.opts.TypeScript

	payload, err := json.Marshal(generateRequest{
		Target:    g.target.String(),
		Path:      path,
		Component: doc,
		Options:   knobs,
	})
	if err != nil {
		return "", zerr.Wrap(err, "failed to encode generator request")
	}

	out, err := g.run(ctx, payload,
		envVar(EnvPath, path),
		envVar(EnvTarget, g.target.String()),
		envVar(EnvTypeScript, strconv.FormatBool(g.opts.TypeScript)),
	)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Transpiler runs a transpiler command: stdin is the content, stdout the
// transpiled text.
type Transpiler struct {
	command
}

// NewTranspiler creates a Transpiler running args in dir.
func NewTranspiler(runner ports.CommandRunner, args []string, dir string) *Transpiler {
	return &Transpiler{command{runner: runner, args: args, dir: dir}}
}

// Transpile implements ports.Transpiler.
func (t *Transpiler) Transpile(ctx context.Context, req ports.TranspileRequest) (string, error) {
	out, err := t.run(ctx, []byte(req.Content),
		envVar(EnvPath, req.Path),
		envVar(EnvTarget, req.Target.String()),
		envVar(EnvTypeScript, strconv.FormatBool(req.Options.TypeScript)),
	)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

type postProcessRequest struct {
	Path      string          `json:"path"`
	Contents  string          `json:"contents"`
	Component domain.Document `json:"component"`
}

// PostProcessor runs the solid rewrite command: stdin is a JSON request,
// stdout the rewritten code.
type PostProcessor struct {
	command
}

// NewPostProcessor creates a PostProcessor running args in dir.
func NewPostProcessor(runner ports.CommandRunner, args []string, dir string) *PostProcessor {
	return &PostProcessor{command{runner: runner, args: args, dir: dir}}
}

// PostProcess implements ports.PostProcessor.
func (p *PostProcessor) PostProcess(ctx context.Context, path, contents string, doc domain.Document) (string, error) {
	payload, err := json.Marshal(postProcessRequest{Path: path, Contents: contents, Component: doc})
	if err != nil {
		return "", zerr.Wrap(err, "failed to encode post-process request")
	}
	out, err := p.run(ctx, payload, envVar(EnvPath, path), envVar(EnvTarget, domain.TargetSolid.String()))
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// ContextGenerator runs a context command: stdin is the raw context source,
// stdout the regenerated file.
type ContextGenerator struct {
	command
}

// NewContextGenerator creates a ContextGenerator running args in dir.
func NewContextGenerator(runner ports.CommandRunner, args []string, dir string) *ContextGenerator {
	return &ContextGenerator{command{runner: runner, args: args, dir: dir}}
}

// GenerateContext implements ports.ContextGenerator.
func (c *ContextGenerator) GenerateContext(ctx context.Context, req ports.ContextRequest) (string, error) {
	out, err := c.run(ctx, req.Source,
		envVar(EnvPath, req.Path),
		envVar(EnvTarget, req.Target.String()),
		envVar(EnvTypeScript, strconv.FormatBool(req.Options.TypeScript)),
	)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
