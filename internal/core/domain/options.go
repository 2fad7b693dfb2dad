package domain

import (
	"path/filepath"
	"runtime"
)

const (
	// DefaultDest is the default destination root.
	DefaultDest = "output"
	// DefaultFiles is the default source glob.
	DefaultFiles = "src/*"
	// DefaultOverridesDir is the default override root.
	DefaultOverridesDir = "overrides"
	// DefaultExtension is the default component file suffix.
	DefaultExtension = "lite.tsx"
)

// TargetOptions holds the per-target option sub-object.
type TargetOptions struct {
	// TypeScript requests typed output: the pre-post-processing text is
	// written next to the compiled artifact and ancillary files keep .ts.
	TypeScript bool
	// Generator is an optional external generator command.
	Generator []string
	// Knobs holds every other generator setting, passed through untouched.
	Knobs map[string]any
}

// Plugins configures external commands for the shared collaborators.
type Plugins struct {
	Transpiler    []string
	PostProcessor []string
	Context       []string
}

// BuildOptions is the immutable configuration of one build invocation.
type BuildOptions struct {
	// Cwd is the directory every relative path is resolved against.
	Cwd string
	// Targets lists the target identifiers to build. Empty means no-op.
	Targets []string
	// Dest is the destination root.
	Dest string
	// Files is the source glob, relative to Cwd.
	Files string
	// OverridesDir is the override root.
	OverridesDir string
	// Extension is the component file suffix without a leading dot.
	Extension string
	// Concurrency bounds the number of file units in flight.
	Concurrency int
	// Parser is an optional external parser command.
	Parser []string
	// Plugins configures external collaborator commands.
	Plugins Plugins
	// Options maps a target identifier to its option sub-object.
	Options map[string]TargetOptions
}

// DefaultBuildOptions returns options populated with the documented defaults.
func DefaultBuildOptions(cwd string) *BuildOptions {
	opts := &BuildOptions{Cwd: cwd}
	opts.ApplyDefaults()
	return opts
}

// ApplyDefaults fills every unset field with its default value.
func (o *BuildOptions) ApplyDefaults() {
	if o.Cwd == "" {
		o.Cwd = "."
	}
	if o.Dest == "" {
		o.Dest = DefaultDest
	}
	if o.Files == "" {
		o.Files = DefaultFiles
	}
	if o.OverridesDir == "" {
		o.OverridesDir = DefaultOverridesDir
	}
	if o.Extension == "" {
		o.Extension = DefaultExtension
	}
	if o.Concurrency <= 0 {
		o.Concurrency = runtime.NumCPU()
	}
	if o.Options == nil {
		o.Options = make(map[string]TargetOptions)
	}
}

// TargetOptions returns the option sub-object of the target identifier.
// A missing entry yields the zero value.
func (o *BuildOptions) TargetOptions(name string) TargetOptions {
	return o.Options[name]
}

// Resolve joins a path relative to Cwd. Absolute paths are returned as-is.
func (o *BuildOptions) Resolve(path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(o.Cwd, path)
}

// DestDir returns the resolved destination root.
func (o *BuildOptions) DestDir() string {
	return o.Resolve(o.Dest)
}

// OverridesRoot returns the resolved override root.
func (o *BuildOptions) OverridesRoot() string {
	return o.Resolve(o.OverridesDir)
}
