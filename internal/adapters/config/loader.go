// Package config provides the configuration loader for fanout.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/fanout/internal/adapters/fs"
	"go.trai.ch/fanout/internal/core/domain"
	"go.trai.ch/fanout/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// SupportedVersion is the only config version understood by the loader.
// An empty version is read as this one.
const SupportedVersion = "1"

const (
	optionTypeScript = "typescript"
	optionGenerator  = "generator"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the configuration at path, or searches upwards from cwd for
// fanout.yaml when path is empty. Relative paths in the file resolve
// against the directory holding it.
func (l *Loader) Load(cwd, path string) (*domain.BuildOptions, error) {
	configPath, err := findConfiguration(cwd, path)
	if err != nil {
		return nil, err
	}

	var fanfile Fanfile
	if err := readAndUnmarshalYAML(configPath, &fanfile); err != nil {
		return nil, err
	}

	opts, err := l.buildOptions(filepath.Dir(configPath), &fanfile)
	if err != nil {
		return nil, zerr.With(err, "config", configPath)
	}
	return opts, nil
}

func findConfiguration(cwd, path string) (string, error) {
	if path != "" {
		if !filepath.IsAbs(path) {
			path = filepath.Join(cwd, path)
		}
		if _, err := os.Stat(path); err != nil {
			return "", errors.Join(domain.ErrConfigNotFound, zerr.With(err, "path", path))
		}
		return path, nil
	}

	currentDir, err := filepath.Abs(cwd)
	if err != nil {
		return "", zerr.Wrap(err, "failed to resolve working directory")
	}
	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	return "", zerr.With(zerr.Wrap(domain.ErrConfigNotFound, "no config file in any parent directory"), "cwd", cwd)
}

func (l *Loader) buildOptions(root string, f *Fanfile) (*domain.BuildOptions, error) {
	if f.Version != "" && f.Version != SupportedVersion {
		return nil, zerr.With(zerr.Wrap(domain.ErrUnsupportedConfigVersion, "failed to load config"), "version", f.Version)
	}
	if f.Concurrency < 0 {
		return nil, zerr.With(zerr.New("concurrency must not be negative"), "concurrency", f.Concurrency)
	}

	opts := &domain.BuildOptions{
		Cwd:          root,
		Targets:      slices.Clone(f.Targets),
		Dest:         f.Dest,
		Files:        f.Files,
		OverridesDir: f.OverridesDir,
		Extension:    strings.TrimPrefix(f.Extension, "."),
		Concurrency:  f.Concurrency,
		Parser:       f.Parser,
		Plugins: domain.Plugins{
			Transpiler:    f.Plugins.Transpiler,
			PostProcessor: f.Plugins.PostProcessor,
			Context:       f.Plugins.Context,
		},
		Options: make(map[string]domain.TargetOptions, len(f.Options)),
	}
	opts.ApplyDefaults()

	_, tail := domain.SplitGlob(opts.Files)
	if _, err := fs.CompileGlob(tail); err != nil {
		return nil, err
	}

	for name, raw := range f.Options {
		targetOpts, err := parseTargetOptions(raw)
		if err != nil {
			return nil, zerr.With(err, "target", name)
		}
		if !slices.Contains(opts.Targets, name) {
			l.Logger.Warn(fmt.Sprintf("options for %q have no effect: target is not listed in targets", name))
		}
		opts.Options[name] = targetOpts
	}

	return opts, nil
}

// parseTargetOptions splits the option sub-object of a target into the
// typed flag, the generator command and the remaining generator knobs.
func parseTargetOptions(raw map[string]any) (domain.TargetOptions, error) {
	var opts domain.TargetOptions
	for key, value := range raw {
		switch key {
		case optionTypeScript:
			typed, ok := value.(bool)
			if !ok {
				return opts, zerr.With(zerr.Wrap(domain.ErrInvalidTargetOptions, "typescript must be a boolean"), "option", key)
			}
			opts.TypeScript = typed
		case optionGenerator:
			cmd, err := parseCommand(value)
			if err != nil {
				return opts, errors.Join(domain.ErrInvalidTargetOptions, zerr.With(err, "option", key))
			}
			opts.Generator = cmd
		default:
			if opts.Knobs == nil {
				opts.Knobs = make(map[string]any)
			}
			opts.Knobs[key] = value
		}
	}
	return opts, nil
}

func parseCommand(value any) ([]string, error) {
	switch v := value.(type) {
	case string:
		return strings.Fields(v), nil
	case []any:
		args := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, zerr.New("command arguments must be strings")
			}
			args = append(args, s)
		}
		return args, nil
	default:
		return nil, zerr.New("command must be a string or a list of strings")
	}
}

func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is resolved by the caller
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return errors.Join(domain.ErrConfigReadFailed, zerr.With(err, "path", configPath))
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return errors.Join(domain.ErrConfigParseFailed, zerr.With(parseErr, "path", configPath))
	}

	return nil
}
