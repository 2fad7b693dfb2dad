// Package app implements the application layer for fanout.
package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"go.trai.ch/fanout/internal/adapters/watcher" //nolint:depguard // Debouncer is used by watch mode
	"go.trai.ch/fanout/internal/core/domain"
	"go.trai.ch/fanout/internal/core/ports"
	"go.trai.ch/fanout/internal/engine/builder"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	builder      *builder.Builder
	store        ports.ManifestStore
	watcher      ports.Watcher
	telemetry    ports.Telemetry
	logger       ports.Logger
	debounce     time.Duration
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	b *builder.Builder,
	store ports.ManifestStore,
	w ports.Watcher,
	telemetry ports.Telemetry,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		builder:      b,
		store:        store,
		watcher:      w,
		telemetry:    telemetry,
		logger:       log,
		debounce:     watcher.DefaultDebounceWindow,
	}
}

// WithDebounce sets the window used to coalesce file changes in watch mode.
func (a *App) WithDebounce(window time.Duration) *App {
	a.debounce = window
	return a
}

// BuildRequest selects the configuration of one invocation and the command
// line overrides applied on top of it.
type BuildRequest struct {
	// Cwd is the directory the config search starts from.
	Cwd string
	// ConfigPath is an explicit config file. Empty means search upwards.
	ConfigPath string
	// Targets replaces the configured targets when not empty.
	Targets []string
	// Dest replaces the configured destination when not empty.
	Dest string
}

// Options loads the configuration and applies the request overrides.
func (a *App) Options(req BuildRequest) (*domain.BuildOptions, error) {
	opts, err := a.configLoader.Load(req.Cwd, req.ConfigPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	if len(req.Targets) > 0 {
		opts.Targets = slices.Clone(req.Targets)
	}
	if req.Dest != "" {
		dest := req.Dest
		if !filepath.IsAbs(dest) && req.Cwd != "" {
			dest = filepath.Join(req.Cwd, dest)
		}
		opts.Dest = dest
	}
	return opts, nil
}

// Build runs one build.
func (a *App) Build(ctx context.Context, req BuildRequest) error {
	opts, err := a.Options(req)
	if err != nil {
		return err
	}
	return a.builder.Build(ctx, opts)
}

// Watch builds once and then rebuilds whenever a source or override file
// changes, until ctx is done. Build failures are logged and do not stop
// watching. The configuration is reloaded before every rebuild.
func (a *App) Watch(ctx context.Context, req BuildRequest) error {
	opts, err := a.Options(req)
	if err != nil {
		return err
	}
	if err := a.builder.Build(ctx, opts); err != nil {
		a.logger.Error(err)
	}

	base, _ := domain.SplitGlob(opts.Files)
	if err := a.watcher.Start(ctx, opts.Resolve(base), opts.OverridesRoot()); err != nil {
		return zerr.Wrap(err, "failed to start watching")
	}
	defer func() {
		_ = a.watcher.Stop()
	}()

	rebuild := make(chan []string, 1)
	debouncer := watcher.NewDebouncer(a.debounce, func(paths []string) {
		select {
		case rebuild <- paths:
		default:
			// A rebuild is already queued and will see these changes.
		}
	})

	ignored := []string{opts.DestDir(), filepath.Join(opts.Cwd, domain.StateDirName)}
	events := a.watcher.Events()
	go func() {
		for event := range events {
			if !isWithinAny(event.Path, ignored) {
				debouncer.Add(event.Path)
			}
		}
	}()

	a.logger.Info("watching for changes")
	for {
		select {
		case <-ctx.Done():
			return nil
		case paths := <-rebuild:
			a.logger.Info(fmt.Sprintf("%d files changed, rebuilding", len(paths)))
			if err := a.rebuild(ctx, req); err != nil && ctx.Err() == nil {
				a.logger.Error(err)
			}
		}
	}
}

func (a *App) rebuild(ctx context.Context, req BuildRequest) error {
	opts, err := a.Options(req)
	if err != nil {
		return err
	}
	return a.builder.Build(ctx, opts)
}

// CleanOptions configuration for the Clean method.
type CleanOptions struct {
	// Manifest also deletes the build manifest.
	Manifest bool
}

// Clean removes the outputs a build would replace: files in dest matching
// the source glob and every artifact recorded by the last build.
func (a *App) Clean(ctx context.Context, req BuildRequest, options CleanOptions) error {
	opts, err := a.Options(req)
	if err != nil {
		return err
	}
	removed, err := a.builder.Clean(ctx, opts)
	if err != nil {
		return err
	}
	a.logger.Info(fmt.Sprintf("removed %d files from %s", removed, opts.Dest))

	if options.Manifest {
		if err := a.store.Remove(opts.Cwd); err != nil {
			return err
		}
		a.logger.Info("removed build manifest")
	}
	return nil
}

// Close flushes the telemetry session.
func (a *App) Close() error {
	if err := a.telemetry.Close(); err != nil {
		return errors.Join(zerr.New("failed to close telemetry"), err)
	}
	return nil
}

func isWithinAny(path string, roots []string) bool {
	for _, root := range roots {
		rel, err := filepath.Rel(root, path)
		if err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return true
		}
	}
	return false
}
