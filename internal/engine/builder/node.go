package builder

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/fanout/internal/adapters/cas"                //nolint:depguard // Wired in engine wiring
	"go.trai.ch/fanout/internal/adapters/fs"                 //nolint:depguard // Wired in engine wiring
	"go.trai.ch/fanout/internal/adapters/logger"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/fanout/internal/adapters/plugin"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/fanout/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/fanout/internal/core/ports"
)

// NodeID is the unique identifier for the builder Graft node.
const NodeID graft.ID = "engine.builder"

func init() {
	graft.Register(graft.Node[*Builder]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			plugin.NodeID,
			fs.DiscoveryNodeID,
			fs.ReaderNodeID,
			fs.OverridesNodeID,
			fs.WriterNodeID,
			fs.CleanerNodeID,
			cas.NodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Builder, error) {
			toolchain, err := graft.Dep[ports.Toolchain](ctx)
			if err != nil {
				return nil, err
			}
			discovery, err := graft.Dep[ports.Discovery](ctx)
			if err != nil {
				return nil, err
			}
			reader, err := graft.Dep[ports.SourceReader](ctx)
			if err != nil {
				return nil, err
			}
			overrides, err := graft.Dep[ports.OverrideResolver](ctx)
			if err != nil {
				return nil, err
			}
			writer, err := graft.Dep[ports.OutputWriter](ctx)
			if err != nil {
				return nil, err
			}
			cleaner, err := graft.Dep[ports.Cleaner](ctx)
			if err != nil {
				return nil, err
			}
			store, err := graft.Dep[ports.ManifestStore](ctx)
			if err != nil {
				return nil, err
			}
			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(toolchain, discovery, reader, overrides, writer, cleaner, store, telemetry, log), nil
		},
	})
}
