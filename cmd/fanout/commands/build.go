package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Compile every component for the configured targets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req, err := request(cmd)
			if err != nil {
				return err
			}
			req.Targets, _ = cmd.Flags().GetStringSlice("target")
			req.Dest, _ = cmd.Flags().GetString("dest")

			if watch, _ := cmd.Flags().GetBool("watch"); watch {
				return c.app.Watch(cmd.Context(), req)
			}
			return c.app.Build(cmd.Context(), req)
		},
	}
	cmd.Flags().BoolP("watch", "w", false, "Rebuild whenever a source or override file changes")
	cmd.Flags().StringSliceP("target", "t", nil, "Build only these targets instead of the configured ones")
	cmd.Flags().StringP("dest", "d", "", "Write outputs below this directory instead of the configured one")
	return cmd
}
