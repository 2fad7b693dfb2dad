package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/fanout/internal/app"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove the outputs of the last build",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req, err := request(cmd)
			if err != nil {
				return err
			}
			manifest, _ := cmd.Flags().GetBool("manifest")
			return c.app.Clean(cmd.Context(), req, app.CleanOptions{Manifest: manifest})
		},
	}

	cmd.Flags().BoolP("manifest", "m", false, "Also delete the build manifest")

	return cmd
}
