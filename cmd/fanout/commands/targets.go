package commands

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"go.trai.ch/fanout/internal/core/domain"
	"go.trai.ch/fanout/internal/ui/output"
	"go.trai.ch/fanout/internal/ui/style"
)

func (c *CLI) newTargetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "targets",
		Short: "List the supported targets",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintln(out, targetsTable(output.Renderer(out)))
		},
	}
}

func targetsTable(r *lipgloss.Renderer) string {
	header := style.Header.Renderer(r)
	cell := style.Cell.Renderer(r)
	muted := style.Muted.Renderer(r)

	rows := make([][]string, 0, len(domain.AllTargets()))
	for _, t := range domain.AllTargets() {
		spec := t.Spec()
		note := ""
		if t.IsAlias() {
			note = style.Arrow + " " + t.Canonical().String()
		}
		rows = append(rows, []string{spec.Name, spec.Segment, spec.Extension, postProcessName(spec.PostProcess), note})
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(r.NewStyle().Foreground(style.Slate)).
		Headers("TARGET", "OUTPUT", "EXTENSION", "POST-PROCESS", "ALIAS").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return header
			case col >= 3:
				return muted
			default:
				return cell
			}
		}).
		String()
}

func postProcessName(p domain.PostProcess) string {
	switch p {
	case domain.PostProcessTranspile:
		return "transpile"
	case domain.PostProcessSolid:
		return "solid"
	default:
		return "none"
	}
}
