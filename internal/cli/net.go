package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/gocube_sim"
	"github.com/SeamusWaldron/gocube_sim/internal/tui"
)

func (a *app) newNetCmd() *cobra.Command {
	var face string

	cmd := &cobra.Command{
		Use:   "net [moves]",
		Short: "Print the colored net of a cube",
		Long: `Print the unfolded net of a cube in color, optionally after a move
sequence. Nothing is recorded in the journal.

Examples:
  gocube net
  gocube net "F R"
  gocube net --face U "F"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNet(cmd, strings.Join(args, " "), face)
		},
	}

	cmd.Flags().StringVar(&face, "face", "", "Print one face as a 3x3 grid (F, B, L, R, U, D)")
	return cmd
}

func runNet(cmd *cobra.Command, notation, face string) error {
	c := gocube.NewCube()
	if err := c.ApplyNotation(notation); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if face == "" {
		fmt.Fprint(out, tui.RenderNet(c))
		return nil
	}

	f, err := gocube.ParseFace(face)
	if err != nil {
		return err
	}

	grid := c.FaceColors(f)
	fmt.Fprintf(out, "%s:\n", f.Name())
	for _, row := range grid {
		for col, color := range row {
			if col > 0 {
				fmt.Fprint(out, " ")
			}
			fmt.Fprint(out, color.String())
		}
		fmt.Fprintln(out)
	}
	return nil
}
