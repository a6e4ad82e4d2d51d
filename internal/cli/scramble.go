package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/gocube_sim"
	"github.com/SeamusWaldron/gocube_sim/internal/recorder"
)

func (a *app) newScrambleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scramble",
		Short: "Scramble a solved cube",
		Long: `Scramble a solved cube and print the scramble and the resulting net.

Use --seed for a reproducible scramble.`,
		Args: cobra.NoArgs,
		RunE: a.runScramble,
	}
}

func (a *app) runScramble(cmd *cobra.Command, args []string) error {
	return a.withSession("scramble", func(s *recorder.Session) error {
		moves, err := s.Scramble()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Scramble (%d moves): %s\n\n", len(moves), gocube.FormatMoves(moves))
		fmt.Fprint(out, s.Snapshot().String())
		return nil
	})
}
