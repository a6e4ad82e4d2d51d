package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/gocube_sim"
	"github.com/SeamusWaldron/gocube_sim/internal/recorder"
)

func (a *app) newApplyCmd() *cobra.Command {
	var scramble bool

	cmd := &cobra.Command{
		Use:   "apply <moves>",
		Short: "Apply a move sequence and print the cube",
		Long: `Apply moves in standard notation to a solved cube and print the result.

Examples:
  gocube apply "R U R' U'"
  gocube apply --scramble F R U`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runApply(cmd, strings.Join(args, " "), scramble)
		},
	}

	cmd.Flags().BoolVar(&scramble, "scramble", false, "Scramble before applying the moves")
	return cmd
}

func (a *app) runApply(cmd *cobra.Command, notation string, scramble bool) error {
	moves, err := gocube.ParseMoves(notation)
	if err != nil {
		return err
	}

	return a.withSession(notation, func(s *recorder.Session) error {
		out := cmd.OutOrStdout()
		if scramble {
			scr, err := s.Scramble()
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Scramble: %s\n", gocube.FormatMoves(scr))
		}

		if err := s.Apply(moves...); err != nil {
			return err
		}

		fmt.Fprintf(out, "Moves: %s\n\n", gocube.FormatMoves(moves))
		fmt.Fprint(out, s.Snapshot().String())
		fmt.Fprintf(out, "\nSolved: %t\n", s.IsSolved())
		return nil
	})
}

// withSession runs fn inside a journaled session.
func (a *app) withSession(notes string, fn func(s *recorder.Session) error) error {
	db, err := a.openDB()
	if err != nil {
		return err
	}
	if db != nil {
		defer db.Close()
	}

	session := recorder.NewSession(db, a.log, a.cubeOptions()...)
	if _, err := session.Start(a.cfg.Scramble.Seed, notes); err != nil {
		return err
	}

	fnErr := fn(session)
	if err := session.End(); err != nil && fnErr == nil {
		return err
	}
	return fnErr
}
