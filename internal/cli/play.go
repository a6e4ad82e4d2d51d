package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/gocube_sim/internal/recorder"
	"github.com/SeamusWaldron/gocube_sim/internal/tui"
)

func (a *app) newPlayCmd() *cobra.Command {
	var notes string

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Interactive cube",
		Long: `Start an interactive TUI showing the cube as an unfolded net.

Keyboard shortcuts:
  f b l r u d   - Turn a face clockwise
  F B L R U D   - Turn a face counter-clockwise
  s             - Scramble
  x             - Reset to solved
  z             - Undo the last move
  q/Esc         - Quit

Every change is recorded in the journal unless --no-journal is set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runPlay(cmd, notes)
		},
	}

	cmd.Flags().StringVar(&notes, "notes", "", "Notes stored with the session")
	return cmd
}

func (a *app) runPlay(cmd *cobra.Command, notes string) error {
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

	runErr := tui.Run(session,
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
		tea.WithAltScreen(),
	)

	if err := session.End(); err != nil && runErr == nil {
		return err
	}
	return runErr
}
