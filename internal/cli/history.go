package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/gocube_sim/internal/storage"
)

func (a *app) newHistoryCmd() *cobra.Command {
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Browse the journal of past sessions",
	}

	var limit int
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List recent sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runHistoryList(cmd, limit)
		},
	}
	listCmd.Flags().IntVarP(&limit, "limit", "n", 20, "Number of sessions to list")

	var last bool
	showCmd := &cobra.Command{
		Use:   "show [session_id]",
		Short: "Show a session's moves and replay them",
		Long: `Show the moves recorded in a session and the net they produce when
replayed on a solved cube.

Examples:
  gocube history show --last
  gocube history show <session_id>`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := ""
			if len(args) == 1 {
				id = args[0]
			}
			return a.runHistoryShow(cmd, id, last)
		},
	}
	showCmd.Flags().BoolVar(&last, "last", false, "Show the most recent session")

	labelCmd := &cobra.Command{
		Use:   "label <session_id> <label>",
		Short: "Attach a label to a session",
		Long: `Attach a short label to a session. The label replaces the notes in
'history list'.

Example:
  gocube history label <session_id> "first sub-minute"`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runHistoryLabel(cmd, args[0], strings.Join(args[1:], " "))
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete <session_id>",
		Short: "Delete a session and its moves",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runHistoryDelete(cmd, args[0])
		},
	}

	historyCmd.AddCommand(listCmd, showCmd, labelCmd, deleteCmd)
	return historyCmd
}

func (a *app) runHistoryList(cmd *cobra.Command, limit int) error {
	db, err := a.requireDB()
	if err != nil {
		return err
	}
	defer db.Close()

	sessions, err := storage.NewSessionRepository(db).List(limit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(sessions) == 0 {
		fmt.Fprintln(out, "No sessions recorded")
		return nil
	}

	moveRepo := storage.NewMoveRepository(db)
	for _, s := range sessions {
		count, err := moveRepo.Count(s.SessionID)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s  %s  %3d moves  %s\n",
			s.SessionID, s.StartedAt.Local().Format(time.DateTime), count, sessionNotes(s))
	}
	return nil
}

func (a *app) runHistoryShow(cmd *cobra.Command, id string, last bool) error {
	if id == "" && !last {
		return fmt.Errorf("specify a session ID or --last")
	}

	db, err := a.requireDB()
	if err != nil {
		return err
	}
	defer db.Close()

	sessionRepo := storage.NewSessionRepository(db)
	var session *storage.Session
	if last {
		session, err = sessionRepo.GetLast()
	} else {
		session, err = sessionRepo.Get(id)
	}
	if err != nil {
		return err
	}

	records, err := storage.NewMoveRepository(db).GetBySession(session.SessionID)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Session: %s\n", session.SessionID)
	fmt.Fprintf(out, "Started: %s\n", session.StartedAt.Local().Format(time.DateTime))
	if session.EndedAt != nil {
		fmt.Fprintf(out, "Ended:   %s\n", session.EndedAt.Local().Format(time.DateTime))
	}
	if session.Seed != nil {
		fmt.Fprintf(out, "Seed:    %d\n", *session.Seed)
	}
	if notes := sessionNotes(*session); notes != "" {
		fmt.Fprintf(out, "Notes:   %s\n", notes)
	}
	fmt.Fprintln(out)

	for _, r := range records {
		fmt.Fprintf(out, "%4d  %6dms  %-8s  %s\n", r.MoveIndex, r.TsMs, r.Source, r.Notation)
	}

	c, err := storage.Replay(records)
	if err != nil {
		return err
	}
	fmt.Fprintln(out)
	fmt.Fprint(out, c.String())
	fmt.Fprintf(out, "\nSolved: %t\n", c.IsSolved())
	return nil
}

func (a *app) runHistoryLabel(cmd *cobra.Command, id, label string) error {
	db, err := a.requireDB()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := storage.NewSessionRepository(db).SetLabel(id, label); err != nil {
		return err
	}
	a.log.Info("session labeled", "session_id", id, "label", label)
	fmt.Fprintf(cmd.OutOrStdout(), "Labeled %s: %s\n", id, label)
	return nil
}

func (a *app) runHistoryDelete(cmd *cobra.Command, id string) error {
	db, err := a.requireDB()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := storage.NewSessionRepository(db).Delete(id); err != nil {
		return err
	}
	a.log.Info("session deleted", "session_id", id)
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", id)
	return nil
}

func sessionNotes(s storage.Session) string {
	if s.Label != nil {
		return *s.Label
	}
	if s.Notes != nil {
		return *s.Notes
	}
	return ""
}
