package cli

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/Flyrell/daymark/internal/board"
	"github.com/Flyrell/daymark/internal/calendar"
	"github.com/Flyrell/daymark/internal/config"
	"github.com/Flyrell/daymark/internal/session"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var boardCmd = LeafCommand{
	Use:   "board",
	Short: "Open the interactive month board",
	Args:  cobra.NoArgs,
	StrFlags: []StringFlag{
		{Name: "month", Usage: "month number 1-12 (default: current month)"},
		{Name: "year", Usage: "year (default: current year)"},
		{Name: "session", Usage: "open a saved session (by ID or name)"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		paths, err := getAppPaths()
		if err != nil {
			return err
		}
		monthFlag, _ := cmd.Flags().GetString("month")
		yearFlag, _ := cmd.Flags().GetString("year")
		sessionRef, _ := cmd.Flags().GetString("session")
		return runBoard(cmd, paths, monthFlag, yearFlag, sessionRef, time.Now())
	},
}.Build()

func runBoard(cmd *cobra.Command, paths appPaths, monthFlag, yearFlag, sessionRef string, now time.Time) error {
	cfg, err := config.Load(paths.config)
	if err != nil {
		return err
	}
	b, name, err := openBoard(paths, cfg, monthFlag, yearFlag, sessionRef, now)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	// Non-TTY fallback: print static board
	if !isTerminal(out) {
		return printStaticBoard(out, b, name)
	}

	m := newBoardModel(b, cfg, paths.db, name)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithOutput(out))
	_, err = p.Run()
	return err
}

// openBoard builds a fresh board from the config presets or restores a saved
// session. It returns the session name, empty for a fresh board.
func openBoard(paths appPaths, cfg *config.Config, monthFlag, yearFlag, sessionRef string, now time.Time) (*board.Board, string, error) {
	if sessionRef == "" {
		year, month, err := calendar.ParseMonthYear(monthFlag, yearFlag, now)
		if err != nil {
			return nil, "", err
		}
		b, err := board.New(year, month, cfg.Groups, board.WithLogger(logger))
		return b, "", err
	}

	if monthFlag != "" || yearFlag != "" {
		return nil, "", errors.New("--session cannot be combined with --month or --year")
	}
	var (
		b    *board.Board
		name string
	)
	err := withStore(paths.db, func(ctx context.Context, store session.Store) error {
		sess, restored, err := loadSessionBoard(ctx, store, sessionRef)
		if err != nil {
			return err
		}
		b, name = restored, sess.Name
		return nil
	})
	return b, name, err
}

func printStaticBoard(w io.Writer, b *board.Board, name string) error {
	_, err := io.WriteString(w, renderBoard(b, boardView{
		title:     name,
		cellWidth: defaultCellWidth,
	}))
	return err
}
