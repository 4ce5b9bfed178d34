package cli

import (
	"context"
	"fmt"

	"github.com/Flyrell/daymark/internal/board"
	"github.com/Flyrell/daymark/internal/calendar"
	"github.com/Flyrell/daymark/internal/session"
	"github.com/spf13/cobra"
)

var sessionCmd = GroupCommand{
	Use:   "session",
	Short: "Inspect, export and remove saved boards",
	Subcommands: []*cobra.Command{
		sessionListCmd,
		sessionShowCmd,
		sessionExportCmd,
		sessionRemoveCmd,
	},
}.Build()

// loadSessionBoard fetches a session and rebuilds its board.
func loadSessionBoard(ctx context.Context, store session.Store, ref string) (*session.Session, *board.Board, error) {
	sess, err := store.Get(ctx, ref)
	if err != nil {
		return nil, nil, err
	}
	b, err := board.Restore(sess.Snapshot, board.WithLogger(logger))
	if err != nil {
		return nil, nil, fmt.Errorf("session '%s' is corrupt: %w", sess.Name, err)
	}
	return sess, b, nil
}

func formatSessionLine(s session.Session) string {
	return fmt.Sprintf("%s  %s  %s  %d rows  %s",
		Silent(s.ID),
		Primary(s.Name),
		calendar.FormatPeriod(s.Year, s.Month),
		s.Rows,
		Silent(s.UpdatedAt.Local().Format("2006-01-02 15:04")),
	)
}
