package cli

import (
	"context"
	"fmt"

	"github.com/Flyrell/daymark/internal/session"
	"github.com/spf13/cobra"
)

var sessionListCmd = LeafCommand{
	Use:   "list",
	Short: "List saved sessions, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		paths, err := getAppPaths()
		if err != nil {
			return err
		}
		return withStore(paths.db, func(ctx context.Context, store session.Store) error {
			return runSessionList(ctx, cmd, store)
		})
	},
}.Build()

func runSessionList(ctx context.Context, cmd *cobra.Command, store session.Store) error {
	sessions, err := store.List(ctx)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(sessions) == 0 {
		_, _ = fmt.Fprintln(out, Silent("no saved sessions"))
		return nil
	}
	for _, s := range sessions {
		_, _ = fmt.Fprintln(out, formatSessionLine(s))
	}
	return nil
}
