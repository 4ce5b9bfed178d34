package cli

import (
	"context"
	"fmt"

	"github.com/Flyrell/daymark/internal/calendar"
	"github.com/Flyrell/daymark/internal/session"
	"github.com/spf13/cobra"
)

var sessionRemoveCmd = LeafCommand{
	Use:   "remove [SESSION]",
	Short: "Remove a saved session (prompts for one when omitted)",
	Args:  cobra.MaximumNArgs(1),
	BoolFlags: []BoolFlag{
		{Name: "yes", Usage: "skip confirmation prompt"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		paths, err := getAppPaths()
		if err != nil {
			return err
		}
		yes, _ := cmd.Flags().GetBool("yes")
		ref := ""
		if len(args) > 0 {
			ref = args[0]
		}
		return withStore(paths.db, func(ctx context.Context, store session.Store) error {
			return runSessionRemove(ctx, cmd, store, ref, NewPromptKit(yes))
		})
	},
}.Build()

func runSessionRemove(ctx context.Context, cmd *cobra.Command, store session.Store, ref string, pk PromptKit) error {
	if ref == "" {
		sessions, err := store.List(ctx)
		if err != nil {
			return err
		}
		if len(sessions) == 0 {
			return fmt.Errorf("no saved sessions")
		}
		options := make([]string, len(sessions))
		for i, s := range sessions {
			options[i] = fmt.Sprintf("%s (%s)", s.Name, calendar.FormatPeriod(s.Year, s.Month))
		}
		idx, err := pk.Select("Select a session to remove", options)
		if err != nil {
			return err
		}
		ref = sessions[idx].ID
	}

	sess, err := store.Get(ctx, ref)
	if err != nil {
		return err
	}

	ok, err := pk.Confirm(fmt.Sprintf("Remove session '%s'?", sess.Name))
	if err != nil {
		return err
	}
	if !ok {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), Silent("cancelled"))
		return nil
	}

	if err := store.Delete(ctx, sess.ID); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "session '%s' removed\n", Primary(sess.Name))
	return nil
}
