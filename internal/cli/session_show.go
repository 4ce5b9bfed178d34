package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/Flyrell/daymark/internal/export"
	"github.com/Flyrell/daymark/internal/session"
	"github.com/spf13/cobra"
)

var sessionShowCmd = LeafCommand{
	Use:   "show SESSION",
	Short: "Show a saved session (by ID or name)",
	Args:  cobra.ExactArgs(1),
	BoolFlags: []BoolFlag{
		{Name: "table", Usage: "render the assignments as a table"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		paths, err := getAppPaths()
		if err != nil {
			return err
		}
		table, _ := cmd.Flags().GetBool("table")
		return withStore(paths.db, func(ctx context.Context, store session.Store) error {
			return runSessionShow(ctx, cmd, store, args[0], table)
		})
	},
}.Build()

func runSessionShow(ctx context.Context, cmd *cobra.Command, store session.Store, ref string, table bool) error {
	sess, b, err := loadSessionBoard(ctx, store, ref)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintln(out, formatSessionLine(*sess))
	_, _ = fmt.Fprintf(out, "%s %s\n", Info("groups:"), groupNames(b.Groups()))

	days := b.SelectedDays()
	selected := make([]string, len(days))
	for i, d := range days {
		selected[i] = strconv.Itoa(d)
	}
	if len(selected) == 0 {
		selected = []string{"none"}
	}
	_, _ = fmt.Fprintf(out, "%s %s\n", Info("selected:"), strings.Join(selected, ", "))

	lines := b.ResultLines()
	if len(lines) == 0 {
		_, _ = fmt.Fprintln(out, Silent("no assignments"))
		return nil
	}
	if table {
		return printTable(out, export.FromBoard(b, ""))
	}
	for _, line := range lines {
		_, _ = fmt.Fprintln(out, line)
	}
	return nil
}
