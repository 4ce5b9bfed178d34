package cli

import (
	"fmt"
	"strings"

	"github.com/Flyrell/daymark/internal/board"
	"github.com/spf13/cobra"
)

var groupCmd = GroupCommand{
	Use:   "group",
	Short: "Manage the preset groups loaded into new boards",
	Subcommands: []*cobra.Command{
		groupAddCmd,
		groupListCmd,
		groupRemoveCmd,
	},
}.Build()

// formatGroup renders "name  (n options) -> a, b".
func formatGroup(g board.Group) string {
	return fmt.Sprintf("%s  (%d options) -> %s", g.Name, len(g.Options), strings.Join(g.Options, ", "))
}

func groupNames(groups []board.Group) string {
	if len(groups) == 0 {
		return "none"
	}
	names := make([]string, len(groups))
	for i, g := range groups {
		names[i] = g.Name
	}
	return strings.Join(names, ", ")
}
