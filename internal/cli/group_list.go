package cli

import (
	"fmt"

	"github.com/Flyrell/daymark/internal/config"
	"github.com/spf13/cobra"
)

var groupListCmd = LeafCommand{
	Use:   "list",
	Short: "List preset groups",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		paths, err := getAppPaths()
		if err != nil {
			return err
		}
		return runGroupList(cmd, paths.config)
	},
}.Build()

func runGroupList(cmd *cobra.Command, cfgPath string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(cfg.Groups) == 0 {
		_, _ = fmt.Fprintln(out, Silent("no groups defined"))
		return nil
	}
	for _, g := range cfg.Groups {
		_, _ = fmt.Fprintln(out, formatGroup(g))
	}
	return nil
}
