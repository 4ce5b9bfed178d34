package cli

import (
	"fmt"
	"strings"

	"github.com/Flyrell/daymark/internal/config"
	"github.com/spf13/cobra"
)

var groupRemoveCmd = LeafCommand{
	Use:   "remove NAME",
	Short: "Remove a preset group",
	Args:  cobra.ExactArgs(1),
	BoolFlags: []BoolFlag{
		{Name: "yes", Usage: "skip confirmation prompt"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		paths, err := getAppPaths()
		if err != nil {
			return err
		}
		yes, _ := cmd.Flags().GetBool("yes")
		return runGroupRemove(cmd, paths.config, args[0], NewPromptKit(yes).Confirm)
	},
}.Build()

func runGroupRemove(cmd *cobra.Command, cfgPath, name string, confirm ConfirmFunc) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	name = strings.TrimSpace(name)
	if cfg.FindGroup(name) == nil {
		return fmt.Errorf("group '%s' not found", name)
	}

	ok, err := confirm(fmt.Sprintf("Remove group '%s'?", name))
	if err != nil {
		return err
	}
	if !ok {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), Silent("cancelled"))
		return nil
	}

	if err := cfg.RemoveGroup(name); err != nil {
		return err
	}
	if err := cfg.Save(cfgPath); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "group '%s' removed\n", Primary(name))
	return nil
}
