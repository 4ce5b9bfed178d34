package cli

import (
	"fmt"

	"github.com/Flyrell/daymark/internal/config"
	"github.com/Flyrell/daymark/internal/stringutil"
	"github.com/spf13/cobra"
)

var groupAddCmd = LeafCommand{
	Use:   "add NAME [OPTIONS]",
	Short: "Add or update a preset group (options are comma separated)",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		paths, err := getAppPaths()
		if err != nil {
			return err
		}
		options := ""
		if len(args) > 1 {
			options = args[1]
		}
		return runGroupAdd(cmd, paths.config, args[0], options, NewPromptFunc())
	},
}.Build()

func runGroupAdd(cmd *cobra.Command, cfgPath, name, options string, prompt PromptFunc) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	if options == "" {
		options, err = prompt(fmt.Sprintf("Options for '%s' (comma separated)", name))
		if err != nil {
			return err
		}
	}

	g, created, err := cfg.PutGroup(name, stringutil.SplitList(options))
	if err != nil {
		return err
	}
	if err := cfg.Save(cfgPath); err != nil {
		return err
	}

	verb := "updated"
	if created {
		verb = "created"
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "group '%s' %s (%d options)\n", Primary(g.Name), verb, len(g.Options))
	return nil
}
