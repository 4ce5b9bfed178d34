package cli

import (
	"context"
	"fmt"

	"github.com/Flyrell/daymark/internal/config"
	"github.com/Flyrell/daymark/internal/export"
	"github.com/Flyrell/daymark/internal/session"
	"github.com/spf13/cobra"
)

var sessionExportCmd = LeafCommand{
	Use:   "export SESSION",
	Short: "Export a saved session to a file or the clipboard",
	Args:  cobra.ExactArgs(1),
	StrFlags: []StringFlag{
		{Name: "export", Usage: "export format (csv, text, html, pdf)", Default: "csv"},
		{Name: "output", Usage: "export path, - for stdout (default: <session>-YYYY-MM.<ext>)"},
	},
	BoolFlags: []BoolFlag{
		{Name: "copy", Usage: "copy to the clipboard instead of writing a file"},
		{Name: "bom", Usage: "prefix CSV output with a UTF-8 BOM (default: csv_bom from config)"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		paths, err := getAppPaths()
		if err != nil {
			return err
		}
		cfg, err := config.Load(paths.config)
		if err != nil {
			return err
		}
		formatFlag, _ := cmd.Flags().GetString("export")
		output, _ := cmd.Flags().GetString("output")
		copyFlag, _ := cmd.Flags().GetBool("copy")
		bom := cfg.CSVBOM
		if cmd.Flags().Changed("bom") {
			bom, _ = cmd.Flags().GetBool("bom")
		}
		return withStore(paths.db, func(ctx context.Context, store session.Store) error {
			return runSessionExport(ctx, cmd, store, args[0], cfg.Title, formatFlag, output, copyFlag, bom)
		})
	},
}.Build()

func runSessionExport(ctx context.Context, cmd *cobra.Command, store session.Store, ref, title, formatFlag, output string, copyFlag, bom bool) error {
	sess, b, err := loadSessionBoard(ctx, store, ref)
	if err != nil {
		return err
	}
	data := export.FromBoard(b, title)

	if copyFlag {
		if err := copyToClipboard(data); err != nil {
			return err
		}
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), Success("copied to clipboard"))
		return nil
	}

	format, err := export.ParseFormat(formatFlag)
	if err != nil {
		return err
	}
	path, err := writeExportFile(cmd, data, format, output, sess.Name, bom)
	if err != nil {
		return err
	}
	if path != "-" {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "exported %d rows to %s\n", len(data.Rows), Primary(path))
	}
	return nil
}
