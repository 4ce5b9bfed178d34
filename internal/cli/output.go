package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/Flyrell/daymark/internal/export"
	"github.com/Flyrell/daymark/internal/session"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// copyToClipboard is a package-level variable to allow mocking in tests.
var copyToClipboard = export.Copy

// openSessionStore opens the session database at path.
var openSessionStore = func(path string) (session.Store, error) {
	return session.NewSQLiteStore(path, logger)
}

// writeExportFile renders data to path. "-" writes to the command's output and
// an empty path uses the default file name derived from prefix.
// It returns the path written.
func writeExportFile(cmd *cobra.Command, data export.Data, f export.Format, path, prefix string, bom bool) (string, error) {
	if path == "-" {
		return path, export.Write(cmd.OutOrStdout(), f, data, export.Options{BOM: bom})
	}
	return exportToFile(data, f, path, prefix, bom)
}

// exportToFile writes data to a file, removing it again if rendering fails.
func exportToFile(data export.Data, f export.Format, path, prefix string, bom bool) (string, error) {
	if len(data.Rows) == 0 {
		return "", export.ErrEmpty
	}
	if path == "" {
		path = export.FileName(prefix, data, f)
	}

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", path, err)
	}
	if err := export.Write(file, f, data, export.Options{BOM: bom}); err != nil {
		file.Close()
		_ = os.Remove(path)
		return "", err
	}
	if err := file.Close(); err != nil {
		return "", err
	}
	return path, nil
}

// withStore opens the session store, runs fn and closes the store.
func withStore(dbPath string, fn func(ctx context.Context, store session.Store) error) error {
	store, err := openSessionStore(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()
	return fn(context.Background(), store)
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

// printTable renders data as a terminal table, styled only on a TTY.
func printTable(w io.Writer, data export.Data) error {
	style := "notty"
	if isTerminal(w) {
		style = "auto"
	}
	out, err := export.Terminal(data, style, 100)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}
