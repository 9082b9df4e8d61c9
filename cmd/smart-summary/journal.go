// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/smart-summary/internal/journal"
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Inspect the lookup journal",
	Long: `Journal reads the SQLite lookup journal written by "serve" when
journal.path is configured. The journal is a log of past lookups; it is never
used to answer requests.`,
}

// --- list subcommand ---

var journalListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the most recent lookups",
	RunE:  runJournalList,
}

func runJournalList(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")
	format, _ := cmd.Flags().GetString("format")

	store, err := openJournal()
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.Recent(cmd.Context(), limit)
	if err != nil {
		return err
	}

	if format != "table" {
		if entries == nil {
			entries = []journal.Entry{}
		}
		return writeStructured(os.Stdout, format, entries)
	}
	printEntries(os.Stdout, entries)
	return nil
}

func printEntries(w io.Writer, entries []journal.Entry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No lookups recorded.")
		return
	}
	fmt.Fprintf(w, "%-20s  %-4s  %-10s  %-30s  %s\n", "WHEN", "LANG", "QID", "TERM", "LABEL")
	for _, e := range entries {
		fmt.Fprintf(w, "%-20s  %-4s  %-10s  %-30s  %s\n",
			e.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			e.Language, e.QID, truncate(e.Term, 30), e.Label)
	}
	fmt.Fprintf(w, "\n%d entries\n", len(entries))
}

// --- export subcommand ---

var journalExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export every journal entry as YAML or JSON",
	RunE:  runJournalExport,
}

func runJournalExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	out, _ := cmd.Flags().GetString("out")

	store, err := openJournal()
	if err != nil {
		return err
	}
	defer store.Close()

	if out == "" {
		return store.Export(cmd.Context(), os.Stdout, format)
	}
	return exportToFile(cmd.Context(), store, out, format)
}

func exportToFile(ctx context.Context, store *journal.Store, path, format string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := store.Export(ctx, f, format); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	fmt.Fprintln(os.Stderr, "Wrote", path)
	return nil
}

func openJournal() (*journal.Store, error) {
	if cfg.Journal.Path == "" {
		return nil, fmt.Errorf("journal disabled: set journal.path or SMART_SUMMARY_JOURNAL_PATH")
	}
	return journal.Open(cfg.Journal.Path)
}

func init() {
	journalListCmd.Flags().Int("limit", 20, "maximum number of entries")
	journalListCmd.Flags().String("format", "table", "output format: table, json, yaml")
	journalExportCmd.Flags().String("format", "yaml", "output format: yaml, json")
	journalExportCmd.Flags().String("out", "", "write to file instead of stdout")

	journalCmd.AddCommand(journalListCmd, journalExportCmd)
	rootCmd.AddCommand(journalCmd)
}
