// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/smart-summary/pkg/types"
)

var searchCmd = &cobra.Command{
	Use:   "search <term...>",
	Short: "Resolve a term to a summary record",
	Long: `Search resolves the term against Wikidata, enriches the top hit with
Wikipedia, and prints the summary record. This is the same lookup the
/api/search endpoint performs.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	lang, _ := cmd.Flags().GetString("lang")
	format, _ := cmd.Flags().GetString("format")

	term := strings.TrimSpace(strings.Join(args, " "))
	if term == "" {
		return fmt.Errorf("empty search term")
	}

	resolver, _ := newPipeline()
	summary, err := resolver.Resolve(cmd.Context(), term, lang)
	if err != nil {
		return err
	}

	if format == "table" {
		printSummary(os.Stdout, summary)
		return nil
	}
	return writeStructured(os.Stdout, format, summary)
}

func printSummary(w io.Writer, s *types.Summary) {
	rows := [][2]string{
		{"QID", s.QID},
		{"Label", s.Label},
		{"Description", s.Description},
		{"Born", deref(s.BirthDate)},
		{"Died", deref(s.DeathDate)},
		{"Occupations", strings.Join(s.Occupations, ", ")},
		{"Image", deref(s.Image)},
		{"Wikipedia", deref(s.WikipediaURL)},
		{"Page", deref(s.SiteTitle)},
		{"Language", s.Language},
	}
	for _, r := range rows {
		fmt.Fprintf(w, "%-12s  %s\n", r[0], r[1])
	}
}

func init() {
	searchCmd.Flags().String("lang", types.DefaultLanguage, "language code")
	searchCmd.Flags().String("format", "table", "output format: table, json, yaml")

	rootCmd.AddCommand(searchCmd)
}
