// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/smart-summary/internal/render"
	"github.com/pdiddy/smart-summary/pkg/types"
)

var articleCmd = &cobra.Command{
	Use:   "article <title...>",
	Short: "Fetch the full text of a Wikipedia article",
	Long: `Article fetches the plain-text body of the named page, following redirects.
The text format prints paragraphs separated by blank lines; json and yaml print
the same {title, contentHtml} record the /api/article endpoint returns.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runArticle,
}

func runArticle(cmd *cobra.Command, args []string) error {
	lang, _ := cmd.Flags().GetString("lang")
	format, _ := cmd.Flags().GetString("format")

	_, articles := newPipeline()
	a, err := articles.Article(cmd.Context(), lang, strings.Join(args, " "))
	if err != nil {
		return err
	}

	if format != "text" {
		return writeStructured(os.Stdout, format, a)
	}
	body, err := render.PlainText(a.ContentHTML)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "%s\n\n%s\n", a.Title, body)
	return nil
}

func init() {
	articleCmd.Flags().String("lang", types.DefaultLanguage, "language code")
	articleCmd.Flags().String("format", "text", "output format: text, json, yaml")

	rootCmd.AddCommand(articleCmd)
}
