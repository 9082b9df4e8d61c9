// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render builds the URLs and HTML fragments returned to the front end.
// Fragments are assembled as golang.org/x/net/html node trees so upstream text
// is always escaped.
package render

import (
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// commonsFilePathBase is the Wikimedia Commons redirect to a file's media URL.
var commonsFilePathBase = "https://commons.wikimedia.org/wiki/Special:FilePath/"

const (
	// DefaultImageWidth is the width used when no explicit width is wanted.
	DefaultImageWidth = 600
	// ThumbWidth is the width of the entity thumbnail in a summary.
	ThumbWidth = 800
)

// CommonsImageURL returns a sized Commons URL for filename, or "" when
// filename is empty. A non-positive width selects DefaultImageWidth.
func CommonsImageURL(filename string, width int) string {
	if filename == "" {
		return ""
	}
	if width <= 0 {
		width = DefaultImageWidth
	}
	return fmt.Sprintf("%s%s?width=%d", commonsFilePathBase, url.PathEscape(filename), width)
}

// Fallback holds the entity facts rendered when Wikipedia has no extract.
type Fallback struct {
	Label       string
	Description string
	BirthDate   string
	DeathDate   string
	Occupations []string
}

// FallbackSummary renders up to two paragraphs: the label with an optional
// life span and description, then the occupations if there are any.
func FallbackSummary(f Fallback) string {
	first := element(atom.P)
	first.AppendChild(strongText(f.Label))

	if f.BirthDate != "" || f.DeathDate != "" {
		birth := f.BirthDate
		if birth == "" {
			birth = "…"
		}
		first.AppendChild(text(fmt.Sprintf(" (%s – %s)", birth, f.DeathDate)))
	}
	if f.Description != "" {
		first.AppendChild(text(" — " + f.Description))
	}

	nodes := []*html.Node{first}
	if len(f.Occupations) > 0 {
		second := element(atom.P)
		second.AppendChild(strongText("Occupation:"))
		second.AppendChild(text(" " + strings.Join(f.Occupations, ", ")))
		nodes = append(nodes, second)
	}
	return renderNodes(nodes)
}

// Paragraphs splits plain text on blank lines and wraps each trimmed,
// non-empty block in its own paragraph. Whitespace-only input renders as ""
// rather than an empty <p></p>, so callers can treat it as no extract.
func Paragraphs(s string) string {
	var nodes []*html.Node
	for _, block := range strings.Split(s, "\n\n") {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		p := element(atom.P)
		p.AppendChild(text(block))
		nodes = append(nodes, p)
	}
	return renderNodes(nodes)
}

func element(a atom.Atom) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

func strongText(s string) *html.Node {
	n := element(atom.Strong)
	n.AppendChild(text(s))
	return n
}

func renderNodes(nodes []*html.Node) string {
	var b strings.Builder
	for _, n := range nodes {
		// Rendering into a strings.Builder cannot fail.
		_ = html.Render(&b, n)
	}
	return b.String()
}

// PlainText reverses a paragraph fragment to text, one block per top-level
// element separated by blank lines. Markup inside a block is dropped.
func PlainText(fragment string) (string, error) {
	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), body)
	if err != nil {
		return "", fmt.Errorf("parsing fragment: %w", err)
	}

	var blocks []string
	for _, n := range nodes {
		var b strings.Builder
		collectText(n, &b)
		if t := strings.TrimSpace(b.String()); t != "" {
			blocks = append(blocks, t)
		}
	}
	return strings.Join(blocks, "\n\n"), nil
}

func collectText(n *html.Node, b *strings.Builder) {
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b)
	}
}
