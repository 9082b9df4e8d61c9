// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommonsImageURL(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		width    int
		want     string
	}{
		{"empty filename", "", 800, ""},
		{"simple", "A.jpg", 800, "https://commons.wikimedia.org/wiki/Special:FilePath/A.jpg?width=800"},
		{"spaces escaped", "Douglas adams portrait.jpg", 800, "https://commons.wikimedia.org/wiki/Special:FilePath/Douglas%20adams%20portrait.jpg?width=800"},
		{"slash escaped", "AC/DC.png", 600, "https://commons.wikimedia.org/wiki/Special:FilePath/AC%2FDC.png?width=600"},
		{"default width", "A.jpg", 0, "https://commons.wikimedia.org/wiki/Special:FilePath/A.jpg?width=600"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CommonsImageURL(tt.filename, tt.width))
		})
	}
}

func TestFallbackSummary(t *testing.T) {
	tests := []struct {
		name string
		in   Fallback
		want string
	}{
		{
			name: "label only",
			in:   Fallback{Label: "Q42"},
			want: "<p><strong>Q42</strong></p>",
		},
		{
			name: "full",
			in: Fallback{
				Label:       "Douglas Adams",
				Description: "English writer and humorist",
				BirthDate:   "1952-03-11",
				DeathDate:   "2001-05-11",
				Occupations: []string{"novelist", "screenwriter"},
			},
			want: "<p><strong>Douglas Adams</strong> (1952-03-11 – 2001-05-11) — English writer and humorist</p>" +
				"<p><strong>Occupation:</strong> novelist, screenwriter</p>",
		},
		{
			name: "living person",
			in:   Fallback{Label: "Ada", BirthDate: "1990-04-12"},
			want: "<p><strong>Ada</strong> (1990-04-12 – )</p>",
		},
		{
			name: "unknown birth",
			in:   Fallback{Label: "Ada", DeathDate: "1852-11-27"},
			want: "<p><strong>Ada</strong> (… – 1852-11-27)</p>",
		},
		{
			name: "description without dates",
			in:   Fallback{Label: "Paris", Description: "capital of France"},
			want: "<p><strong>Paris</strong> — capital of France</p>",
		},
		{
			name: "escapes markup",
			in:   Fallback{Label: "<b>x</b>", Description: "a & b"},
			want: "<p><strong>&lt;b&gt;x&lt;/b&gt;</strong> — a &amp; b</p>",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FallbackSummary(tt.in))
		})
	}
}

func TestFallbackSummary_NoOccupationParagraph(t *testing.T) {
	got := FallbackSummary(Fallback{Label: "X", Occupations: nil})
	assert.NotContains(t, got, "Occupation:")
	assert.Equal(t, 1, strings.Count(got, "<p>"))
}

func TestParagraphs(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"whitespace only", " \n\n \n", ""},
		{"single", "One paragraph.", "<p>One paragraph.</p>"},
		{"two blocks", "First.\n\nSecond.", "<p>First.</p><p>Second.</p>"},
		{"trims blocks", "  First. \n\n\nSecond.\n", "<p>First.</p><p>Second.</p>"},
		{"single newline kept", "Line one\nline two", "<p>Line one\nline two</p>"},
		{"escapes", "1 < 2 & 3 > 2", "<p>1 &lt; 2 &amp; 3 &gt; 2</p>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Paragraphs(tt.in))
		})
	}
}

func TestPlainText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"paragraphs", "<p>First.</p><p>Second.</p>", "First.\n\nSecond."},
		{"unescapes", "<p>1 &lt; 2 &amp; 3</p>", "1 < 2 & 3"},
		{"drops markup", "<p><strong>Occupation:</strong> writer</p>", "Occupation: writer"},
		{"skips blank blocks", "<p>A</p><p>  </p><p>B</p>", "A\n\nB"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PlainText(tt.in)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPlainText_RoundTripsParagraphs(t *testing.T) {
	in := "Alpha & beta.\n\nGamma <delta>."
	got, err := PlainText(Paragraphs(in))
	assert.NoError(t, err)
	assert.Equal(t, in, got)
}
