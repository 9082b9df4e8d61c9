// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Summary is the resolved record returned for a search term. Optional
// fields are pointers so they serialize as JSON null when absent.
type Summary struct {
	// QID is the Wikidata entity identifier of the top search hit.
	QID string `json:"qid" yaml:"qid"`

	// Label is the entity label in the requested language, falling back to
	// English, the search hit label, and finally the QID.
	Label string `json:"label" yaml:"label"`

	// Description follows the same fallback chain as Label and is empty
	// when no description exists at all.
	Description string `json:"description" yaml:"description"`

	// Image is a Commons thumbnail URL or the Wikipedia summary thumbnail.
	Image *string `json:"image" yaml:"image"`

	// BirthDate and DeathDate are truncated Wikibase times (YYYY-MM-DD).
	BirthDate *string `json:"birthDate" yaml:"birth_date"`
	DeathDate *string `json:"deathDate" yaml:"death_date"`

	// Occupations are labels in claim order.
	Occupations []string `json:"occupations" yaml:"occupations"`

	// WikipediaURL links the page named by SiteTitle.
	WikipediaURL *string `json:"wikipediaUrl" yaml:"wikipedia_url"`

	// Language is the language code the caller asked for.
	Language string `json:"language" yaml:"language"`

	// ContentHTML is either the Wikipedia extract or the fallback summary.
	ContentHTML string `json:"contentHtml" yaml:"content_html"`

	// SiteTitle is the linked Wikipedia page title.
	SiteTitle *string `json:"siteTitle" yaml:"site_title"`
}

// Article is the plain-text body of a Wikipedia page rendered as paragraphs.
type Article struct {
	Title       string `json:"title" yaml:"title"`
	ContentHTML string `json:"contentHtml" yaml:"content_html"`
}
