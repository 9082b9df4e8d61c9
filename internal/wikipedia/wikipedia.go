// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package wikipedia reads page summaries and plain-text article extracts
// from a language edition of Wikipedia.
package wikipedia

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/pdiddy/smart-summary/internal/httputil"
	"github.com/pdiddy/smart-summary/internal/render"
	"github.com/pdiddy/smart-summary/pkg/types"
)

// siteBase is the root of a language edition; {lang} is replaced by the
// language code. Declared as a var so tests can substitute an httptest server.
var siteBase = "https://{lang}.wikipedia.org"

// langPattern accepts Wikipedia language codes such as en, als, simple,
// be-tarask and zh-min-nan. The code becomes part of a host name, so
// nothing else is allowed through.
var langPattern = regexp.MustCompile(`^([a-z]{2,3}|simple)(-[a-z0-9]+)*$`)

// ValidLanguage reports whether lang can be used as a Wikipedia subdomain.
func ValidLanguage(lang string) bool {
	return langPattern.MatchString(lang)
}

func base(lang string) string {
	return strings.ReplaceAll(siteBase, "{lang}", lang)
}

// PageURL returns the reader URL of title on the lang edition.
func PageURL(lang, title string) string {
	return base(lang) + "/wiki/" + url.PathEscape(title)
}

// Client reads from Wikipedia through a shared JSON getter.
type Client struct {
	HTTP *httputil.Client
}

// NewClient returns a Client using c for requests.
func NewClient(c *httputil.Client) *Client {
	return &Client{HTTP: c}
}

// PageSummary is the part of the REST page summary the resolver uses.
type PageSummary struct {
	Type      string     `json:"type"`
	Title     string     `json:"title"`
	Extract   string     `json:"extract"`
	Thumbnail *Thumbnail `json:"thumbnail,omitempty"`
}

// Thumbnail is the lead image of a page.
type Thumbnail struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// ThumbnailURL returns the thumbnail source or "".
func (s *PageSummary) ThumbnailURL() string {
	if s.Thumbnail == nil {
		return ""
	}
	return s.Thumbnail.Source
}

// Summary fetches the REST summary of title. A missing page surfaces as an
// *httputil.UpstreamError whose NotFound method reports true.
func (c *Client) Summary(ctx context.Context, lang, title string) (*PageSummary, error) {
	if !ValidLanguage(lang) {
		return nil, fmt.Errorf("invalid language code %q", lang)
	}
	reqURL := base(lang) + "/api/rest_v1/page/summary/" + url.PathEscape(title)

	var s PageSummary
	if err := c.HTTP.GetJSON(ctx, reqURL, &s); err != nil {
		return nil, fmt.Errorf("wikipedia summary %q: %w", title, err)
	}
	return &s, nil
}

// Article fetches the full plain-text extract of title, following redirects,
// and renders it as paragraphs. A missing page yields an error wrapping
// httputil.ErrNotFound.
func (c *Client) Article(ctx context.Context, lang, title string) (*types.Article, error) {
	if !ValidLanguage(lang) {
		return nil, fmt.Errorf("invalid language code %q", lang)
	}

	params := url.Values{
		"action":      {"query"},
		"format":      {"json"},
		"prop":        {"extracts"},
		"explaintext": {"1"},
		"redirects":   {"1"},
		"titles":      {title},
	}
	reqURL := base(lang) + "/w/api.php?" + params.Encode()

	var qr queryResponse
	if err := c.HTTP.GetJSON(ctx, reqURL, &qr); err != nil {
		return nil, fmt.Errorf("wikipedia article %q: %w", title, err)
	}
	if qr.Error != nil {
		return nil, &httputil.UpstreamError{
			URL: reqURL,
			Err: fmt.Errorf("%s: %s", qr.Error.Code, qr.Error.Info),
		}
	}

	id, page, ok := singlePage(qr.Query.Pages)
	if !ok || strings.HasPrefix(id, "-") || page.Missing != nil || page.Invalid != nil {
		return nil, fmt.Errorf("no page text for %q: %w", title, httputil.ErrNotFound)
	}
	return &types.Article{
		Title:       page.Title,
		ContentHTML: render.Paragraphs(page.Extract),
	}, nil
}

// singlePage returns the only page of a one-title query. The missing-page
// sentinel key is "-1".
func singlePage(pages map[string]queryPage) (string, queryPage, bool) {
	for id, p := range pages {
		return id, p, true
	}
	return "", queryPage{}, false
}

// Action API JSON structures.
type queryResponse struct {
	Query struct {
		Pages map[string]queryPage `json:"pages"`
	} `json:"query"`
	Error *struct {
		Code string `json:"code"`
		Info string `json:"info"`
	} `json:"error,omitempty"`
}

type queryPage struct {
	PageID  int     `json:"pageid"`
	Title   string  `json:"title"`
	Extract string  `json:"extract"`
	Missing *string `json:"missing,omitempty"`
	Invalid *string `json:"invalid,omitempty"`
}
