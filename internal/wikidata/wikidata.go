// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package wikidata queries the Wikidata API: free-text entity search, full
// entity records, and batched label lookup.
package wikidata

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/pdiddy/smart-summary/internal/httputil"
)

// Endpoints are vars so tests can substitute an httptest server.
var (
	apiBase        = "https://www.wikidata.org/w/api.php"
	entityDataBase = "https://www.wikidata.org/wiki/Special:EntityData/"
)

// maxIDsPerRequest is the wbgetentities limit for anonymous clients.
const maxIDsPerRequest = 50

// Client talks to Wikidata through a shared JSON getter.
type Client struct {
	HTTP *httputil.Client
}

// NewClient returns a Client using c for requests.
func NewClient(c *httputil.Client) *Client {
	return &Client{HTTP: c}
}

// SearchHit is one wbsearchentities result.
type SearchHit struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// Search runs a free-text entity search in lang and returns the hits in
// upstream order.
func (c *Client) Search(ctx context.Context, term, lang string) ([]SearchHit, error) {
	params := url.Values{
		"action":   {"wbsearchentities"},
		"format":   {"json"},
		"type":     {"item"},
		"language": {lang},
		"uselang":  {lang},
		"search":   {term},
	}
	reqURL := apiBase + "?" + params.Encode()

	var sr searchResponse
	if err := c.HTTP.GetJSON(ctx, reqURL, &sr); err != nil {
		return nil, fmt.Errorf("wikidata search: %w", err)
	}
	if sr.Error != nil {
		return nil, sr.Error.upstream(reqURL)
	}
	return sr.Search, nil
}

// Entity fetches the full record for id. A redirected id is answered with
// the target entity under its own key; that entity is returned.
func (c *Client) Entity(ctx context.Context, id string) (*Entity, error) {
	reqURL := entityDataBase + url.PathEscape(id) + ".json"

	var er entitiesResponse
	if err := c.HTTP.GetJSON(ctx, reqURL, &er); err != nil {
		return nil, fmt.Errorf("wikidata entity %s: %w", id, err)
	}

	if e, ok := er.Entities[id]; ok {
		return e, nil
	}
	if len(er.Entities) == 1 {
		for _, e := range er.Entities {
			return e, nil
		}
	}
	return nil, &httputil.UpstreamError{
		URL: reqURL,
		Err: fmt.Errorf("entity %s missing from response", id),
	}
}

// ResolveLabels maps each id to its label in lang, falling back to English
// and then to the id itself. An empty ids slice makes no request.
func (c *Client) ResolveLabels(ctx context.Context, ids []string, lang string) (map[string]string, error) {
	labels := make(map[string]string, len(ids))
	if len(ids) == 0 {
		return labels, nil
	}

	unique := dedupe(ids)
	languages := lang
	if lang != "en" {
		languages = lang + "|en"
	}

	for start := 0; start < len(unique); start += maxIDsPerRequest {
		end := min(start+maxIDsPerRequest, len(unique))
		chunk := unique[start:end]

		params := url.Values{
			"action":    {"wbgetentities"},
			"format":    {"json"},
			"props":     {"labels"},
			"ids":       {strings.Join(chunk, "|")},
			"languages": {languages},
		}
		reqURL := apiBase + "?" + params.Encode()

		var er entitiesResponse
		if err := c.HTTP.GetJSON(ctx, reqURL, &er); err != nil {
			return nil, fmt.Errorf("wikidata labels: %w", err)
		}
		if er.Error != nil {
			return nil, er.Error.upstream(reqURL)
		}

		for _, id := range chunk {
			label := id
			if e := er.Entities[id]; e != nil {
				if l := e.LabelIn(lang); l != "" {
					label = l
				}
			}
			labels[id] = label
		}
	}
	return labels, nil
}

func dedupe(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

// Wikidata API JSON structures.
type searchResponse struct {
	Search []SearchHit `json:"search"`
	Error  *apiError   `json:"error,omitempty"`
}

type entitiesResponse struct {
	Entities map[string]*Entity `json:"entities"`
	Error    *apiError          `json:"error,omitempty"`
}

// apiError is the error object the action API returns with HTTP 200.
type apiError struct {
	Code string `json:"code"`
	Info string `json:"info"`
}

func (e *apiError) upstream(reqURL string) error {
	return &httputil.UpstreamError{
		URL: reqURL,
		Err: fmt.Errorf("%s: %s", e.Code, e.Info),
	}
}
