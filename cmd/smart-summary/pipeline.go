// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/pdiddy/smart-summary/internal/httputil"
	"github.com/pdiddy/smart-summary/internal/resolve"
	"github.com/pdiddy/smart-summary/internal/wikidata"
	"github.com/pdiddy/smart-summary/internal/wikipedia"
)

// newPipeline wires the upstream clients around one shared HTTP client.
func newPipeline() (*resolve.Resolver, *wikipedia.Client) {
	hc := httputil.New(cfg.HTTP)
	wp := wikipedia.NewClient(hc)
	return resolve.New(wikidata.NewClient(hc), wp, logger), wp
}
