// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package resolve turns a search term into a summary record by combining a
// Wikidata entity with its Wikipedia page summary.
package resolve

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/pdiddy/smart-summary/internal/httputil"
	"github.com/pdiddy/smart-summary/internal/render"
	"github.com/pdiddy/smart-summary/internal/wikidata"
	"github.com/pdiddy/smart-summary/internal/wikipedia"
	"github.com/pdiddy/smart-summary/pkg/types"
)

// KnowledgeBase is the Wikidata side of a resolution.
type KnowledgeBase interface {
	Search(ctx context.Context, term, lang string) ([]wikidata.SearchHit, error)
	Entity(ctx context.Context, id string) (*wikidata.Entity, error)
	ResolveLabels(ctx context.Context, ids []string, lang string) (map[string]string, error)
}

// Encyclopedia supplies the optional page summary.
type Encyclopedia interface {
	Summary(ctx context.Context, lang, title string) (*wikipedia.PageSummary, error)
}

// Resolver runs the lookup chain search → entity → labels → summary. It
// holds no per-request state and is safe for concurrent use.
type Resolver struct {
	KB           KnowledgeBase
	Encyclopedia Encyclopedia
	Logger       *slog.Logger
}

// New returns a Resolver. A nil logger discards log output.
func New(kb KnowledgeBase, enc Encyclopedia, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Resolver{KB: kb, Encyclopedia: enc, Logger: logger}
}

// Resolve looks term up in lang and assembles the summary record. Only the
// knowledge-base calls can fail it; the page summary is best effort.
// No search hits yields an error wrapping httputil.ErrNotFound.
func (r *Resolver) Resolve(ctx context.Context, term, lang string) (*types.Summary, error) {
	if !wikipedia.ValidLanguage(lang) {
		return nil, fmt.Errorf("invalid language code %q", lang)
	}

	hits, err := r.KB.Search(ctx, term, lang)
	if err != nil {
		return nil, err
	}
	if len(hits) == 0 {
		return nil, fmt.Errorf("no results in Wikidata for %q: %w", term, httputil.ErrNotFound)
	}
	top := hits[0]

	entity, err := r.KB.Entity(ctx, top.ID)
	if err != nil {
		return nil, err
	}

	label := firstNonEmpty(entity.LabelIn(lang), top.Label, top.ID)
	description := firstNonEmpty(entity.DescriptionIn(lang), top.Description)
	birth := wikidata.ParseTime(entity.FirstTime(wikidata.PropBirthDate))
	death := wikidata.ParseTime(entity.FirstTime(wikidata.PropDeathDate))

	occupationIDs := entity.EntityIDs(wikidata.PropOccupation)
	labels, err := r.KB.ResolveLabels(ctx, occupationIDs, lang)
	if err != nil {
		return nil, err
	}
	occupations := make([]string, 0, len(occupationIDs))
	for _, id := range occupationIDs {
		occupations = append(occupations, labels[id])
	}

	image := render.CommonsImageURL(entity.FirstString(wikidata.PropImage), render.ThumbWidth)

	title, wikiLang := entity.SitelinkTitle(lang)
	var pageURL, extract string
	if title != "" {
		pageURL = wikipedia.PageURL(wikiLang, title)

		summary := r.pageSummary(ctx, wikiLang, title)
		if summary != nil {
			extract = summary.Extract
			if image == "" {
				image = summary.ThumbnailURL()
			}
		}
	}

	var content string
	if extract != "" {
		content = render.Paragraphs(extract)
	} else {
		content = render.FallbackSummary(render.Fallback{
			Label:       label,
			Description: description,
			BirthDate:   birth,
			DeathDate:   death,
			Occupations: occupations,
		})
	}

	return &types.Summary{
		QID:          firstNonEmpty(entity.ID, top.ID),
		Label:        label,
		Description:  description,
		Image:        optional(image),
		BirthDate:    optional(birth),
		DeathDate:    optional(death),
		Occupations:  occupations,
		WikipediaURL: optional(pageURL),
		Language:     lang,
		ContentHTML:  content,
		SiteTitle:    optional(title),
	}, nil
}

// pageSummary fetches the page summary and swallows every failure. A 404
// means the page has no summary; anything else is an upstream problem and
// is logged louder.
func (r *Resolver) pageSummary(ctx context.Context, lang, title string) *wikipedia.PageSummary {
	s, err := r.Encyclopedia.Summary(ctx, lang, title)
	if err == nil {
		return s
	}

	var upErr *httputil.UpstreamError
	if errors.As(err, &upErr) && upErr.NotFound() {
		r.Logger.DebugContext(ctx, "no summary", "lang", lang, "title", title)
	} else {
		r.Logger.WarnContext(ctx, "summary unavailable", "lang", lang, "title", title, "error", err)
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
