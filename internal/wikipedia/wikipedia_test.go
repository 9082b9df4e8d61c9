// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package wikipedia

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/smart-summary/internal/httputil"
	"github.com/pdiddy/smart-summary/pkg/types"
)

const sampleSummaryJSON = `{
  "type": "standard",
  "title": "Douglas Adams",
  "extract": "Douglas Noel Adams was an English author.\n\nHe is best known for The Hitchhiker's Guide.",
  "thumbnail": {"source": "https://upload.wikimedia.org/thumb/Douglas_adams.jpg", "width": 320, "height": 400}
}`

const sampleArticleJSON = `{
  "batchcomplete": "",
  "query": {
    "redirects": [{"from": "Adams, Douglas", "to": "Douglas Adams"}],
    "pages": {
      "8091": {
        "pageid": 8091,
        "ns": 0,
        "title": "Douglas Adams",
        "extract": "Douglas Noel Adams was an English author.\n\n\n== Early life ==\nAdams was born in Cambridge.\n"
      }
    }
  }
}`

const missingArticleJSON = `{
  "batchcomplete": "",
  "query": {
    "pages": {
      "-1": {"ns": 0, "title": "NotARealPage___xyz", "missing": ""}
    }
  }
}`

// requestLog records the escaped paths the mock server was asked for.
type requestLog struct {
	mu    sync.Mutex
	paths []string
}

func (l *requestLog) add(p string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.paths = append(l.paths, p)
}

func (l *requestLog) all() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.paths...)
}

// newMockWikipedia serves every language edition under /<lang>/.
func newMockWikipedia(t *testing.T) *requestLog {
	t.Helper()
	log := &requestLog{}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.add(r.URL.EscapedPath())
		w.Header().Set("Content-Type", "application/json")

		switch {
		case strings.HasSuffix(r.URL.Path, "/api/rest_v1/page/summary/Douglas Adams"):
			fmt.Fprint(w, sampleSummaryJSON)
		case strings.Contains(r.URL.Path, "/api/rest_v1/page/summary/"):
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprint(w, `{"type": "https://mediawiki.org/wiki/HyperSwitch/errors/not_found"}`)
		case strings.HasSuffix(r.URL.Path, "/w/api.php"):
			switch r.URL.Query().Get("titles") {
			case "Adams, Douglas":
				fmt.Fprint(w, sampleArticleJSON)
			case "Empty":
				fmt.Fprint(w, `{"query": {"pages": {}}}`)
			default:
				fmt.Fprint(w, missingArticleJSON)
			}
		default:
			w.WriteHeader(http.StatusBadRequest)
		}
	}))

	old := siteBase
	siteBase = ts.URL + "/{lang}"
	t.Cleanup(func() {
		siteBase = old
		ts.Close()
	})
	return log
}

func testClient() *Client {
	return NewClient(httputil.New(types.HTTPConfig{Timeout: 5 * time.Second, UserAgent: "test/0.1"}))
}

func TestValidLanguage(t *testing.T) {
	tests := []struct {
		lang string
		want bool
	}{
		{"en", true},
		{"als", true},
		{"simple", true},
		{"be-tarask", true},
		{"zh-min-nan", true},
		{"", false},
		{"EN", false},
		{"e", false},
		{"english", false},
		{"evil.com/", false},
		{"en.evil", false},
		{"en/../x", false},
	}
	for _, tt := range tests {
		t.Run(tt.lang, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidLanguage(tt.lang))
		})
	}
}

func TestPageURL(t *testing.T) {
	assert.Equal(t, "https://fr.wikipedia.org/wiki/Douglas%20Adams", PageURL("fr", "Douglas Adams"))
	assert.Equal(t, "https://en.wikipedia.org/wiki/AC%2FDC", PageURL("en", "AC/DC"))
}

// --- Summary ---

func TestSummary(t *testing.T) {
	reqs := newMockWikipedia(t)

	s, err := testClient().Summary(context.Background(), "en", "Douglas Adams")
	require.NoError(t, err)

	assert.Equal(t, "Douglas Adams", s.Title)
	assert.Contains(t, s.Extract, "English author")
	assert.Equal(t, "https://upload.wikimedia.org/thumb/Douglas_adams.jpg", s.ThumbnailURL())
	paths := reqs.all()
	require.Len(t, paths, 1)
	assert.Equal(t, "/en/api/rest_v1/page/summary/Douglas%20Adams", paths[0])
}

func TestSummary_NotFound(t *testing.T) {
	newMockWikipedia(t)

	_, err := testClient().Summary(context.Background(), "en", "No such page")
	var upErr *httputil.UpstreamError
	require.True(t, errors.As(err, &upErr))
	assert.True(t, upErr.NotFound())
}

func TestSummary_InvalidLanguage(t *testing.T) {
	reqs := newMockWikipedia(t)

	_, err := testClient().Summary(context.Background(), "evil.com/", "Douglas Adams")
	require.Error(t, err)
	assert.Empty(t, reqs.all())
}

func TestThumbnailURL_Absent(t *testing.T) {
	assert.Equal(t, "", (&PageSummary{}).ThumbnailURL())
}

// --- Article ---

func TestArticle(t *testing.T) {
	reqs := newMockWikipedia(t)

	a, err := testClient().Article(context.Background(), "de", "Adams, Douglas")
	require.NoError(t, err)

	assert.Equal(t, "Douglas Adams", a.Title, "title follows the redirect")
	assert.Equal(t,
		"<p>Douglas Noel Adams was an English author.</p><p>== Early life ==\nAdams was born in Cambridge.</p>",
		a.ContentHTML)
	paths := reqs.all()
	require.Len(t, paths, 1)
	assert.Equal(t, "/de/w/api.php", paths[0])
}

func TestArticle_Missing(t *testing.T) {
	newMockWikipedia(t)

	_, err := testClient().Article(context.Background(), "en", "NotARealPage___xyz")
	require.Error(t, err)
	assert.ErrorIs(t, err, httputil.ErrNotFound)
	assert.Contains(t, err.Error(), "NotARealPage___xyz")
}

func TestArticle_NoPages(t *testing.T) {
	newMockWikipedia(t)

	_, err := testClient().Article(context.Background(), "en", "Empty")
	assert.ErrorIs(t, err, httputil.ErrNotFound)
}

func TestArticle_InvalidLanguage(t *testing.T) {
	reqs := newMockWikipedia(t)

	_, err := testClient().Article(context.Background(), "x y", "Douglas Adams")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid language code")
	assert.Empty(t, reqs.all())
}
