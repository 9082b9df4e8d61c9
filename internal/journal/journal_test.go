// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package journal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/smart-summary/pkg/types"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "data", "journal.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestNewEntry(t *testing.T) {
	title := "Douglas Adams"
	e := NewEntry("req-1", "douglas adams", &types.Summary{
		QID:       "Q42",
		Label:     "Douglas Adams",
		Language:  "en",
		SiteTitle: &title,
	})

	assert.Equal(t, Entry{
		RequestID: "req-1",
		Term:      "douglas adams",
		Language:  "en",
		QID:       "Q42",
		Label:     "Douglas Adams",
		SiteTitle: "Douglas Adams",
	}, e)

	e = NewEntry("", "x", &types.Summary{QID: "Q1", Language: "fr"})
	assert.Empty(t, e.SiteTitle)
}

func TestRecordAndRecent(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		require.NoError(t, s.Record(ctx, Entry{
			Term:     fmt.Sprintf("term %d", i),
			Language: "en",
			QID:      fmt.Sprintf("Q%d", i),
		}))
	}

	got, err := s.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Q3", got[0].QID, "newest first")
	assert.Equal(t, "Q2", got[1].QID)
	assert.NotEmpty(t, got[0].ID, "id is generated")
	assert.False(t, got[0].CreatedAt.IsZero(), "timestamp is set")

	all, err := s.Recent(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestRecord_KeepsGivenFields(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	require.NoError(t, s.Record(ctx, Entry{
		ID: "fixed-id", RequestID: "req-9", Term: "paris", Language: "fr",
		QID: "Q90", Label: "Paris", SiteTitle: "Paris", CreatedAt: at,
	}))

	got, err := s.All(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "fixed-id", got[0].ID)
	assert.Equal(t, "req-9", got[0].RequestID)
	assert.Equal(t, "Paris", got[0].SiteTitle)
	assert.True(t, at.Equal(got[0].CreatedAt))

	// Duplicate ids are rejected.
	assert.Error(t, s.Record(ctx, Entry{ID: "fixed-id", Term: "x", Language: "en", QID: "Q1"}))
}

func TestExport(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	require.NoError(t, s.Record(ctx, Entry{Term: "a", Language: "en", QID: "Q1", Label: "A"}))
	require.NoError(t, s.Record(ctx, Entry{Term: "b", Language: "de", QID: "Q2", Label: "B"}))

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, s.Export(ctx, &buf, "yaml"))

		var entries []Entry
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &entries))
		require.Len(t, entries, 2)
		assert.Equal(t, "Q1", entries[0].QID, "oldest first")
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, s.Export(ctx, &buf, "json"))

		var entries []Entry
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entries))
		require.Len(t, entries, 2)
		assert.Equal(t, "de", entries[1].Language)
	})

	t.Run("unsupported", func(t *testing.T) {
		assert.Error(t, s.Export(ctx, &bytes.Buffer{}, "csv"))
	})
}

func TestExport_Empty(t *testing.T) {
	s := testStore(t)

	var buf bytes.Buffer
	require.NoError(t, s.Export(context.Background(), &buf, "json"))
	assert.JSONEq(t, `[]`, buf.String())
}
