package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/notekeeper/internal/models"
)

func titles(notes []models.Note) []string {
	out := make([]string, 0, len(notes))
	for _, n := range notes {
		out = append(out, n.Title)
	}
	return out
}

func TestFilterNotes(t *testing.T) {
	notes := []models.Note{
		{ID: 1, Title: "Shopping list", Content: "milk, eggs"},
		{ID: 2, Title: "Ideas", Content: "build a SHOPPING cart"},
		{ID: 3, Title: "Travel", Content: "pack bags"},
	}

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"empty query keeps everything", "", []string{"Shopping list", "Ideas", "Travel"}},
		{"matches title", "travel", []string{"Travel"}},
		{"matches content", "milk", []string{"Shopping list"}},
		{"case-insensitive across both fields", "shopping", []string{"Shopping list", "Ideas"}},
		{"no match", "zebra", nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := FilterNotes(notes, tc.query)
			assert.Equal(t, tc.want, titles(got))
		})
	}
}

func TestSortNotes(t *testing.T) {
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	fresh := func() []models.Note {
		return []models.Note{
			{ID: 3, Title: "banana", CreatedAt: base.Add(2 * time.Hour)},
			{ID: 2, Title: "Cherry", CreatedAt: base.Add(time.Hour)},
			{ID: 1, Title: "apple", CreatedAt: base},
		}
	}

	tests := []struct {
		name  string
		order SortOrder
		want  []string
	}{
		{"newest first", SortNewestFirst, []string{"banana", "Cherry", "apple"}},
		{"oldest first", SortOldestFirst, []string{"apple", "Cherry", "banana"}},
		{"title ascending ignores case", SortTitleAsc, []string{"apple", "banana", "Cherry"}},
		{"title descending ignores case", SortTitleDesc, []string{"Cherry", "banana", "apple"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			notes := fresh()
			SortNotes(notes, tc.order)
			assert.Equal(t, tc.want, titles(notes))
		})
	}
}

func TestSortNotes_StableOnEqualKeys(t *testing.T) {
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	notes := []models.Note{
		{ID: 2, Title: "B", CreatedAt: at},
		{ID: 1, Title: "A", CreatedAt: at},
	}

	SortNotes(notes, SortNewestFirst)
	assert.Equal(t, []string{"B", "A"}, titles(notes), "equal timestamps keep stored order")
}

func TestParseSortOrder(t *testing.T) {
	for _, raw := range []string{"newest", "oldest", "title", "title-desc", "TITLE"} {
		_, err := ParseSortOrder(raw)
		require.NoError(t, err, raw)
	}

	_, err := ParseSortOrder("sideways")
	require.Error(t, err)
}
