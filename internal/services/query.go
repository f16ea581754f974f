package services

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dmitrijs2005/notekeeper/internal/models"
)

// SortOrder selects how a note listing is arranged.
type SortOrder string

const (
	SortNewestFirst SortOrder = "newest"
	SortOldestFirst SortOrder = "oldest"
	SortTitleAsc    SortOrder = "title"
	SortTitleDesc   SortOrder = "title-desc"
)

// ParseSortOrder maps a user-supplied name onto a SortOrder.
func ParseSortOrder(s string) (SortOrder, error) {
	order := SortOrder(strings.ToLower(s))
	switch order {
	case SortNewestFirst, SortOldestFirst, SortTitleAsc, SortTitleDesc:
		return order, nil
	}
	return "", fmt.Errorf("unknown sort order %q (want newest, oldest, title or title-desc)", s)
}

// FilterNotes returns the notes whose title or content contains query,
// compared case-insensitively. An empty query keeps everything.
func FilterNotes(notes []models.Note, query string) []models.Note {
	if query == "" {
		return notes
	}

	q := strings.ToLower(query)
	var matched []models.Note
	for _, n := range notes {
		if strings.Contains(strings.ToLower(n.Title), q) ||
			strings.Contains(strings.ToLower(n.Content), q) {
			matched = append(matched, n)
		}
	}
	return matched
}

// SortNotes arranges notes in place according to order. Title comparisons
// are case-insensitive; sorts are stable so equal keys keep their stored
// (newest first) arrangement.
func SortNotes(notes []models.Note, order SortOrder) {
	switch order {
	case SortOldestFirst:
		sort.SliceStable(notes, func(i, j int) bool {
			return notes[i].CreatedAt.Before(notes[j].CreatedAt)
		})
	case SortTitleAsc:
		sort.SliceStable(notes, func(i, j int) bool {
			return strings.ToLower(notes[i].Title) < strings.ToLower(notes[j].Title)
		})
	case SortTitleDesc:
		sort.SliceStable(notes, func(i, j int) bool {
			return strings.ToLower(notes[i].Title) > strings.ToLower(notes[j].Title)
		})
	default:
		sort.SliceStable(notes, func(i, j int) bool {
			return notes[i].CreatedAt.After(notes[j].CreatedAt)
		})
	}
}
