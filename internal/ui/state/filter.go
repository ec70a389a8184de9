package state

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// SetFilter updates the refine filter and recomputes the visible cards.
// Filtering is local: it narrows the already-fetched results without a new
// fetch. Clearing the filter restores the cursor where it was.
func (g *Grid) SetFilter(query string, cursor int) {
	trimmed := strings.TrimSpace(query)
	prevTrimmed := strings.TrimSpace(g.Filter)
	restore := -1
	g.Filter = query
	runes := []rune(g.Filter)
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(runes) {
		cursor = len(runes)
	}
	g.FilterCursor = cursor
	if trimmed != "" {
		if prevTrimmed == "" {
			g.LastCursor = g.Cursor
		}
		g.Cursor = 0
	} else if prevTrimmed != "" {
		restore = g.LastCursor
	}
	g.applyFilter()
	if trimmed == "" && prevTrimmed != "" {
		if restore >= 0 && restore < len(g.Cards) {
			g.Cursor = restore
		} else if len(g.Cards) > 0 {
			g.Cursor = len(g.Cards) - 1
		}
		g.LastCursor = -1
	}
}

func (g *Grid) applyFilter() {
	g.Cards = FilterCards(g.Full, g.Filter)
	if len(g.Cards) == 0 {
		g.Cursor = 0
		g.RowOffset = 0
		return
	}
	if g.Cursor < 0 || g.Cursor >= len(g.Cards) {
		g.Cursor = len(g.Cards) - 1
	}
	if g.RowOffset > g.Rows()-1 {
		g.RowOffset = 0
	}
}

// FilterCursorPos returns the rune offset of the filter cursor.
func (g *Grid) FilterCursorPos() int {
	runes := []rune(g.Filter)
	if g.FilterCursor < 0 {
		return 0
	}
	if g.FilterCursor > len(runes) {
		return len(runes)
	}
	return g.FilterCursor
}

// InsertFilterText inserts text into the filter at the cursor position.
func (g *Grid) InsertFilterText(text string) bool {
	if text == "" {
		return false
	}
	insert := []rune(text)
	runes := []rune(g.Filter)
	pos := g.FilterCursorPos()
	updated := make([]rune, 0, len(runes)+len(insert))
	updated = append(updated, runes[:pos]...)
	updated = append(updated, insert...)
	updated = append(updated, runes[pos:]...)
	g.SetFilter(string(updated), pos+len(insert))
	return true
}

// DeleteFilterRuneBackward deletes a rune before the filter cursor.
func (g *Grid) DeleteFilterRuneBackward() bool {
	runes := []rune(g.Filter)
	pos := g.FilterCursorPos()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	updated := append(runes[:pos-1], runes[pos:]...)
	g.SetFilter(string(updated), pos-1)
	return true
}

// ClearFilter drops the refine filter entirely.
func (g *Grid) ClearFilter() bool {
	if g.Filter == "" {
		return false
	}
	g.SetFilter("", 0)
	return true
}

// FilterCards returns cards whose titles fuzzy-match the query, falling back
// to substring matching on title and source.
func FilterCards(cards []Card, query string) []Card {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return cloneCards(cards)
	}
	titles := make([]string, len(cards))
	for i, card := range cards {
		titles[i] = card.Title
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, titles)
	if len(ranks) > 0 {
		matches := make(map[int]struct{}, len(ranks))
		for _, rank := range ranks {
			matches[rank.OriginalIndex] = struct{}{}
		}
		filtered := make([]Card, 0, len(matches))
		for idx, card := range cards {
			if _, ok := matches[idx]; ok {
				filtered = append(filtered, card)
			}
		}
		if len(filtered) > 0 {
			return filtered
		}
	}
	lower := strings.ToLower(trimmed)
	filtered := make([]Card, 0, len(cards))
	for _, card := range cards {
		if strings.Contains(strings.ToLower(card.Title), lower) ||
			strings.Contains(strings.ToLower(card.Source), lower) {
			filtered = append(filtered, card)
		}
	}
	return filtered
}
