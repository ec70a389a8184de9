package ui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/forkfind/forkfind/internal/edamam"
)

func TestViewShowsLoading(t *testing.T) {
	m := newTestModel(t)
	m.commitSearch()
	view := m.View()
	if !strings.Contains(view, `Searching for "chicken"`) {
		t.Fatalf("expected loading affordance, got:\n%s", view)
	}
}

func TestViewShowsFailureMessage(t *testing.T) {
	m := newTestModel(t)
	m.width = 120
	m.commitSearch()
	m.handleSearchResultMsg(searchResultMsg{
		req: pendingRequest(m),
		err: &edamam.RequestError{Query: "chicken", Err: errors.New("connection refused")},
	})
	view := m.View()
	if !strings.Contains(view, "Error:") {
		t.Fatalf("expected an error line, got:\n%s", view)
	}
	if !strings.Contains(view, "Submit the search again to retry.") {
		t.Fatalf("expected the retry hint, got:\n%s", view)
	}
	if strings.Contains(view, "Chicken Soup") {
		t.Fatalf("expected no cards on failure, got:\n%s", view)
	}
}

func TestViewShowsNoResultsAffordance(t *testing.T) {
	m := newTestModel(t)
	m.commitSearch()
	resolveHits(t, m, nil)
	view := m.View()
	if !strings.Contains(view, `No recipes found for "chicken"`) {
		t.Fatalf("expected the no-results affordance, got:\n%s", view)
	}
}

func TestViewRendersCards(t *testing.T) {
	m := newTestModel(t)
	m.commitSearch()
	resolveHits(t, m, testHits())
	view := m.View()
	if !strings.Contains(view, "Chicken Soup") {
		t.Fatalf("expected the first card title, got:\n%s", view)
	}
	if !strings.Contains(view, "Roast Chicken") {
		t.Fatalf("expected the second card title, got:\n%s", view)
	}
	if !strings.Contains(view, "1,281 kcal") {
		t.Fatalf("expected card calories, got:\n%s", view)
	}
	if !strings.Contains(view, `forkfind — "chicken" (2 recipes)`) {
		t.Fatalf("expected the header count, got:\n%s", view)
	}
}

func TestViewShowsRefineMiss(t *testing.T) {
	m := newTestModel(t)
	m.commitSearch()
	resolveHits(t, m, testHits())
	m.handleKeyMsg(keyRunes("zzz"))
	view := m.View()
	if !strings.Contains(view, `No matches for "zzz"`) {
		t.Fatalf("expected the refine miss message, got:\n%s", view)
	}
}

func TestViewPromptPlaceholder(t *testing.T) {
	m := newTestModel(t)
	m.input.Clear()
	view := m.View()
	if !strings.Contains(view, "type a dish, enter to search") {
		t.Fatalf("expected the prompt placeholder, got:\n%s", view)
	}
}

func TestViewDetailMode(t *testing.T) {
	m := newTestModel(t)
	m.commitSearch()
	resolveHits(t, m, testHits())
	m.handleKeyMsg(keyRunes("soup"))
	m.handleKeyMsg(tea.KeyMsg{Type: tea.KeyEnter})
	view := m.View()
	if !strings.Contains(view, "Chicken Soup") {
		t.Fatalf("expected the detail title, got:\n%s", view)
	}
	if !strings.Contains(view, "╭") || !strings.Contains(view, "╰") {
		t.Fatalf("expected the detail border, got:\n%s", view)
	}
	if strings.Contains(view, "Roast Chicken") {
		t.Fatalf("expected the detail panel to replace the grid, got:\n%s", view)
	}
}

func TestViewRespectsHeight(t *testing.T) {
	m := newTestModel(t)
	m.height = 10
	m.commitSearch()
	resolveHits(t, m, testHits())
	view := m.View()
	if got := strings.Count(view, "\n") + 1; got > 10 {
		t.Fatalf("expected at most 10 rows, got %d:\n%s", got, view)
	}
}

func TestTruncateText(t *testing.T) {
	if got := truncateText("hello", 4); got != "hel…" {
		t.Fatalf("expected hel…, got %q", got)
	}
	if got := truncateText("hi", 4); got != "hi" {
		t.Fatalf("expected hi, got %q", got)
	}
	if got := truncateText("hello", 0); got != "hello" {
		t.Fatalf("expected untouched text, got %q", got)
	}
}

func TestPadCellWidth(t *testing.T) {
	cell := padCell("▌ Chicken Soup", 20)
	if got := len([]rune(cell)); got != 20 {
		t.Fatalf("expected 20 runes, got %d (%q)", got, cell)
	}
	cell = padCell("▌ A very very long recipe title indeed", 20)
	if got := len([]rune(cell)); got != 20 {
		t.Fatalf("expected truncation to 20 runes, got %d (%q)", got, cell)
	}
}
