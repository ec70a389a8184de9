package state

import "testing"

func TestSetFilterNarrowsCardsAndRestoresCursor(t *testing.T) {
	g := newTestGrid(1, "Chicken Soup", "Beef Stew", "Chicken Pie")
	g.Cursor = 1

	g.SetFilter("chicken", len("chicken"))
	if len(g.Cards) != 2 {
		t.Fatalf("expected 2 filtered cards, got %d", len(g.Cards))
	}
	if g.Cursor != 0 {
		t.Fatalf("expected cursor reset to 0 while filtering, got %d", g.Cursor)
	}

	g.SetFilter("", 0)
	if len(g.Cards) != 3 {
		t.Fatalf("expected all cards restored, got %d", len(g.Cards))
	}
	if g.Cursor != 1 {
		t.Fatalf("expected cursor restored to 1, got %d", g.Cursor)
	}
	if g.LastCursor != -1 {
		t.Fatalf("expected last cursor reset, got %d", g.LastCursor)
	}
}

func TestInsertAndDeleteFilterText(t *testing.T) {
	g := newTestGrid(1, "Chicken Soup")

	if !g.InsertFilterText("ch") {
		t.Fatal("expected insert to succeed")
	}
	if g.Filter != "ch" || g.FilterCursor != 2 {
		t.Fatalf("unexpected filter state %q/%d", g.Filter, g.FilterCursor)
	}
	if !g.DeleteFilterRuneBackward() {
		t.Fatal("expected delete to succeed")
	}
	if g.Filter != "c" || g.FilterCursor != 1 {
		t.Fatalf("unexpected filter state after delete %q/%d", g.Filter, g.FilterCursor)
	}
	g.SetFilter("c", 0)
	if g.DeleteFilterRuneBackward() {
		t.Fatal("expected delete at start to fail")
	}
	if !g.ClearFilter() {
		t.Fatal("expected clear to succeed")
	}
	if g.ClearFilter() {
		t.Fatal("expected clear of empty filter to report no change")
	}
}

func TestFilterCardsFuzzyAndSubstring(t *testing.T) {
	cards := []Card{
		{ID: "1", Title: "Chicken Soup", Source: "Example Kitchen"},
		{ID: "2", Title: "Beef Stew", Source: "Stew Central"},
	}
	got := FilterCards(cards, "chkn")
	if len(got) != 1 || got[0].ID != "1" {
		t.Fatalf("expected fuzzy match on title, got %#v", got)
	}
	got = FilterCards(cards, "central")
	if len(got) != 1 || got[0].ID != "2" {
		t.Fatalf("expected substring match on source, got %#v", got)
	}
	if len(FilterCards(cards, "zzz")) != 0 {
		t.Fatal("expected no matches")
	}
	if len(FilterCards(cards, "  ")) != 2 {
		t.Fatal("expected blank filter to keep everything")
	}
}

func TestFilterCardsDoesNotAliasInput(t *testing.T) {
	cards := []Card{{ID: "1", Title: "Chicken"}}
	got := FilterCards(cards, "")
	got[0].Title = "changed"
	if cards[0].Title != "Chicken" {
		t.Fatal("expected original cards untouched")
	}
}

func TestFilterSurvivesSetCards(t *testing.T) {
	g := newTestGrid(1, "Chicken Soup", "Beef Stew")
	g.SetFilter("chicken", len("chicken"))
	g.SetCards([]Card{
		{ID: "1", Title: "Chicken Curry"},
		{ID: "2", Title: "Lamb Chops"},
	})
	if len(g.Cards) != 1 || g.Cards[0].Title != "Chicken Curry" {
		t.Fatalf("expected filter reapplied to new cards, got %#v", g.Cards)
	}
}
