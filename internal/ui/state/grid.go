package state

// Card is the minimal display record for one fetched recipe.
type Card struct {
	ID       string
	Title    string
	Source   string
	Calories string
}

// Grid encapsulates result grid state: cursor position, refine filter, and
// viewport. The cursor moves over a row-major grid of cards with a fixed
// column count; the viewport scrolls whole rows.
type Grid struct {
	Full         []Card
	Cards        []Card
	Filter       string
	FilterCursor int
	Cursor       int
	Columns      int
	RowOffset    int
	LastCursor   int
}

// NewGrid constructs an empty single-column grid.
func NewGrid() *Grid {
	return &Grid{Columns: 1, LastCursor: -1}
}

// SetCards replaces the backing cards, reapplying any refine filter.
func (g *Grid) SetCards(cards []Card) {
	g.Full = cloneCards(cards)
	g.applyFilter()
	g.RowOffset = 0
	if g.Cursor >= len(g.Cards) {
		g.Cursor = len(g.Cards) - 1
	}
	if g.Cursor < 0 {
		g.Cursor = 0
	}
}

// SetColumns updates the column count used for row arithmetic.
func (g *Grid) SetColumns(n int) {
	if n < 1 {
		n = 1
	}
	g.Columns = n
}

// CurrentCard returns the card under the cursor.
func (g *Grid) CurrentCard() (Card, bool) {
	if len(g.Cards) == 0 || g.Cursor < 0 || g.Cursor >= len(g.Cards) {
		return Card{}, false
	}
	return g.Cards[g.Cursor], true
}

// Rows returns the number of grid rows for the current cards.
func (g *Grid) Rows() int {
	if len(g.Cards) == 0 {
		return 0
	}
	cols := g.Columns
	if cols < 1 {
		cols = 1
	}
	return (len(g.Cards) + cols - 1) / cols
}

// MoveLeft moves the cursor one card back.
func (g *Grid) MoveLeft() bool {
	return g.moveCursorBy(-1)
}

// MoveRight moves the cursor one card forward.
func (g *Grid) MoveRight() bool {
	return g.moveCursorBy(1)
}

// MoveUp moves the cursor one row up.
func (g *Grid) MoveUp() bool {
	return g.moveCursorBy(-g.Columns)
}

// MoveDown moves the cursor one row down, clamping within the last row.
func (g *Grid) MoveDown() bool {
	if len(g.Cards) == 0 {
		g.Cursor = 0
		return false
	}
	old := g.Cursor
	next := g.Cursor + g.Columns
	if next >= len(g.Cards) {
		if g.rowOf(g.Cursor) == g.Rows()-1 {
			return false
		}
		next = len(g.Cards) - 1
	}
	g.Cursor = next
	return g.Cursor != old
}

// MoveHome moves the cursor to the first card.
func (g *Grid) MoveHome() bool {
	if len(g.Cards) == 0 {
		g.Cursor = 0
		return false
	}
	old := g.Cursor
	g.Cursor = 0
	return old != g.Cursor
}

// MoveEnd moves the cursor to the last card.
func (g *Grid) MoveEnd() bool {
	n := len(g.Cards)
	if n == 0 {
		g.Cursor = 0
		return false
	}
	old := g.Cursor
	g.Cursor = n - 1
	return old != g.Cursor
}

// MovePageUp moves the cursor up by a page of rows.
func (g *Grid) MovePageUp(maxRows int) bool {
	return g.moveCursorBy(-g.pageSize(maxRows) * g.Columns)
}

// MovePageDown moves the cursor down by a page of rows.
func (g *Grid) MovePageDown(maxRows int) bool {
	return g.moveCursorBy(g.pageSize(maxRows) * g.Columns)
}

func (g *Grid) moveCursorBy(delta int) bool {
	if len(g.Cards) == 0 {
		g.Cursor = 0
		return false
	}
	old := g.Cursor
	if g.Cursor < 0 {
		g.Cursor = 0
	}
	g.Cursor += delta
	if g.Cursor < 0 {
		g.Cursor = 0
	}
	if g.Cursor >= len(g.Cards) {
		g.Cursor = len(g.Cards) - 1
	}
	return g.Cursor != old
}

func (g *Grid) pageSize(maxRows int) int {
	total := g.Rows()
	if total == 0 {
		return 0
	}
	size := maxRows
	if size <= 0 || size > total {
		size = total
	}
	if size < 1 {
		size = 1
	}
	return size
}

func (g *Grid) rowOf(index int) int {
	cols := g.Columns
	if cols < 1 {
		cols = 1
	}
	return index / cols
}

// EnsureCursorVisible adjusts the row offset so the cursor row stays visible.
func (g *Grid) EnsureCursorVisible(maxRows int) {
	if len(g.Cards) == 0 {
		g.Cursor = 0
		g.RowOffset = 0
		return
	}
	if g.Cursor < 0 {
		g.Cursor = 0
	}
	if g.Cursor >= len(g.Cards) {
		g.Cursor = len(g.Cards) - 1
	}
	if maxRows <= 0 {
		g.RowOffset = 0
		return
	}
	maxOffset := g.Rows() - maxRows
	if maxOffset < 0 {
		maxOffset = 0
	}
	if g.RowOffset > maxOffset {
		g.RowOffset = maxOffset
	}
	if g.RowOffset < 0 {
		g.RowOffset = 0
	}
	row := g.rowOf(g.Cursor)
	if row < g.RowOffset {
		g.RowOffset = row
	}
	upper := g.RowOffset + maxRows - 1
	if row > upper {
		g.RowOffset = row - maxRows + 1
		if g.RowOffset < 0 {
			g.RowOffset = 0
		}
		if g.RowOffset > maxOffset {
			g.RowOffset = maxOffset
		}
	}
}

func cloneCards(cards []Card) []Card {
	dup := make([]Card, len(cards))
	copy(dup, cards)
	return dup
}
