package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/forkfind/forkfind/internal/search"
	uistate "github.com/forkfind/forkfind/internal/ui/state"
)

const (
	appTitle = "forkfind"

	// Each card occupies a title line, a meta line and a blank spacer.
	cardRowLines = 3
	minCardWidth = 36
)

type styledLine struct {
	text  string
	style *lipgloss.Style
	raw   bool // text contains ANSI escapes; skip style wrapping, use ANSI-aware truncation
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.mode == ModeDetail {
		if recipe, ok := m.search.Selected(); ok {
			return m.renderDetailPanel(recipe, m.width, m.height)
		}
	}

	lines := make([]styledLine, 0, 32)
	if header := m.header(); header != "" {
		lines = append(lines, styledLine{text: header, style: styles.Header})
	}

	switch m.search.Status() {
	case search.StatusLoading:
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{
			text: m.spinner.View() + loadingText(m.search.Query()),
			raw:  true,
		})
	case search.StatusFailure:
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: fmt.Sprintf("Error: %s", m.search.ErrMsg()), style: styles.Error})
	case search.StatusSuccess:
		switch {
		case len(m.grid.Full) == 0:
			lines = append(lines, styledLine{})
			lines = append(lines, styledLine{text: fmt.Sprintf("No recipes found for %q. Try a different search.", m.search.Query()), style: styles.Info})
		case len(m.grid.Cards) == 0:
			lines = append(lines, styledLine{})
			lines = append(lines, styledLine{text: fmt.Sprintf("No matches for %q", m.grid.Filter), style: styles.Info})
		default:
			lines = append(lines, m.renderGrid()...)
		}
	default:
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: "Type a dish and press enter to search.", style: styles.Info})
	}

	if m.showFooter {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: m.footerHint(), style: styles.Footer})
	}

	// Reserve 2 rows for the bottom bar (status + prompt).
	lines = limitHeight(lines, m.height-2, m.width)
	lines = applyWidth(lines, m.width)

	var statusLine styledLine
	if info := m.currentInfo(); info != "" {
		statusLine = styledLine{text: info, style: styles.Info}
	}
	bottomLines := []styledLine{
		statusLine,
		{text: m.activePrompt(), raw: true},
	}
	bottomLines = applyWidth(bottomLines, m.width)
	lines = append(lines, bottomLines...)
	return renderLines(lines)
}

func (m *Model) header() string {
	if m.search.Status() == search.StatusSuccess && m.search.Query() != "" {
		count := len(m.grid.Full)
		noun := "recipes"
		if count == 1 {
			noun = "recipe"
		}
		return fmt.Sprintf("%s — %q (%d %s)", appTitle, m.search.Query(), count, noun)
	}
	return appTitle
}

func (m *Model) footerHint() string {
	switch m.mode {
	case ModeGrid:
		return "↑/↓/←/→ move  enter open  type to refine  tab search  esc back  ctrl+c quit"
	default:
		return "enter search  tab results  esc quit"
	}
}

func loadingText(query string) string {
	text := fmt.Sprintf(" Searching for %q…", query)
	if styles.Loading != nil {
		return styles.Loading.Render(text)
	}
	return text
}

// gridColumns returns how many cards fit side by side at the current width.
func (m *Model) gridColumns() int {
	if m.width <= 0 {
		return 1
	}
	cols := m.width / minCardWidth
	if cols < 1 {
		cols = 1
	}
	return cols
}

func (m *Model) cardWidth() int {
	cols := m.gridColumns()
	if m.width <= 0 {
		return minCardWidth
	}
	return m.width / cols
}

// renderGrid builds the visible card rows. Each cell is styled on its own, so
// rows are emitted as raw lines.
func (m *Model) renderGrid() []styledLine {
	m.grid.SetColumns(m.gridColumns())
	m.syncViewport()

	cardW := m.cardWidth()
	cols := m.grid.Columns
	startRow := m.grid.RowOffset
	endRow := m.grid.Rows()
	if maxRows := m.maxVisibleRows(); maxRows > 0 && endRow-startRow > maxRows {
		endRow = startRow + maxRows
	}

	lines := make([]styledLine, 0, (endRow-startRow)*cardRowLines)
	for row := startRow; row < endRow; row++ {
		var titleParts, metaParts []string
		for col := 0; col < cols; col++ {
			idx := row*cols + col
			if idx >= len(m.grid.Cards) {
				break
			}
			title, meta := m.renderCardCell(m.grid.Cards[idx], idx == m.grid.Cursor, cardW)
			titleParts = append(titleParts, title)
			metaParts = append(metaParts, meta)
		}
		lines = append(lines, styledLine{text: strings.Join(titleParts, ""), raw: true})
		lines = append(lines, styledLine{text: strings.Join(metaParts, ""), raw: true})
		lines = append(lines, styledLine{})
	}
	return lines
}

// renderCardCell renders one card into a title cell and a meta cell, each
// padded to exactly width columns.
func (m *Model) renderCardCell(card uistate.Card, selected bool, width int) (string, string) {
	titleStyle := styles.Card
	metaStyle := styles.CardMeta
	if selected {
		titleStyle = styles.SelectedCard
		metaStyle = styles.SelectedCardMeta
	}

	title := padCell("▌ "+card.Title, width)
	meta := card.Source
	if card.Calories != "" {
		if meta != "" {
			meta += " · "
		}
		meta += card.Calories
	}
	meta = padCell("  "+meta, width)

	if titleStyle != nil {
		title = titleStyle.Render(title)
	}
	if metaStyle != nil {
		meta = metaStyle.Render(meta)
	}
	return title, meta
}

// padCell truncates then pads text to exactly width runes, leaving one
// trailing column as a gutter between cards.
func padCell(text string, width int) string {
	if width <= 1 {
		return text
	}
	text = truncateText(text, width-1)
	if pad := width - len([]rune(text)); pad > 0 {
		text += strings.Repeat(" ", pad)
	}
	return text
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.grid.SetColumns(m.gridColumns())
	m.syncViewport()
	return nil
}

// maxVisibleRows returns how many card rows fit above the bottom bar, or -1
// when the height is unknown.
func (m *Model) maxVisibleRows() int {
	if m.height <= 0 {
		return -1
	}
	used := 2 // bottom bar: status + prompt
	used++    // header
	if m.showFooter {
		used += 2
	}
	remain := m.height - used
	rows := remain / cardRowLines
	if rows < 1 {
		return 1
	}
	return rows
}

// activePrompt returns the bottom prompt line for the current mode.
func (m *Model) activePrompt() string {
	if m.mode == ModeGrid {
		return m.renderPrompt("Refine» ", m.grid.Filter, m.grid.FilterCursorPos(), "(type to refine, enter to open)", true)
	}
	return m.renderPrompt("Search» ", m.input.Text, m.input.CursorPos(), "(type a dish, enter to search)", m.mode == ModePrompt)
}

func (m *Model) renderPrompt(label, text string, pos int, placeholder string, active bool) string {
	render := func(style *lipgloss.Style, value string) string {
		if style == nil || value == "" {
			return value
		}
		return style.Render(value)
	}
	if styles.Cursor != nil {
		m.promptCursor.Style = styles.Cursor.Copy()
	}
	if styles.Prompt != nil {
		m.promptCursor.TextStyle = styles.Prompt.Copy()
	} else {
		m.promptCursor.TextStyle = lipgloss.Style{}
	}
	prompt := label
	if styles.PromptLabel != nil {
		prompt = styles.PromptLabel.Render(prompt)
	}
	if text == "" {
		runes := []rune(placeholder)
		var caretRune string
		var rest string
		if len(runes) > 0 {
			caretRune = string(runes[0])
			rest = string(runes[1:])
		}
		if !active {
			return prompt + render(styles.PromptPlaceholder, placeholder)
		}
		if styles.PromptPlaceholder != nil {
			m.promptCursor.TextStyle = styles.PromptPlaceholder.Copy()
		}
		caret := m.renderPromptCursor(caretRune)
		return prompt + caret + render(styles.PromptPlaceholder, rest)
	}
	runes := []rune(text)
	if pos < 0 {
		pos = 0
	}
	if pos > len(runes) {
		pos = len(runes)
	}
	if !active {
		return prompt + render(styles.Prompt, text)
	}
	before := render(styles.Prompt, string(runes[:pos]))
	var caretRune string
	if pos < len(runes) {
		caretRune = string(runes[pos])
	} else {
		caretRune = " "
	}
	caret := m.renderPromptCursor(caretRune)
	var after string
	if pos < len(runes) {
		after = render(styles.Prompt, string(runes[pos+1:]))
	}
	return prompt + before + caret + after
}

func (m *Model) renderPromptCursor(char string) string {
	if char == "" {
		char = " "
	}
	m.promptCursor.SetChar(char)

	base := m.promptCursor.TextStyle.Copy()
	base = base.Inline(true)

	if m.promptCursor.Blink {
		return base.Render(char)
	}

	if styles.Cursor != nil {
		cursorStyle := styles.Cursor.Copy().Inline(true)
		base = base.Inherit(cursorStyle).Blink(false)
		return base.Render(char)
	}

	return base.Reverse(true).Render(char)
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			w := lipgloss.Width(text)
			if w > width {
				text = truncate.StringWithTail(text, uint(width-1), "…")
			}
		} else {
			text = truncateText(text, width)
		}
		result[i] = styledLine{text: text, style: line.style, raw: line.raw}
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			// Text already contains ANSI escapes; pass through as-is.
			out[i] = text
			continue
		}
		if line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
