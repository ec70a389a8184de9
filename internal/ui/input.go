package ui

import (
	"unicode"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/forkfind/forkfind/internal/logging/events"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if keyMsg.String() == "ctrl+c" {
		return tea.Quit
	}
	switch m.mode {
	case ModeDetail:
		return m.handleDetailKey(keyMsg)
	case ModeGrid:
		return m.handleGridKey(keyMsg)
	default:
		return m.handlePromptKey(keyMsg)
	}
}

// notePromptCursorChange restarts the blink cycle after an edit so the
// cursor is solid while typing.
func (m *Model) notePromptCursorChange(before int) {
	if before != m.input.CursorPos() {
		m.promptCursorDirty = true
	}
}

func (m *Model) handlePromptKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		return tea.Quit
	case "enter":
		return m.commitSearch()
	case "tab", "down":
		if len(m.grid.Cards) > 0 {
			m.mode = ModeGrid
		}
		return nil
	case "ctrl+u":
		before := m.input.CursorPos()
		if m.input.Clear() {
			m.search.SetDraft(m.input.Text)
			m.notePromptCursorChange(before)
		}
		return nil
	case "ctrl+w":
		before := m.input.CursorPos()
		if m.input.DeleteWordBackward() {
			m.search.SetDraft(m.input.Text)
			m.notePromptCursorChange(before)
		}
		return nil
	case "ctrl+a":
		before := m.input.CursorPos()
		if m.input.MoveStart() {
			m.notePromptCursorChange(before)
		}
		return nil
	case "ctrl+e":
		before := m.input.CursorPos()
		if m.input.MoveEnd() {
			m.notePromptCursorChange(before)
		}
		return nil
	case "alt+b":
		before := m.input.CursorPos()
		if m.input.MoveWordBackward() {
			m.notePromptCursorChange(before)
		}
		return nil
	case "alt+f":
		before := m.input.CursorPos()
		if m.input.MoveWordForward() {
			m.notePromptCursorChange(before)
		}
		return nil
	}
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		before := m.input.CursorPos()
		if m.input.DeleteRuneBackward() {
			m.search.SetDraft(m.input.Text)
			m.notePromptCursorChange(before)
		}
	case tea.KeySpace:
		before := m.input.CursorPos()
		if m.input.Insert(" ") {
			m.search.SetDraft(m.input.Text)
			m.notePromptCursorChange(before)
		}
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return nil
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				return nil
			}
		}
		before := m.input.CursorPos()
		if m.input.Insert(string(msg.Runes)) {
			m.search.SetDraft(m.input.Text)
			m.notePromptCursorChange(before)
		}
	case tea.KeyLeft:
		before := m.input.CursorPos()
		if m.input.MoveRuneBackward() {
			m.notePromptCursorChange(before)
		}
	case tea.KeyRight:
		before := m.input.CursorPos()
		if m.input.MoveRuneForward() {
			m.notePromptCursorChange(before)
		}
	}
	return nil
}

func (m *Model) handleGridKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		if m.grid.ClearFilter() {
			events.Filter.Cleared()
			m.syncViewport()
			return nil
		}
		m.mode = ModePrompt
		return nil
	case "tab":
		m.mode = ModePrompt
		return nil
	case "enter":
		return m.openDetail()
	case "ctrl+u":
		if m.grid.ClearFilter() {
			events.Filter.Cleared()
			m.syncViewport()
		}
		return nil
	case "up":
		if m.grid.MoveUp() {
			events.UI.GridCursor(m.grid.Cursor)
		} else {
			m.mode = ModePrompt
			return nil
		}
		m.syncViewport()
		return nil
	case "down":
		if m.grid.MoveDown() {
			events.UI.GridCursor(m.grid.Cursor)
		}
		m.syncViewport()
		return nil
	case "left":
		if m.grid.MoveLeft() {
			events.UI.GridCursor(m.grid.Cursor)
		}
		m.syncViewport()
		return nil
	case "right":
		if m.grid.MoveRight() {
			events.UI.GridCursor(m.grid.Cursor)
		}
		m.syncViewport()
		return nil
	case "pgup":
		if m.grid.MovePageUp(m.maxVisibleRows()) {
			events.UI.GridCursor(m.grid.Cursor)
		}
		m.syncViewport()
		return nil
	case "pgdown":
		if m.grid.MovePageDown(m.maxVisibleRows()) {
			events.UI.GridCursor(m.grid.Cursor)
		}
		m.syncViewport()
		return nil
	case "home":
		if m.grid.MoveHome() {
			events.UI.GridCursor(m.grid.Cursor)
		}
		m.syncViewport()
		return nil
	case "end":
		if m.grid.MoveEnd() {
			events.UI.GridCursor(m.grid.Cursor)
		}
		m.syncViewport()
		return nil
	}
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		if m.grid.DeleteFilterRuneBackward() {
			events.Filter.Backspace(m.grid.Filter)
			m.syncViewport()
		}
	case tea.KeySpace:
		if m.grid.InsertFilterText(" ") {
			events.Filter.Append(m.grid.Filter)
			m.syncViewport()
		}
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return nil
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				return nil
			}
		}
		if m.grid.InsertFilterText(string(msg.Runes)) {
			events.Filter.Append(m.grid.Filter)
			m.syncViewport()
		}
	}
	return nil
}

func (m *Model) openDetail() tea.Cmd {
	card, ok := m.grid.CurrentCard()
	if !ok {
		return nil
	}
	if !m.search.Select(card.ID) {
		return nil
	}
	m.mode = ModeDetail
	m.detailOffset = 0
	m.forceClearInfo()
	events.UI.Select(card.ID, card.Title)
	return nil
}

func (m *Model) closeDetail() {
	events.UI.CloseDetail(m.search.SelectedID())
	m.search.ClearSelection()
	m.detailOffset = 0
	if len(m.grid.Cards) > 0 {
		m.mode = ModeGrid
	} else {
		m.mode = ModePrompt
	}
}

func (m *Model) handleDetailKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc", "q", "enter":
		m.closeDetail()
		return nil
	case "up", "k":
		m.scrollDetail(-1)
	case "down", "j":
		m.scrollDetail(1)
	case "pgup":
		m.scrollDetail(-m.detailPageSize())
	case "pgdown":
		m.scrollDetail(m.detailPageSize())
	case "home":
		m.detailOffset = 0
	}
	return nil
}
