package ui

import (
	"context"
	"reflect"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/forkfind/forkfind/internal/edamam"
	"github.com/forkfind/forkfind/internal/format"
	"github.com/forkfind/forkfind/internal/search"
	"github.com/forkfind/forkfind/internal/theme"
	uistate "github.com/forkfind/forkfind/internal/ui/state"
)

// Mode selects which surface owns keyboard input.
type Mode int

const (
	ModePrompt Mode = iota
	ModeGrid
	ModeDetail
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Searcher performs one recipe search against the external API.
type Searcher interface {
	Search(ctx context.Context, query string) (edamam.SearchResponse, error)
}

// Model implements the Bubble Tea model for the recipe search screen.
type Model struct {
	search *search.State
	grid   *uistate.Grid
	input  uistate.Input
	client Searcher

	mode         Mode
	width        int
	height       int
	fixedWidth   bool
	fixedHeight  bool
	showFooter   bool
	verbose      bool
	infoMsg      string
	infoExpire   time.Time
	detailOffset int

	spinner           spinner.Model
	promptCursor      cursor.Model
	promptCursorDirty bool

	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the UI state with the startup query and configuration.
func NewModel(client Searcher, initialQuery string, width, height int, showFooter, verbose bool) *Model {
	m := &Model{
		search:     search.NewState(),
		grid:       uistate.NewGrid(),
		client:     client,
		mode:       ModePrompt,
		showFooter: showFooter,
		verbose:    verbose,
	}
	m.input.SetText(initialQuery)
	if width > 0 {
		m.width = width
		m.fixedWidth = true
	}
	if height > 0 {
		m.height = height
		m.fixedHeight = true
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	if styles.Loading != nil {
		s.Style = *styles.Loading
	}
	m.spinner = s

	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = styles.Cursor.Copy()
	}
	if styles.Prompt != nil {
		c.TextStyle = styles.Prompt.Copy()
	}
	c.SetChar(" ")
	m.promptCursor = c

	m.registerHandlers()
	return m
}

// Init commits the startup query so the first fetch begins immediately.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.commitSearch(), m.spinner.Tick}
	if cmd := m.promptCursor.Focus(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updatePromptCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(searchResultMsg{}):   m.handleSearchResultMsg,
		reflect.TypeOf(spinner.TickMsg{}):   m.handleSpinnerTickMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.promptCursorDirty {
		m.promptCursorDirty = false
		m.promptCursor.Blink = false
		if cmd := m.promptCursor.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m *Model) updatePromptCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.promptCursor, cmd = m.promptCursor.Update(msg)
	return cmd
}

func (m *Model) handleSpinnerTickMsg(msg tea.Msg) tea.Cmd {
	if m.search.Status() != search.StatusLoading {
		return nil
	}
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return cmd
}

// commitSearch finalizes the prompt text into a new committed query and
// returns the command that performs the fetch.
func (m *Model) commitSearch() tea.Cmd {
	m.search.SetDraft(m.input.Text)
	req := m.search.Commit()
	m.grid.SetFilter("", 0)
	m.grid.SetCards(nil)
	m.detailOffset = 0
	m.mode = ModePrompt
	return tea.Batch(searchCmd(m.client, req), m.spinner.Tick)
}

func (m *Model) handleSearchResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(searchResultMsg)
	if !ok {
		return nil
	}
	if !m.search.Resolve(result.req, result.hits, result.err) {
		// A newer commit superseded this response.
		return nil
	}
	if m.search.Status() == search.StatusFailure {
		m.grid.SetCards(nil)
		return nil
	}
	m.grid.SetCards(cardsFromHits(m.search.Hits()))
	m.syncViewport()
	if len(m.grid.Cards) > 0 {
		m.mode = ModeGrid
	}
	if m.verbose {
		m.setInfo(resultSummary(m.search.Query(), len(m.search.Hits())))
	}
	return nil
}

func cardsFromHits(hits []edamam.Hit) []uistate.Card {
	cards := make([]uistate.Card, 0, len(hits))
	for i, hit := range hits {
		r := hit.Recipe
		cards = append(cards, uistate.Card{
			ID:       search.HitID(hit, i),
			Title:    r.Label,
			Source:   r.Source,
			Calories: format.Calories(r.Calories),
		})
	}
	return cards
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(5 * time.Second)
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}

func (m *Model) syncViewport() {
	m.grid.EnsureCursorVisible(m.maxVisibleRows())
}
