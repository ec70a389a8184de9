package ui

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/forkfind/forkfind/internal/edamam"
	"github.com/forkfind/forkfind/internal/format"
	"github.com/forkfind/forkfind/internal/logging/events"
)

// detailBorder styles used when drawing the detail box.
var (
	detailBorderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	detailScrollStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// buildDetailLines flattens a recipe into the display lines of the detail
// panel. Lines longer than the panel width are truncated at render time.
func buildDetailLines(r edamam.Recipe) []string {
	lines := make([]string, 0, 24)

	meta := r.Source
	if r.URL != "" {
		if meta != "" {
			meta += " · "
		}
		meta += r.URL
	}
	if meta != "" {
		lines = append(lines, meta)
	}

	var facts []string
	if r.Yield > 0 {
		facts = append(facts, format.Yield(r.Yield))
	}
	if r.Calories > 0 {
		facts = append(facts, format.Calories(r.Calories))
	}
	if r.TotalWeight > 0 {
		facts = append(facts, format.Weight(r.TotalWeight))
	}
	if len(facts) > 0 {
		lines = append(lines, strings.Join(facts, " · "))
	}

	if len(r.DietLabels) > 0 {
		lines = append(lines, "", "Diet: "+strings.Join(r.DietLabels, ", "))
	}
	if len(r.HealthLabels) > 0 {
		if len(r.DietLabels) == 0 {
			lines = append(lines, "")
		}
		lines = append(lines, "Health: "+strings.Join(r.HealthLabels, ", "))
	}

	if len(r.IngredientLines) > 0 {
		lines = append(lines, "", "Ingredients:")
		for _, ing := range r.IngredientLines {
			lines = append(lines, "  • "+ing)
		}
	}

	if len(r.TotalNutrients) > 0 {
		lines = append(lines, "", "Nutrients:")
		rows := make([][2]string, 0, len(r.TotalNutrients))
		for _, n := range r.TotalNutrients {
			if n.Label == "" {
				continue
			}
			rows = append(rows, [2]string{n.Label, format.Quantity(n.Quantity, n.Unit)})
		}
		sort.Slice(rows, func(i, j int) bool { return rows[i][0] < rows[j][0] })
		for _, row := range format.Columns(rows) {
			lines = append(lines, "  "+row)
		}
	}

	if len(lines) == 0 {
		lines = append(lines, "(no details available)")
	}
	return lines
}

// renderDetailPanel builds the bordered recipe box as a string with exactly
// height rows and totalWidth columns.
func (m *Model) renderDetailPanel(r edamam.Recipe, totalWidth, height int) string {
	const (
		tlc = "╭"
		trc = "╮"
		blc = "╰"
		brc = "╯"
		hz  = "─"
		vt  = "│"
	)

	innerW := totalWidth - 2
	innerH := height - 2
	if innerW < 1 {
		innerW = 1
	}
	if innerH < 1 {
		innerH = 1
	}

	allLines := buildDetailLines(r)

	// Clamp scroll offset.
	maxOffset := len(allLines) - innerH
	if maxOffset < 0 {
		maxOffset = 0
	}
	if m.detailOffset > maxOffset {
		m.detailOffset = maxOffset
	}
	if m.detailOffset < 0 {
		m.detailOffset = 0
	}
	end := m.detailOffset + innerH
	if end > len(allLines) {
		end = len(allLines)
	}
	contentLines := allLines[m.detailOffset:end]
	scrollInfo := ""
	if len(allLines) > innerH {
		scrollInfo = fmt.Sprintf(" %d/%d ", m.detailOffset+len(contentLines), len(allLines))
	}

	titleLabel := strings.TrimSpace(r.Label)
	if titleLabel == "" {
		titleLabel = "Recipe"
	}

	// Build top border: ╭─ title ──────────── scrollInfo ─╮
	titleSeg := " " + titleLabel + " "
	scrollSeg := scrollInfo
	dashes := totalWidth - 4 - len([]rune(titleSeg)) - len([]rune(scrollSeg))
	if dashes < 0 {
		scrollSeg = ""
		dashes = totalWidth - 4 - len([]rune(titleSeg))
	}
	if dashes < 0 {
		titleSeg = " … "
		dashes = totalWidth - 4 - len([]rune(titleSeg))
	}
	if dashes < 0 {
		dashes = 0
	}
	topLine := detailBorderStyle.Render(tlc+hz) +
		styles.DetailTitle.Render(titleSeg) +
		detailBorderStyle.Render(strings.Repeat(hz, dashes)) +
		detailScrollStyle.Render(scrollSeg) +
		detailBorderStyle.Render(hz+trc)

	bottomLine := detailBorderStyle.Render(blc + strings.Repeat(hz, innerW) + brc)

	rows := make([]string, 0, height)
	rows = append(rows, topLine)
	for i := 0; i < innerH; i++ {
		var content string
		if i < len(contentLines) {
			content = contentLines[i]
		}
		w := lipgloss.Width(content)
		if w > innerW {
			content = truncate.StringWithTail(content, uint(innerW-1), "…")
			w = lipgloss.Width(content)
		}
		if w < innerW {
			content = content + strings.Repeat(" ", innerW-w)
		}
		if styles.DetailBody != nil {
			content = styles.DetailBody.Render(content)
		}
		rows = append(rows, detailBorderStyle.Render(vt)+content+detailBorderStyle.Render(vt))
	}
	rows = append(rows, bottomLine)
	return strings.Join(rows, "\n")
}

func (m *Model) detailPageSize() int {
	innerH := m.height - 2
	if innerH < 1 {
		return 1
	}
	return innerH
}

// scrollDetail moves the detail viewport. The upper bound is clamped against
// the content at render time.
func (m *Model) scrollDetail(delta int) {
	m.detailOffset += delta
	if m.detailOffset < 0 {
		m.detailOffset = 0
	}
	events.UI.DetailScroll(m.search.SelectedID(), m.detailOffset)
}

// handleMouseMsg handles mouse wheel events to scroll the detail panel.
func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	if m.mode != ModeDetail {
		return nil
	}
	switch ev.Button {
	case tea.MouseButtonWheelUp:
		m.scrollDetail(-3)
	case tea.MouseButtonWheelDown:
		m.scrollDetail(3)
	}
	return nil
}
