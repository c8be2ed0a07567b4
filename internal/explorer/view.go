package explorer

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"
)

// View implements tea.Model.
func (m *Model) View() string {
	if m.showHelp {
		return overlay.New(
			helpView{keys: m.keys},
			mainView{m: m},
			overlay.Center,
			overlay.Center,
			0,
			0,
		).View()
	}
	return m.render()
}

func (m *Model) render() string {
	screen := lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderHeader(),
		m.renderContent(),
		m.renderStatus(),
	)
	if m.width > 0 {
		screen = lipgloss.NewStyle().Width(m.width).Render(screen)
	}
	return screen
}

func (m *Model) renderHeader() string {
	header := titleStyle.Render(m.title)
	if path := m.Path(); path != "" {
		header += "  " + pathStyle.Render(path)
	}
	return header + "\n"
}

func (m *Model) renderContent() string {
	if len(m.rows) == 0 {
		return statusStyle.Render("(empty tree)")
	}

	page := m.pageSize()
	end := min(m.offset+page, len(m.rows))
	lines := make([]string, 0, page)
	for i := m.offset; i < end; i++ {
		lines = append(lines, m.renderRow(i))
	}
	// Pad so the status bar stays at the bottom.
	if m.height > 0 {
		for len(lines) < page {
			lines = append(lines, "")
		}
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderRow(i int) string {
	r := m.rows[i]
	marker := markerLeaf
	style := leafStyle
	if r.branch {
		style = branchStyle
		marker = markerCollapsed
		if r.expanded {
			marker = markerExpanded
		}
	}

	label := r.label
	if m.width > 0 {
		label = truncate(label, m.width-len(indentUnit)*r.depth-len(markerLeaf))
	}
	line := strings.Repeat(indentUnit, r.depth) + marker + label
	if i == m.cursor {
		return selectedStyle.Render(line)
	}
	return style.Render(line)
}

func (m *Model) renderStatus() string {
	position := fmt.Sprintf("%d/%d", min(m.cursor+1, len(m.rows)), len(m.rows))
	var hints []string
	for _, b := range m.keys.ShortHelp() {
		hints = append(hints, b.Help().Key+" "+b.Help().Desc)
	}
	status := statusStyle.Render(position + "  " + strings.Join(hints, " • "))
	switch {
	case m.failed:
		status += "  " + errorStyle.Render(m.status)
	case m.status != "":
		status += "  " + pathStyle.Render(m.status)
	}
	return status
}

// truncate shortens s to maxLen runes with an ellipsis.
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if maxLen <= 0 || len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

// mainView adapts the explorer's normal screen for use as an overlay
// background.
type mainView struct {
	m *Model
}

func (v mainView) Init() tea.Cmd                       { return nil }
func (v mainView) Update(tea.Msg) (tea.Model, tea.Cmd) { return v, nil }
func (v mainView) View() string                        { return v.m.render() }

// helpView renders the key binding reference.
type helpView struct {
	keys KeyMap
}

func (v helpView) Init() tea.Cmd                       { return nil }
func (v helpView) Update(tea.Msg) (tea.Model, tea.Cmd) { return v, nil }

func (v helpView) View() string {
	var b strings.Builder
	b.WriteString(modalTitleStyle.Render("Keys"))
	b.WriteString("\n")
	for _, group := range v.keys.FullHelp() {
		for _, binding := range group {
			h := binding.Help()
			b.WriteString(helpKeyStyle.Render(h.Key))
			b.WriteString(helpDescStyle.Render(h.Desc))
			b.WriteString("\n")
		}
	}
	return modalStyle.Render(strings.TrimSuffix(b.String(), "\n"))
}
