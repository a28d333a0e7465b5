package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"
)

// View renders the entire UI
func (m Model) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}

	if m.showHelp {
		// Recreated each render: Update returns new models, so stored
		// pointers would be stale.
		help := overlay.New(
			newHelpView(m.keys, m.window.Header()),
			NewMainViewModel(&m),
			overlay.Center,
			overlay.Center,
			0,
			0,
		)
		return help.View()
	}

	return m.renderMain()
}

func (m Model) renderMain() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderHeader(),
		m.renderTable(),
		m.renderStatus(),
	)
}

// renderHeader renders the title and the full name of the cursor row.
func (m Model) renderHeader() string {
	header := lipgloss.JoinHorizontal(
		lipgloss.Top,
		headerStyle.Render("Ledger Explorer"),
		"  ",
		pathStyle.Render(m.path),
	)

	current := m.cursorTitle()
	if current == "" {
		current = " "
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, pathStyle.Render(current))
}

func (m Model) renderTable() string {
	width := m.width
	if width <= 0 {
		width = 80
	}

	parts := []string{m.rows.header(width), m.renderer.View()}
	if foot := m.rows.footer(width); foot != "" {
		parts = append(parts, foot)
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) renderStatus() string {
	if m.inputMode == FilterMode {
		return filterPromptStyle.Render(m.filter.View())
	}

	items := []string{
		statusCountStyle.Render(fmt.Sprintf("%d rows", m.window.ItemCount())),
		m.settings.Mode.Title(),
	}
	if m.set.Filter() != nil {
		items = append(items, m.set.Title)
	}
	if spec := m.table.Sort(); !spec.IsZero() {
		items = append(items, "sort "+spec.String())
	}
	if m.query != "" {
		items = append(items, fmt.Sprintf("filter %q", m.query))
	}
	if m.statusMessage != "" {
		items = append(items, m.statusMessage)
	} else {
		var hints []string
		for _, b := range m.keys.ShortHelp() {
			hints = append(hints, b.Help().Key+" "+b.Help().Desc)
		}
		items = append(items, strings.Join(hints, "  "))
	}
	return statusStyle.Render(strings.Join(items, " · "))
}
