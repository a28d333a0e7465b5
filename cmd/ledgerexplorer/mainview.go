package main

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/joshuapare/ledgertree/pkg/table"
)

// MainViewModel wraps the main UI for use as overlay background
type MainViewModel struct {
	model *Model
}

func NewMainViewModel(m *Model) *MainViewModel {
	return &MainViewModel{model: m}
}

func (m *MainViewModel) Init() tea.Cmd {
	return nil
}

// Update is a no-op: the parent Model handles every message.
func (m *MainViewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, nil
}

func (m *MainViewModel) View() string {
	return m.model.renderMain()
}

// helpView is the help overlay foreground.
type helpView struct {
	keys    KeyMap
	columns []table.HeaderCell
}

func newHelpView(keys KeyMap, columns []table.HeaderCell) *helpView {
	return &helpView{keys: keys, columns: columns}
}

func (h *helpView) Init() tea.Cmd {
	return nil
}

func (h *helpView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return h, nil
}

func (h *helpView) View() string {
	var columns []string
	for _, group := range h.keys.FullHelp() {
		var lines []string
		for _, b := range group {
			lines = append(lines, helpKeyStyle.Render(b.Help().Key)+helpDescStyle.Render(b.Help().Desc))
		}
		columns = append(columns, strings.Join(lines, "\n"))
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, spaced(columns)...)
	parts := []string{helpTitleStyle.Render("Keyboard shortcuts"), body}
	if legend := h.columnLegend(); legend != "" {
		parts = append(parts, "", helpTitleStyle.Render("Columns"), legend)
	}
	parts = append(parts, "", helpDescStyle.Render("Press ? or esc to close"))
	return modalStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// columnLegend lists the shown columns that have a description.
func (h *helpView) columnLegend() string {
	var lines []string
	for _, c := range h.columns {
		if c.Title == "" {
			continue
		}
		lines = append(lines, helpColumnStyle.Render(c.Text)+helpDescStyle.Render(c.Title))
	}
	return strings.Join(lines, "\n")
}

func spaced(columns []string) []string {
	out := make([]string, 0, 2*len(columns))
	for i, c := range columns {
		if i > 0 {
			out = append(out, "   ")
		}
		out = append(out, c)
	}
	return out
}
