package main

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/joshuapare/ledgertree/internal/logger"
	"github.com/joshuapare/ledgertree/pkg/account"
	"github.com/joshuapare/ledgertree/pkg/table"
)

const statusTimeout = 2 * time.Second

// Update handles all messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.renderer.SetSize(msg.Width, m.listHeight())
		m.filter.Width = max(msg.Width-4, 10)
		return m, m.renderer.Update(msg)

	case snapshotLoadedMsg:
		m.list = msg.list
		m.renderer.SetEmptyText("No accounts match")
		m.rebuild()
		logger.Info("snapshot loaded", "path", m.path, "accounts", msg.list.Len(), "rows", m.table.Len())
		m.statusMessage = fmt.Sprintf("Loaded %d accounts", msg.list.Len())
		return m, clearStatusAfter(statusTimeout)

	case errMsg:
		logger.Error("snapshot load failed", "path", m.path, "error", msg.err)
		if m.list != nil {
			// A failed reload keeps the rows already shown.
			return m.status(fmt.Sprintf("Reload failed: %v", msg.err))
		}
		m.err = msg.err
		return m, nil

	case snapshotChangedMsg:
		logger.Debug("snapshot changed", "path", m.path)
		m.statusMessage = "Snapshot changed, reloading"
		if m.watcher == nil {
			return m, loadSnapshot(m.path)
		}
		return m, tea.Batch(loadSnapshot(m.path), m.watcher.next())

	case watchErrMsg:
		logger.Warn("snapshot watch error", "path", m.path, "error", msg.err)
		if m.watcher == nil {
			return m, nil
		}
		return m, m.watcher.next()

	case clearStatusMsg:
		m.statusMessage = ""
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// If help is showing, only keys that close it are handled
	if m.showHelp {
		if key.Matches(msg, m.keys.Esc) || key.Matches(msg, m.keys.Help) || key.Matches(msg, m.keys.Quit) {
			m.showHelp = false
		}
		return m, nil
	}

	if m.inputMode == FilterMode {
		return m.handleFilterInput(msg)
	}

	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}
	if m.err != nil {
		return m, nil
	}

	cursor := m.renderer.Cursor()
	page := max(m.renderer.Height(), 1)

	switch {
	case key.Matches(msg, m.keys.Up):
		m.renderer.SetCursor(cursor - 1)
	case key.Matches(msg, m.keys.Down):
		m.renderer.SetCursor(cursor + 1)
	case key.Matches(msg, m.keys.PageUp):
		m.renderer.SetCursor(cursor - page)
	case key.Matches(msg, m.keys.PageDown):
		m.renderer.SetCursor(cursor + page)
	case key.Matches(msg, m.keys.Home):
		m.renderer.SetCursor(0)
	case key.Matches(msg, m.keys.End):
		m.renderer.ScrollToBottom()

	case key.Matches(msg, m.keys.Enter):
		m.toggle(cursor)
	case key.Matches(msg, m.keys.Left):
		if m.table.Openness(cursor) == table.Expanded {
			m.toggle(cursor)
		} else if parent := m.parentIndex(cursor); parent >= 0 {
			m.renderer.SetCursor(parent)
		}
	case key.Matches(msg, m.keys.Right):
		switch m.table.Openness(cursor) {
		case table.Collapsed:
			m.toggle(cursor)
		case table.Expanded:
			m.renderer.SetCursor(cursor + 1)
		}

	case key.Matches(msg, m.keys.ModeFlat):
		return m.setMode(account.ModeFlat)
	case key.Matches(msg, m.keys.ModeParent):
		return m.setMode(account.ModeParent)
	case key.Matches(msg, m.keys.ModeType):
		return m.setMode(account.ModeType)
	case key.Matches(msg, m.keys.ModeInstitution):
		return m.setMode(account.ModeInstitution)

	case key.Matches(msg, m.keys.Accounts):
		m.set = m.set.Next()
		m.rebuild()
		return m.status("Accounts: " + m.set.Title)
	case key.Matches(msg, m.keys.Sort):
		return m.nextSort()
	case key.Matches(msg, m.keys.Reverse):
		if spec := m.table.Sort(); !spec.IsZero() {
			path := m.cursorPath()
			m.table.ClickHeader(spec.Column)
			m.afterChange(path)
			return m.status("Sort: " + m.table.Sort().String())
		}

	case key.Matches(msg, m.keys.ExpandAll):
		path := m.cursorPath()
		m.table.ExpandAll()
		m.afterChange(path)
	case key.Matches(msg, m.keys.CollapseAll):
		path := m.cursorPath()
		m.table.CollapseAll()
		m.afterChange(path)

	case key.Matches(msg, m.keys.Trading):
		m.settings.ExpandTrading = !m.settings.ExpandTrading
		m.applySettings()
		return m.status(fmt.Sprintf("Expand trading accounts: %t", m.settings.ExpandTrading))
	case key.Matches(msg, m.keys.Round):
		m.settings.RoundValues = !m.settings.RoundValues
		m.applySettings()
	case key.Matches(msg, m.keys.Colors):
		next := (m.window.Options().RowColors + 1) % 3
		m.window.SetRowColors(next)
		m.renderer.Invalidate()
		return m.status("Row colors: " + next.String())

	case key.Matches(msg, m.keys.Filter):
		m.inputMode = FilterMode
		m.filter.SetValue(m.query)
		m.filter.CursorEnd()
		cmd := m.filter.Focus()
		return m, cmd
	case key.Matches(msg, m.keys.Esc):
		if m.query != "" {
			m.query = ""
			m.filter.SetValue("")
			m.rebuild()
			return m.status("Filter cleared")
		}

	case key.Matches(msg, m.keys.Copy):
		return m.copyFullName()
	case key.Matches(msg, m.keys.Refresh):
		m.statusMessage = "Reloading..."
		return m, loadSnapshot(m.path)
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
	}
	return m, nil
}

// handleFilterInput edits the filter. Rows are filtered live.
func (m Model) handleFilterInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEnter:
		m.inputMode = NormalMode
		m.filter.Blur()
		return m, nil
	case tea.KeyEsc:
		m.inputMode = NormalMode
		m.filter.Blur()
		m.filter.SetValue("")
		if m.query != "" {
			m.query = ""
			m.rebuild()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	if q := m.filter.Value(); q != m.query {
		m.query = q
		m.rebuild()
	}
	return m, cmd
}

func (m *Model) toggle(index int) {
	if m.table.Toggle(index) {
		m.renderer.Invalidate()
		m.renderer.SetCursor(index)
	}
}

func (m *Model) afterChange(path []table.Key) {
	m.renderer.Invalidate()
	m.follow(path)
}

func (m *Model) applySettings() {
	path := m.cursorPath()
	m.table.SetSettings(m.settings)
	m.afterChange(path)
}

func (m Model) setMode(mode account.Mode) (tea.Model, tea.Cmd) {
	if m.settings.Mode == mode {
		return m, nil
	}
	m.settings.Mode = mode
	m.rebuild()
	return m.status("Grouping: " + mode.Title())
}

// nextSort activates the next sortable column; after the last one the rows
// return to their natural order.
func (m Model) nextSort() (tea.Model, tea.Cmd) {
	var ids []string
	for _, h := range m.window.Header() {
		if h.Sortable {
			ids = append(ids, h.ID)
		}
	}
	if len(ids) == 0 {
		return m, nil
	}

	current := m.table.Sort()
	next := 0
	for i, id := range ids {
		if id == current.Column {
			next = i + 1
		}
	}

	spec := table.SortSpec{}
	if next < len(ids) {
		spec = table.SortSpec{Column: ids[next], Direction: table.Ascending}
	}
	path := m.cursorPath()
	m.table.SetSort(spec)
	m.afterChange(path)

	if spec.IsZero() {
		return m.status("Unsorted")
	}
	return m.status("Sort: " + spec.String())
}

func (m Model) copyFullName() (tea.Model, tea.Cmd) {
	name := m.cursorTitle()
	if name == "" {
		return m, nil
	}
	if err := clipboard.WriteAll(name); err != nil {
		logger.Warn("clipboard write failed", "error", err)
		return m.status("Copy failed: " + err.Error())
	}
	return m.status("Copied: " + name)
}

func (m Model) status(text string) (tea.Model, tea.Cmd) {
	m.statusMessage = text
	return m, clearStatusAfter(statusTimeout)
}
