package main

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/joshuapare/ledgertree/cmd/ledgerexplorer/virtuallist"
	"github.com/joshuapare/ledgertree/internal/config"
	"github.com/joshuapare/ledgertree/pkg/account"
	"github.com/joshuapare/ledgertree/pkg/accountrows"
	"github.com/joshuapare/ledgertree/pkg/table"
)

// InputMode represents different input modes
type InputMode int

const (
	NormalMode InputMode = iota
	FilterMode
)

// chromeHeight is the number of lines around the row list: title, current
// account, column header, footer and status bar.
const chromeHeight = 5

type (
	accountTable  = table.Table[*accountrows.Data, accountrows.Settings]
	accountWindow = table.Window[*accountrows.Data, accountrows.Settings]
)

// Model is the main application model
type Model struct {
	path string
	cfg  config.Config
	keys KeyMap

	list     *account.List
	set      accountrows.Set
	settings accountrows.Settings
	table    *accountTable
	window   *accountWindow
	rows     *rowList
	renderer *virtuallist.Renderer

	// watcher is nil unless the snapshot is watched for changes.
	watcher *snapshotWatcher

	inputMode InputMode
	filter    textinput.Model
	query     string

	showHelp      bool
	statusMessage string

	width  int
	height int

	err error
}

// NewModel creates a new TUI model for the snapshot at path.
func NewModel(path string, cfg config.Config) Model {
	m := Model{
		path:     path,
		cfg:      cfg,
		keys:     DefaultKeyMap(),
		settings: cfg.Settings(),
	}

	columns, err := accountrows.Columns(cfg.Columns)
	if err != nil {
		m.err = err
		columns, _ = accountrows.Columns(nil)
	}
	if m.set, err = accountrows.FindSet(cfg.Accounts); err != nil {
		m.err = err
	}
	m.table = accountrows.NewTable(columns, m.settings, cfg.Sort)
	m.window = table.NewWindow(m.table, cfg.WindowOptions())
	m.rows = &rowList{window: m.window}
	m.renderer = virtuallist.New(m.rows)

	ti := textinput.New()
	ti.Prompt = "/"
	ti.Placeholder = "fuzzy filter on account names"
	ti.CharLimit = 64
	m.filter = ti

	return m
}

// WithWatcher reloads the snapshot whenever w reports a change.
func (m Model) WithWatcher(w *snapshotWatcher) Model {
	m.watcher = w
	return m
}

// Init starts loading the snapshot.
func (m Model) Init() tea.Cmd {
	if m.watcher != nil {
		return tea.Batch(loadSnapshot(m.path), m.watcher.next())
	}
	return loadSnapshot(m.path)
}

// listHeight is the number of rows the renderer shows.
func (m Model) listHeight() int {
	return max(m.height-chromeHeight, 1)
}

// Messages

type snapshotLoadedMsg struct {
	list *account.List
}

type errMsg struct{ err error }

func (e errMsg) Error() string { return e.err.Error() }

type clearStatusMsg struct{}

func loadSnapshot(path string) tea.Cmd {
	return func() tea.Msg {
		list, err := account.LoadFile(path)
		if err != nil {
			return errMsg{err}
		}
		return snapshotLoadedMsg{list: list}
	}
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

// rebuild recomputes the logical rows from the list, the grouping mode and
// the filters, keeping the cursor on the same account when it is still
// visible.
func (m *Model) rebuild() {
	if m.list == nil {
		return
	}
	rows := accountrows.Build(m.list, accountrows.Options{
		Mode: m.settings.Mode,
		Filter: accountrows.And(
			m.set.Filter(),
			accountrows.ThresholdFilter(m.list, m.cfg.Threshold),
			accountrows.FuzzyFilter(m.list, m.query),
		),
	})

	path := m.cursorPath()
	m.table.SetSettings(m.settings)
	m.table.SetRows(rows)
	m.renderer.Invalidate()

	if m.window.Sync() {
		m.renderer.ScrollToBottom()
		return
	}
	m.follow(path)
}

// cursorPath returns the key of the cursor row followed by the keys of its
// ancestors.
func (m *Model) cursorPath() []table.Key {
	key := m.renderer.CursorKey()
	if key == "" {
		return nil
	}
	rows := m.table.Rows()
	i := m.renderer.Cursor()
	path := []table.Key{table.Key(key)}
	level := rows[i].Level
	for j := i - 1; j >= 0 && level > 0; j-- {
		if rows[j].Level < level {
			path = append(path, m.window.ItemKey(j))
			level = rows[j].Level
		}
	}
	return path
}

// follow moves the cursor to the first key of path that is visible.
func (m *Model) follow(path []table.Key) {
	for _, k := range path {
		if idx := m.table.IndexOf(k); idx >= 0 {
			m.renderer.SetCursor(idx)
			return
		}
	}
	m.renderer.SetCursor(m.renderer.Cursor())
}

// parentIndex returns the index of the parent row of index, or -1 for
// top-level rows.
func (m *Model) parentIndex(index int) int {
	rows := m.table.Rows()
	if index <= 0 || index >= len(rows) {
		return -1
	}
	level := rows[index].Level
	for j := index - 1; j >= 0; j-- {
		if rows[j].Level < level {
			return j
		}
	}
	return -1
}

// cursorTitle returns the long form of the name cell of the cursor row:
// the full account name, or the group name. It is "" for an empty table.
func (m *Model) cursorTitle() string {
	view, ok := m.window.RenderRow(m.renderer.Cursor())
	if !ok || len(view.Cells) == 0 {
		return ""
	}
	i := 0
	for j, c := range m.table.Columns() {
		if c.ID == accountrows.ColName && j < len(view.Cells) {
			i = j
			break
		}
	}
	if view.Titles[i] != "" {
		return view.Titles[i]
	}
	return view.Cells[i]
}
