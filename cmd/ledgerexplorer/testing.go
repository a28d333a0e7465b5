package main

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/joshuapare/ledgertree/internal/config"
	"github.com/joshuapare/ledgertree/pkg/account"
	"github.com/joshuapare/ledgertree/pkg/table"
)

// TestHelper provides utilities for testing TUI components
type TestHelper struct {
	model Model
}

// NewTestHelper creates a test helper with a model using cfg.
func NewTestHelper(cfg config.Config) *TestHelper {
	return &TestHelper{
		model: NewModel("test.json", cfg),
	}
}

// SendKey simulates a key press. Commands are not executed.
func (h *TestHelper) SendKey(keyType tea.KeyType) *TestHelper {
	return h.Send(tea.KeyMsg{Type: keyType})
}

// SendKeyRune simulates a character key press
func (h *TestHelper) SendKeyRune(r rune) *TestHelper {
	return h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

// Type sends each rune of s.
func (h *TestHelper) Type(s string) *TestHelper {
	for _, r := range s {
		h.SendKeyRune(r)
	}
	return h
}

// SendWindowSize simulates a window resize
func (h *TestHelper) SendWindowSize(width, height int) *TestHelper {
	return h.Send(tea.WindowSizeMsg{Width: width, Height: height})
}

// LoadList simulates the snapshot load finishing.
func (h *TestHelper) LoadList(list *account.List) *TestHelper {
	return h.Send(snapshotLoadedMsg{list: list})
}

// Send delivers any message to the model.
func (h *TestHelper) Send(msg tea.Msg) *TestHelper {
	updated, _ := h.model.Update(msg)
	h.model = updated.(Model)
	return h
}

// GetModel returns the current model
func (h *TestHelper) GetModel() Model {
	return h.model
}

// GetView returns the rendered view
func (h *TestHelper) GetView() string {
	return h.model.View()
}

// ItemCount returns the number of physical rows.
func (h *TestHelper) ItemCount() int {
	return h.model.window.ItemCount()
}

// Cursor returns the cursor position.
func (h *TestHelper) Cursor() int {
	return h.model.renderer.Cursor()
}

// CurrentKey returns the key of the cursor row.
func (h *TestHelper) CurrentKey() table.Key {
	return h.model.window.ItemKey(h.Cursor())
}

// RowNames returns the names of the visible rows in order.
func (h *TestHelper) RowNames() []string {
	rows := h.model.table.Rows()
	names := make([]string, len(rows))
	for i, pr := range rows {
		names[i] = pr.Row.Data.Name
	}
	return names
}
