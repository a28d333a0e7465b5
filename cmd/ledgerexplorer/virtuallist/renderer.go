// Package virtuallist draws a fixed-row-height list in a viewport,
// materializing only the rows around the visible area.
package virtuallist

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// Source is the list drawn by a Renderer.
type Source interface {
	// ItemCount returns the total number of rows.
	ItemCount() int

	// ItemKey returns the stable identity of the row at index. Cached lines
	// are reused only while the row at their index keeps its key.
	ItemKey(index int) string

	// Range returns the rows to materialize for a viewport showing height
	// rows from offset. It must contain [offset, offset+height) clamped to
	// the row count.
	Range(offset, height int) (start, end int)

	// RenderItem renders the row at index to one line of the given width.
	RenderItem(index int, isCursor bool, width int) string
}

// Renderer owns the cursor and scroll offset of a list. Lines of the
// current Range are cached until Invalidate is called, the visible area
// leaves the range, or the key of a cached row changes.
type Renderer struct {
	list     Source
	viewport viewport.Model
	cursor   int
	width    int
	height   int
	offset   int
	empty    string

	cache      map[int]cachedLine
	cacheStart int
	cacheEnd   int
}

type cachedLine struct {
	key  string
	text string
}

// New creates a renderer over list.
func New(list Source) *Renderer {
	return &Renderer{
		list:     list,
		viewport: viewport.New(0, 0),
		empty:    "Loading...",
	}
}

// SetEmptyText sets what View shows when the list has no rows.
func (r *Renderer) SetEmptyText(s string) {
	r.empty = s
}

// SetSize updates the renderer size.
func (r *Renderer) SetSize(width, height int) {
	if width != r.width {
		r.Invalidate()
	}
	r.width = width
	r.height = height
	r.viewport.Width = width
	r.viewport.Height = height
	r.ensureCursorVisible()
}

// Invalidate drops the cached lines. Call it whenever the rows change.
func (r *Renderer) Invalidate() {
	r.cache = nil
	r.cacheStart, r.cacheEnd = 0, 0
}

// SetCursor moves the cursor, clamped to the list, and scrolls it into
// view.
func (r *Renderer) SetCursor(cursor int) {
	count := r.list.ItemCount()
	r.cursor = max(0, min(cursor, count-1))
	r.ensureCursorVisible()
}

// Cursor returns the cursor position.
func (r *Renderer) Cursor() int {
	return r.cursor
}

// CursorKey returns the key of the cursor row, or "" for an empty list.
func (r *Renderer) CursorKey() string {
	if r.cursor >= r.list.ItemCount() {
		return ""
	}
	return r.list.ItemKey(r.cursor)
}

// Offset returns the index of the first visible row.
func (r *Renderer) Offset() int {
	return r.offset
}

// ScrollToBottom puts the cursor on the last row.
func (r *Renderer) ScrollToBottom() {
	r.SetCursor(r.list.ItemCount() - 1)
}

// Update forwards window size messages to the viewport. Keys are handled by
// the owner through SetCursor; forwarding them would scroll twice.
func (r *Renderer) Update(msg tea.Msg) tea.Cmd {
	if _, ok := msg.(tea.WindowSizeMsg); ok {
		var cmd tea.Cmd
		r.viewport, cmd = r.viewport.Update(msg)
		return cmd
	}
	return nil
}

// View renders the visible rows.
func (r *Renderer) View() string {
	count := r.list.ItemCount()
	if count == 0 {
		return r.empty
	}

	height := r.height
	if height <= 0 {
		height = 20
	}

	start := r.offset
	end := min(start+height, count)
	// Keep the list full when the end is reached.
	if end-start < height {
		start = max(0, end-height)
		r.offset = start
	}

	if r.cache == nil || start < r.cacheStart || end > r.cacheEnd {
		r.materialize(start, height)
	}

	var b strings.Builder
	for i := start; i < end; i++ {
		if i == r.cursor {
			b.WriteString(r.list.RenderItem(i, true, r.width))
		} else {
			b.WriteString(r.line(i))
		}
		if i < end-1 {
			b.WriteByte('\n')
		}
	}

	r.viewport.SetContent(b.String())
	r.viewport.YOffset = 0
	return r.viewport.View()
}

func (r *Renderer) materialize(offset, height int) {
	start, end := r.list.Range(offset, height)
	r.cache = make(map[int]cachedLine, end-start)
	r.cacheStart, r.cacheEnd = start, end
	for i := start; i < end; i++ {
		r.cache[i] = cachedLine{key: r.list.ItemKey(i), text: r.list.RenderItem(i, false, r.width)}
	}
}

func (r *Renderer) line(i int) string {
	key := r.list.ItemKey(i)
	if c, ok := r.cache[i]; ok && c.key == key {
		return c.text
	}
	text := r.list.RenderItem(i, false, r.width)
	if r.cache != nil {
		r.cache[i] = cachedLine{key: key, text: text}
	}
	return text
}

func (r *Renderer) ensureCursorVisible() {
	if r.height <= 0 {
		return
	}
	if r.cursor < r.offset {
		r.offset = r.cursor
	}
	if r.cursor >= r.offset+r.height {
		r.offset = r.cursor - r.height + 1
	}
	maxOffset := max(0, r.list.ItemCount()-r.height)
	r.offset = max(0, min(r.offset, maxOffset))
}

// Width returns the current width.
func (r *Renderer) Width() int {
	return r.width
}

// Height returns the current height.
func (r *Renderer) Height() int {
	return r.height
}
