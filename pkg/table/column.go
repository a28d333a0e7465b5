package table

// Align is the horizontal alignment of a column.
type Align int

const (
	AlignLeft Align = iota
	AlignRight
	AlignCenter
)

// RowDetails is what a cell renderer knows about its row.
type RowDetails[T, S any] struct {
	Openness Openness
	Level    int
	Row      *Row[T, S]
}

// Column describes one column of a table. Columns hold no state.
type Column[T, S any] struct {
	ID string

	// Head is the static header. HeadFunc, when set, wins over Head.
	Head     string
	HeadFunc func(settings S) string
	// Title is a longer description of the column.
	Title string

	Cell func(data T, details RowDetails[T, S], settings S) string
	// CellTitle gives the long form of a cell, such as the full path of a
	// name that the cell shortens.
	CellTitle func(data T) string

	// Foot renders the footer from the top-level rows.
	Foot func(roots []*Row[T, S], settings S) string

	// Compare makes the column sortable.
	Compare func(a, b T) int

	Align Align
	Width int
}

// Header returns the header text of the column.
func (c *Column[T, S]) Header(settings S) string {
	if c.HeadFunc != nil {
		return c.HeadFunc(settings)
	}
	return c.Head
}

// Sortable reports whether the column has a comparator.
func (c *Column[T, S]) Sortable() bool {
	return c != nil && c.Compare != nil
}

// Render returns the cell text for data.
func (c *Column[T, S]) Render(data T, details RowDetails[T, S], settings S) string {
	if c.Cell == nil {
		return ""
	}
	return c.Cell(data, details, settings)
}

// Footer returns the footer text of the column.
func (c *Column[T, S]) Footer(roots []*Row[T, S], settings S) string {
	if c.Foot == nil {
		return ""
	}
	return c.Foot(roots, settings)
}

// FindColumn returns the column with the given id, or nil.
func FindColumn[T, S any](columns []*Column[T, S], id string) *Column[T, S] {
	for _, c := range columns {
		if c.ID == id {
			return c
		}
	}
	return nil
}
