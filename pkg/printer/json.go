package printer

import (
	"encoding/json"

	"github.com/joshuapare/ledgertree/pkg/tree"
)

// jsonNode is a forest node in JSON format.
type jsonNode struct {
	Name     string     `json:"name"`
	Children []jsonNode `json:"children,omitempty"`
}

// jsonRow is a physical row in JSON format.
type jsonRow struct {
	Key   string   `json:"key"`
	Level int      `json:"level"`
	Top   int      `json:"top"`
	Open  string   `json:"open"`
	Cells []string `json:"cells"`
}

// jsonWindow is a page of physical rows.
type jsonWindow struct {
	Total  int       `json:"total"`
	Offset int       `json:"offset"`
	Header []string  `json:"header"`
	Rows   []jsonRow `json:"rows"`
	Footer []string  `json:"footer,omitempty"`
}

func forestJSON[T any](forest []*tree.Node[T], label func(T) string, maxDepth, depth int) []jsonNode {
	out := make([]jsonNode, 0, len(forest))
	if maxDepth > 0 && depth >= maxDepth {
		return out
	}
	for _, n := range forest {
		node := jsonNode{Name: label(n.Data)}
		if len(n.Children) > 0 {
			node.Children = forestJSON(n.Children, label, maxDepth, depth+1)
		}
		out = append(out, node)
	}
	return out
}

func (p *Printer) printWindowJSON(src Source, start, end int) error {
	doc := jsonWindow{
		Total:  src.ItemCount(),
		Offset: start,
		Rows:   make([]jsonRow, 0, end-start),
	}
	for _, h := range src.Header() {
		doc.Header = append(doc.Header, h.ID)
	}
	for i := start; i < end; i++ {
		view, ok := src.RenderRow(i)
		if !ok {
			continue
		}
		doc.Rows = append(doc.Rows, jsonRow{
			Key:   string(view.Key),
			Level: view.Level,
			Top:   view.Top,
			Open:  view.Openness.String(),
			Cells: view.Cells,
		})
	}
	if p.opts.ShowFooter {
		doc.Footer = src.Footer()
	}
	return p.encodeJSON(doc)
}

func (p *Printer) encodeJSON(v any) error {
	enc := json.NewEncoder(p.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
