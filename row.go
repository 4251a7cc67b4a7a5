package gviz

import "strings"

// Row is an ordered sequence of cells. Its length and types are not checked
// against the table's columns.
type Row struct {
	cells []Cell
}

// NewRow returns an empty row.
func NewRow() *Row { return &Row{} }

// AddCell builds a cell with [NewCell] and appends it.
func (r *Row) AddCell(typ Type, value any, formatted string) error {
	c, err := NewCell(typ, value, formatted)
	if err != nil {
		return err
	}
	r.cells = append(r.cells, c)
	return nil
}

// Cells returns the row's cells in order.
func (r *Row) Cells() []Cell {
	out := make([]Cell, len(r.cells))
	copy(out, r.cells)
	return out
}

// Len returns the number of cells.
func (r *Row) Len() int { return len(r.cells) }

// Render returns {c:[...]}. Empty cells leave holes between commas.
func (r *Row) Render() string {
	parts := make([]string, len(r.cells))
	for i, c := range r.cells {
		parts[i] = c.Render()
	}
	return "{c:[" + strings.Join(parts, ",") + "]}"
}

// texts returns the display text of every cell.
func (r *Row) texts() []string {
	out := make([]string, len(r.cells))
	for i, c := range r.cells {
		out[i] = c.Text()
	}
	return out
}
