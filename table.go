package gviz

import (
	"fmt"
	"strings"
)

// Table holds columns keyed by id, in insertion order, and rows in append
// order. The zero value is an empty table ready to use.
type Table struct {
	ids     []string
	columns map[string]Column
	rows    []*Row
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{columns: make(map[string]Column)}
}

// AddColumn validates and stores a column. Re-adding an id replaces the
// column but keeps its original position.
func (t *Table) AddColumn(id, label string, typ Type, pattern string) error {
	col, err := NewColumn(id, label, typ, pattern)
	if err != nil {
		return err
	}
	if t.columns == nil {
		t.columns = make(map[string]Column)
	}
	if _, ok := t.columns[id]; !ok {
		t.ids = append(t.ids, id)
	}
	t.columns[id] = col
	return nil
}

// AddRow appends r. A nil row is ignored.
func (t *Table) AddRow(r *Row) {
	if r == nil {
		return
	}
	t.rows = append(t.rows, r)
}

// AppendRow builds a row from values, typing each one by the column at the
// same position. A [FormattedValue] carries display text. Fewer values than
// columns is allowed; more is not.
func (t *Table) AppendRow(values ...any) error {
	cols := t.Columns()
	if len(values) > len(cols) {
		return fmt.Errorf("%w: %d values for %d columns", ErrInvalidValue, len(values), len(cols))
	}
	row := NewRow()
	for i, v := range values {
		var formatted string
		if fv, ok := v.(FormattedValue); ok {
			v, formatted = fv.Value, fv.Formatted
		}
		if err := row.AddCell(cols[i].Type, v, formatted); err != nil {
			return fmt.Errorf("column %q: %w", cols[i].ID, err)
		}
	}
	t.AddRow(row)
	return nil
}

// ColumnType returns the declared type of column id.
func (t *Table) ColumnType(id string) (Type, error) {
	col, ok := t.columns[id]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownColumn, id)
	}
	return col.Type, nil
}

// Columns returns the columns in insertion order.
func (t *Table) Columns() []Column {
	out := make([]Column, len(t.ids))
	for i, id := range t.ids {
		out[i] = t.columns[id]
	}
	return out
}

// Rows returns the rows in append order.
func (t *Table) Rows() []*Row {
	out := make([]*Row, len(t.rows))
	copy(out, t.rows)
	return out
}

// Render returns table: {cols:[...],rows:[...]}.
func (t *Table) Render() string {
	cols := t.Columns()
	colParts := make([]string, len(cols))
	for i, c := range cols {
		colParts[i] = c.Render()
	}
	rowParts := make([]string, len(t.rows))
	for i, r := range t.rows {
		rowParts[i] = r.Render()
	}
	return "table: {cols:[" + strings.Join(colParts, ",") + "],rows:[" + strings.Join(rowParts, ",") + "]}"
}

// labels returns the column labels in order.
func (t *Table) labels() []string {
	cols := t.Columns()
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = c.Label
	}
	return out
}
