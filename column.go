package gviz

import (
	"fmt"
	"strings"
)

// Column describes one table column.
type Column struct {
	ID      string
	Label   string
	Type    Type
	Pattern string
}

// NewColumn validates and builds a column. An empty label defaults to the
// id and an empty type to [String]. Any other type outside [Types] fails
// with [ErrInvalidType].
func NewColumn(id, label string, typ Type, pattern string) (Column, error) {
	if typ == "" {
		typ = String
	}
	if !typ.Valid() {
		return Column{}, fmt.Errorf("%w: column %q: %q", ErrInvalidType, id, typ)
	}
	if label == "" {
		label = id
	}
	return Column{ID: id, Label: label, Type: typ, Pattern: pattern}, nil
}

// Render returns the column descriptor literal. The pattern is included
// only when set.
func (c Column) Render() string {
	parts := []string{
		"id: " + quote(c.ID),
		"label: " + quote(c.Label),
		"type: " + quote(string(c.Type)),
	}
	if c.Pattern != "" {
		parts = append(parts, "pattern: "+quote(c.Pattern))
	}
	return "{" + strings.Join(parts, ",") + "}"
}
