package gviz

import (
	"fmt"
	"io"
	"slices"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// tableDoc is the document shape read by [DecodeYAML] and [DecodeTOML]:
//
//	columns:
//	  - {id: name, label: Name, type: string}
//	  - {id: score, type: number, pattern: "#,##0"}
//	rows:
//	  - [Alice, 42]
//	  - [Bob, {v: 7, f: seven}]
type tableDoc struct {
	Columns []columnDoc `yaml:"columns" toml:"columns"`
	Rows    [][]any     `yaml:"rows" toml:"rows"`
}

type columnDoc struct {
	ID      string `yaml:"id" toml:"id"`
	Label   string `yaml:"label" toml:"label"`
	Type    string `yaml:"type" toml:"type"`
	Pattern string `yaml:"pattern" toml:"pattern"`
}

// DecodeYAML reads a table document from r.
func DecodeYAML(r io.Reader) (*Table, error) {
	var doc tableDoc
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode yaml table: %w", err)
	}
	return doc.table()
}

// DecodeTOML reads a table document from r. Rows are an array of arrays:
//
//	rows = [["Alice", 42], ["Bob", {v = 7, f = "seven"}]]
func DecodeTOML(r io.Reader) (*Table, error) {
	var doc tableDoc
	if _, err := toml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode toml table: %w", err)
	}
	return doc.table()
}

func (d tableDoc) table() (*Table, error) {
	t := NewTable()
	for _, c := range d.Columns {
		typ := Type(c.Type)
		if c.Type != "" {
			var err error
			if typ, err = ParseType(c.Type); err != nil {
				return nil, fmt.Errorf("column %q: %w", c.ID, err)
			}
		}
		if err := t.AddColumn(c.ID, c.Label, typ, c.Pattern); err != nil {
			return nil, err
		}
	}
	rows := make([][]any, len(d.Rows))
	for i, row := range d.Rows {
		rows[i] = make([]any, len(row))
		for j, v := range row {
			rows[i][j] = docValue(v)
		}
	}
	if err := t.AppendSeq(slices.Values(rows)); err != nil {
		return nil, err
	}
	return t, nil
}

// docValue turns a {v, f} mapping into a [FormattedValue]; a non-string f
// is rendered as text. Other values pass through.
func docValue(v any) any {
	m, ok := v.(map[string]any)
	if !ok {
		return v
	}
	var f string
	if raw, ok := m["f"]; ok && raw != nil {
		f = stringValue(raw)
	}
	return Formatted(m["v"], f)
}
