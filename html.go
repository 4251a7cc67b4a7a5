package gviz

import (
	"fmt"
	"html"
	"io"
)

func writeHTML(w io.Writer, r *Response) error {
	if _, err := fmt.Fprintln(w, "<html>\n<body>"); err != nil {
		return err
	}

	withDiags, withTable := sections(r.status)
	if withDiags {
		class, diags := "warning", r.warnings
		if r.status == StatusError {
			class, diags = "error", r.errs
		}
		for _, d := range diags {
			if _, err := fmt.Fprintf(w, "<p class=%q>%s</p>\n", class, html.EscapeString(d.summary())); err != nil {
				return err
			}
		}
	}
	if withTable {
		if err := writeHTMLTable(w, r.table); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(w, "</body>\n</html>")
	return err
}

func writeHTMLTable(w io.Writer, t *Table) error {
	cols := t.Columns()

	if _, err := fmt.Fprintln(w, "<table>"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "  <thead>"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "    <tr>"); err != nil {
		return err
	}
	for _, col := range cols {
		if _, err := fmt.Fprintf(w, "      <th%s>%s</th>\n", alignStyle(col.Type), html.EscapeString(col.Label)); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, "    </tr>"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "  </thead>"); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(w, "  <tbody>"); err != nil {
		return err
	}
	for _, row := range t.rows {
		if _, err := fmt.Fprintln(w, "    <tr>"); err != nil {
			return err
		}
		for i, cell := range row.texts() {
			style := ""
			if i < len(cols) {
				style = alignStyle(cols[i].Type)
			}
			if _, err := fmt.Fprintf(w, "      <td%s>%s</td>\n", style, html.EscapeString(cell)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, "    </tr>"); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, "  </tbody>"); err != nil {
		return err
	}

	_, err := fmt.Fprintln(w, "</table>")
	return err
}

// alignStyle right-aligns numeric columns.
func alignStyle(t Type) string {
	if t == Number {
		return ` style="text-align: right"`
	}
	return ""
}
