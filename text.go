package gviz

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Cells wider than this are truncated with "..." in the text preview.
const textMaxWidth = 40

// alignment controls column text alignment in the text preview.
type alignment int

const (
	alignLeft alignment = iota
	alignRight
)

func writeText(w io.Writer, r *Response) error {
	withDiags, withTable := sections(r.status)
	if withDiags {
		kind, diags := KindWarning, r.warnings
		if r.status == StatusError {
			kind, diags = KindError, r.errs
		}
		for _, d := range diags {
			if _, err := fmt.Fprintf(w, "%s: %s\n", kind, d.summary()); err != nil {
				return err
			}
		}
	}
	if !withTable {
		return nil
	}

	cols := r.table.Columns()
	header := r.table.labels()
	rows := make([][]string, len(r.table.rows))
	for i, row := range r.table.rows {
		rows[i] = row.texts()
	}

	numCols := colCount(header, rows)
	widths := computeWidths(numCols, header, rows)
	aligns := make([]alignment, numCols)
	for i := range widths {
		if widths[i] > textMaxWidth {
			widths[i] = textMaxWidth
		}
		if i < len(cols) && cols[i].Type == Number {
			aligns[i] = alignRight
		}
	}

	if err := writeTextRow(w, header, widths, aligns); err != nil {
		return err
	}
	if err := writeTextSep(w, widths); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writeTextRow(w, row, widths, aligns); err != nil {
			return err
		}
	}
	return nil
}

func colCount(header []string, rows [][]string) int {
	n := len(header)
	for _, row := range rows {
		if len(row) > n {
			n = len(row)
		}
	}
	return n
}

func computeWidths(numCols int, header []string, rows [][]string) []int {
	widths := make([]int, numCols)
	for i, h := range header {
		if w := runewidth.StringWidth(h); w > widths[i] {
			widths[i] = w
		}
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

func writeTextSep(w io.Writer, widths []int) error {
	sep := make([]string, len(widths))
	for i, width := range widths {
		sep[i] = strings.Repeat("-", width)
	}
	_, err := fmt.Fprintln(w, strings.Join(sep, "  "))
	return err
}

func writeTextRow(w io.Writer, cells []string, widths []int, aligns []alignment) error {
	parts := make([]string, len(widths))
	for i, width := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		parts[i] = formatTextCell(cell, width, aligns[i])
	}
	line := strings.TrimRight(strings.Join(parts, "  "), " ")
	_, err := fmt.Fprintln(w, line)
	return err
}

func formatTextCell(s string, width int, align alignment) string {
	if width > 0 && runewidth.StringWidth(s) > width {
		if width <= 3 {
			s = runewidth.Truncate(s, width, "")
		} else {
			s = runewidth.Truncate(s, width, "...")
		}
	}
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	if align == alignRight {
		return strings.Repeat(" ", pad) + s
	}
	return s + strings.Repeat(" ", pad)
}
