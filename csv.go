package gviz

import (
	"encoding/csv"
	"io"
)

// records returns the response as plain text records. An error response
// yields one single-field record per error; otherwise the column labels
// followed by one record per row.
func records(r *Response) [][]string {
	if r.status == StatusError {
		out := make([][]string, len(r.errs))
		for i, d := range r.errs {
			out[i] = []string{"Error: " + d.summary()}
		}
		return out
	}
	rows := r.table.rows
	out := make([][]string, 0, len(rows)+1)
	out = append(out, r.table.labels())
	for _, row := range rows {
		out = append(out, row.texts())
	}
	return out
}

func writeCSV(w io.Writer, r *Response) error {
	cw := csv.NewWriter(w)
	for _, rec := range records(r) {
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
