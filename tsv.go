package gviz

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Tabs and line breaks inside a field would split it.
var tsvEscaper = strings.NewReplacer("\t", " ", "\r\n", " ", "\n", " ", "\r", " ")

// writeTSV writes tab-separated records encoded as UTF-16LE with a byte
// order mark, which spreadsheet applications open without an import step.
func writeTSV(w io.Writer, r *Response) error {
	enc := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder()
	tw := transform.NewWriter(w, enc)
	for _, rec := range records(r) {
		fields := make([]string, len(rec))
		for i, f := range rec {
			fields[i] = tsvEscaper.Replace(f)
		}
		if _, err := fmt.Fprintln(tw, strings.Join(fields, "\t")); err != nil {
			return err
		}
	}
	return tw.Close()
}
