package gviz

import (
	"fmt"
	"iter"
)

// AppendSeq appends one row per value slice yielded by seq, typed as in
// [Table.AppendRow]. It stops at the first invalid row and returns its
// error; rows before it stay appended.
func (t *Table) AppendSeq(seq iter.Seq[[]any]) error {
	var appendErr error
	n := 0
	seq(func(values []any) bool {
		if err := t.AppendRow(values...); err != nil {
			appendErr = fmt.Errorf("row %d: %w", n, err)
			return false
		}
		n++
		return true
	})
	return appendErr
}

// AppendChan appends rows received from ch until it is closed.
// It is a thin wrapper around [Table.AppendSeq]; on error the channel is
// left undrained.
func (t *Table) AppendChan(ch <-chan []any) error {
	return t.AppendSeq(chanToIter(ch))
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}
