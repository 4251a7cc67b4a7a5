package gviz

import (
	"fmt"

	"fortio.org/safecast"
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
)

// FromRecord builds a table from an Arrow record. Each field becomes a
// column labelled by its name; nulls become empty cells. Fields of a type
// with no protocol equivalent fail with [ErrInvalidType].
func FromRecord(rec arrow.Record) (*Table, error) {
	t := NewTable()
	fields := rec.Schema().Fields()
	colTypes := make([]Type, len(fields))
	for i, f := range fields {
		typ, err := arrowType(f.Type)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", f.Name, err)
		}
		colTypes[i] = typ
		if err := t.AddColumn(f.Name, "", typ, ""); err != nil {
			return nil, err
		}
	}
	if len(t.ids) != len(fields) {
		return nil, fmt.Errorf("%w: record has duplicate field names", ErrInvalidValue)
	}

	n, err := safecast.Conv[int](rec.NumRows())
	if err != nil {
		return nil, fmt.Errorf("record rows: %w", err)
	}
	cols := rec.Columns()
	for i := range n {
		row := NewRow()
		for j, col := range cols {
			v, err := arrowValue(col, i)
			if err != nil {
				return nil, fmt.Errorf("field %q row %d: %w", fields[j].Name, i, err)
			}
			if err := row.AddCell(colTypes[j], v, ""); err != nil {
				return nil, fmt.Errorf("field %q row %d: %w", fields[j].Name, i, err)
			}
		}
		t.AddRow(row)
	}
	return t, nil
}

func arrowType(dt arrow.DataType) (Type, error) {
	switch dt.ID() {
	case arrow.BOOL:
		return Boolean, nil
	case arrow.INT8, arrow.INT16, arrow.INT32, arrow.INT64,
		arrow.UINT8, arrow.UINT16, arrow.UINT32, arrow.UINT64,
		arrow.FLOAT16, arrow.FLOAT32, arrow.FLOAT64:
		return Number, nil
	case arrow.STRING, arrow.LARGE_STRING:
		return String, nil
	case arrow.DATE32, arrow.DATE64:
		return Date, nil
	case arrow.TIMESTAMP:
		return DateTime, nil
	case arrow.TIME32, arrow.TIME64:
		return TimeOfDay, nil
	default:
		return "", fmt.Errorf("%w: arrow type %s", ErrInvalidType, dt)
	}
}

func arrowValue(col arrow.Array, pos int) (any, error) {
	if col.IsNull(pos) {
		return nil, nil
	}
	switch c := col.(type) {
	case *array.Boolean:
		return c.Value(pos), nil
	case *array.Int8:
		return c.Value(pos), nil
	case *array.Int16:
		return c.Value(pos), nil
	case *array.Int32:
		return c.Value(pos), nil
	case *array.Int64:
		return c.Value(pos), nil
	case *array.Uint8:
		return c.Value(pos), nil
	case *array.Uint16:
		return c.Value(pos), nil
	case *array.Uint32:
		return c.Value(pos), nil
	case *array.Uint64:
		return c.Value(pos), nil
	case *array.Float16:
		return c.Value(pos).Float32(), nil
	case *array.Float32:
		return c.Value(pos), nil
	case *array.Float64:
		return c.Value(pos), nil
	case *array.String:
		return c.Value(pos), nil
	case *array.LargeString:
		return c.Value(pos), nil
	case *array.Date32:
		return c.Value(pos).ToTime(), nil
	case *array.Date64:
		return c.Value(pos).ToTime(), nil
	case *array.Timestamp:
		unit := c.DataType().(*arrow.TimestampType).Unit
		return c.Value(pos).ToTime(unit), nil
	case *array.Time32:
		unit := c.DataType().(*arrow.Time32Type).Unit
		return c.Value(pos).ToTime(unit), nil
	case *array.Time64:
		unit := c.DataType().(*arrow.Time64Type).Unit
		return c.Value(pos).ToTime(unit), nil
	default:
		return nil, fmt.Errorf("%w: arrow array %T", ErrInvalidType, col)
	}
}
