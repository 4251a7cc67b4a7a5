package gviz

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Cell is a single table value. Render returns the protocol literal and
// Text the plain display text used by the csv, tsv-excel, html and text
// formats. The set of implementations is closed; build cells with
// [NewCell].
type Cell interface {
	Render() string
	Text() string
	cell()
}

// NewCell builds the cell variant for typ. The type name is matched
// case-insensitively. A loosely false value (nil, false, "", "0", a numeric
// zero) yields an [EmptyCell] whatever the type.
func NewCell(typ Type, value any, formatted string) (Cell, error) {
	t := Type(strings.ToLower(string(typ)))
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidType, typ)
	}
	if falsy(value) {
		return EmptyCell{}, nil
	}
	switch t {
	case Boolean:
		return BooleanCell{Value: truthy(value), Formatted: formatted}, nil
	case Number:
		lit, err := numberLiteral(value)
		if err != nil {
			return nil, err
		}
		return NumberCell{Value: lit, Formatted: formatted}, nil
	case String:
		return StringCell{Value: stringValue(value), Formatted: formatted}, nil
	case Date:
		tm, err := toTime(value)
		if err != nil {
			return nil, err
		}
		return DateCell{Value: tm, Formatted: formatted}, nil
	case DateTime:
		tm, err := toTime(value)
		if err != nil {
			return nil, err
		}
		return DateTimeCell{Value: tm, Formatted: formatted}, nil
	case TimeOfDay:
		tm, err := toTime(value)
		if err != nil {
			return nil, err
		}
		return TimeOfDayCell{Value: tm, Formatted: formatted}, nil
	}
	return nil, fmt.Errorf("%w: no cell for %q", ErrInvalidType, t)
}

// FormattedValue pairs a raw value with its display text. [Table.AppendRow]
// and the decoders accept it wherever a plain value is accepted.
type FormattedValue struct {
	Value     any
	Formatted string
}

// Formatted pairs v with display text f.
func Formatted(v any, f string) FormattedValue {
	return FormattedValue{Value: v, Formatted: f}
}

// EmptyCell renders as nothing, leaving a hole in the row's cell array.
type EmptyCell struct{}

func (EmptyCell) Render() string { return "" }
func (EmptyCell) Text() string   { return "" }
func (EmptyCell) cell()          {}

// BooleanCell renders as {v: true} or {v: false}.
type BooleanCell struct {
	Value     bool
	Formatted string
}

func (c BooleanCell) Render() string { return renderCell(strconv.FormatBool(c.Value), c.Formatted) }
func (c BooleanCell) Text() string   { return displayText(strconv.FormatBool(c.Value), c.Formatted) }
func (BooleanCell) cell()            {}

// NumberCell holds a validated numeric literal.
type NumberCell struct {
	Value     string
	Formatted string
}

func (c NumberCell) Render() string { return renderCell(c.Value, c.Formatted) }
func (c NumberCell) Text() string   { return displayText(c.Value, c.Formatted) }
func (NumberCell) cell()            {}

// StringCell renders its value as a quoted literal.
type StringCell struct {
	Value     string
	Formatted string
}

func (c StringCell) Render() string { return renderCell(quote(c.Value), c.Formatted) }
func (c StringCell) Text() string   { return displayText(c.Value, c.Formatted) }
func (StringCell) cell()            {}

// DateCell renders as new Date(year, month, day) with a zero-based month.
type DateCell struct {
	Value     time.Time
	Formatted string
}

func (c DateCell) Render() string {
	t := c.Value
	return renderCell(fmt.Sprintf("new Date(%d, %d, %d)", t.Year(), int(t.Month())-1, t.Day()), c.Formatted)
}
func (c DateCell) Text() string { return displayText(c.Value.Format(time.DateOnly), c.Formatted) }
func (DateCell) cell()          {}

// DateTimeCell renders as new Date(year, month, day, hour, minute, second)
// with a zero-based month.
type DateTimeCell struct {
	Value     time.Time
	Formatted string
}

func (c DateTimeCell) Render() string {
	t := c.Value
	return renderCell(fmt.Sprintf("new Date(%d, %d, %d, %d, %d, %d)",
		t.Year(), int(t.Month())-1, t.Day(), t.Hour(), t.Minute(), t.Second()), c.Formatted)
}
func (c DateTimeCell) Text() string { return displayText(c.Value.Format(time.DateTime), c.Formatted) }
func (DateTimeCell) cell()          {}

// TimeOfDayCell renders as [hour, minute, second].
type TimeOfDayCell struct {
	Value     time.Time
	Formatted string
}

func (c TimeOfDayCell) Render() string {
	t := c.Value
	return renderCell(fmt.Sprintf("[%d, %d, %d]", t.Hour(), t.Minute(), t.Second()), c.Formatted)
}
func (c TimeOfDayCell) Text() string { return displayText(c.Value.Format(time.TimeOnly), c.Formatted) }
func (TimeOfDayCell) cell()          {}

func renderCell(v, formatted string) string {
	var sb strings.Builder
	sb.WriteString("{v: ")
	sb.WriteString(v)
	if formatted != "" {
		sb.WriteString(",f: ")
		sb.WriteString(quote(formatted))
	}
	sb.WriteString("}")
	return sb.String()
}

func displayText(v, formatted string) string {
	if formatted != "" {
		return formatted
	}
	return v
}
