package gviz

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrInvalidType       = errors.New("invalid type")
	ErrInvalidValue      = errors.New("invalid value")
	ErrInvalidDate       = errors.New("invalid date")
	ErrInvalidReason     = errors.New("invalid reason")
	ErrUnknownColumn     = errors.New("unknown column")
	ErrInvalidDirective  = errors.New("invalid directive")
	ErrUnsupportedFormat = errors.New("unsupported format")
)

// Type is the data type of a column and of the cells beneath it.
type Type string

const (
	Boolean   Type = "boolean"
	Number    Type = "number"
	String    Type = "string"
	Date      Type = "date"
	DateTime  Type = "datetime"
	TimeOfDay Type = "timeofday"
)

var types = []Type{Boolean, Number, String, Date, DateTime, TimeOfDay}

// String returns the type name.
func (t Type) String() string { return string(t) }

// Valid reports whether t is one of the protocol's column types.
// The comparison is exact; use [ParseType] for user input.
func (t Type) Valid() bool {
	switch t {
	case Boolean, Number, String, Date, DateTime, TimeOfDay:
		return true
	default:
		return false
	}
}

// Types returns all column types in protocol order.
func Types() []Type {
	out := make([]Type, len(types))
	copy(out, types)
	return out
}

// ParseType parses a type name, ignoring case.
func ParseType(s string) (Type, error) {
	t := Type(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidType, s)
	}
	return t, nil
}

// Status is the response status reported to the client.
type Status string

const (
	StatusOK      Status = "ok"
	StatusWarning Status = "warning"
	StatusError   Status = "error"
)

// String returns the status name.
func (s Status) String() string { return string(s) }

// Format is the output encoding of a response, selected by the "out"
// directive key.
type Format string

const (
	JSON     Format = "json"
	CSV      Format = "csv"
	TSVExcel Format = "tsv-excel"
	HTML     Format = "html"
	// Text is a column-aligned preview for terminals and logs. It is not
	// part of the wire protocol.
	Text Format = "text"
)

var formats = []Format{JSON, CSV, TSVExcel, HTML, Text}

// String returns the format name.
func (f Format) String() string { return string(f) }

// ContentType returns the MIME type a host should send with the format.
func (f Format) ContentType() string {
	switch f {
	case CSV:
		return "text/csv; charset=UTF-8"
	case TSVExcel:
		return "text/tab-separated-values; charset=UTF-16LE"
	case HTML:
		return "text/html; charset=UTF-8"
	case Text:
		return "text/plain; charset=UTF-8"
	default:
		return "text/javascript; charset=UTF-8"
	}
}

// Formats returns all supported output formats.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat parses an output format name.
func ParseFormat(s string) (Format, error) {
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}
