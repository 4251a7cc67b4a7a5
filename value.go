package gviz

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"fortio.org/safecast"
)

// Layouts tried, in order, for date-family cells given as strings.
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006/01/02 15:04:05",
	"2006/01/02",
	"01/02/2006 15:04:05",
	"01/02/2006",
	"Jan 2, 2006 15:04:05",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
	time.RFC1123Z,
	time.RFC1123,
	time.RFC850,
	time.ANSIC,
	"15:04:05",
	"15:04",
}

// falsy reports whether v is loosely false: nil, false, "", "0", a numeric
// zero, or the zero time. Such values become an [EmptyCell] whatever the
// declared type.
func falsy(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case bool:
		return !x
	case string:
		return x == "" || x == "0"
	case json.Number:
		return x == "" || x == "0"
	case int:
		return x == 0
	case int8:
		return x == 0
	case int16:
		return x == 0
	case int32:
		return x == 0
	case int64:
		return x == 0
	case uint:
		return x == 0
	case uint8:
		return x == 0
	case uint16:
		return x == 0
	case uint32:
		return x == 0
	case uint64:
		return x == 0
	case float32:
		return x == 0
	case float64:
		return x == 0
	case time.Time:
		return x.IsZero()
	default:
		return false
	}
}

// truthy normalizes a raw boolean cell value. Strings are compared
// case-insensitively against "false", "0" and "" with no trimming.
func truthy(v any) bool {
	switch x := v.(type) {
	case string:
		switch strings.ToLower(x) {
		case "false", "0", "":
			return false
		}
		return true
	default:
		return !falsy(v)
	}
}

// numberLiteral renders v as an unquoted numeric literal.
func numberLiteral(v any) (string, error) {
	switch x := v.(type) {
	case int:
		return strconv.Itoa(x), nil
	case int8:
		return strconv.FormatInt(int64(x), 10), nil
	case int16:
		return strconv.FormatInt(int64(x), 10), nil
	case int32:
		return strconv.FormatInt(int64(x), 10), nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	case uint:
		return strconv.FormatUint(uint64(x), 10), nil
	case uint8:
		return strconv.FormatUint(uint64(x), 10), nil
	case uint16:
		return strconv.FormatUint(uint64(x), 10), nil
	case uint32:
		return strconv.FormatUint(uint64(x), 10), nil
	case uint64:
		return strconv.FormatUint(x, 10), nil
	case float32:
		return floatLiteral(float64(x), 32)
	case float64:
		return floatLiteral(x, 64)
	case json.Number:
		return numericString(string(x))
	case string:
		return numericString(x)
	default:
		return "", fmt.Errorf("%w: %T is not a number", ErrInvalidValue, v)
	}
}

func floatLiteral(f float64, bits int) (string, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", fmt.Errorf("%w: %v is not a finite number", ErrInvalidValue, f)
	}
	return strconv.FormatFloat(f, 'f', -1, bits), nil
}

// numericString validates s as a decimal literal and returns it trimmed,
// keeping the caller's digits as written.
func numericString(s string) (string, error) {
	s = strings.TrimSpace(s)
	if !isDecimal(s) {
		return "", fmt.Errorf("%w: %q is not a number", ErrInvalidValue, s)
	}
	return s, nil
}

// isDecimal accepts what both strconv and a JavaScript parser read as the
// same finite decimal number.
func isDecimal(s string) bool {
	if s == "" || strings.ContainsAny(s, "xX_pPiInN") {
		return false
	}
	f, err := strconv.ParseFloat(s, 64)
	return err == nil && !math.IsInf(f, 0)
}

// toTime interprets v as a point in time. Numbers, and strings holding
// numbers, are Unix seconds in UTC.
func toTime(v any) (time.Time, error) {
	switch x := v.(type) {
	case time.Time:
		return x, nil
	case *time.Time:
		if x == nil {
			return time.Time{}, fmt.Errorf("%w: nil time", ErrInvalidDate)
		}
		return *x, nil
	case int:
		return time.Unix(int64(x), 0).UTC(), nil
	case int8:
		return time.Unix(int64(x), 0).UTC(), nil
	case int16:
		return time.Unix(int64(x), 0).UTC(), nil
	case int32:
		return time.Unix(int64(x), 0).UTC(), nil
	case int64:
		return time.Unix(x, 0).UTC(), nil
	case uint:
		return unsignedEpoch(uint64(x))
	case uint8:
		return time.Unix(int64(x), 0).UTC(), nil
	case uint16:
		return time.Unix(int64(x), 0).UTC(), nil
	case uint32:
		return time.Unix(int64(x), 0).UTC(), nil
	case uint64:
		return unsignedEpoch(x)
	case float32:
		return floatEpoch(float64(x))
	case float64:
		return floatEpoch(x)
	case json.Number:
		return parseTime(string(x))
	case string:
		return parseTime(x)
	default:
		return time.Time{}, fmt.Errorf("%w: %T is not a timestamp", ErrInvalidDate, v)
	}
}

func unsignedEpoch(u uint64) (time.Time, error) {
	secs, err := safecast.Conv[int64](u)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: epoch %d: %w", ErrInvalidDate, u, err)
	}
	return time.Unix(secs, 0).UTC(), nil
}

func floatEpoch(f float64) (time.Time, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return time.Time{}, fmt.Errorf("%w: epoch %v", ErrInvalidDate, f)
	}
	secs, err := safecast.Truncate[int64](f)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: epoch %v: %w", ErrInvalidDate, f, err)
	}
	return time.Unix(secs, 0).UTC(), nil
}

func parseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if isDecimal(s) {
		f, _ := strconv.ParseFloat(s, 64)
		return floatEpoch(f)
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}

// stringValue renders a non-string raw value the way fmt does.
func stringValue(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case []byte:
		return string(x)
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(v)
	}
}

var literalEscaper = strings.NewReplacer(
	`\`, `\\`,
	`'`, `\'`,
	"\n", `\n`,
	"\r", `\r`,
)

// quote returns s as a single-quoted literal.
func quote(s string) string {
	return "'" + literalEscaper.Replace(s) + "'"
}
