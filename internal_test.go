package gviz

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errInternalWrite = errors.New("write failed")

type errWriterInternal struct{}

func (e *errWriterInternal) Write([]byte) (int, error) {
	return 0, errInternalWrite
}

func TestFalsy(t *testing.T) {
	t.Parallel()
	for _, v := range []any{nil, false, "", "0", 0, int8(0), uint(0), float32(0), 0.0, json.Number("0"), time.Time{}} {
		assert.True(t, falsy(v), "%#v", v)
	}
	for _, v := range []any{true, "false", "0.0", " ", 1, -1, 0.5, json.Number("1"), time.Unix(0, 0)} {
		assert.False(t, falsy(v), "%#v", v)
	}
}

func TestTruthy(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		in   any
		want bool
	}{
		"FALSE":  {in: "FALSE", want: false},
		"False ": {in: " False ", want: true},
		"blank":  {in: "  ", want: true},
		"0":      {in: "0", want: false},
		"yes":    {in: "yes", want: true},
		"true":   {in: true, want: true},
		"one":    {in: 1, want: true},
		"nil":    {in: nil, want: false},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, truthy(tt.in))
		})
	}
}

func TestQuote(t *testing.T) {
	t.Parallel()
	assert.Equal(t, `'plain'`, quote("plain"))
	assert.Equal(t, `'O\'Brien'`, quote("O'Brien"))
	assert.Equal(t, `'a\\b'`, quote(`a\b`))
	assert.Equal(t, `'one\ntwo\r'`, quote("one\ntwo\r"))
}

func TestSections(t *testing.T) {
	t.Parallel()
	tests := map[Status]struct {
		diagnostics, table bool
	}{
		StatusOK:      {diagnostics: false, table: true},
		StatusWarning: {diagnostics: true, table: true},
		StatusError:   {diagnostics: true, table: false},
	}
	for status, tt := range tests {
		diags, table := sections(status)
		assert.Equal(t, tt.diagnostics, diags, "status %s", status)
		assert.Equal(t, tt.table, table, "status %s", status)
	}
}

func TestIsDecimal(t *testing.T) {
	t.Parallel()
	for _, s := range []string{"1", "-2.5", "1e3", ".5", "+4"} {
		assert.True(t, isDecimal(s), s)
	}
	for _, s := range []string{"", "abc", "0x10", "1_000", "NaN", "inf", "1e999", "12px"} {
		assert.False(t, isDecimal(s), s)
	}
}

func TestParseTimeLayouts(t *testing.T) {
	t.Parallel()
	want := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)
	for _, s := range []string{"2024-03-05", "2024/03/05", "03/05/2024", "Mar 5, 2024", "March 5, 2024", "5 Mar 2024"} {
		got, err := parseTime(s)
		require.NoError(t, err, s)
		assert.True(t, want.Equal(got), "%s parsed as %s", s, got)
	}
}

func TestEpochRange(t *testing.T) {
	t.Parallel()
	_, err := floatEpoch(1e300)
	assert.ErrorIs(t, err, ErrInvalidDate)
	_, err = floatEpoch(math.Inf(1))
	assert.ErrorIs(t, err, ErrInvalidDate)
	_, err = unsignedEpoch(math.MaxUint64)
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = floatEpoch(math.NaN())
	assert.ErrorIs(t, err, ErrInvalidDate)

	got, err := floatEpoch(86400.9)
	require.NoError(t, err)
	assert.True(t, time.Date(1970, time.January, 2, 0, 0, 0, 0, time.UTC).Equal(got), "got %s", got)
}

func TestNumberLiteralFloatBits(t *testing.T) {
	t.Parallel()
	got, err := numberLiteral(float32(0.1))
	require.NoError(t, err)
	assert.Equal(t, "0.1", got)
	got, err = numberLiteral(uint64(math.MaxUint64))
	require.NoError(t, err)
	assert.Equal(t, "18446744073709551615", got)
}

func TestDiagnosticSummary(t *testing.T) {
	t.Parallel()
	d := Diagnostic{Kind: KindError, Reason: ReasonOther, Message: "m", DetailedMessage: "d"}
	assert.Equal(t, "other: m (d)", d.summary())
	assert.Equal(t, "other", Diagnostic{Reason: ReasonOther}.summary())
}

func TestFormatTextCell(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "ab...", formatTextCell("abcdefgh", 5, alignLeft))
	assert.Equal(t, "ab", formatTextCell("abcdefgh", 2, alignLeft))
	assert.Equal(t, "  abc", formatTextCell("abc", 5, alignRight))
	assert.Equal(t, "你 ", formatTextCell("你", 3, alignLeft))
}

func TestWriteTextTruncatesWideColumns(t *testing.T) {
	t.Parallel()
	r, err := NewResponse("out:text", WithSignature("s"))
	require.NoError(t, err)
	require.NoError(t, r.AddColumn("c", "", String, ""))
	require.NoError(t, r.AppendRow(strings.Repeat("x", 60)))
	var buf bytes.Buffer
	require.NoError(t, writeText(&buf, r))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, strings.Repeat("x", textMaxWidth-3)+"...", lines[2])
}

func TestWriteCSVFlushError(t *testing.T) {
	t.Parallel()
	r, err := NewResponse("", WithSignature("s"))
	require.NoError(t, err)
	require.NoError(t, r.AddColumn("c", "", String, ""))
	err = writeCSV(&errWriterInternal{}, r)
	assert.ErrorIs(t, err, errInternalWrite)
}

func TestWriteUnsupportedFormat(t *testing.T) {
	t.Parallel()
	r, err := NewResponse("", WithSignature("s"))
	require.NoError(t, err)
	r.out = "xml"
	assert.ErrorIs(t, r.Write(&bytes.Buffer{}), ErrUnsupportedFormat)
}
