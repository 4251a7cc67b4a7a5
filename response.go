package gviz

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
)

// Protocol defaults.
const (
	DefaultVersion         = "0.5"
	DefaultReqID           = "0"
	DefaultResponseHandler = "google.visualization.Query.setResponse"
	DefaultOutFileName     = "data.csv"
)

// Response is one data source reply: metadata, status, diagnostics and the
// table. It is built and rendered by a single caller.
type Response struct {
	version     string
	reqID       string
	sig         string
	handler     string
	out         Format
	outFileName string
	status      Status
	warnings    []Diagnostic
	errs        []Diagnostic
	table       *Table
	logger      *slog.Logger
}

// Option configures a [Response]. Options apply after the directive.
type Option func(*Response)

// WithResponseHandler sets the callback name wrapping the JSON payload.
// An empty name is ignored.
func WithResponseHandler(name string) Option {
	return func(r *Response) {
		if name != "" {
			r.handler = name
		}
	}
}

// WithSignature sets the signature instead of generating one.
func WithSignature(sig string) Option {
	return func(r *Response) {
		if sig != "" {
			r.sig = sig
		}
	}
}

// WithTable uses t as the response table.
func WithTable(t *Table) Option {
	return func(r *Response) {
		if t != nil {
			r.table = t
		}
	}
}

// WithLogger attaches a logger for status and diagnostic events, logged at
// debug level. Without it nothing is logged.
func WithLogger(l *slog.Logger) Option {
	return func(r *Response) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewResponse builds a response from an optional tqx directive string
// (see [ParseDirective]) and options. A missing signature is generated.
func NewResponse(directive string, opts ...Option) (*Response, error) {
	d, err := ParseDirective(directive)
	if err != nil {
		return nil, err
	}
	r := &Response{
		version:     DefaultVersion,
		reqID:       DefaultReqID,
		handler:     DefaultResponseHandler,
		out:         JSON,
		outFileName: DefaultOutFileName,
		status:      StatusOK,
		table:       NewTable(),
		logger:      slog.New(slog.DiscardHandler),
	}
	r.apply(d)
	for _, opt := range opts {
		opt(r)
	}
	if r.sig == "" {
		r.sig = newSignature()
	}
	r.logger = r.logger.With("reqId", r.reqID)
	return r, nil
}

func (r *Response) apply(d Directive) {
	if d.ReqID != "" {
		r.reqID = d.ReqID
	}
	if d.Version != "" {
		r.version = d.Version
	}
	if d.Sig != "" {
		r.sig = d.Sig
	}
	if d.Out != "" {
		r.out = d.Out
	}
	if d.ResponseHandler != "" {
		r.handler = d.ResponseHandler
	}
	if d.OutFileName != "" {
		r.outFileName = d.OutFileName
	}
}

// newSignature returns an opaque 32-character hex token.
func newSignature() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// Version returns the protocol version.
func (r *Response) Version() string { return r.version }

// RequestID returns the client's request id.
func (r *Response) RequestID() string { return r.reqID }

// Signature returns the data signature.
func (r *Response) Signature() string { return r.sig }

// Status returns the current response status.
func (r *Response) Status() Status { return r.status }

// Format returns the out format chosen by the directive.
func (r *Response) Format() Format { return r.out }

// OutFileName returns the file name suggested for csv output.
func (r *Response) OutFileName() string { return r.outFileName }

// ResponseHandler returns the name of the callback wrapping the payload.
func (r *Response) ResponseHandler() string { return r.handler }

// Table returns the response table.
func (r *Response) Table() *Table { return r.table }

// Warnings returns the warnings in the order they were added.
func (r *Response) Warnings() []Diagnostic { return append([]Diagnostic(nil), r.warnings...) }

// Errors returns the errors in the order they were added.
func (r *Response) Errors() []Diagnostic { return append([]Diagnostic(nil), r.errs...) }

// AddColumn adds a column to the response table.
func (r *Response) AddColumn(id, label string, typ Type, pattern string) error {
	return r.table.AddColumn(id, label, typ, pattern)
}

// AddRow appends a row to the response table.
func (r *Response) AddRow(row *Row) { r.table.AddRow(row) }

// AppendRow appends a row of values to the response table.
func (r *Response) AppendRow(values ...any) error { return r.table.AppendRow(values...) }

// ColumnType returns the declared type of a table column.
func (r *Response) ColumnType(id string) (Type, error) { return r.table.ColumnType(id) }

// AddWarning records a warning. The status becomes warning unless an error
// was already recorded.
func (r *Response) AddWarning(reason Reason, message, detailedMessage string) error {
	d, err := NewWarning(reason, message, detailedMessage)
	if err != nil {
		return err
	}
	r.warnings = append(r.warnings, d)
	r.logger.Debug("gviz: warning added", "reason", reason)
	if r.status != StatusError {
		r.setStatus(StatusWarning)
	}
	return nil
}

// AddError records an error. Error status is final: the table is no longer
// rendered and later warnings do not change the status.
func (r *Response) AddError(reason Reason, message, detailedMessage string) error {
	d, err := NewError(reason, message, detailedMessage)
	if err != nil {
		return err
	}
	r.errs = append(r.errs, d)
	r.logger.Debug("gviz: error added", "reason", reason)
	r.setStatus(StatusError)
	return nil
}

func (r *Response) setStatus(s Status) {
	if r.status == s {
		return
	}
	r.logger.Debug("gviz: status changed", "from", r.status, "to", s)
	r.status = s
}

// sections reports which parts of the payload a status carries. A warning
// response keeps its table, so clients can show truncated data with the
// warning.
func sections(s Status) (diagnostics, table bool) {
	switch s {
	case StatusError:
		return true, false
	case StatusWarning:
		return true, true
	default:
		return false, true
	}
}

// diagnostics returns the list emitted for the current status and its
// field name.
func (r *Response) diagnostics() (string, []Diagnostic) {
	if r.status == StatusError {
		return "errors", r.errs
	}
	return "warnings", r.warnings
}

// Render returns the JSON-format payload:
//
//	handler({version: '0.5',reqId: '0',sig: '...',status: 'ok',table: {...}});
func (r *Response) Render() string {
	parts := []string{
		"version: " + quote(r.version),
		"reqId: " + quote(r.reqID),
		"sig: " + quote(r.sig),
		"status: " + quote(string(r.status)),
	}
	withDiags, withTable := sections(r.status)
	if withDiags {
		name, diags := r.diagnostics()
		items := make([]string, len(diags))
		for i, d := range diags {
			items[i] = d.Render()
		}
		parts = append(parts, name+":["+strings.Join(items, ",")+"]")
	}
	if withTable {
		parts = append(parts, r.table.Render())
	}
	return r.handler + "({" + strings.Join(parts, ",") + "});"
}

// Write renders the response in its out format and writes it to w.
func (r *Response) Write(w io.Writer) error {
	r.logger.Debug("gviz: writing response", "out", r.out, "status", r.status, "rows", len(r.table.rows))
	switch r.out {
	case JSON:
		_, err := io.WriteString(w, r.Render())
		return err
	case CSV:
		return writeCSV(w, r)
	case TSVExcel:
		return writeTSV(w, r)
	case HTML:
		return writeHTML(w, r)
	case Text:
		return writeText(w, r)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, r.out)
	}
}

// Marshal renders the response in its out format and returns the bytes.
func (r *Response) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	if err := r.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
