// Package gviz renders tabular data as a Google Visualization data source
// response.
//
// A [Response] wraps a [Table] of typed columns and rows with the request
// metadata, a status, and any warnings or errors. [Response.Render]
// produces the JSON-format payload, a callback invocation the charting
// client evaluates:
//
//	google.visualization.Query.setResponse({version: '0.5',reqId: '0',sig: '...',status: 'ok',table: {...}});
//
// # Building a response
//
// Pass the client's tqx parameter to [NewResponse]. Only the keys reqId,
// version, sig, out, responseHandler and outFileName are accepted:
//
//	resp, err := gviz.NewResponse(r.URL.Query().Get("tqx"))
//	resp.AddColumn("name", "Name", gviz.String, "")
//	resp.AddColumn("score", "Score", gviz.Number, "")
//	resp.AppendRow("Alice", 42)
//	resp.AppendRow("Bob", gviz.Formatted(7.5, "7½"))
//	err = resp.Write(w)
//
// # Cells
//
// Every column has one of the six [Types]. [NewCell] picks the cell
// variant for a type; loosely false values (nil, false, "", "0", a
// numeric zero) become an [EmptyCell], which renders as a hole in the
// row. Date, datetime and timeofday cells accept [time.Time], Unix seconds,
// or a date string in one of several common layouts.
//
// # Status
//
// A response starts ok. [Response.AddWarning] moves it to warning, and the
// table is still rendered after the warnings. [Response.AddError] moves it
// to error for good; only the errors are rendered.
//
// # Output formats
//
// The out directive key selects [JSON] (default), [CSV], [TSVExcel]
// (UTF-16LE), [HTML], or the [Text] preview. [Format.ContentType] gives the
// matching MIME type.
//
// # Other sources
//
// [DecodeYAML] and [DecodeTOML] build a table from a document, and
// [FromRecord] from an Arrow record.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrInvalidType] — column or cell type outside [Types]
//   - [ErrInvalidValue] — value that cannot fill its cell type
//   - [ErrInvalidDate] — unparseable timestamp
//   - [ErrInvalidReason] — diagnostic reason outside its kind's set
//   - [ErrUnknownColumn] — lookup of an undeclared column
//   - [ErrInvalidDirective] — malformed or unknown tqx key
//   - [ErrUnsupportedFormat] — unknown out format
package gviz
