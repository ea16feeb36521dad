// Package drawioextractor extracts shape data from draw.io diagram files
// and renders it as tabular reports (plain text, markdown, CSV, JSON, or an
// xlsx workbook).
//
// The CLI lives in cmd/drawio-extractor; this root package exposes the same
// pipeline as a Go API so that callers can embed extraction in their own
// tools without shelling out.
//
// # Import
//
// The module path contains a hyphen but Go package names cannot, so the
// package is named drawioextractor:
//
//	import "github.com/hellenic-development/drawio-extractor" // package drawioextractor
//
// # Quick start
//
//	result, err := drawioextractor.Run(drawioextractor.Options{
//	    Path:   "architecture.drawio",
//	    Format: report.FormatMarkdown,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(result.Report)
//
// Each Run processes exactly one diagram file, front to back: the tree is
// loaded fresh, the shape elements under the first diagram page are parsed
// into [extractor.ShapeRecord] values in document order, and the report is
// rendered. The first failure aborts with no partial result.
//
// # Records
//
// A ShapeRecord's fields are all optional pointers: nil marks an attribute
// the source element did not carry, which is distinct from an attribute
// that is present but empty. Attributes are reconciled across up to three
// nesting levels (object or UserObject, embedded mxCell, embedded
// mxGeometry) with the shallower level winning wherever it supplies a
// value.
//
// # Logging
//
// Pass a [Logger] implementation in [Options.Logger] to receive progress
// messages. A nil Logger silences all output.
//
//	type myLogger struct{}
//	func (l *myLogger) Infof(f string, a ...any)  { log.Printf("[INFO]  "+f, a...) }
//	func (l *myLogger) Warnf(f string, a ...any)  { log.Printf("[WARN]  "+f, a...) }
//	func (l *myLogger) Errorf(f string, a ...any) { log.Printf("[ERROR] "+f, a...) }
//
// # Columns and formats
//
// Reports render the columns in [Options.Columns], defaulting to id,
// content, and style, where content is the record's label when present and
// its value otherwise. [ParseColumns] turns a comma-separated flag value
// into a validated column list. Textual formats come back in
// [Result.Report]; the xlsx format aggregates several files into one
// workbook and is written with [report.Workbook] instead.
package drawioextractor
