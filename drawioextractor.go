package drawioextractor

import (
	"fmt"
	"strings"

	"github.com/hellenic-development/drawio-extractor/pkg/drawio"
	"github.com/hellenic-development/drawio-extractor/pkg/extractor"
	"github.com/hellenic-development/drawio-extractor/pkg/report"
)

// Options configures the extraction of one diagram file.
type Options struct {
	Path    string        // diagram file to process
	Format  report.Format // report rendering; empty = table
	Columns []string      // report columns; empty = id, content, style
	Logger  Logger        // nil = no logging
}

// Logger receives progress messages. A nil Logger means silent operation.
type Logger interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Result contains the extraction output for one diagram file.
type Result struct {
	Path    string // diagram file the records came from
	Records []extractor.ShapeRecord
	Report  string // rendered report; empty for report.FormatExcel
}

func (o *Options) logInfo(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Infof(f, a...)
	}
}

func (o *Options) logWarn(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Warnf(f, a...)
	}
}

// Run parses one diagram file into shape records and renders its report.
// Processing is a single synchronous pass: load the tree, walk the shape
// elements, render. The first failure aborts with no partial result.
//
// Workbook (xlsx) output spans a whole run of files rather than one, so for
// [report.FormatExcel] Run returns the records with an empty Report and the
// caller assembles the workbook via [report.Workbook].
func Run(opts Options) (*Result, error) {
	// Apply defaults.
	if opts.Format == "" {
		opts.Format = report.FormatTable
	}
	if len(opts.Columns) == 0 {
		opts.Columns = report.DefaultColumns
	}

	opts.logInfo("Loading %s...", opts.Path)
	doc, err := drawio.Load(opts.Path)
	if err != nil {
		return nil, fmt.Errorf("load diagram: %w", err)
	}

	opts.logInfo("Extracting shapes...")
	records, err := extractor.Extract(doc)
	if err != nil {
		return nil, fmt.Errorf("extract shapes: %w", err)
	}
	opts.logInfo("Extracted %d shape(s)", len(records))
	if len(records) == 0 {
		opts.logWarn("Diagram has no shapes")
	}

	result := &Result{Path: opts.Path, Records: records}

	if opts.Format == report.FormatExcel {
		return result, nil
	}

	opts.logInfo("Rendering %s report...", opts.Format)
	rendered, err := report.Render(records, opts.Columns, opts.Format)
	if err != nil {
		return nil, fmt.Errorf("render report: %w", err)
	}
	result.Report = rendered

	return result, nil
}

// ParseColumns parses a comma-separated column list for the report. Blank
// entries are skipped and whitespace is trimmed; an empty selection falls
// back to the default columns (id, content, style).
func ParseColumns(columnsStr string) ([]string, error) {
	parts := strings.Split(columnsStr, ",")
	columns := make([]string, 0, len(parts))

	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}

		if !report.ValidColumn(trimmed) {
			return nil, fmt.Errorf("unknown column %q (valid: %s)",
				trimmed, strings.Join(report.AllColumns, ", "))
		}

		columns = append(columns, trimmed)
	}

	if len(columns) == 0 {
		return report.DefaultColumns, nil
	}

	return columns, nil
}
