package report

import (
	"fmt"

	"github.com/hellenic-development/drawio-extractor/pkg/extractor"
)

// Format selects the report rendering.
type Format string

const (
	FormatTable    Format = "table"
	FormatMarkdown Format = "markdown"
	FormatCSV      Format = "csv"
	FormatJSON     Format = "json"
	FormatExcel    Format = "xlsx"
)

// DefaultColumns is the column set rendered when the caller selects none:
// the identifier, the derived display text, and the raw style string.
var DefaultColumns = []string{"id", "content", "style"}

// AllColumns lists every selectable column in presentation order. "content"
// is derived (label when present, else value); the rest map one-to-one onto
// ShapeRecord fields.
var AllColumns = []string{
	"id", "content", "label", "value", "tags", "style",
	"parent", "vertex", "x", "y", "width", "height",
}

// ValidColumn reports whether name is a selectable column.
func ValidColumn(name string) bool {
	for _, col := range AllColumns {
		if col == name {
			return true
		}
	}
	return false
}

// ParseFormat validates a format name from a flag or environment value.
// The empty string selects the default table format.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case "", FormatTable:
		return FormatTable, nil
	case FormatMarkdown, FormatCSV, FormatJSON, FormatExcel:
		return Format(s), nil
	}
	return "", fmt.Errorf("unknown report format %q (valid: table, markdown, csv, json, xlsx)", s)
}

// Render produces the report for one file's records in the given textual
// format. Rows follow record order, which is document order. JSON renders
// complete records and ignores the column selection; the grid formats
// render exactly the selected columns. FormatExcel is not textual — use
// Workbook for it.
func Render(records []extractor.ShapeRecord, columns []string, format Format) (string, error) {
	if len(columns) == 0 {
		columns = DefaultColumns
	}

	switch format {
	case FormatTable, "":
		return renderTable(records, columns), nil
	case FormatMarkdown:
		return renderMarkdown(records, columns), nil
	case FormatCSV:
		return renderCSV(records, columns)
	case FormatJSON:
		return renderJSON(records)
	case FormatExcel:
		return "", fmt.Errorf("format %q writes a binary workbook; use Workbook", format)
	}
	return "", fmt.Errorf("unknown report format %q", format)
}

// cell renders one column of one record; absent values become empty cells.
// The absent/empty distinction survives only in the JSON format.
func cell(rec extractor.ShapeRecord, column string) string {
	var v *string
	switch column {
	case "id":
		v = rec.ID
	case "content":
		v = rec.Content()
	case "label":
		v = rec.Label
	case "value":
		v = rec.Value
	case "tags":
		v = rec.Tags
	case "style":
		v = rec.Style
	case "parent":
		v = rec.Parent
	case "vertex":
		v = rec.Vertex
	case "x":
		v = rec.X
	case "y":
		v = rec.Y
	case "width":
		v = rec.Width
	case "height":
		v = rec.Height
	}
	if v == nil {
		return ""
	}
	return *v
}

// row renders the selected columns of one record.
func row(rec extractor.ShapeRecord, columns []string) []string {
	cells := make([]string, len(columns))
	for i, col := range columns {
		cells[i] = cell(rec, col)
	}
	return cells
}
