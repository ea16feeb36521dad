package report

import (
	"strings"

	"github.com/hellenic-development/drawio-extractor/pkg/extractor"
)

// renderMarkdown produces a markdown pipe table: header row, separator, one
// row per record.
func renderMarkdown(records []extractor.ShapeRecord, columns []string) string {
	var sb strings.Builder

	sb.WriteString("| " + strings.Join(columns, " | ") + " |\n")

	sb.WriteString("|")
	for range columns {
		sb.WriteString("---|")
	}
	sb.WriteString("\n")

	for _, rec := range records {
		sb.WriteString("| " + strings.Join(row(rec, columns), " | ") + " |\n")
	}

	return sb.String()
}
