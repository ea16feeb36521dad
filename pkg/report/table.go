package report

import (
	"bytes"
	"strings"
	"text/tabwriter"

	"github.com/hellenic-development/drawio-extractor/pkg/extractor"
)

// renderTable produces the default plain-text report: aligned columns with a
// header row, one row per record.
func renderTable(records []extractor.ShapeRecord, columns []string) string {
	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 4, 2, ' ', 0)

	writeLine(w, columns)
	for _, rec := range records {
		writeLine(w, row(rec, columns))
	}
	w.Flush()

	return buf.String()
}

func writeLine(w *tabwriter.Writer, cells []string) {
	w.Write([]byte(strings.Join(cells, "\t") + "\n"))
}
