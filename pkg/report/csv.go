package report

import (
	"bytes"
	"encoding/csv"

	"github.com/hellenic-development/drawio-extractor/pkg/extractor"
)

// renderCSV produces an RFC 4180 rendering: a header row of the selected
// column names, then one quoted-as-needed row per record.
func renderCSV(records []extractor.ShapeRecord, columns []string) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(columns); err != nil {
		return "", err
	}
	for _, rec := range records {
		if err := w.Write(row(rec, columns)); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}

	return buf.String(), nil
}
