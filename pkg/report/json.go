package report

import (
	"encoding/json"

	"github.com/hellenic-development/drawio-extractor/pkg/extractor"
)

// renderJSON marshals the complete records. Absent fields are omitted
// entirely, so JSON is the one format that preserves the absent/empty
// distinction downstream.
func renderJSON(records []extractor.ShapeRecord) (string, error) {
	out, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return "", err
	}
	return string(out) + "\n", nil
}
