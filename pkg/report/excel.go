package report

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/hellenic-development/drawio-extractor/pkg/extractor"
)

// FileRecords pairs one input diagram with its extracted records, for
// formats that aggregate a whole run into a single artifact.
type FileRecords struct {
	Path    string
	Records []extractor.ShapeRecord
}

// Workbook writes an xlsx workbook at path with one sheet per input file.
// Sheets are named after the file base names and appear in input order; each
// carries a bold header row of the selected columns and one row per record.
func Workbook(path string, files []FileRecords, columns []string) error {
	if len(columns) == 0 {
		columns = DefaultColumns
	}

	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}

	used := make(map[string]bool)
	for i, fr := range files {
		sheet := sheetName(fr.Path, used)
		if i == 0 {
			// A fresh workbook opens with a single default sheet; rename it
			// instead of leaving it dangling next to ours.
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				return fmt.Errorf("renaming sheet to %q: %w", sheet, err)
			}
		} else {
			if _, err := f.NewSheet(sheet); err != nil {
				return fmt.Errorf("creating sheet %q: %w", sheet, err)
			}
		}

		for c, col := range columns {
			ref, err := excelize.CoordinatesToCellName(c+1, 1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, ref, col); err != nil {
				return err
			}
		}
		endRef, err := excelize.CoordinatesToCellName(len(columns), 1)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, "A1", endRef, headerStyle); err != nil {
			return err
		}

		for r, rec := range fr.Records {
			for c, val := range row(rec, columns) {
				ref, err := excelize.CoordinatesToCellName(c+1, r+2)
				if err != nil {
					return err
				}
				if err := f.SetCellValue(sheet, ref, val); err != nil {
					return err
				}
			}
		}
	}

	return f.SaveAs(path)
}

// sheetName derives a sheet name from a diagram path. Sheet names cap at 31
// characters and cannot contain : \ / ? * [ ], so offending characters are
// dashed out; name collisions across input files get a numeric suffix.
func sheetName(path string, used map[string]bool) string {
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	name = strings.Map(func(r rune) rune {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']':
			return '-'
		}
		return r
	}, name)
	if name == "" {
		name = "Sheet"
	}
	if runes := []rune(name); len(runes) > 31 {
		name = string(runes[:31])
	}

	candidate := name
	for n := 2; used[candidate]; n++ {
		suffix := fmt.Sprintf(" (%d)", n)
		candidate = name
		if runes := []rune(candidate); len(runes)+len(suffix) > 31 {
			candidate = string(runes[:31-len(suffix)])
		}
		candidate += suffix
	}
	used[candidate] = true
	return candidate
}
