package report

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/hellenic-development/drawio-extractor/pkg/extractor"
)

func TestWorkbook(t *testing.T) {
	files := []FileRecords{
		{
			Path: "diagrams/flow.drawio",
			Records: []extractor.ShapeRecord{
				{ID: sp("1"), Label: sp("Box"), Style: sp("rounded=1")},
				{ID: sp("2"), Value: sp("hello")},
			},
		},
		{
			Path: "diagrams/arch.drawio",
			Records: []extractor.ShapeRecord{
				{ID: sp("a"), Value: sp("service")},
			},
		},
	}

	path := filepath.Join(t.TempDir(), "report.xlsx")
	if err := Workbook(path, files, []string{"id", "content", "style"}); err != nil {
		t.Fatalf("Workbook() error = %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("opening written workbook: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 2 || sheets[0] != "flow" || sheets[1] != "arch" {
		t.Fatalf("GetSheetList() = %v, want [flow arch]", sheets)
	}

	checks := []struct {
		sheet, cell, want string
	}{
		{"flow", "A1", "id"},
		{"flow", "B1", "content"},
		{"flow", "C1", "style"},
		{"flow", "A2", "1"},
		{"flow", "B2", "Box"},
		{"flow", "C2", "rounded=1"},
		{"flow", "A3", "2"},
		{"flow", "B3", "hello"},
		{"flow", "C3", ""},
		{"arch", "A2", "a"},
		{"arch", "B2", "service"},
	}
	for _, c := range checks {
		got, err := f.GetCellValue(c.sheet, c.cell)
		if err != nil {
			t.Fatalf("GetCellValue(%s!%s) error = %v", c.sheet, c.cell, err)
		}
		if got != c.want {
			t.Errorf("GetCellValue(%s!%s) = %q, want %q", c.sheet, c.cell, got, c.want)
		}
	}
}

func TestSheetName(t *testing.T) {
	tests := []struct {
		name string
		path string
		used map[string]bool
		want string
	}{
		{
			name: "base name without extension",
			path: "diagrams/flow.drawio",
			used: map[string]bool{},
			want: "flow",
		},
		{
			name: "invalid characters dashed out",
			path: "a[b]c:d.drawio",
			used: map[string]bool{},
			want: "a-b-c-d",
		},
		{
			name: "collision gets a numeric suffix",
			path: "flow.drawio",
			used: map[string]bool{"flow": true},
			want: "flow (2)",
		},
		{
			name: "second collision counts up",
			path: "flow.drawio",
			used: map[string]bool{"flow": true, "flow (2)": true},
			want: "flow (3)",
		},
		{
			name: "long names cap at 31 characters",
			path: "an-extremely-long-diagram-file-name-indeed.drawio",
			used: map[string]bool{},
			want: "an-extremely-long-diagram-file-",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sheetName(tt.path, tt.used)
			if got != tt.want {
				t.Errorf("sheetName(%q) = %q, want %q", tt.path, got, tt.want)
			}
			if !tt.used[got] {
				t.Errorf("sheetName(%q) did not mark %q as used", tt.path, got)
			}
		})
	}
}
