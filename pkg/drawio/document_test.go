package drawio

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeDiagram drops a fixture file into a temp dir and returns its path.
func writeDiagram(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing fixture %s: %v", name, err)
	}
	return path
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr bool
	}{
		{
			name: "well-formed diagram",
			content: `<mxfile><diagram name="Page-1"><mxGraphModel><root>
				<mxCell id="0"/>
			</root></mxGraphModel></diagram></mxfile>`,
			wantErr: false,
		},
		{
			name:    "malformed markup",
			content: `<mxfile><diagram>`,
			wantErr: true,
		},
		{
			name:    "empty file",
			content: "",
			wantErr: true,
		},
		{
			name:    "not XML at all",
			content: "just some text",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeDiagram(t, "fixture.drawio", tt.content)
			doc, err := Load(path)
			if (err != nil) != tt.wantErr {
				t.Errorf("Load() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if err != nil {
				var docErr *DocumentError
				if !errors.As(err, &docErr) {
					t.Errorf("Load() error type = %T, want *DocumentError", err)
				} else if docErr.Path != path {
					t.Errorf("DocumentError.Path = %q, want %q", docErr.Path, path)
				}
				return
			}
			if doc.Path != path {
				t.Errorf("Document.Path = %q, want %q", doc.Path, path)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.drawio"))
	if err == nil {
		t.Fatal("Load() on a missing file returned nil error")
	}
	var docErr *DocumentError
	if !errors.As(err, &docErr) {
		t.Fatalf("Load() error type = %T, want *DocumentError", err)
	}
	if docErr.Unwrap() == nil {
		t.Error("DocumentError.Unwrap() = nil, want the underlying I/O error")
	}
}

func TestShapes(t *testing.T) {
	path := writeDiagram(t, "three.drawio", `<mxfile>
		<diagram name="Page-1">
			<mxGraphModel>
				<root>
					<mxCell id="0"/>
					<object id="1" label="Box"/>
					<UserObject id="2" label="Tagged"/>
				</root>
			</mxGraphModel>
		</diagram>
	</mxfile>`)

	doc, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	shapes, err := doc.Shapes()
	if err != nil {
		t.Fatalf("Shapes() error = %v", err)
	}
	if len(shapes) != 3 {
		t.Fatalf("Shapes() returned %d elements, want 3", len(shapes))
	}

	wantTags := []string{"mxCell", "object", "UserObject"}
	for i, el := range shapes {
		if el.Tag != wantTags[i] {
			t.Errorf("Shapes()[%d].Tag = %q, want %q", i, el.Tag, wantTags[i])
		}
	}
}

func TestShapes_EmptyRoot(t *testing.T) {
	path := writeDiagram(t, "empty.drawio",
		`<mxfile><diagram><mxGraphModel><root></root></mxGraphModel></diagram></mxfile>`)

	doc, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	shapes, err := doc.Shapes()
	if err != nil {
		t.Fatalf("Shapes() error = %v", err)
	}
	if len(shapes) != 0 {
		t.Errorf("Shapes() returned %d elements, want 0", len(shapes))
	}
}

func TestShapes_MissingStructure(t *testing.T) {
	tests := []struct {
		name       string
		content    string
		missingTag string
	}{
		{
			name:       "no diagram section",
			content:    `<mxfile></mxfile>`,
			missingTag: "diagram",
		},
		{
			name:       "no graph model",
			content:    `<mxfile><diagram name="Page-1"></diagram></mxfile>`,
			missingTag: "mxGraphModel",
		},
		{
			name:       "no root container",
			content:    `<mxfile><diagram><mxGraphModel></mxGraphModel></diagram></mxfile>`,
			missingTag: "root",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeDiagram(t, "broken.drawio", tt.content)
			doc, err := Load(path)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			_, err = doc.Shapes()
			if err == nil {
				t.Fatal("Shapes() returned nil error, want *DocumentError")
			}
			var docErr *DocumentError
			if !errors.As(err, &docErr) {
				t.Fatalf("Shapes() error type = %T, want *DocumentError", err)
			}
			if !strings.Contains(docErr.Reason, "<"+tt.missingTag+">") {
				t.Errorf("DocumentError.Reason = %q, want mention of <%s>", docErr.Reason, tt.missingTag)
			}
		})
	}
}

func TestShapes_FirstDiagramOnly(t *testing.T) {
	// Multi-page files carry one <diagram> section per page; only the first
	// page's shapes are extracted.
	path := writeDiagram(t, "pages.drawio", `<mxfile>
		<diagram name="Page-1"><mxGraphModel><root>
			<mxCell id="p1"/>
		</root></mxGraphModel></diagram>
		<diagram name="Page-2"><mxGraphModel><root>
			<mxCell id="p2a"/>
			<mxCell id="p2b"/>
		</root></mxGraphModel></diagram>
	</mxfile>`)

	doc, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	shapes, err := doc.Shapes()
	if err != nil {
		t.Fatalf("Shapes() error = %v", err)
	}
	if len(shapes) != 1 {
		t.Fatalf("Shapes() returned %d elements, want 1 (first page only)", len(shapes))
	}
	if got := shapes[0].SelectAttrValue("id", ""); got != "p1" {
		t.Errorf("Shapes()[0] id = %q, want %q", got, "p1")
	}
}
