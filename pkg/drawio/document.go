package drawio

import (
	"fmt"

	"github.com/beevik/etree"
)

// Structural tags of the mxfile format, from the document root down to the
// container whose direct children are the shape elements.
const (
	TagDiagram    = "diagram"
	TagGraphModel = "mxGraphModel"
	TagRoot       = "root"
)

// Document is a parsed draw.io diagram file. It wraps the underlying XML
// tree and knows the fixed structural path to the shape list. A Document is
// read-only: extraction never mutates the tree.
type Document struct {
	Path string

	tree *etree.Document
}

// Load reads and parses the diagram file at path. Any I/O or markup failure
// is reported as a *DocumentError wrapping the underlying cause; there are
// no retries. The file handle is closed before Load returns.
func Load(path string) (*Document, error) {
	tree := etree.NewDocument()
	if err := tree.ReadFromFile(path); err != nil {
		return nil, &DocumentError{Path: path, Reason: "cannot parse diagram", Err: err}
	}
	if tree.Root() == nil {
		return nil, &DocumentError{Path: path, Reason: "document has no root element"}
	}
	return &Document{Path: path, tree: tree}, nil
}

// Shapes returns the diagram's top-level shape elements in document order.
//
// The shape list lives at a fixed structural path: the document root's first
// <diagram> child, its first <mxGraphModel>, its first <root>. The direct
// children of that <root> are the shapes. A missing step along the path is a
// *DocumentError naming the absent element. Only the first <diagram> section
// is consulted; additional pages are ignored.
func (d *Document) Shapes() ([]*etree.Element, error) {
	cur := d.tree.Root()
	for _, tag := range []string{TagDiagram, TagGraphModel, TagRoot} {
		next := cur.SelectElement(tag)
		if next == nil {
			return nil, &DocumentError{
				Path:   d.Path,
				Reason: fmt.Sprintf("no <%s> element under <%s>", tag, cur.Tag),
			}
		}
		cur = next
	}
	return cur.ChildElements(), nil
}
