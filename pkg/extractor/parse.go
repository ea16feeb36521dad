package extractor

import (
	"github.com/beevik/etree"

	"github.com/hellenic-development/drawio-extractor/pkg/drawio"
)

// Kind identifies a recognized shape element tag. The set is closed: there
// is no default parser, and an element outside it fails the walk.
type Kind string

const (
	KindObject     Kind = "object"
	KindCell       Kind = "mxCell"
	KindUserObject Kind = "UserObject"
	KindGeometry   Kind = "mxGeometry"
)

// KindOf maps an element tag to its Kind. ok is false for tags outside the
// recognized set.
func KindOf(tag string) (Kind, bool) {
	switch Kind(tag) {
	case KindObject, KindCell, KindUserObject, KindGeometry:
		return Kind(tag), true
	}
	return "", false
}

// Extract walks doc's shape elements and returns one ShapeRecord per
// element, preserving document order. The walk is a single synchronous pass
// over a freshly loaded tree: the first unrecognized tag or parser failure
// aborts it with no partial result, and the source document is never
// mutated.
func Extract(doc *drawio.Document) ([]ShapeRecord, error) {
	shapes, err := doc.Shapes()
	if err != nil {
		return nil, err
	}

	records := make([]ShapeRecord, 0, len(shapes))
	for _, el := range shapes {
		rec, err := parseShape(el)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// parseShape dispatches a top-level shape element to the parser for its
// kind. Geometry is a sub-structure kind, not a shape: a top-level
// <mxGeometry> is unhandled just like a foreign tag.
func parseShape(el *etree.Element) (ShapeRecord, error) {
	kind, ok := KindOf(el.Tag)
	if !ok {
		return ShapeRecord{}, &UnhandledKindError{Tag: el.Tag}
	}

	switch kind {
	case KindObject:
		return parseObject(el)
	case KindCell:
		return parseCell(el)
	case KindUserObject:
		return parseUserObject(el)
	default:
		return ShapeRecord{}, &UnhandledKindError{Tag: el.Tag}
	}
}

// parseObject extracts label, id, and tags from an <object> element and
// folds in its first nested cell, when present, as the fallback level.
func parseObject(el *etree.Element) (ShapeRecord, error) {
	if err := checkTag(el, KindObject); err != nil {
		return ShapeRecord{}, err
	}

	rec := ShapeRecord{
		Label: attr(el, "label"),
		ID:    attr(el, "id"),
		Tags:  attr(el, "tags"),
	}

	if cell := firstDescendant(el, KindCell); cell != nil {
		cellRec, err := parseCell(cell)
		if err != nil {
			return ShapeRecord{}, err
		}
		rec = merge(rec, cellRec)
	}
	return rec, nil
}

// parseUserObject extracts label, tags, and id from a <UserObject> element,
// folding in a nested cell under the same rule as parseObject.
func parseUserObject(el *etree.Element) (ShapeRecord, error) {
	if err := checkTag(el, KindUserObject); err != nil {
		return ShapeRecord{}, err
	}

	rec := ShapeRecord{
		Label: attr(el, "label"),
		Tags:  attr(el, "tags"),
		ID:    attr(el, "id"),
	}

	if cell := firstDescendant(el, KindCell); cell != nil {
		cellRec, err := parseCell(cell)
		if err != nil {
			return ShapeRecord{}, err
		}
		rec = merge(rec, cellRec)
	}
	return rec, nil
}

// parseCell extracts value, style, id, parent, and vertex from an <mxCell>
// element and folds in its first nested geometry, when present.
func parseCell(el *etree.Element) (ShapeRecord, error) {
	if err := checkTag(el, KindCell); err != nil {
		return ShapeRecord{}, err
	}

	rec := ShapeRecord{
		Value:  attr(el, "value"),
		Style:  attr(el, "style"),
		ID:     attr(el, "id"),
		Parent: attr(el, "parent"),
		Vertex: attr(el, "vertex"),
	}

	if geo := firstDescendant(el, KindGeometry); geo != nil {
		geoRec, err := parseGeometry(geo)
		if err != nil {
			return ShapeRecord{}, err
		}
		rec = merge(rec, geoRec)
	}
	return rec, nil
}

// parseGeometry extracts position and size from an <mxGeometry> element. No
// child recursion: geometry is the deepest level of the fold.
func parseGeometry(el *etree.Element) (ShapeRecord, error) {
	if err := checkTag(el, KindGeometry); err != nil {
		return ShapeRecord{}, err
	}

	return ShapeRecord{
		X:      attr(el, "x"),
		Y:      attr(el, "y"),
		Width:  attr(el, "width"),
		Height: attr(el, "height"),
	}, nil
}

// checkTag enforces a parser's precondition: the element tag must equal the
// kind's literal tag. A mismatch is a caller error, never tolerated.
func checkTag(el *etree.Element, want Kind) error {
	if el.Tag != string(want) {
		return &TagMismatchError{Expected: string(want), Actual: el.Tag}
	}
	return nil
}

// attr returns the value of the named attribute, or nil when the element
// does not carry it. A present-but-empty attribute yields a non-nil pointer
// to the empty string, keeping "missing" and "empty" distinguishable.
func attr(el *etree.Element, name string) *string {
	if a := el.SelectAttr(name); a != nil {
		v := a.Value
		return &v
	}
	return nil
}

// firstDescendant returns el's first descendant of the given kind in
// document order, or nil when the subtree has none. The search is
// depth-unbounded: a match nested several levels down is found even when no
// direct child matches.
func firstDescendant(el *etree.Element, kind Kind) *etree.Element {
	for _, child := range el.ChildElements() {
		if child.Tag == string(kind) {
			return child
		}
		if found := firstDescendant(child, kind); found != nil {
			return found
		}
	}
	return nil
}
