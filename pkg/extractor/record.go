package extractor

// ShapeRecord is the normalized form of one top-level shape element. Every
// field is optional: a nil pointer marks an attribute the source element did
// not carry, which is distinct from an attribute that is present but empty.
// A record is assembled from up to three nesting levels (outer element,
// embedded cell, embedded geometry) and never mutated afterwards.
type ShapeRecord struct {
	// ID is the element identifier. Uniqueness across a diagram is not
	// enforced; duplicate ids pass through as-is.
	ID *string `json:"id,omitempty"`
	// Value is the cell's text content.
	Value *string `json:"value,omitempty"`
	// Label is the object's display label.
	Label *string `json:"label,omitempty"`
	// Tags is the raw tag list string.
	Tags *string `json:"tags,omitempty"`
	// Style is the raw style string (e.g. "rounded=1;fillColor=#dae8fc").
	Style *string `json:"style,omitempty"`
	// Parent is the id of the parent cell, copied verbatim and never
	// resolved to another record.
	Parent *string `json:"parent,omitempty"`
	// Vertex is the vertex flag ("1" for vertices).
	Vertex *string `json:"vertex,omitempty"`
	// X is the horizontal position, kept as the source's numeric text.
	X *string `json:"x,omitempty"`
	// Y is the vertical position, kept as the source's numeric text.
	Y *string `json:"y,omitempty"`
	// Width is the shape width, kept as the source's numeric text.
	Width *string `json:"width,omitempty"`
	// Height is the shape height, kept as the source's numeric text.
	Height *string `json:"height,omitempty"`
}

// Content is the derived display text of a record: the label when one is
// present, the value otherwise. Both may be absent, in which case Content
// returns nil.
func (r ShapeRecord) Content() *string {
	return prefer(r.Label, r.Value)
}

// prefer returns primary when it holds a value and fallback otherwise.
// Chaining prefer across nesting levels keeps a deep value only when every
// shallower level left the field absent, so fallback chains transitively.
func prefer[T any](primary, fallback *T) *T {
	if primary != nil {
		return primary
	}
	return fallback
}

// merge folds fallback onto primary field by field. Primary's non-absent
// fields win; an absent primary field takes whatever fallback carries, even
// when that is absent too.
func merge(primary, fallback ShapeRecord) ShapeRecord {
	return ShapeRecord{
		ID:     prefer(primary.ID, fallback.ID),
		Value:  prefer(primary.Value, fallback.Value),
		Label:  prefer(primary.Label, fallback.Label),
		Tags:   prefer(primary.Tags, fallback.Tags),
		Style:  prefer(primary.Style, fallback.Style),
		Parent: prefer(primary.Parent, fallback.Parent),
		Vertex: prefer(primary.Vertex, fallback.Vertex),
		X:      prefer(primary.X, fallback.X),
		Y:      prefer(primary.Y, fallback.Y),
		Width:  prefer(primary.Width, fallback.Width),
		Height: prefer(primary.Height, fallback.Height),
	}
}
