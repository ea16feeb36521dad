package extractor

import "fmt"

// TagMismatchError reports a parser invoked on an element whose tag does not
// match the kind it implements. It signals a caller error, not bad input
// data, and is never recovered internally.
type TagMismatchError struct {
	Expected string // tag the parser requires
	Actual   string // tag the element carries
}

func (e *TagMismatchError) Error() string {
	return fmt.Sprintf("Element should be of type '%s' not '%s'", e.Expected, e.Actual)
}

// UnhandledKindError reports a top-level shape element whose tag is outside
// the recognized kind set. The walk stops at the offending element rather
// than skipping it.
type UnhandledKindError struct {
	Tag string
}

func (e *UnhandledKindError) Error() string {
	return fmt.Sprintf("no shape parser for element <%s>", e.Tag)
}
