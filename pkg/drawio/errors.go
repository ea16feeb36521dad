package drawio

import "fmt"

// DocumentError reports a diagram file that cannot be loaded as a
// well-formed tree or that lacks the expected mxfile structure. It is fatal
// to the file it names: the caller receives it unrecovered.
type DocumentError struct {
	Path   string // diagram file the failure belongs to
	Reason string
	Err    error // underlying cause, when one exists
}

func (e *DocumentError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Reason)
}

func (e *DocumentError) Unwrap() error { return e.Err }
