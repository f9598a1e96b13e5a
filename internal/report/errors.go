package report

import "fmt"

// PhaseError wraps an error with the pipeline phase where it occurred.
type PhaseError struct {
	Phase string
	Err   error
}

func (e *PhaseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Phase, e.Err)
}

func (e *PhaseError) Unwrap() error {
	return e.Err
}

// SchemaError reports a record that cannot be normalized: a missing
// required field, a directory outside the mount prefix, a value that
// fails type coercion, or arithmetic overflow in a derived column.
// Source is the log file the record came from, when traceable.
type SchemaError struct {
	Source string
	Field  string
	Reason string
}

func (e *SchemaError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("field %q: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("%s: field %q: %s", e.Source, e.Field, e.Reason)
}

// ConflictError reports an output path that already exists. The run aborts
// before writing anything so existing results are never overwritten.
type ConflictError struct {
	Path string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("output file already exists: %s", e.Path)
}
