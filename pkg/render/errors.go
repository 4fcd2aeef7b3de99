package render

import "fmt"

// SerializeError reports a failed marshal inside one of the
// serializing renderers.
type SerializeError struct {
	Format string
	Err    error
}

func (e *SerializeError) Error() string {
	return fmt.Sprintf("serialize to %s failed: %v", e.Format, e.Err)
}

func (e *SerializeError) Unwrap() error {
	return e.Err
}

// RendererNotFoundError reports a renderer name with no entry in the
// generated dispatch tables.
type RendererNotFoundError struct {
	Name string
}

func (e *RendererNotFoundError) Error() string {
	return fmt.Sprintf("renderer %q not found", e.Name)
}

// TypeMismatchError reports a named renderer applied to an output
// type it does not accept.
type TypeMismatchError struct {
	Expected string
	Actual   string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("type mismatch: expected %q, got %q", e.Expected, e.Actual)
}

// DowncastError reports an output value that does not carry the type
// its tag claims.
type DowncastError struct {
	Type string
}

func (e *DowncastError) Error() string {
	return fmt.Sprintf("cannot downcast output to %q", e.Type)
}
