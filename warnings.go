package md2mindmap

import "fmt"

// Warning records a recoverable condition encountered during a run.
// Warnings are collected in order and surfaced to the operator after
// normal output; they never abort processing.
type Warning struct {
	// Err is one of the recoverable sentinel errors
	// (ErrMalformedConfigSource, ErrInvalidEnumValue, ...).
	Err error

	// Detail describes the specific occurrence.
	Detail string
}

func (w Warning) String() string {
	return fmt.Sprintf("%v: %s", w.Err, w.Detail)
}

// Warnings is an ordered collection of warnings.
type Warnings []Warning

// Add appends a warning wrapping the given sentinel.
func (ws *Warnings) Add(sentinel error, format string, args ...any) {
	*ws = append(*ws, Warning{Err: sentinel, Detail: fmt.Sprintf(format, args...)})
}

// Merge appends all warnings from other, preserving order.
func (ws *Warnings) Merge(other Warnings) {
	*ws = append(*ws, other...)
}
