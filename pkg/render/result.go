// Package render holds the render result accumulator and the
// serializing renderers that back the --renderer override names.
package render

import (
	"fmt"
	"strings"
)

// Result accumulates the text a renderer produces. Renderers append
// with Print and Println; the final form comes from String, which
// trims surrounding whitespace and ends with exactly one newline.
type Result struct {
	text string
}

// Print appends text to the result.
func (r *Result) Print(text string) {
	r.text += text
}

// Println appends text followed by a newline.
func (r *Result) Println(text string) {
	r.text += text + "\n"
}

// Printf appends formatted text to the result.
func (r *Result) Printf(format string, args ...any) {
	r.text += fmt.Sprintf(format, args...)
}

// Clear discards everything accumulated so far.
func (r *Result) Clear() {
	r.text = ""
}

// Text returns the raw accumulated text without trimming.
func (r Result) Text() string {
	return r.text
}

// String returns the display form: trimmed content plus a trailing
// newline. An empty result renders as a single newline.
func (r Result) String() string {
	return strings.TrimSpace(r.text) + "\n"
}
