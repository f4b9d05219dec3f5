package helpers

import (
	"fmt"
	"io"
)

// MustFprintln is like fmt.Fprintln but panics on a write error, so that
// reporting code does not have to check an error on every line of output.
func MustFprintln(w io.Writer, a ...any) {
	if _, err := fmt.Fprintln(w, a...); err != nil {
		panic(err)
	}
}

// MustFprintf is like fmt.Fprintf but panics on a write error.
func MustFprintf(w io.Writer, format string, a ...any) {
	if _, err := fmt.Fprintf(w, format, a...); err != nil {
		panic(err)
	}
}
