// Package rec turns panics back into errors at program boundaries.
package rec

import (
	"fmt"
	"runtime/debug"
)

func recovered(r any) error {
	if err, ok := r.(error); ok {
		return fmt.Errorf("recovered panic: %w\n%s", err, debug.Stack())
	}
	return fmt.Errorf("recovered panic: %v\n%s", r, debug.Stack())
}

// Error recovers a panic and assigns it to the provided error.
// It must be deferred directly.
func Error(err *error) {
	if r := recover(); r != nil {
		*err = recovered(r)
	}
}

// Wrap recovers a panic with the provided format and arguments
// and assigns it to the provided error.
// The recovered panic is appended to the end of the arguments.
// If no panic was recovered, but the error is not nil, it is wrapped
// with the provided format and arguments as well.
func Wrap(err *error, format string, a ...any) {
	if r := recover(); r != nil {
		*err = fmt.Errorf(format, append(a, recovered(r))...)
	} else if *err != nil {
		*err = fmt.Errorf(format, append(a, *err)...)
	}
}
