package table

import (
	"errors"
	"fmt"

	"github.com/rotisserie/eris"
)

// ErrAdapter matches every failure raised while reading, parsing or writing
// tables and command-line criteria. Use errors.Is to test for it.
var ErrAdapter = eris.New("table: adapter error")

// AdapterError tags an eris error as an adapter failure. Op is the
// operation that failed; Err carries the message, cause and stack.
type AdapterError struct {
	Op  string
	Err error
}

func (e *AdapterError) Error() string { return "table: " + e.Err.Error() }

func (e *AdapterError) Unwrap() error { return e.Err }

// Is reports a match against ErrAdapter.
func (e *AdapterError) Is(target error) bool { return target == ErrAdapter }

func adapterf(err error, format string, args ...any) error {
	op := fmt.Sprintf(format, args...)
	if err == nil {
		return &AdapterError{Op: op, Err: eris.New(op)}
	}
	return &AdapterError{Op: op, Err: eris.Wrap(err, op)}
}

// IsAdapter reports whether err came from this package.
func IsAdapter(err error) bool {
	return errors.Is(err, ErrAdapter)
}
