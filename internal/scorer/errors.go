package scorer

import "github.com/rotisserie/eris"

// ErrInvalidInput is returned when the matrix, weights or impacts violate a
// precondition of Score. The wrapped message names the failed check.
var ErrInvalidInput = eris.New("scorer: invalid input")

func invalidf(format string, args ...any) error {
	return eris.Wrapf(ErrInvalidInput, format, args...)
}
