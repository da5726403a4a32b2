package scorer

import (
	"strings"

	"github.com/rotisserie/eris"
)

// Impact is the direction of a criterion.
type Impact int

const (
	// Benefit criteria prefer higher values.
	Benefit Impact = iota + 1
	// Cost criteria prefer lower values.
	Cost
)

func (i Impact) String() string {
	switch i {
	case Benefit:
		return "benefit"
	case Cost:
		return "cost"
	default:
		return "unknown"
	}
}

// Sign returns the short form used on the command line.
func (i Impact) Sign() string {
	switch i {
	case Benefit:
		return "+"
	case Cost:
		return "-"
	default:
		return "?"
	}
}

// Valid reports whether i is Benefit or Cost.
func (i Impact) Valid() bool {
	return i == Benefit || i == Cost
}

// ParseImpact accepts "+", "-", "benefit" or "cost" (case-insensitive for the
// long forms).
func ParseImpact(s string) (Impact, error) {
	switch strings.ToLower(s) {
	case "+", "benefit":
		return Benefit, nil
	case "-", "cost":
		return Cost, nil
	default:
		return 0, eris.Wrapf(ErrInvalidInput, "unknown impact %q (want + or -)", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (i Impact) MarshalText() ([]byte, error) {
	if !i.Valid() {
		return nil, eris.Wrapf(ErrInvalidInput, "unknown impact %d", int(i))
	}
	return []byte(i.Sign()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (i *Impact) UnmarshalText(b []byte) error {
	v, err := ParseImpact(string(b))
	if err != nil {
		return err
	}
	*i = v
	return nil
}
