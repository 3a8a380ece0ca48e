// Package baseconv converts integer numerals between bases 2 through 36 with
// arbitrary precision.
package baseconv

import (
	"fmt"
	"math/big"
	"strings"
)

const (
	MinBase = 2
	MaxBase = 36
)

// ParseError reports a numeral that is not valid in its base. Pos is the
// rune index of the offending digit within the trimmed input, or -1 when
// the numeral has no digits at all.
type ParseError struct {
	Input string
	Base  int
	Pos   int
	Digit rune
}

func (e *ParseError) Error() string {
	if e.Pos < 0 {
		return fmt.Sprintf("baseconv: %q has no digits", e.Input)
	}
	return fmt.Sprintf("baseconv: invalid digit %q at position %d for base %d", e.Digit, e.Pos, e.Base)
}

// BaseError reports a base outside [MinBase, MaxBase].
type BaseError struct {
	Base int
}

func (e *BaseError) Error() string {
	return fmt.Sprintf("baseconv: base %d out of range [%d, %d]", e.Base, MinBase, MaxBase)
}

func checkBase(b int) error {
	if b < MinBase || b > MaxBase {
		return &BaseError{Base: b}
	}
	return nil
}

// digitValue returns the value of r as a digit, case-insensitively, or -1.
func digitValue(r rune) int {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0')
	case r >= 'a' && r <= 'z':
		return int(r-'a') + 10
	case r >= 'A' && r <= 'Z':
		return int(r-'A') + 10
	default:
		return -1
	}
}

// Parse reads number in base. An optional leading '+' or '-' is accepted
// and surrounding whitespace is ignored.
func Parse(number string, base int) (*big.Int, error) {
	if err := checkBase(base); err != nil {
		return nil, err
	}

	trimmed := strings.TrimSpace(number)
	digits := trimmed
	neg := false
	offset := 0
	if digits != "" && (digits[0] == '+' || digits[0] == '-') {
		neg = digits[0] == '-'
		digits = digits[1:]
		offset = 1
	}

	if digits == "" {
		return nil, &ParseError{Input: number, Base: base, Pos: -1}
	}

	for i, r := range []rune(digits) {
		if v := digitValue(r); v < 0 || v >= base {
			return nil, &ParseError{Input: number, Base: base, Pos: i + offset, Digit: r}
		}
	}

	n, ok := new(big.Int).SetString(digits, base)
	if !ok {
		// Unreachable after the digit scan; kept so a big.Int quirk cannot
		// surface as a nil dereference.
		return nil, &ParseError{Input: number, Base: base, Pos: -1}
	}
	if neg {
		n.Neg(n)
	}

	return n, nil
}

// Format renders n in base: lowercase digits, no leading zeros, '-' only
// for negative values.
func Format(n *big.Int, base int) (string, error) {
	if err := checkBase(base); err != nil {
		return "", err
	}
	return n.Text(base), nil
}

// Convert parses number in base from and renders it in base to.
func Convert(number string, from, to int) (string, error) {
	if err := checkBase(to); err != nil {
		return "", err
	}

	n, err := Parse(number, from)
	if err != nil {
		return "", err
	}

	return n.Text(to), nil
}

// Canonical returns the canonical spelling of number in base, e.g.
// "+00FF" in base 16 becomes "ff" and "-0" becomes "0".
func Canonical(number string, base int) (string, error) {
	return Convert(number, base, base)
}

// Conversion is one row of Common.
type Conversion struct {
	Base  int
	Value string
}

// CommonBases are the bases shown side by side by Common.
var CommonBases = []int{2, 8, 10, 16}

// Common renders number (in base from) in each of CommonBases.
func Common(number string, from int) ([]Conversion, error) {
	n, err := Parse(number, from)
	if err != nil {
		return nil, err
	}

	out := make([]Conversion, 0, len(CommonBases))
	for _, b := range CommonBases {
		out = append(out, Conversion{Base: b, Value: n.Text(b)})
	}
	return out, nil
}
