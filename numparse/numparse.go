// SPDX-License-Identifier: MIT

package numparse

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/katalvlaran/lvopt/lp"
)

var (
	// ErrParse is returned for text that does not parse (numbers must be finite).
	ErrParse = errors.New("numparse: malformed input")

	// ErrEmpty is returned for blank input.
	ErrEmpty = errors.New("numparse: empty input")

	// ErrNotInteger is returned by Int and Ints for a fractional or out-of-range value.
	ErrNotInteger = errors.New("numparse: not an integer")
)

var minusReplacer = strings.NewReplacer(
	"−", "-", // minus sign
	"‒", "-", // figure dash
	"–", "-", // en dash
)

// Normalize applies NFKC, maps minus-like dashes to '-' and trims whitespace.
func Normalize(s string) string {
	return strings.TrimSpace(minusReplacer.Replace(norm.NFKC.String(s)))
}

// Float parses one finite float64.
//
// Errors: ErrEmpty, ErrParse.
func Float(s string) (float64, error) {
	n := Normalize(s)
	if n == "" {
		return 0, ErrEmpty
	}
	v, err := strconv.ParseFloat(n, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q: %w", s, ErrParse)
	}

	return v, nil
}

// Int parses one integer. Integral float text ("3.0", "1e3") is accepted.
//
// Errors: ErrEmpty, ErrParse, ErrNotInteger.
func Int(s string) (int, error) {
	v, err := Float(s)
	if err != nil {
		return 0, err
	}
	if v != math.Trunc(v) || v > math.MaxInt32 || v < math.MinInt32 {
		return 0, fmt.Errorf("%q: %w", s, ErrNotInteger)
	}

	return int(v), nil
}

// Floats parses a separated list. Empty fields between separators are skipped;
// a list with no values is ErrEmpty.
//
// Errors: ErrEmpty, ErrParse (wrapped with the 1-based position).
func Floats(s string) ([]float64, error) {
	fields := split(s)
	if len(fields) == 0 {
		return nil, ErrEmpty
	}
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := Float(f)
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", i+1, err)
		}
		out[i] = v
	}

	return out, nil
}

// Ints is Floats for integers.
//
// Errors: ErrEmpty, ErrParse, ErrNotInteger.
func Ints(s string) ([]int, error) {
	fields := split(s)
	if len(fields) == 0 {
		return nil, ErrEmpty
	}
	out := make([]int, len(fields))
	for i, f := range fields {
		v, err := Int(f)
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", i+1, err)
		}
		out[i] = v
	}

	return out, nil
}

// Relation parses a constraint relation ("<=", "≤", "＜＝", ">=", "=", ...).
//
// Errors: ErrEmpty; ErrParse joined with lp.ErrUnknownRelation.
func Relation(s string) (lp.Relation, error) {
	n := Normalize(s)
	if n == "" {
		return 0, ErrEmpty
	}
	r, err := lp.ParseRelation(n)
	if err != nil {
		return 0, fmt.Errorf("%q: %w: %w", s, ErrParse, err)
	}

	return r, nil
}

// Sense parses an objective sense ("max", "Minimize", ...).
//
// Errors: ErrEmpty; ErrParse joined with lp.ErrUnknownSense.
func Sense(s string) (lp.Sense, error) {
	n := Normalize(s)
	if n == "" {
		return 0, ErrEmpty
	}
	v, err := lp.ParseSense(n)
	if err != nil {
		return 0, fmt.Errorf("%q: %w: %w", s, ErrParse, err)
	}

	return v, nil
}

func split(s string) []string {
	return strings.FieldsFunc(Normalize(s), func(r rune) bool {
		return r == ',' || r == ';' || unicode.IsSpace(r)
	})
}
