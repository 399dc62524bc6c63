package unified

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// ErrInvalidSignature is returned when decoding a malformed signature.
var ErrInvalidSignature = errors.New("invalid code-point signature")

// Encode computes the signature of a character representation. input is
// either literal text or a sequence of escaped UTF-16 code units
// (`\uD83D\uDE00`).
//
// Encode returns an empty string if input cannot be interpreted: for an empty
// input, and for an input carrying the escape marker `\u` without any valid
// \uXXXX token. The latter is not retried as literal text.
//
func Encode(input string) string {
	if input == "" {
		tracer().Infof("invalid input to signature encoder: empty string")
		return ""
	}
	if strings.Contains(input, escapeMarker) {
		units := scanEscapes(input)
		if len(units) == 0 {
			tracer().Infof("no valid escaped Unicode in %q", input)
			return ""
		}
		return FromRunes(combineUnits(units))
	}
	return FromRunes([]rune(input))
}

// FromRunes creates the signature for a sequence of code-points.
// Every code-point is written with at least 4 hex digits.
func FromRunes(rs []rune) string {
	if len(rs) == 0 {
		return ""
	}
	var b strings.Builder
	for i, r := range rs {
		if i > 0 {
			b.WriteByte('-')
		}
		fmt.Fprintf(&b, "%04X", r)
	}
	return b.String()
}

// Runes decodes a signature into its code-points. Hex digits may be given in
// either case.
func Runes(sig string) ([]rune, error) {
	if sig == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidSignature)
	}
	groups := strings.Split(sig, "-")
	rs := make([]rune, len(groups))
	for i, g := range groups {
		if g == "" {
			return nil, fmt.Errorf("%w: empty group #%d in %q", ErrInvalidSignature, i+1, sig)
		}
		n, err := strconv.ParseUint(g, 16, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: %q in %q", ErrInvalidSignature, g, sig)
		}
		if n > unicode.MaxRune {
			return nil, fmt.Errorf("%w: %q out of Unicode range", ErrInvalidSignature, g)
		}
		rs[i] = rune(n)
	}
	return rs, nil
}

// String returns the text denoted by a signature. Surrogate code-points
// cannot be represented in a Go string and will turn into U+FFFD.
func String(sig string) (string, error) {
	rs, err := Runes(sig)
	if err != nil {
		return "", err
	}
	return string(rs), nil
}
