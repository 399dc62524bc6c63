package unified

import "strings"

// escapeMarker flags input which holds escaped code units instead of literal text.
const escapeMarker = `\u`

// --- Escape scanner --------------------------------------------------------

// escapeScanner extracts tokens of the form \uXXXX (exactly 4 hex digits)
// from an input string. Everything between tokens is ignored.
//
// Our scanner operates by calling scanning steps in a chain, iteratively.
// Each step function tests for valid lookahead and then possibly branches
// out to a subsequent step function. A step returns nil to stop.
//
type escapeScanner struct {
	input string   // text to scan
	pos   int      // byte position of the lookahead
	units []uint16 // code units found so far
}

type escapeStep func(*escapeScanner) escapeStep

// scanEscapes returns all code units of input which are given as \uXXXX
// tokens, in order of appearance.
func scanEscapes(input string) []uint16 {
	sc := &escapeScanner{input: input}
	for step := escapeStep(scanBackslash); step != nil; {
		step = step(sc)
	}
	return sc.units
}

// scanBackslash skips input up to the next backslash.
//
//    -> EOF:  stop
//    -> '\':  scanMarker
//
func scanBackslash(sc *escapeScanner) escapeStep {
	i := strings.IndexByte(sc.input[sc.pos:], '\\')
	if i < 0 {
		sc.pos = len(sc.input)
		return nil
	}
	sc.pos += i
	return scanMarker
}

// scanMarker expects a 'u' following the backslash.
func scanMarker(sc *escapeScanner) escapeStep {
	if sc.pos+1 < len(sc.input) && sc.input[sc.pos+1] == 'u' {
		return scanHexDigits
	}
	sc.pos++
	return scanBackslash
}

// scanHexDigits expects exactly 4 hex digits following the marker.
// On a mismatch, scanning resumes right after the backslash.
func scanHexDigits(sc *escapeScanner) escapeStep {
	start := sc.pos + len(escapeMarker)
	if start+4 > len(sc.input) {
		sc.pos++
		return scanBackslash
	}
	var unit uint16
	for i := start; i < start+4; i++ {
		d, ok := hexValue(sc.input[i])
		if !ok {
			sc.pos++
			return scanBackslash
		}
		unit = unit<<4 | uint16(d)
	}
	sc.units = append(sc.units, unit)
	sc.pos = start + 4
	return scanBackslash
}

func hexValue(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// --- Surrogates ------------------------------------------------------------

const (
	surrHighFirst = 0xd800
	surrHighLast  = 0xdbff
	surrLowFirst  = 0xdc00
	surrLowLast   = 0xdfff
	surrSelf      = 0x10000
)

func isHighSurrogate(u uint16) bool {
	return u >= surrHighFirst && u <= surrHighLast
}

func isLowSurrogate(u uint16) bool {
	return u >= surrLowFirst && u <= surrLowLast
}

// combineUnits turns a sequence of UTF-16 code units into code-points.
// A high surrogate immediately followed by a low surrogate is combined into
// a single supplementary code-point. Any other unit, including an unpaired
// surrogate, is taken as-is.
func combineUnits(units []uint16) []rune {
	rs := make([]rune, 0, len(units))
	for i := 0; i < len(units); i++ {
		u := units[i]
		if isHighSurrogate(u) && i+1 < len(units) && isLowSurrogate(units[i+1]) {
			lo := units[i+1]
			r := (rune(u)-surrHighFirst)*0x400 + (rune(lo) - surrLowFirst) + surrSelf
			rs = append(rs, r)
			i++ // skip low surrogate
			continue
		}
		rs = append(rs, rune(u))
	}
	return rs
}
