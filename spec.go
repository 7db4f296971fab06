package ufmt

import "strconv"

// formatSpec is a parsed placeholder format specification:
// [alignment][width][.precision][type]. Specs are parsed fresh per
// placeholder occurrence and never cached.
type formatSpec struct {
	align     byte // 0 (right), '-' (left) or '^' (center)
	width     int
	hasWidth  bool
	zeroPad   bool // width digits started with '0'
	precision int  // -1 when absent
	typ       byte // 0 when absent
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// parseSpec parses a format specification. ok is false when the text does
// not fit the grammar; callers degrade to plain string rendering in that
// case rather than reporting an error.
func parseSpec(s string) (sp formatSpec, ok bool) {
	sp.precision = -1
	i := 0
	if i < len(s) && (s[i] == '-' || s[i] == '^') {
		sp.align = s[i]
		i++
	}
	start := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if i > start {
		sp.hasWidth = true
		sp.zeroPad = s[start] == '0'
		sp.width, _ = strconv.Atoi(s[start:i])
	}
	if i < len(s) && s[i] == '.' {
		i++
		start = i
		for i < len(s) && isDigit(s[i]) {
			i++
		}
		// A bare dot means precision zero, matching printf "%.f".
		sp.precision = 0
		if i > start {
			sp.precision, _ = strconv.Atoi(s[start:i])
		}
	}
	switch len(s) - i {
	case 0:
	case 1:
		sp.typ = s[i]
	default:
		return formatSpec{precision: -1}, false
	}
	return sp, true
}

// isFloatType reports whether c selects floating-point rendering.
func isFloatType(c byte) bool {
	switch c {
	case 'f', 'F', 'g', 'G', 'e', 'E':
		return true
	}
	return false
}

// isIntType reports whether c selects integer rendering.
func isIntType(c byte) bool {
	switch c {
	case 'd', 'i', 'u', 'x', 'X', 'o', 'b', 'B':
		return true
	}
	return false
}
