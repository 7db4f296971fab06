package ufmt

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

// renderValue renders a typed positional argument against a raw format
// specification. An empty spec yields the canonical rendering; a spec that
// does not parse degrades to the canonical rendering as well.
func renderValue(v any, raw string) string {
	if raw == "" {
		return ToString(v)
	}
	sp, ok := parseSpec(raw)
	if !ok {
		return ToString(v)
	}
	switch x := v.(type) {
	case float64:
		return renderFloatValue(x, sp)
	case float32:
		return renderFloatValue(float64(x), sp)
	case int:
		return renderIntValue(int64(x), sp)
	case int8:
		return renderIntValue(int64(x), sp)
	case int16:
		return renderIntValue(int64(x), sp)
	case int32:
		return renderIntValue(int64(x), sp)
	case int64:
		return renderIntValue(x, sp)
	case uint:
		return renderIntValue(int64(x), sp)
	case uint8:
		return renderIntValue(int64(x), sp)
	case uint16:
		return renderIntValue(int64(x), sp)
	case uint32:
		return renderIntValue(int64(x), sp)
	case uint64:
		return renderIntValue(int64(x), sp)
	case uintptr:
		return renderIntValue(int64(x), sp)
	case string:
		return applyStringSpec(x, sp)
	default:
		return applyStringSpec(ToString(v), sp)
	}
}

// renderText renders a named-variable value, which is only available as
// text. The type character decides the numeric interpretation; if the text
// does not parse as that kind, the spec falls back to string formatting of
// the raw text. Never fails.
func renderText(value, raw string) string {
	if raw == "" {
		return value
	}
	sp, ok := parseSpec(raw)
	if !ok {
		return value
	}
	switch {
	case isFloatType(sp.typ):
		f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return applyStringSpec(value, sp)
		}
		return formatFloat(f, sp)
	case isIntType(sp.typ):
		n, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
		if err != nil {
			return applyStringSpec(value, sp)
		}
		return formatInt(n, sp)
	default:
		return applyStringSpec(value, sp)
	}
}

func renderFloatValue(v float64, sp formatSpec) string {
	switch {
	case isFloatType(sp.typ):
		return formatFloat(v, sp)
	case isIntType(sp.typ):
		return formatInt(int64(v), sp)
	default:
		return applyStringSpec(canonicalFloat(v), sp)
	}
}

func renderIntValue(v int64, sp formatSpec) string {
	switch {
	case isIntType(sp.typ):
		return formatInt(v, sp)
	case isFloatType(sp.typ):
		return formatFloat(float64(v), sp)
	default:
		return applyStringSpec(strconv.FormatInt(v, 10), sp)
	}
}

// formatFloat renders a float according to the spec's type character.
// When an alignment is requested the numeric conversion receives only the
// precision and the digits are then justified as text, because the native
// conversion supports zero padding but not arbitrary alignment.
func formatFloat(v float64, sp formatSpec) string {
	verb := sp.typ
	if verb == 'F' {
		verb = 'f'
	}
	prec := sp.precision
	if prec < 0 && (verb == 'f' || verb == 'e' || verb == 'E') {
		prec = 6
	}
	if sp.align != 0 {
		return justifyText(strconv.FormatFloat(v, verb, prec, 64), sp.align, sp.width)
	}
	var pattern strings.Builder
	pattern.WriteByte('%')
	if sp.zeroPad {
		pattern.WriteByte('0')
	}
	if sp.hasWidth {
		pattern.WriteString(strconv.Itoa(sp.width))
	}
	if prec >= 0 {
		pattern.WriteByte('.')
		pattern.WriteString(strconv.Itoa(prec))
	}
	pattern.WriteByte(verb)
	return fmt.Sprintf(pattern.String(), v)
}

// formatInt renders an integer according to the spec's type character.
// Unsigned, hex, octal and binary forms use the 64-bit two's complement
// magnitude for negative values.
func formatInt(v int64, sp formatSpec) string {
	if sp.typ == 'b' || sp.typ == 'B' {
		if sp.align != 0 {
			return justifyText(formatBinary(uint64(v), formatSpec{precision: -1}), sp.align, sp.width)
		}
		return formatBinary(uint64(v), sp)
	}

	var verb byte
	var arg any
	switch sp.typ {
	case 'd', 'i':
		verb, arg = 'd', v
	case 'u':
		verb, arg = 'd', uint64(v)
	case 'x':
		verb, arg = 'x', uint64(v)
	case 'X':
		verb, arg = 'X', uint64(v)
	case 'o':
		verb, arg = 'o', uint64(v)
	}

	var pattern strings.Builder
	pattern.WriteByte('%')
	if sp.precision >= 0 {
		pattern.WriteByte('.')
		pattern.WriteString(strconv.Itoa(sp.precision))
	}
	pattern.WriteByte(verb)
	digits := fmt.Sprintf(pattern.String(), arg)
	if sp.align != 0 {
		return justifyText(digits, sp.align, sp.width)
	}
	if sp.hasWidth && sp.width > len(digits) {
		if sp.zeroPad {
			return zeroPadNumber(digits, sp.width)
		}
		return strings.Repeat(" ", sp.width-len(digits)) + digits
	}
	return digits
}

// formatBinary renders the magnitude as binary digits with an 0b prefix.
// Zero renders as 0b0 regardless of width. A requested width wider than the
// digits plus prefix is filled with zeros after the prefix when the width
// spec began with 0, or with spaces before the prefix otherwise.
func formatBinary(u uint64, sp formatSpec) string {
	if u == 0 {
		return "0b0"
	}
	digits := strconv.FormatUint(u, 2)
	if sp.hasWidth && sp.width > len(digits)+2 {
		pad := sp.width - len(digits) - 2
		if sp.zeroPad {
			return "0b" + strings.Repeat("0", pad) + digits
		}
		return strings.Repeat(" ", pad) + "0b" + digits
	}
	return "0b" + digits
}

// zeroPadNumber widens digits to width with zeros, keeping any sign first.
func zeroPadNumber(digits string, width int) string {
	sign := ""
	if len(digits) > 0 && (digits[0] == '-' || digits[0] == '+') {
		sign, digits = digits[:1], digits[1:]
	}
	pad := width - len(sign) - len(digits)
	if pad <= 0 {
		return sign + digits
	}
	return sign + strings.Repeat("0", pad) + digits
}

// applyStringSpec applies truncation then justification; the type character
// is ignored on this path.
func applyStringSpec(s string, sp formatSpec) string {
	s = truncateText(s, sp.precision)
	return justifyText(s, sp.align, sp.width)
}

// truncateText caps s at precision characters. Up to three characters the
// cut is bare; beyond that the last three become a literal ellipsis so the
// result is still exactly precision characters long.
func truncateText(s string, precision int) string {
	if precision < 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= precision {
		return s
	}
	if precision <= 3 {
		return string(runes[:precision])
	}
	return string(runes[:precision-3]) + "..."
}

// justifyText pads s with spaces to the requested width. Right alignment is
// the default; center splits the padding with the smaller half on the left.
func justifyText(s string, align byte, width int) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	switch align {
	case '-':
		return s + strings.Repeat(" ", pad)
	case '^':
		left := pad / 2
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
	default:
		return strings.Repeat(" ", pad) + s
	}
}
