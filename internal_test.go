package ufmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSpec(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		want formatSpec
		ok   bool
	}{
		{"", formatSpec{precision: -1}, true},
		{".3f", formatSpec{precision: 3, typ: 'f'}, true},
		{"-10", formatSpec{align: '-', width: 10, hasWidth: true, precision: -1}, true},
		{"^8.2f", formatSpec{align: '^', width: 8, hasWidth: true, precision: 2, typ: 'f'}, true},
		{"08d", formatSpec{width: 8, hasWidth: true, zeroPad: true, precision: -1, typ: 'd'}, true},
		{"15.12", formatSpec{width: 15, hasWidth: true, precision: 12}, true},
		{"x", formatSpec{precision: -1, typ: 'x'}, true},
		{"5.", formatSpec{width: 5, hasWidth: true, precision: 0}, true},
		{".f", formatSpec{precision: 0, typ: 'f'}, true},
		{"-", formatSpec{align: '-', precision: -1}, true},
		{"invalid", formatSpec{precision: -1}, false},
		{"x10", formatSpec{precision: -1}, false},
		{"10zz", formatSpec{precision: -1}, false},
	}
	for _, tt := range tests {
		sp, ok := parseSpec(tt.in)
		assert.Equal(t, tt.ok, ok, "spec %q", tt.in)
		assert.Equal(t, tt.want, sp, "spec %q", tt.in)
	}
}

func TestTruncateText(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "hello", truncateText("hello", -1))
	assert.Equal(t, "hello", truncateText("hello", 5))
	assert.Equal(t, "", truncateText("hello", 0))
	assert.Equal(t, "hel", truncateText("hello", 3))
	assert.Equal(t, "h...", truncateText("hello world", 4))
	assert.Equal(t, "hello w...", truncateText("hello world!", 10))
}

func TestJustifyText(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "  ab", justifyText("ab", 0, 4))
	assert.Equal(t, "ab  ", justifyText("ab", '-', 4))
	assert.Equal(t, " ab ", justifyText("ab", '^', 4))
	assert.Equal(t, " ab  ", justifyText("ab", '^', 5))
	assert.Equal(t, "ab", justifyText("ab", 0, 2))
	assert.Equal(t, "ab", justifyText("ab", 0, 0))
}

func TestJustifyTextWideRunes(t *testing.T) {
	t.Parallel()
	// Padding is computed from display width, not byte or rune count.
	assert.Equal(t, "  你好", justifyText("你好", 0, 6))
}

func TestFormatBinaryInternal(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "0b0", formatBinary(0, formatSpec{precision: -1}))
	assert.Equal(t, "0b101", formatBinary(5, formatSpec{precision: -1}))
	assert.Equal(t, "   0b101", formatBinary(5, formatSpec{width: 8, hasWidth: true, precision: -1}))
	assert.Equal(t, "0b000101", formatBinary(5, formatSpec{width: 8, hasWidth: true, zeroPad: true, precision: -1}))
	// Width no wider than prefix plus digits changes nothing.
	assert.Equal(t, "0b101", formatBinary(5, formatSpec{width: 5, hasWidth: true, precision: -1}))
}

func TestZeroPadNumber(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "00042", zeroPadNumber("42", 5))
	assert.Equal(t, "-0042", zeroPadNumber("-42", 5))
	assert.Equal(t, "1234", zeroPadNumber("1234", 3))
}

func TestRenderTextFallbacks(t *testing.T) {
	t.Parallel()
	// Numeric spec on non-numeric text degrades to string formatting.
	assert.Equal(t, "ab", renderText("abc", ".2f"))
	assert.Equal(t, "   abc", renderText("abc", "6d"))
	// Unknown type character keeps alignment and width.
	assert.Equal(t, "abc   ", renderText("abc", "-6z"))
	// Unparseable spec leaves the value alone.
	assert.Equal(t, "abc", renderText("abc", "zz99"))
	// Parseable numeric text takes the numeric path.
	assert.Equal(t, "3.14", renderText("3.14159", ".2f"))
	assert.Equal(t, "ff", renderText("255", "x"))
	assert.Equal(t, "0b11", renderText("3", "b"))
}

func TestInsertedSpans(t *testing.T) {
	t.Parallel()
	var ins insertedSpans

	// "{0}" at [2,5) replaced by 4 bytes.
	ins.replace(2, 5, 4)
	assert.Equal(t, insertedSpans{{2, 6}}, ins)

	end, ok := ins.containing(3)
	assert.True(t, ok)
	assert.Equal(t, 6, end)
	_, ok = ins.containing(6)
	assert.False(t, ok)
	_, ok = ins.containing(1)
	assert.False(t, ok)

	// A later replacement before the span shifts it.
	ins.replace(0, 1, 3)
	assert.Equal(t, insertedSpans{{0, 3}, {4, 8}}, ins)

	// Replacing a region overlapping both spans clips and merges them.
	ins.replace(2, 5, 1)
	assert.Equal(t, insertedSpans{{0, 6}}, ins)
}

func TestStatelessContext(t *testing.T) {
	t.Parallel()
	assert.False(t, stateless.HasVar("anything"))
	_, ok := stateless.findVar("anything")
	assert.False(t, ok)
	_, ok = stateless.formatterFor(nil)
	assert.False(t, ok)
}
