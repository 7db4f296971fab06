package ufmt_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vpiotr/ufmt"
	"pgregory.net/rapid"
)

var literalRunes = []rune("abcdefgh XYZ012349.,:-^")

func TestPropertyIdentity(t *testing.T) {
	t.Parallel()
	// A template without placeholders comes back unchanged.
	rapid.Check(t, func(rt *rapid.T) {
		tmpl := rapid.StringOfN(rapid.RuneFrom(literalRunes), 0, 64, -1).Draw(rt, "tmpl")
		require.Equal(rt, tmpl, ufmt.Format(tmpl))
		require.Equal(rt, tmpl, ufmt.Format(tmpl, "unused", 1, true))
	})
}

func TestPropertyOutOfRangeSurvives(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(rt *rapid.T) {
		idx := rapid.IntRange(2, 99).Draw(rt, "idx")
		spec := rapid.SampledFrom([]string{"", ":.2f", ":08d", ":-10.4", ":x"}).Draw(rt, "spec")
		ph := "{" + strconv.Itoa(idx) + spec + "}"
		out := ufmt.Format("a "+ph+" b", "x", "y")
		require.Equal(rt, "a "+ph+" b", out)
	})
}

func TestPropertyJustification(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(rt *rapid.T) {
		text := rapid.StringOfN(rapid.RuneFrom([]rune("abcdefXYZ")), 0, 20, -1).Draw(rt, "text")
		width := rapid.IntRange(1, 40).Draw(rt, "width")
		pad := width - len(text)

		right := ufmt.Format("{0:"+strconv.Itoa(width)+"}", text)
		left := ufmt.Format("{0:-"+strconv.Itoa(width)+"}", text)
		center := ufmt.Format("{0:^"+strconv.Itoa(width)+"}", text)

		if pad <= 0 {
			require.Equal(rt, text, right)
			require.Equal(rt, text, left)
			require.Equal(rt, text, center)
			return
		}
		require.Equal(rt, strings.Repeat(" ", pad)+text, right)
		require.Equal(rt, text+strings.Repeat(" ", pad), left)
		require.Equal(rt, strings.Repeat(" ", pad/2)+text+strings.Repeat(" ", pad-pad/2), center)
	})
}

func TestPropertyTruncation(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(rt *rapid.T) {
		prec := rapid.IntRange(0, 15).Draw(rt, "prec")
		extra := rapid.IntRange(1, 20).Draw(rt, "extra")
		text := strings.Repeat("a", prec+extra)

		out := ufmt.Format("{0:."+strconv.Itoa(prec)+"}", text)
		require.Len(rt, out, prec)
		if prec > 3 {
			require.True(rt, strings.HasSuffix(out, "..."))
		} else {
			require.Equal(rt, text[:prec], out)
		}
	})
}

func TestPropertyStrictNeverFailsOnValidInput(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(rt *rapid.T) {
		tmpl := rapid.StringOfN(rapid.RuneFrom(literalRunes), 0, 32, -1).Draw(rt, "tmpl")
		out, err := ufmt.FormatStrict(tmpl + " {0}")
		require.ErrorIs(rt, err, ufmt.ErrArgument)
		require.Empty(rt, out)

		out, err = ufmt.FormatStrict(tmpl+" {0}", "v")
		require.NoError(rt, err)
		require.Equal(rt, tmpl+" v", out)
	})
}
