package ufmt

import (
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// boundArg is one positional argument prepared for substitution: its
// default rendering plus a lazy renderer invoked only when the placeholder
// carries a spec.
type boundArg struct {
	def    string
	render func(spec string) string
}

// bindArgs resolves each argument's formatter once up front. A registered
// formatter overrides the canonical form entirely, spec or no spec.
func bindArgs(c Context, args []any) []boundArg {
	bound := make([]boundArg, len(args))
	for i, arg := range args {
		arg := arg
		if arg != nil {
			if fn, ok := c.formatterFor(reflect.TypeOf(arg)); ok {
				out := fn(arg)
				bound[i] = boundArg{def: out, render: func(string) string { return out }}
				continue
			}
		}
		bound[i] = boundArg{
			def:    ToString(arg),
			render: func(spec string) string { return renderValue(arg, spec) },
		}
	}
	return bound
}

// insertedSpans tracks the byte ranges of substituted text within the
// working string, so the named pass can skip anything produced by the
// positional pass. Spans are kept sorted and non-overlapping.
type insertedSpans [][2]int

// replace records that [start, oldEnd) was replaced by newLen bytes:
// existing spans are clipped and shifted, and the new range is marked.
func (ins *insertedSpans) replace(start, oldEnd, newLen int) {
	delta := newLen - (oldEnd - start)
	out := make(insertedSpans, 0, len(*ins)+1)
	for _, sp := range *ins {
		switch {
		case sp[1] <= start:
			out = append(out, sp)
		case sp[0] >= oldEnd:
			out = append(out, [2]int{sp[0] + delta, sp[1] + delta})
		default:
			if sp[0] < start {
				out = append(out, [2]int{sp[0], start})
			}
			if sp[1] > oldEnd {
				out = append(out, [2]int{oldEnd + delta, sp[1] + delta})
			}
		}
	}
	out = append(out, [2]int{start, start + newLen})
	sort.Slice(out, func(i, j int) bool { return out[i][0] < out[j][0] })
	merged := out[:1]
	for _, sp := range out[1:] {
		last := &merged[len(merged)-1]
		if sp[0] <= last[1] {
			if sp[1] > last[1] {
				last[1] = sp[1]
			}
			continue
		}
		merged = append(merged, sp)
	}
	*ins = merged
}

// containing returns the end of the span holding pos, if any.
func (ins insertedSpans) containing(pos int) (end int, ok bool) {
	for _, sp := range ins {
		if pos < sp[0] {
			return 0, false
		}
		if pos < sp[1] {
			return sp[1], true
		}
	}
	return 0, false
}

// substitute runs the two-pass placeholder substitution over template.
// Pass 1 resolves positional placeholders in ascending index order, the
// spec'd form before the bare form; pass 2 resolves named placeholders from
// the context. Failures of any kind leave the placeholder verbatim.
func substitute(c Context, template string, args []any) string {
	result := template
	var ins insertedSpans

	// Pass 1: positional.
	bound := bindArgs(c, args)
	for i, arg := range bound {
		index := strconv.Itoa(i)

		marker := "{" + index + ":"
		pos := 0
		for {
			j := strings.Index(result[pos:], marker)
			if j < 0 {
				break
			}
			j += pos
			end := strings.IndexByte(result[j:], '}')
			if end < 0 {
				break
			}
			end += j
			out := arg.render(result[j+len(marker) : end])
			result = result[:j] + out + result[end+1:]
			ins.replace(j, end+1, len(out))
			pos = j + len(out)
		}

		bare := "{" + index + "}"
		pos = 0
		for {
			j := strings.Index(result[pos:], bare)
			if j < 0 {
				break
			}
			j += pos
			result = result[:j] + arg.def + result[j+len(bare):]
			ins.replace(j, j+len(bare), len(arg.def))
			pos = j + len(arg.def)
		}
	}

	// Pass 2: named.
	pos := 0
	for {
		j := strings.IndexByte(result[pos:], '{')
		if j < 0 {
			break
		}
		j += pos
		if end, ok := ins.containing(j); ok {
			pos = end
			continue
		}
		end := strings.IndexByte(result[j:], '}')
		if end < 0 {
			break
		}
		end += j
		content := result[j+1 : end]
		if content == "" || isDigit(content[0]) {
			// Empty or positional form: already handled or reserved.
			pos = end + 1
			continue
		}
		name, spec, hasSpec := strings.Cut(content, ":")
		value, found := c.findVar(name)
		if !found {
			pos = end + 1
			continue
		}
		if hasSpec && spec != "" {
			value = renderText(value, spec)
		}
		result = result[:j] + value + result[end+1:]
		ins.replace(j, end+1, len(value))
		pos = j + len(value)
	}

	return result
}
