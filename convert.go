package ufmt

import (
	"fmt"
	"strconv"

	"github.com/spf13/cast"
)

// ToString renders a value in its canonical form: booleans as true/false,
// integers as decimal digits, floats with a fixed six decimal places and
// text as itself. Other kinds go through a generic conversion. This is the
// same rendering used for bare placeholders and for stringifying variables
// at set-time, unless a custom formatter is registered for the kind.
func ToString(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.FormatInt(int64(x), 10)
	case int8:
		return strconv.FormatInt(int64(x), 10)
	case int16:
		return strconv.FormatInt(int64(x), 10)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint:
		return strconv.FormatUint(uint64(x), 10)
	case uint8:
		return strconv.FormatUint(uint64(x), 10)
	case uint16:
		return strconv.FormatUint(uint64(x), 10)
	case uint32:
		return strconv.FormatUint(uint64(x), 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case uintptr:
		return strconv.FormatUint(uint64(x), 10)
	case float64:
		return canonicalFloat(x)
	case float32:
		return canonicalFloat(float64(x))
	case []byte:
		return string(x)
	case fmt.Stringer:
		return x.String()
	case error:
		return x.Error()
	case nil:
		return "<nil>"
	default:
		if s, err := cast.ToStringE(v); err == nil {
			return s
		}
		return fmt.Sprint(v)
	}
}

func canonicalFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}
