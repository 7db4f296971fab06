package ufmt

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors for programmatic error handling. Only the strict entry
// points report them; Format itself never fails.
var (
	// ErrInvalidTemplate marks a structural template problem, such as an
	// opened placeholder with no closing brace.
	ErrInvalidTemplate = errors.New("invalid template")

	// ErrArgument marks a positional placeholder with no matching argument.
	ErrArgument = errors.New("argument mismatch")
)

// Format substitutes placeholders in template using the stateless context:
// positional arguments only, no variables, no custom formatters.
//
// Anything that cannot be resolved stays verbatim in the output; Format
// never fails on malformed input.
func Format(template string, args ...any) string {
	return stateless.Format(template, args...)
}

// FormatStrict is Format with structural misuse surfaced instead of
// degraded: an unterminated placeholder reports ErrInvalidTemplate and a
// positional index beyond the argument count reports ErrArgument. Data
// gaps that Format tolerates, like unknown named variables, still degrade
// verbatim.
func FormatStrict(template string, args ...any) (string, error) {
	if err := CheckTemplate(template); err != nil {
		return "", err
	}
	if idx, ok := maxPositionalIndex(template); ok && idx >= len(args) {
		return "", fmt.Errorf("%w: placeholder {%d} with %d argument(s)", ErrArgument, idx, len(args))
	}
	return Format(template, args...), nil
}

// CheckTemplate validates template structure without formatting anything.
// It reports ErrInvalidTemplate for an opened placeholder that never
// closes, the one malformation the substitution passes silently tolerate.
func CheckTemplate(template string) error {
	for pos := 0; ; {
		j := strings.IndexByte(template[pos:], '{')
		if j < 0 {
			return nil
		}
		j += pos
		end := strings.IndexByte(template[j:], '}')
		if end < 0 {
			return fmt.Errorf("%w: unterminated placeholder at offset %d", ErrInvalidTemplate, j)
		}
		pos = j + end + 1
	}
}

// maxPositionalIndex finds the highest well-formed positional index
// referenced by template.
func maxPositionalIndex(template string) (int, bool) {
	maxIdx, found := 0, false
	for pos := 0; ; {
		j := strings.IndexByte(template[pos:], '{')
		if j < 0 {
			return maxIdx, found
		}
		j += pos
		end := strings.IndexByte(template[j:], '}')
		if end < 0 {
			return maxIdx, found
		}
		end += j
		content := placeholderName(template[j+1 : end])
		if n, err := strconv.Atoi(content); err == nil && n >= 0 {
			if !found || n > maxIdx {
				maxIdx, found = n, true
			}
		}
		pos = end + 1
	}
}

// placeholderName strips an optional spec from placeholder content.
func placeholderName(content string) string {
	name, _, _ := strings.Cut(content, ":")
	return name
}
