package ufmt

import "reflect"

// Context is the read-side surface the substitution engine works against.
// All three context variants implement it.
type Context interface {
	// Format substitutes placeholders in template using args and this
	// context's variables. It never fails; unresolvable placeholders stay
	// verbatim in the output.
	Format(template string, args ...any) string

	// HasVar reports whether a named variable is visible to the caller.
	HasVar(name string) bool

	// findVar is the combined existence-and-value lookup used by the
	// engine; a single call so shared contexts lock at most once per
	// placeholder.
	findVar(name string) (string, bool)

	// formatterFor returns a copy of the formatter registered for t, if
	// any. Implementations must not hold locks in the returned function.
	formatterFor(t reflect.Type) (func(any) string, bool)
}

// VarContext extends Context with variable and formatter management. Local
// and shared contexts implement it; the stateless context behind [Format]
// does not.
type VarContext interface {
	Context

	// SetVar stores a variable. Non-string values are stringified
	// immediately, through the formatter registered for their kind when
	// one exists, otherwise via [ToString].
	SetVar(name string, value any)

	// ClearVar removes a variable visible to the caller.
	ClearVar(name string)

	setFormatter(t reflect.Type, fn func(any) string)
	clearFormatter(t reflect.Type)
	hasFormatter(t reflect.Type) bool
}

// SetFormatter registers fn as the renderer for values of type T. The
// registered formatter replaces canonical rendering entirely, for both bare
// and spec'd placeholders and for set-time variable stringification.
func SetFormatter[T any](c VarContext, fn func(T) string) {
	c.setFormatter(typeFor[T](), func(v any) string { return fn(v.(T)) })
}

// ClearFormatter removes the formatter registered for type T, if any.
func ClearFormatter[T any](c VarContext) {
	c.clearFormatter(typeFor[T]())
}

// HasFormatter reports whether a formatter is registered for type T.
func HasFormatter[T any](c VarContext) bool {
	return c.hasFormatter(typeFor[T]())
}

func typeFor[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// statelessContext backs the free Format function: no variables, no
// formatters, no locking.
type statelessContext struct{}

var stateless statelessContext

func (statelessContext) Format(template string, args ...any) string {
	return substitute(stateless, template, args)
}

func (statelessContext) HasVar(string) bool { return false }

func (statelessContext) findVar(string) (string, bool) { return "", false }

func (statelessContext) formatterFor(reflect.Type) (func(any) string, bool) { return nil, false }

// stringify converts a variable value at set-time. Strings pass through;
// anything else goes through the context's formatter for its kind, falling
// back to the canonical rendering.
func stringify(c Context, value any) string {
	if s, ok := value.(string); ok {
		return s
	}
	if value != nil {
		if fn, ok := c.formatterFor(reflect.TypeOf(value)); ok {
			return fn(value)
		}
	}
	return ToString(value)
}
