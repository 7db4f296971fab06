package ufmt

import "reflect"

// LocalContext is an exclusively-owned formatting context. It performs no
// internal synchronization: concurrent use from multiple goroutines is a
// contract violation and is not runtime-checked.
type LocalContext struct {
	vars       map[string]string
	formatters map[reflect.Type]func(any) string
}

// NewLocalContext creates an empty single-owner context.
func NewLocalContext() *LocalContext {
	return &LocalContext{
		vars:       make(map[string]string),
		formatters: make(map[reflect.Type]func(any) string),
	}
}

// Format substitutes placeholders in template using args and this
// context's variables.
func (c *LocalContext) Format(template string, args ...any) string {
	return substitute(c, template, args)
}

// SetVar stores a variable, stringifying non-string values immediately.
func (c *LocalContext) SetVar(name string, value any) {
	c.vars[name] = stringify(c, value)
}

// ClearVar removes a variable.
func (c *LocalContext) ClearVar(name string) {
	delete(c.vars, name)
}

// HasVar reports whether a variable is set.
func (c *LocalContext) HasVar(name string) bool {
	_, ok := c.vars[name]
	return ok
}

func (c *LocalContext) findVar(name string) (string, bool) {
	v, ok := c.vars[name]
	return v, ok
}

func (c *LocalContext) formatterFor(t reflect.Type) (func(any) string, bool) {
	fn, ok := c.formatters[t]
	return fn, ok
}

func (c *LocalContext) setFormatter(t reflect.Type, fn func(any) string) {
	c.formatters[t] = fn
}

func (c *LocalContext) clearFormatter(t reflect.Type) {
	delete(c.formatters, t)
}

func (c *LocalContext) hasFormatter(t reflect.Type) bool {
	_, ok := c.formatters[t]
	return ok
}
