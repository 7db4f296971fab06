// Package ufmt is a runtime string-templating engine with positional and
// named placeholders.
//
// Templates mix literal text with {0}-style positional placeholders and
// {name}-style named placeholders, each optionally carrying a printf-like
// format specification after a colon:
//
//	ufmt.Format("User {0} has {1} messages", "Alice", 5)
//	ufmt.Format("Pi = {0:.3f}", 3.14159)
//
// Substitution runs in two ordered passes: positional placeholders first
// (ascending index, spec'd form before bare form), then named placeholders
// resolved against a context. Text inserted by the positional pass is never
// re-examined by the named pass.
//
// # Format specifications
//
// A spec has the shape [alignment][width][.precision][type]:
//
//   - alignment: '-' left, '^' center, absent right
//   - width: minimum field width; a leading 0 requests zero padding for
//     numeric types
//   - precision: decimal places for floats, minimum digits for integers,
//     maximum length (with "..." truncation) for strings
//   - type: one of f F g G e E (float), d i u x X o b B (integer), absent
//     for plain string formatting
//
// When an alignment character is present, the numeric conversion handles
// only the precision and the resulting digits are padded as text, so
// arbitrary alignment works for numbers too.
//
// # Contexts
//
// Three context variants share one contract:
//
//   - the stateless singleton behind [Format]: no variables, no formatters
//   - [LocalContext]: single-owner variable and formatter stores, no
//     locking; sharing one across goroutines is a contract violation
//   - [SharedContext]: a mutex-guarded global store plus one lock-free
//     shadow store per accessing goroutine
//
// A SharedContext records the first goroutine that touches it as its home.
// The home goroutine reads and writes the shared global store; every other
// goroutine transparently writes to its own shadow store and reads through
// it, so workers can override variables locally without affecting anyone
// else:
//
//	ctx := ufmt.GetSharedContext("app")
//	ctx.SetVar("user", "Adam") // home goroutine, visible everywhere
//	go func() {
//		ctx.SetVar("user", "worker-7") // shadow, visible here only
//		_ = ctx.Format("hello {user}") // "hello worker-7"
//	}()
//
// [GetSharedContext] returns a process-wide named instance with atomic
// get-or-create semantics; [RemoveSharedContext] and [ClearSharedContexts]
// manage the registry without invalidating handles already held.
//
// # Variables and formatters
//
// Variables are stringified when set, not when read. Custom per-type
// formatters override the canonical rendering for both default and spec'd
// substitution and are registered generically:
//
//	ctx := ufmt.NewLocalContext()
//	ufmt.SetFormatter(ctx, func(b bool) string {
//		if b {
//			return "YES"
//		}
//		return "NO"
//	})
//	ctx.Format("Active: {0}", true) // "Active: YES"
//
// # Errors
//
// Formatting never fails on data-dependent gaps: a malformed placeholder,
// an out-of-range index, a missing variable, or an unparseable spec leaves
// the offending text verbatim in the output. Callers who want structural
// misuse surfaced can use [FormatStrict] or [CheckTemplate], which report
// the sentinel errors [ErrInvalidTemplate] and [ErrArgument].
package ufmt
