// Package clsx builds a single space-separated class string from a
// heterogeneous, variadic list of class-like arguments, discarding
// anything falsy or empty.
//
// clsx is designed to be:
//   - Single-pass (one depth-first walk, one output buffer)
//   - Allocation-shy (numbers format straight into the buffer)
//   - Deterministic (mapping keys emit in a stable order)
//   - Total on the typed layer (no runtime failure path)
//
// # Argument Taxonomy
//
// An Arg is a closed tagged union with one variant per argument shape:
//
//	Str("btn")          text; included iff non-empty
//	Bool(b)             never included on its own
//	Int(10), Uint(n)    always included, decimal form
//	Float(3.14)         always included, minimal decimal form
//	Some(a), None()     optional; recurse when present
//	List(a, b, ...)     sequence; nested lists flatten fully
//	Map(entries...)     key→bool mapping; true keys included in order
//	If(cond, "name")    included iff cond is true and name non-empty
//	Lazy(fn)            fn() invoked once at its traversal point
//
// # Typed and Dynamic Layers
//
// Join is the typed entry point; argument admissibility is a
// compile-time matter and the call cannot fail:
//
//	active := true
//	s := clsx.Join(clsx.Str("btn"), clsx.If(active, "btn-active"), clsx.Str("p-4"))
//	// s == "btn btn-active p-4"
//
// Classes is the loosely-typed convenience layer. It accepts plain Go
// values (strings, bools, numbers, nil, *string, []string, []any,
// map[string]bool, func() Arg, fmt.Stringer, ...) and applies a runtime
// capability check instead of static dispatch:
//
//	s, err := clsx.Classes("btn", map[string]bool{"flex": true, "hidden": false}, "base")
//	// s == "btn flex base"
//
// A value outside the recognized shapes yields an UnsupportedTypeError
// naming the argument's position and observed type. MustClasses panics
// instead, for literal call sites where a bad shape is a bug.
//
// # Output Invariants
//
// For every input: no leading or trailing space, exactly one space
// between tokens, no empty tokens. Re-running the same arguments yields
// byte-identical output; an unordered map[string]bool is sorted by key
// before emission so that iteration order can never leak into results.
package clsx
