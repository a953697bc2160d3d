package clsx

// Kind identifies the variant of an Arg.
type Kind uint8

const (
	KindEmpty Kind = iota // contributes nothing; the zero Arg
	KindText
	KindBool
	KindInt
	KindUint
	KindFloat
	KindSome // present optional wrapping an inner Arg
	KindNone // absent optional
	KindList // ordered sequence, flattened recursively
	KindMap  // key→bool mapping, entry order preserved
	KindIf   // conditional (bool, text) pair
	KindLazy // deferred argument, invoked during the join
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindText:
		return "text"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindUint:
		return "uint"
	case KindFloat:
		return "float"
	case KindSome:
		return "some"
	case KindNone:
		return "none"
	case KindList:
		return "list"
	case KindMap:
		return "map"
	case KindIf:
		return "if"
	case KindLazy:
		return "lazy"
	default:
		return "unknown"
	}
}

// Arg represents one argument to a join. The zero value is the empty
// marker and contributes nothing.
type Arg struct {
	kind Kind

	// Scalar payloads (only one valid based on kind).
	// KindIf uses boolVal for the condition and strVal for the name.
	boolVal   bool
	intVal    int64
	uintVal   uint64
	floatVal  float64
	floatBits int // 32 or 64, the precision floatVal was created at
	strVal    string

	// Container payloads
	inner   *Arg
	list    []Arg
	entries []MapEntry

	// Deferred payload
	fn func() Arg
}

// MapEntry is one key→bool pair of a mapping argument.
type MapEntry struct {
	Key string
	On  bool
}

// ============================================================
// Constructors
// ============================================================

// Empty returns the empty marker argument. It contributes nothing; the
// zero Arg is equivalent.
func Empty() Arg {
	return Arg{}
}

// Str creates a text argument. Empty text contributes nothing.
func Str(v string) Arg {
	return Arg{kind: KindText, strVal: v}
}

// Bool creates a boolean argument. A standalone boolean never
// contributes; use If to gate a name on a condition.
func Bool(v bool) Arg {
	return Arg{kind: KindBool, boolVal: v}
}

// Int creates an integer argument. Numbers are always included, zero too.
func Int(v int64) Arg {
	return Arg{kind: KindInt, intVal: v}
}

// Uint creates an unsigned integer argument.
func Uint(v uint64) Arg {
	return Arg{kind: KindUint, uintVal: v}
}

// Float creates a float argument. It renders in plain minimal decimal
// form: Float(3.14) joins as "3.14", Float(3.0) as "3".
func Float(v float64) Arg {
	return Arg{kind: KindFloat, floatVal: v, floatBits: 64}
}

// Float32 creates a float argument formatted at 32-bit precision, so
// Float32(3.14) joins as "3.14" rather than the widened 64-bit digits.
func Float32(v float32) Arg {
	return Arg{kind: KindFloat, floatVal: float64(v), floatBits: 32}
}

// Some wraps an argument as a present optional; joining recurses into
// the inner value.
func Some(a Arg) Arg {
	return Arg{kind: KindSome, inner: &a}
}

// None creates an absent optional. It contributes nothing.
func None() Arg {
	return Arg{kind: KindNone}
}

// List creates a sequence argument from its elements in order. Nested
// sequences flatten fully during the join.
func List(args ...Arg) Arg {
	return Arg{kind: KindList, list: args}
}

// Map creates a mapping argument. Entries keep the order given here;
// each key is included iff its flag is true.
func Map(entries ...MapEntry) Arg {
	return Arg{kind: KindMap, entries: entries}
}

// Entry creates a single mapping entry for use with Map.
func Entry(key string, on bool) MapEntry {
	return MapEntry{Key: key, On: on}
}

// If creates a conditional pair: name is included only when cond is true
// and name is non-empty.
func If(cond bool, name string) Arg {
	return Arg{kind: KindIf, boolVal: cond, strVal: name}
}

// Lazy creates a deferred argument. fn is invoked exactly once at the
// point the argument is encountered during a join, and its result is
// resolved by the same rules, so it may return any variant, including
// another deferred argument. A nil fn contributes nothing.
func Lazy(fn func() Arg) Arg {
	return Arg{kind: KindLazy, fn: fn}
}

// ============================================================
// Accessors
// ============================================================

// Kind returns the argument variant.
func (a Arg) Kind() Kind {
	return a.kind
}

// String returns the tokens this argument alone contributes, joined by
// single spaces. It implements fmt.Stringer. Deferred arguments are
// invoked to produce their tokens.
func (a Arg) String() string {
	return Join(a)
}

// IsEmpty reports whether the argument contributes no tokens. Deferred
// arguments are invoked to decide.
func (a Arg) IsEmpty() bool {
	return Join(a) == ""
}
