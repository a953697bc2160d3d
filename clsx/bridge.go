package clsx

import (
	"fmt"
)

// ============================================================
// Dynamic Capability Bridge
// ============================================================
//
// Converts loosely-typed values to Arg for call sites that cannot (or
// do not want to) spell out constructors. The capability check is a
// closed type switch: anything outside the recognized shapes is
// rejected up front with an UnsupportedTypeError, before any deferred
// argument runs.

// UnsupportedTypeError reports a value whose dynamic type matches no
// recognized argument shape.
type UnsupportedTypeError struct {
	Index int // position in the argument list
	Value any // the offending value
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported argument type %T (argument %d)", e.Value, e.Index)
}

// Classes assembles a class string from loosely-typed values. Each
// value is converted by the same rules as From, in order, then joined
// exactly as Join would. The recognized shapes are:
//
//	nil, *string(nil)      absent optional, contributes nothing
//	string, *string        text
//	bool                   ignored (gate names with If instead)
//	int..int64             integer, always included
//	uint..uintptr          unsigned integer, always included
//	float32, float64       minimal decimal form, always included
//	Arg                    used as is
//	[]string, []Arg, []any sequence, flattened recursively
//	map[string]bool        keys with true flags, in ascending key order
//	func() Arg             deferred argument
//	func() string          deferred text
//	fmt.Stringer           text via String()
//
// On the first unsupported value Classes returns "" and an error
// identifying the value's position and observed type; no partial
// result is produced and no deferred argument is invoked.
func Classes(values ...any) (string, error) {
	args := make([]Arg, len(values))
	for i, v := range values {
		a, err := from(v, i)
		if err != nil {
			return "", err
		}
		args[i] = a
	}
	return Join(args...), nil
}

// MustClasses is like Classes but panics on an unsupported value. Use
// it at call sites whose argument shapes are statically known, where a
// capability failure is a programmer error.
func MustClasses(values ...any) string {
	s, err := Classes(values...)
	if err != nil {
		panic(err)
	}
	return s
}

// From converts a single loosely-typed value to an Arg using the
// Classes shape rules. The error's Index is 0.
func From(v any) (Arg, error) {
	return from(v, 0)
}

func from(v any, idx int) (Arg, error) {
	if v == nil {
		return None(), nil
	}

	switch val := v.(type) {
	case Arg:
		return val, nil

	case string:
		return Str(val), nil

	case bool:
		return Bool(val), nil

	case int:
		return Int(int64(val)), nil
	case int8:
		return Int(int64(val)), nil
	case int16:
		return Int(int64(val)), nil
	case int32:
		return Int(int64(val)), nil
	case int64:
		return Int(val), nil

	case uint:
		return Uint(uint64(val)), nil
	case uint8:
		return Uint(uint64(val)), nil
	case uint16:
		return Uint(uint64(val)), nil
	case uint32:
		return Uint(uint64(val)), nil
	case uint64:
		return Uint(val), nil
	case uintptr:
		return Uint(uint64(val)), nil

	case float64:
		return Float(val), nil
	case float32:
		return Float32(val), nil

	case *string:
		if val == nil {
			return None(), nil
		}
		return Str(*val), nil

	case []string:
		list := make([]Arg, len(val))
		for i, s := range val {
			list[i] = Str(s)
		}
		return List(list...), nil

	case []Arg:
		list := make([]Arg, len(val))
		copy(list, val)
		return List(list...), nil

	case []any:
		list := make([]Arg, 0, len(val))
		for i, elem := range val {
			a, err := from(elem, idx)
			if err != nil {
				return Arg{}, fmt.Errorf("sequence[%d]: %w", i, err)
			}
			list = append(list, a)
		}
		return List(list...), nil

	case map[string]bool:
		entries := make([]MapEntry, 0, len(val))
		for k, on := range val {
			entries = append(entries, MapEntry{Key: k, On: on})
		}
		sortEntries(entries)
		return Map(entries...), nil

	case func() Arg:
		return Lazy(val), nil

	case func() string:
		return Lazy(func() Arg { return Str(val()) }), nil
	}

	// Custom types contribute through fmt.Stringer; concrete shapes
	// above take precedence.
	if s, ok := v.(fmt.Stringer); ok {
		return Str(s.String()), nil
	}

	return Arg{}, &UnsupportedTypeError{Index: idx, Value: v}
}

// sortEntries orders entries by key so that joins over an unordered map
// are reproducible. Insertion sort: entry sets are small.
func sortEntries(entries []MapEntry) {
	for i := 1; i < len(entries); i++ {
		j := i
		for j > 0 && entries[j].Key < entries[j-1].Key {
			entries[j], entries[j-1] = entries[j-1], entries[j]
			j--
		}
	}
}
