package clsx

import (
	"strconv"
	"strings"
)

// Join assembles one space-separated class string from args, resolved
// left to right, depth first. Falsy and empty arguments are discarded:
// the result never has a leading or trailing space, never has two
// spaces in a row, and never contains an empty token. Zero arguments,
// or arguments that all resolve to nothing, yield "".
func Join(args ...Arg) string {
	a := appender{}
	// Rough capacity guess; correctness never depends on it.
	a.sb.Grow(len(args) * 8)
	for i := range args {
		a.append(args[i])
	}
	return a.sb.String()
}

// appender owns the output buffer for a single Join call.
type appender struct {
	sb      strings.Builder
	scratch [24]byte // staging for strconv.Append*; long tokens spill to a fresh slice
}

// append resolves one argument, recursing into containers. Exhaustive
// over Kind so no shape is silently skipped.
func (a *appender) append(arg Arg) {
	switch arg.kind {
	case KindEmpty, KindNone, KindBool:
		// Nothing to contribute.

	case KindText:
		a.push(arg.strVal)

	case KindInt:
		a.sep()
		a.sb.Write(strconv.AppendInt(a.scratch[:0], arg.intVal, 10))

	case KindUint:
		a.sep()
		a.sb.Write(strconv.AppendUint(a.scratch[:0], arg.uintVal, 10))

	case KindFloat:
		a.sep()
		a.sb.Write(strconv.AppendFloat(a.scratch[:0], arg.floatVal, 'f', -1, arg.floatBits))

	case KindSome:
		if arg.inner != nil {
			a.append(*arg.inner)
		}

	case KindList:
		for i := range arg.list {
			a.append(arg.list[i])
		}

	case KindMap:
		for _, e := range arg.entries {
			if e.On {
				a.push(e.Key)
			}
		}

	case KindIf:
		if arg.boolVal {
			a.push(arg.strVal)
		}

	case KindLazy:
		if arg.fn != nil {
			a.append(arg.fn())
		}
	}
}

// push appends one token, separated from any earlier content by a
// single space. Empty tokens are dropped, which keeps mapping entries
// with empty keys and blank conditional names out of the result.
func (a *appender) push(token string) {
	if token == "" {
		return
	}
	a.sep()
	a.sb.WriteString(token)
}

// sep writes the separating space when the buffer already holds content.
func (a *appender) sep() {
	if a.sb.Len() > 0 {
		a.sb.WriteByte(' ')
	}
}
