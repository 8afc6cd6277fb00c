// Package value defines Veureka's runtime value model: the tagged union
// of values an evaluated program can produce.
package value

import (
	"fmt"
	"strconv"
	"strings"
)

// Value is implemented by every Veureka runtime value.
type Value interface {
	// Type is one of the ten documented type-name strings.
	Type() string
	// String is the human-readable rendering used by print/str/concat.
	String() string
}

// Truthy reports whether v counts as true in a boolean context. nil is
// the only falsy value besides false, numeric zero, the empty string,
// and the empty list; everything else is truthy.
func Truthy(v Value) bool {
	switch x := v.(type) {
	case Nil:
		return false
	case Bool:
		return bool(x)
	case Number:
		return float64(x) != 0
	case String:
		return string(x) != ""
	case *List:
		return len(x.Elements) != 0
	default:
		return true
	}
}

// Nil is Veureka's null value.
type Nil struct{}

func (Nil) Type() string   { return "nil" }
func (Nil) String() string { return "nil" }

// Number is an IEEE-754 double; integer-flavored operations (%, bitwise,
// indexing) truncate toward zero at the point of use.
type Number float64

func (Number) Type() string { return "number" }
func (n Number) String() string {
	f := float64(n)
	if f == float64(int64(f)) {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// Int truncates n toward zero, for %, bitwise ops, and indexing.
func (n Number) Int() int64 { return int64(n) }

// String is a Veureka string value.
type String string

func (String) Type() string   { return "string" }
func (s String) String() string { return string(s) }

// Bool is a Veureka boolean value.
type Bool bool

func (Bool) Type() string     { return "bool" }
func (b Bool) String() string { return strconv.FormatBool(bool(b)) }

// List is an ordered, mutable sequence of Values.
type List struct {
	Elements []Value
}

func NewList(elems ...Value) *List { return &List{Elements: elems} }

func (*List) Type() string { return "list" }
func (l *List) String() string {
	parts := make([]string, len(l.Elements))
	for i, e := range l.Elements {
		parts[i] = displayOf(e)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// displayOf renders an element the way it would appear inside a list or
// map literal: strings are quoted, everything else uses its own String.
func displayOf(v Value) string {
	if s, ok := v.(String); ok {
		return fmt.Sprintf("%q", string(s))
	}
	return v.String()
}

// NativeFunction is a host-provided callback registered as a built-in.
type NativeFunction struct {
	Name string
	Fn   func(args []Value) Value
}

func (*NativeFunction) Type() string     { return "native_function" }
func (n *NativeFunction) String() string { return fmt.Sprintf("<native_function %s>", n.Name) }
