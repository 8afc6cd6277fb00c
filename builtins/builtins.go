// Package builtins pre-populates an environment.Environment with
// Veureka's global built-in functions: a flat table of named callbacks,
// each wrapped as a value.NativeFunction with a plain
// []value.Value -> value.Value shape, bound in at startup.
package builtins

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/akashmaji946/veureka/callable"
	"github.com/akashmaji946/veureka/environment"
	"github.com/akashmaji946/veureka/value"
)

// Call invokes any Veureka callable value (native or user-defined)
// with args. Built-ins that take a function argument (map, filter,
// reduce) are handed one of these by the interpreter at registration
// time, rather than reimplementing call semantics here — the full
// call boundary (scope creation, Return trapping) belongs to interp,
// which this package cannot import without a cycle.
type Call func(fn value.Value, args []value.Value) value.Value

// Register defines every built-in in global, wiring print/input to w/r
// and higher-order built-ins to call.
func Register(global *environment.Environment, w io.Writer, r *bufio.Reader, call Call) {
	define := func(name string, fn func([]value.Value) value.Value) {
		global.Define(name, &value.NativeFunction{Name: name, Fn: fn}, false)
	}

	define("print", func(args []value.Value) value.Value {
		parts := make([]string, len(args))
		for i, a := range args {
			parts[i] = a.String()
		}
		fmt.Fprintln(w, strings.Join(parts, " "))
		return value.Nil{}
	})

	define("len", func(args []value.Value) value.Value {
		if len(args) != 1 {
			return value.Nil{}
		}
		switch v := args[0].(type) {
		case value.String:
			return value.Number(len(v))
		case *value.List:
			return value.Number(len(v.Elements))
		case *value.Map:
			return value.Number(v.Len())
		default:
			return value.Nil{}
		}
	})

	define("range", rangeBuiltin)

	define("str", func(args []value.Value) value.Value {
		if len(args) != 1 {
			return value.String("")
		}
		return value.String(args[0].String())
	})

	define("int", func(args []value.Value) value.Value {
		if len(args) != 1 {
			return value.Number(0)
		}
		switch v := args[0].(type) {
		case value.Number:
			return value.Number(v.Int())
		case value.String:
			n, err := strconv.ParseInt(strings.TrimSpace(string(v)), 10, 64)
			if err != nil {
				return value.Number(0)
			}
			return value.Number(n)
		default:
			return value.Number(0)
		}
	})

	define("float", func(args []value.Value) value.Value {
		if len(args) != 1 {
			return value.Number(0)
		}
		switch v := args[0].(type) {
		case value.Number:
			return v
		case value.String:
			f, err := strconv.ParseFloat(strings.TrimSpace(string(v)), 64)
			if err != nil {
				return value.Number(0)
			}
			return value.Number(f)
		default:
			return value.Number(0)
		}
	})

	define("type", func(args []value.Value) value.Value {
		if len(args) != 1 {
			return value.String("nil")
		}
		return value.String(typeName(args[0]))
	})

	define("input", func(args []value.Value) value.Value {
		if len(args) >= 1 {
			fmt.Fprint(w, args[0].String())
		}
		line, err := r.ReadString('\n')
		if err != nil && line == "" {
			return value.String("")
		}
		return value.String(strings.TrimRight(line, "\r\n"))
	})

	define("map", func(args []value.Value) value.Value {
		if len(args) != 2 {
			return value.Nil{}
		}
		list, ok := args[0].(*value.List)
		if !ok {
			return value.Nil{}
		}
		out := make([]value.Value, len(list.Elements))
		for i, elem := range list.Elements {
			out[i] = call(args[1], []value.Value{elem})
		}
		return &value.List{Elements: out}
	})

	define("filter", func(args []value.Value) value.Value {
		if len(args) != 2 {
			return value.Nil{}
		}
		list, ok := args[0].(*value.List)
		if !ok {
			return value.Nil{}
		}
		var out []value.Value
		for _, elem := range list.Elements {
			if value.Truthy(call(args[1], []value.Value{elem})) {
				out = append(out, elem)
			}
		}
		return &value.List{Elements: out}
	})

	define("reduce", func(args []value.Value) value.Value { return reduceBuiltin(args, call) })
	define("sum", sumBuiltin)
	define("max", minMaxBuiltin(false))
	define("min", minMaxBuiltin(true))

	define("abs", func(args []value.Value) value.Value {
		if len(args) != 1 {
			return value.Number(0)
		}
		n, ok := args[0].(value.Number)
		if !ok {
			return value.Number(0)
		}
		return value.Number(math.Abs(float64(n)))
	})
}

func typeName(v value.Value) string {
	switch v.(type) {
	case value.Nil:
		return "nil"
	case value.Number:
		return "number"
	case value.String:
		return "string"
	case value.Bool:
		return "bool"
	case *value.List:
		return "list"
	case *value.Map:
		return "map"
	case *callable.Function:
		return "function"
	case *callable.Class:
		return "class"
	case *callable.Instance:
		return "instance"
	case *value.NativeFunction:
		return "native_function"
	default:
		return "nil"
	}
}

func reduceBuiltin(args []value.Value, call Call) value.Value {
	if len(args) < 2 || len(args) > 3 {
		return value.Nil{}
	}
	list, ok := args[0].(*value.List)
	if !ok {
		return value.Nil{}
	}
	elems := list.Elements
	var acc value.Value
	start := 0
	if len(args) == 3 {
		acc = args[2]
	} else {
		if len(elems) == 0 {
			return value.Nil{}
		}
		acc = elems[0]
		start = 1
	}
	for i := start; i < len(elems); i++ {
		acc = call(args[1], []value.Value{acc, elems[i]})
	}
	return acc
}

func sumBuiltin(args []value.Value) value.Value {
	if len(args) != 1 {
		return value.Number(0)
	}
	list, ok := args[0].(*value.List)
	if !ok {
		return value.Number(0)
	}
	var total value.Number
	for _, e := range list.Elements {
		if n, ok := e.(value.Number); ok {
			total += n
		}
	}
	return total
}

func minMaxBuiltin(findMin bool) func([]value.Value) value.Value {
	return func(args []value.Value) value.Value {
		if len(args) != 1 {
			return value.Nil{}
		}
		list, ok := args[0].(*value.List)
		if !ok || len(list.Elements) == 0 {
			return value.Nil{}
		}
		best, ok := list.Elements[0].(value.Number)
		if !ok {
			return value.Nil{}
		}
		for _, e := range list.Elements[1:] {
			n, ok := e.(value.Number)
			if !ok {
				continue
			}
			if (findMin && n < best) || (!findMin && n > best) {
				best = n
			}
		}
		return best
	}
}

// rangeBuiltin implements 1/2/3-arg range with auto-detected direction
// when step is omitted and start >= stop: 1-arg is [0, n); 2-arg is
// [start, stop) ascending; 3-arg honors an explicit step. range(a, b)
// with a >= b and no explicit step defaults to a descending step of -1.
func rangeBuiltin(args []value.Value) value.Value {
	toInt := func(v value.Value) (int64, bool) {
		n, ok := v.(value.Number)
		if !ok {
			return 0, false
		}
		return n.Int(), true
	}

	var start, stop, step int64
	switch len(args) {
	case 1:
		n, ok := toInt(args[0])
		if !ok {
			return value.Nil{}
		}
		start, stop, step = 0, n, 1
	case 2:
		a, ok1 := toInt(args[0])
		b, ok2 := toInt(args[1])
		if !ok1 || !ok2 {
			return value.Nil{}
		}
		start, stop = a, b
		if start >= stop {
			step = -1
		} else {
			step = 1
		}
	case 3:
		a, ok1 := toInt(args[0])
		b, ok2 := toInt(args[1])
		s, ok3 := toInt(args[2])
		if !ok1 || !ok2 || !ok3 || s == 0 {
			return value.Nil{}
		}
		start, stop, step = a, b, s
	default:
		return value.Nil{}
	}

	var out []value.Value
	if step > 0 {
		for i := start; i < stop; i += step {
			out = append(out, value.Number(i))
		}
	} else {
		for i := start; i > stop; i += step {
			out = append(out, value.Number(i))
		}
	}
	return &value.List{Elements: out}
}
