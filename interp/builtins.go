package interp

import (
	"github.com/akashmaji946/veureka/ast"
	"github.com/akashmaji946/veureka/builtins"
	"github.com/akashmaji946/veureka/callable"
	"github.com/akashmaji946/veureka/value"
)

// RegisterBuiltins wires the global built-in functions into it, handing
// builtins.Register a callback that reaches back into this
// interpreter's own call boundary so map/filter/reduce can invoke
// user-defined functions exactly like a normal Call expression would.
// Output goes through it.Writer as it stands at each write, so a later
// SetWriter takes effect.
func RegisterBuiltins(it *Interpreter) {
	out := writerFunc(func(p []byte) (int, error) { return it.Writer.Write(p) })
	builtins.Register(it.Global, out, it.Reader, it.callAny)
}

// writerFunc adapts a plain function to io.Writer.
type writerFunc func(p []byte) (int, error)

func (f writerFunc) Write(p []byte) (int, error) { return f(p) }

// callAny is the builtins.Call callback: dispatch by value kind, same
// as evalCall, but without an AST position (builtins call user
// functions on the interpreter's behalf, not at a specific call site).
func (it *Interpreter) callAny(fn value.Value, args []value.Value) value.Value {
	switch f := fn.(type) {
	case *value.NativeFunction:
		return f.Fn(args)
	case *callable.Function:
		return it.callFunction(ast.Pos{}, f, args)
	default:
		return value.Nil{}
	}
}
