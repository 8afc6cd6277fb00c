package interp

import (
	"github.com/akashmaji946/veureka/ast"
	"github.com/akashmaji946/veureka/callable"
	"github.com/akashmaji946/veureka/value"
)

func (it *Interpreter) evalLiteral(n *ast.Literal) value.Value {
	switch n.Kind {
	case ast.LitNumber:
		return value.Number(n.Number)
	case ast.LitString:
		return value.String(n.Str)
	case ast.LitBool:
		return value.Bool(n.Bool)
	default:
		return value.Nil{}
	}
}

func (it *Interpreter) evalVar(n *ast.Var) value.Value {
	if v, ok := it.Current.Get(n.Name); ok {
		return v
	}
	it.diagnosef(n.P, "undefined variable %q", n.Name)
	return value.Nil{}
}

func (it *Interpreter) evalList(n *ast.List) value.Value {
	elems := make([]value.Value, 0, len(n.Elements))
	for _, e := range n.Elements {
		v := it.Eval(e)
		if it.Signal.Kind != SigNone {
			return value.Nil{}
		}
		elems = append(elems, v)
	}
	return &value.List{Elements: elems}
}

func (it *Interpreter) evalMap(n *ast.Map) value.Value {
	m := value.NewMap()
	for _, entry := range n.Entries {
		v := it.Eval(entry.Value)
		if it.Signal.Kind != SigNone {
			return value.Nil{}
		}
		m.Set(entry.Key, v)
	}
	return m
}

// evalFn evaluates a function literal/declaration. A named Fn also
// defines itself in the current scope, wherever it appears (so
// `fn f(...) ... end` at top level both produces and binds the
// function); an anonymous one just produces the closure value.
func (it *Interpreter) evalFn(n *ast.Fn) value.Value {
	fn := bindFunctionValue(n, it.Current)
	if n.Name != "" {
		it.Current.Define(n.Name, fn, false)
	}
	return fn
}

func (it *Interpreter) evalClass(n *ast.Class) value.Value {
	methods := make([]callable.Method, 0, len(n.Methods))
	for _, m := range n.Methods {
		methods = append(methods, callable.Method{Name: m.Name, Fn: bindFunctionValue(m, it.Current)})
	}
	cls := &callable.Class{Name: n.Name, Methods: methods}
	it.Current.Define(n.Name, cls, false)
	return cls
}
