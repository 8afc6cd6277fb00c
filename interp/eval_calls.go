package interp

import (
	"github.com/akashmaji946/veureka/ast"
	"github.com/akashmaji946/veureka/callable"
	"github.com/akashmaji946/veureka/environment"
	"github.com/akashmaji946/veureka/value"
)

// evalCall evaluates the callee and arguments, then dispatches by
// callee kind: NativeFunction, a user *callable.Function (already
// bound if it came off a method access), or anything else is an
// error.
func (it *Interpreter) evalCall(n *ast.Call) value.Value {
	callee := it.Eval(n.Callee)
	if it.Signal.Kind != SigNone {
		return value.Nil{}
	}

	args := make([]value.Value, 0, len(n.Args))
	for _, a := range n.Args {
		v := it.Eval(a)
		if it.Signal.Kind != SigNone {
			return value.Nil{}
		}
		args = append(args, v)
	}

	switch fn := callee.(type) {
	case *value.NativeFunction:
		return fn.Fn(args)
	case *callable.Function:
		return it.callFunction(n.P, fn, args)
	default:
		it.diagnosef(n.P, "object is not callable: (%s)", callee.Type())
		return value.Nil{}
	}
}

// callFunction binds args positionally into a child of fn's captured
// environment, runs the body, and traps a Return signal, surfacing its
// value. Extra arguments are ignored; missing ones are left unbound
// (referencing them yields nil plus a diagnostic, same as any
// undefined variable).
func (it *Interpreter) callFunction(pos ast.Pos, fn *callable.Function, args []value.Value) value.Value {
	callScope := environment.New(fn.Env)
	for i, param := range fn.Params {
		if i < len(args) {
			callScope.Define(param, args[i], false)
		}
	}

	prevCurrent := it.Current
	it.Current = callScope
	result := it.evalStatements(fn.Body)
	it.Current = prevCurrent

	if it.Signal.Kind == SigReturn {
		result = it.Signal.Value
		it.Signal = Signal{}
	}
	return result
}

// evalNew allocates an instance of the named class and, if it defines
// __init__, binds self and invokes it with the constructor args. The
// instance is returned even if __init__ raised or threw.
func (it *Interpreter) evalNew(n *ast.New) value.Value {
	clsVal, ok := it.Current.Get(n.Class)
	if !ok {
		it.diagnosef(n.P, "undefined class %q", n.Class)
		return value.Nil{}
	}
	cls, ok := clsVal.(*callable.Class)
	if !ok {
		it.diagnosef(n.P, "%q is not a class", n.Class)
		return value.Nil{}
	}

	inst := &callable.Instance{Class: cls}

	if ctor, has := cls.Method("__init__"); has {
		args := make([]value.Value, 0, len(n.Args))
		for _, a := range n.Args {
			v := it.Eval(a)
			if it.Signal.Kind != SigNone {
				return inst
			}
			args = append(args, v)
		}
		bound := ctor.Bind(inst)
		it.callFunction(n.P, bound, args)
		if it.Signal.Kind == SigThrow {
			it.Signal = Signal{}
		}
	}
	return inst
}

// evalAttr reads a field if the instance has one, else binds and
// returns a fresh method closure.
func (it *Interpreter) evalAttr(n *ast.Attr) value.Value {
	obj := it.Eval(n.Object)
	if it.Signal.Kind != SigNone {
		return value.Nil{}
	}
	inst, ok := obj.(*callable.Instance)
	if !ok {
		it.diagnosef(n.P, "cannot access .%s on (%s)", n.Name, obj.Type())
		return value.Nil{}
	}
	if field, ok := inst.GetField(n.Name); ok {
		return field
	}
	if method, ok := inst.Class.Method(n.Name); ok {
		return method.Bind(inst)
	}
	it.diagnosef(n.P, "no field or method %q on instance of %s", n.Name, inst.Class.Name)
	return value.Nil{}
}

// evalAttrAssign overwrites an existing field or appends a new one.
func (it *Interpreter) evalAttrAssign(n *ast.AttrAssign) value.Value {
	obj := it.Eval(n.Object)
	if it.Signal.Kind != SigNone {
		return value.Nil{}
	}
	inst, ok := obj.(*callable.Instance)
	if !ok {
		it.diagnosef(n.P, "cannot assign .%s on (%s)", n.Name, obj.Type())
		return value.Nil{}
	}
	val := it.Eval(n.Value)
	if it.Signal.Kind != SigNone {
		return value.Nil{}
	}
	inst.SetField(n.Name, val)
	return val
}

// evalIndex implements `obj[idx]`: integer index into a list (out of
// range yields nil), or stringified-key lookup into a map.
func (it *Interpreter) evalIndex(n *ast.Index) value.Value {
	obj := it.Eval(n.Object)
	if it.Signal.Kind != SigNone {
		return value.Nil{}
	}
	idx := it.Eval(n.Index)
	if it.Signal.Kind != SigNone {
		return value.Nil{}
	}

	switch o := obj.(type) {
	case *value.List:
		num, ok := idx.(value.Number)
		if !ok {
			it.diagnosef(n.P, "list index must be a number, got (%s)", idx.Type())
			return value.Nil{}
		}
		i := num.Int()
		if i < 0 || i >= int64(len(o.Elements)) {
			return value.Nil{}
		}
		return o.Elements[i]
	case value.String:
		num, ok := idx.(value.Number)
		if !ok {
			it.diagnosef(n.P, "string index must be a number, got (%s)", idx.Type())
			return value.Nil{}
		}
		runes := []rune(string(o))
		i := num.Int()
		if i < 0 || i >= int64(len(runes)) {
			return value.Nil{}
		}
		return value.String(runes[i])
	case *value.Map:
		return o.Get(idx.String())
	default:
		it.diagnosef(n.P, "cannot index (%s)", obj.Type())
		return value.Nil{}
	}
}
