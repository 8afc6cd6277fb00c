package interp

import (
	"os"

	"github.com/akashmaji946/veureka/ast"
	"github.com/akashmaji946/veureka/parser"
	"github.com/akashmaji946/veureka/source"
	"github.com/akashmaji946/veureka/value"
)

// evalLet defines Name in the current frame, optionally as const.
// Definition always shadows any outer binding with the same name.
func (it *Interpreter) evalLet(n *ast.Let) value.Value {
	val := it.Eval(n.Value)
	if it.Signal.Kind != SigNone {
		return value.Nil{}
	}
	it.Current.Define(n.Name, val, n.Const)
	return val
}

// evalAssign mutates the nearest enclosing binding for Name, defining a
// new one in the current frame if none exists. Writing to a const
// binding is diagnosed and leaves it unchanged.
func (it *Interpreter) evalAssign(n *ast.Assign) value.Value {
	val := it.Eval(n.Value)
	if it.Signal.Kind != SigNone {
		return value.Nil{}
	}
	if err := it.Current.Assign(n.Name, val); err != nil {
		it.diagnosef(n.P, "%s", err.Error())
	}
	return val
}

func (it *Interpreter) evalCompoundAssign(n *ast.CompoundAssign) value.Value {
	cur, ok := it.Current.Get(n.Name)
	if !ok {
		it.diagnosef(n.P, "undefined variable %q", n.Name)
		return value.Nil{}
	}
	rhs := it.Eval(n.Value)
	if it.Signal.Kind != SigNone {
		return value.Nil{}
	}
	result := it.applyCompound(n.P, n.Op, cur, rhs)
	if err := it.Current.Assign(n.Name, result); err != nil {
		it.diagnosef(n.P, "%s", err.Error())
	}
	return result
}

// evalIncrement reads Name's current number value, applies ++/--, and
// writes the result back. Prefix forms yield the new value; postfix
// forms yield the old one.
func (it *Interpreter) evalIncrement(n *ast.Increment) value.Value {
	cur, ok := it.Current.Get(n.Name)
	if !ok {
		it.diagnosef(n.P, "undefined variable %q", n.Name)
		return value.Nil{}
	}
	num, ok := cur.(value.Number)
	if !ok {
		it.diagnosef(n.P, "%s not implemented for (%s)", n.Op, cur.Type())
		return cur
	}
	next := num + 1
	if n.Op == "--" {
		next = num - 1
	}
	if err := it.Current.Assign(n.Name, next); err != nil {
		it.diagnosef(n.P, "%s", err.Error())
		return cur
	}
	if n.Postfix {
		return num
	}
	return next
}

// evalInclude loads <name>.ver (falling back to lib/<name>.ver),
// parses it, and evaluates it in the global environment — never the
// current one. A missing file is diagnosed and execution continues.
func (it *Interpreter) evalInclude(n *ast.Include) value.Value {
	if it.includes[n.Name] {
		return value.Nil{}
	}
	src, err := source.Load(n.Name)
	if err != nil {
		it.diagnosef(n.P, "include %q: %s", n.Name, err)
		return value.Nil{}
	}
	it.includes[n.Name] = true

	p := parser.New(src)
	prog := p.Parse()
	if p.HasErrors() {
		for _, e := range p.Errors {
			os.Stderr.WriteString("!! " + e + "\n")
		}
		return value.Nil{}
	}

	prevCurrent := it.Current
	it.Current = it.Global
	result := it.evalStatements(prog.Statements)
	it.Current = prevCurrent
	return result
}
