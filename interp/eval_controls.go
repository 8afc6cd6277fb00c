package interp

import (
	"github.com/akashmaji946/veureka/ast"
	"github.com/akashmaji946/veureka/environment"
	"github.com/akashmaji946/veureka/value"
)

// evalIf evaluates the condition; if truthy, runs Then, else runs
// Else (another *ast.If for an elif, or *ast.Program for a trailing
// else), if present.
func (it *Interpreter) evalIf(n *ast.If) value.Value {
	cond := it.Eval(n.Cond)
	if it.Signal.Kind != SigNone {
		return value.Nil{}
	}
	if value.Truthy(cond) {
		return it.evalStatements(n.Then)
	}
	if n.Else == nil {
		return value.Nil{}
	}
	return it.Eval(n.Else)
}

// evalFor requires a list iterable; each element runs the body under
// a fresh child environment with the loop variable bound in it. Break
// exits the whole loop; Continue ends the current iteration.
func (it *Interpreter) evalFor(n *ast.For) value.Value {
	iterable := it.Eval(n.Iterable)
	if it.Signal.Kind != SigNone {
		return value.Nil{}
	}
	list, ok := iterable.(*value.List)
	if !ok {
		it.diagnosef(n.P, "for requires a list, got (%s)", iterable.Type())
		return value.Nil{}
	}

	prevCurrent := it.Current
	var result value.Value = value.Nil{}
	for _, elem := range list.Elements {
		iterScope := environment.New(prevCurrent)
		iterScope.Define(n.Var, elem, false)
		it.Current = iterScope

		result = it.evalStatements(n.Body)

		if it.Signal.Kind == SigBreak {
			it.Signal = Signal{}
			break
		}
		if it.Signal.Kind == SigContinue {
			it.Signal = Signal{}
			continue
		}
		if it.Signal.Kind != SigNone {
			break
		}
	}
	it.Current = prevCurrent
	return result
}

// evalWhile re-evaluates Cond before each iteration; same break/
// continue handling as For, but no per-iteration scope.
func (it *Interpreter) evalWhile(n *ast.While) value.Value {
	var result value.Value = value.Nil{}
	for {
		cond := it.Eval(n.Cond)
		if it.Signal.Kind != SigNone {
			return value.Nil{}
		}
		if !value.Truthy(cond) {
			break
		}

		result = it.evalStatements(n.Body)

		if it.Signal.Kind == SigBreak {
			it.Signal = Signal{}
			break
		}
		if it.Signal.Kind == SigContinue {
			it.Signal = Signal{}
			continue
		}
		if it.Signal.Kind != SigNone {
			break
		}
	}
	return result
}

// evalTry runs Body; a Throw inside stops it. If a catch clause is
// present, a child scope binds CatchVar to the thrown value's string
// rendering, the signal is cleared, and Catch runs. Finally always
// runs last regardless of how Body/Catch ended, and a signal raised
// inside Finally overrides whatever was in flight beforehand.
func (it *Interpreter) evalTry(n *ast.Try) value.Value {
	result := it.evalStatements(n.Body)

	if it.Signal.Kind == SigThrow && n.CatchVar != "" {
		thrown := it.Signal.Value
		it.Signal = Signal{}

		prevCurrent := it.Current
		catchScope := environment.New(prevCurrent)
		catchScope.Define(n.CatchVar, value.String(thrown.String()), false)
		it.Current = catchScope

		result = it.evalStatements(n.Catch)
		it.Current = prevCurrent
	}

	if len(n.Finally) > 0 {
		pendingSignal := it.Signal
		it.Signal = Signal{}
		finallyResult := it.evalStatements(n.Finally)
		if it.Signal.Kind == SigNone {
			it.Signal = pendingSignal
		} else {
			result = finallyResult
		}
	}

	return result
}

func (it *Interpreter) evalThrow(n *ast.Throw) value.Value {
	val := it.Eval(n.Value)
	if it.Signal.Kind != SigNone {
		return value.Nil{}
	}
	it.Signal = Signal{Kind: SigThrow, Value: val}
	return value.Nil{}
}

func (it *Interpreter) evalReturn(n *ast.Return) value.Value {
	var val value.Value = value.Nil{}
	if n.Value != nil {
		val = it.Eval(n.Value)
		if it.Signal.Kind != SigNone {
			return value.Nil{}
		}
	}
	it.Signal = Signal{Kind: SigReturn, Value: val}
	return val
}

// evalMatch compares Subject against each case's Pattern in order,
// using the same equality as == (so list, map and object patterns never
// match); the first match (or the nil-Pattern default arm) runs its body. A supplemental construct, absent from the distilled
// grammar but present in the original source.
func (it *Interpreter) evalMatch(n *ast.Match) value.Value {
	subject := it.Eval(n.Subject)
	if it.Signal.Kind != SigNone {
		return value.Nil{}
	}

	for _, c := range n.Cases {
		if c.Pattern == nil {
			return it.evalStatements(c.Body)
		}
		pat := it.Eval(c.Pattern)
		if it.Signal.Kind != SigNone {
			return value.Nil{}
		}
		if valuesEqual(subject, pat) {
			return it.evalStatements(c.Body)
		}
	}
	return value.Nil{}
}
