package interp

import (
	"math"

	"github.com/akashmaji946/veureka/ast"
	"github.com/akashmaji946/veureka/value"
)

// evalBinaryOp implements the arithmetic/comparison/bitwise/logical
// operator table. and/or evaluate both sides (no short-circuit
// guarantee required) and return a bool of the truthiness conjunction/
// disjunction, never the original operand.
func (it *Interpreter) evalBinaryOp(n *ast.BinaryOp) value.Value {
	if n.Op == "and" || n.Op == "or" {
		left := it.Eval(n.Left)
		if it.Signal.Kind != SigNone {
			return value.Nil{}
		}
		right := it.Eval(n.Right)
		if it.Signal.Kind != SigNone {
			return value.Nil{}
		}
		if n.Op == "and" {
			return value.Bool(value.Truthy(left) && value.Truthy(right))
		}
		return value.Bool(value.Truthy(left) || value.Truthy(right))
	}

	left := it.Eval(n.Left)
	if it.Signal.Kind != SigNone {
		return value.Nil{}
	}
	right := it.Eval(n.Right)
	if it.Signal.Kind != SigNone {
		return value.Nil{}
	}

	switch n.Op {
	case "+":
		return it.applyPlus(n.P, left, right)
	case "-", "*", "/", "%", "**":
		return it.applyArith(n.P, n.Op, left, right)
	case "==":
		return value.Bool(valuesEqual(left, right))
	case "!=":
		return value.Bool(!valuesEqual(left, right))
	case "<", "<=", ">", ">=":
		return it.applyCompare(n.P, n.Op, left, right)
	case "&", "|", "^":
		return it.applyBitwise(n.P, n.Op, left, right)
	default:
		it.diagnosef(n.P, "unknown operator %q", n.Op)
		return value.Nil{}
	}
}

// applyPlus implements the overloaded `+`: string concat if either side
// is a string, list concat if both are lists, list append/prepend if
// exactly one side is a list, else numeric add. Shared between binary
// `+` and `+=` compound assignment.
func (it *Interpreter) applyPlus(pos ast.Pos, left, right value.Value) value.Value {
	if _, ok := left.(value.String); ok {
		return value.String(left.String() + stringify(right))
	}
	if _, ok := right.(value.String); ok {
		return value.String(stringify(left) + right.String())
	}
	ll, lIsList := left.(*value.List)
	rl, rIsList := right.(*value.List)
	switch {
	case lIsList && rIsList:
		elems := make([]value.Value, 0, len(ll.Elements)+len(rl.Elements))
		elems = append(elems, ll.Elements...)
		elems = append(elems, rl.Elements...)
		return &value.List{Elements: elems}
	case lIsList:
		return &value.List{Elements: append(append([]value.Value{}, ll.Elements...), right)}
	case rIsList:
		return &value.List{Elements: append([]value.Value{left}, rl.Elements...)}
	}
	ln, lok := left.(value.Number)
	rn, rok := right.(value.Number)
	if !lok || !rok {
		it.diagnosef(pos, "operator %q not implemented for (%s) and (%s)", "+", left.Type(), right.Type())
		return value.Nil{}
	}
	return ln + rn
}

// applyArith is shared between binary -, *, /, %, ** and their -=, *=,
// /= compound-assignment forms.
func (it *Interpreter) applyArith(pos ast.Pos, op string, left, right value.Value) value.Value {
	ln, lok := left.(value.Number)
	rn, rok := right.(value.Number)
	if !lok || !rok {
		it.diagnosef(pos, "operator %q not implemented for (%s) and (%s)", op, left.Type(), right.Type())
		return value.Nil{}
	}
	switch op {
	case "-":
		return ln - rn
	case "*":
		return ln * rn
	case "/":
		if rn == 0 {
			it.diagnosef(pos, "division by zero")
			return value.Number(0)
		}
		return ln / rn
	case "%":
		r := rn.Int()
		if r == 0 {
			it.diagnosef(pos, "modulo by zero")
			return value.Number(0)
		}
		return value.Number(ln.Int() % r)
	case "**":
		return value.Number(math.Pow(float64(ln), float64(rn)))
	}
	return value.Nil{}
}

// applyCompare requires both sides to be numbers. Operands of any other
// type are not converted: the pair is diagnosed and the result is false.
func (it *Interpreter) applyCompare(pos ast.Pos, op string, left, right value.Value) value.Value {
	ln, lok := left.(value.Number)
	rn, rok := right.(value.Number)
	if !lok || !rok {
		it.diagnosef(pos, "operator %q not implemented for (%s) and (%s)", op, left.Type(), right.Type())
		return value.Bool(false)
	}
	switch op {
	case "<":
		return value.Bool(ln < rn)
	case "<=":
		return value.Bool(ln <= rn)
	case ">":
		return value.Bool(ln > rn)
	case ">=":
		return value.Bool(ln >= rn)
	}
	return value.Bool(false)
}

func (it *Interpreter) applyBitwise(pos ast.Pos, op string, left, right value.Value) value.Value {
	ln, lok := left.(value.Number)
	rn, rok := right.(value.Number)
	if !lok || !rok {
		it.diagnosef(pos, "operator %q not implemented for (%s) and (%s)", op, left.Type(), right.Type())
		return value.Nil{}
	}
	switch op {
	case "&":
		return value.Number(ln.Int() & rn.Int())
	case "|":
		return value.Number(ln.Int() | rn.Int())
	case "^":
		return value.Number(ln.Int() ^ rn.Int())
	}
	return value.Nil{}
}

// valuesEqual requires matching types: number/number, string/string,
// bool/bool, nil/nil. Cross-type comparisons are false.
func valuesEqual(left, right value.Value) bool {
	switch l := left.(type) {
	case value.Number:
		r, ok := right.(value.Number)
		return ok && l == r
	case value.String:
		r, ok := right.(value.String)
		return ok && l == r
	case value.Bool:
		r, ok := right.(value.Bool)
		return ok && l == r
	case value.Nil:
		_, ok := right.(value.Nil)
		return ok
	default:
		return false
	}
}

// stringify renders a value the way print/`+` concatenation expects:
// the value's own String(), unquoted even for strings.
func stringify(v value.Value) string { return v.String() }

// applyCompound dispatches a compound-assignment operator (the base
// arithmetic op, with CompoundAssign.Op already stripped of its `=`
// by the parser) to the same plus/arith logic binary operators use.
func (it *Interpreter) applyCompound(pos ast.Pos, op string, left, right value.Value) value.Value {
	if op == "+" {
		return it.applyPlus(pos, left, right)
	}
	return it.applyArith(pos, op, left, right)
}

func (it *Interpreter) evalUnaryOp(n *ast.UnaryOp) value.Value {
	operand := it.Eval(n.Operand)
	if it.Signal.Kind != SigNone {
		return value.Nil{}
	}
	switch n.Op {
	case "-":
		num, ok := operand.(value.Number)
		if !ok {
			it.diagnosef(n.P, "unary - not implemented for (%s)", operand.Type())
			return value.Nil{}
		}
		return -num
	case "not":
		return value.Bool(!value.Truthy(operand))
	case "~":
		num, ok := operand.(value.Number)
		if !ok {
			it.diagnosef(n.P, "unary ~ not implemented for (%s)", operand.Type())
			return value.Nil{}
		}
		return value.Number(^num.Int())
	default:
		it.diagnosef(n.P, "unknown unary operator %q", n.Op)
		return value.Nil{}
	}
}
