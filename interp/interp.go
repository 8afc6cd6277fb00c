// Package interp is the tree-walking evaluator: it turns an *ast.Program
// into side effects and value.Value results over a chain of
// environment.Environment scopes. One struct carries the live
// environment pointer, an output writer, and an input reader; control
// flow (return/break/continue/throw) propagates through a single
// pending-signal slot rather than wrapped result values.
package interp

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/akashmaji946/veureka/ast"
	"github.com/akashmaji946/veureka/callable"
	"github.com/akashmaji946/veureka/environment"
	"github.com/akashmaji946/veureka/value"
)

// SignalKind tags the interpreter's in-flight control signal.
type SignalKind int

const (
	SigNone SignalKind = iota
	SigReturn
	SigBreak
	SigContinue
	SigThrow
)

// Signal is the "at most one in flight" control signal carried on the
// Interpreter. Return and Throw carry a payload value; Break/Continue
// don't.
type Signal struct {
	Kind  SignalKind
	Value value.Value
}

// Interpreter holds all state for one evaluation session: the global
// scope, the currently active scope, the pending signal, and the I/O
// streams builtins read and write.
type Interpreter struct {
	Global  *environment.Environment
	Current *environment.Environment
	Signal  Signal

	Writer io.Writer
	Reader *bufio.Reader

	// includes tracks already-loaded include names so a diamond or
	// cyclic include doesn't re-run a file's top-level effects twice.
	includes map[string]bool
}

// New creates an Interpreter with a fresh global scope, builtins
// registered, stdio as the default streams.
func New() *Interpreter {
	it := &Interpreter{
		Global:   environment.New(nil),
		Writer:   os.Stdout,
		Reader:   bufio.NewReader(os.Stdin),
		includes: make(map[string]bool),
	}
	it.Current = it.Global
	RegisterBuiltins(it)
	return it
}

// SetWriter redirects builtin output (print), useful for tests.
func (it *Interpreter) SetWriter(w io.Writer) { it.Writer = w }

// SetReader redirects builtin input (input), useful for tests.
func (it *Interpreter) SetReader(r io.Reader) { it.Reader.Reset(r) }

// diagnosef writes a `!! `-prefixed runtime diagnostic to stderr,
// annotated with the offending node's source position. Execution
// continues with nil, and no Throw signal is raised.
func (it *Interpreter) diagnosef(pos ast.Pos, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(os.Stderr, "!! [%d:%d] %s\n", pos.Line, pos.Column, msg)
}

// Run evaluates prog in the global scope and returns its last value.
func (it *Interpreter) Run(prog *ast.Program) value.Value {
	return it.evalStatements(prog.Statements)
}

// Eval is the central dispatcher: every AST node kind is routed to its
// handler here via a single big type switch.
func (it *Interpreter) Eval(n ast.Node) value.Value {
	switch node := n.(type) {
	case *ast.Program:
		return it.evalStatements(node.Statements)
	case *ast.Literal:
		return it.evalLiteral(node)
	case *ast.Var:
		return it.evalVar(node)
	case *ast.List:
		return it.evalList(node)
	case *ast.Map:
		return it.evalMap(node)
	case *ast.Fn:
		return it.evalFn(node)
	case *ast.Class:
		return it.evalClass(node)
	case *ast.BinaryOp:
		return it.evalBinaryOp(node)
	case *ast.UnaryOp:
		return it.evalUnaryOp(node)
	case *ast.Increment:
		return it.evalIncrement(node)
	case *ast.Call:
		return it.evalCall(node)
	case *ast.Index:
		return it.evalIndex(node)
	case *ast.Attr:
		return it.evalAttr(node)
	case *ast.AttrAssign:
		return it.evalAttrAssign(node)
	case *ast.New:
		return it.evalNew(node)
	case *ast.Let:
		return it.evalLet(node)
	case *ast.Assign:
		return it.evalAssign(node)
	case *ast.CompoundAssign:
		return it.evalCompoundAssign(node)
	case *ast.Include:
		return it.evalInclude(node)
	case *ast.If:
		return it.evalIf(node)
	case *ast.For:
		return it.evalFor(node)
	case *ast.While:
		return it.evalWhile(node)
	case *ast.Try:
		return it.evalTry(node)
	case *ast.Match:
		return it.evalMatch(node)
	case *ast.Throw:
		return it.evalThrow(node)
	case *ast.Return:
		return it.evalReturn(node)
	case *ast.Break:
		it.Signal = Signal{Kind: SigBreak}
		return value.Nil{}
	case *ast.Continue:
		it.Signal = Signal{Kind: SigContinue}
		return value.Nil{}
	default:
		it.diagnosef(n.Position(), "unhandled node type %T", n)
		return value.Nil{}
	}
}

// evalStatements runs a statement list in order, stopping as soon as a
// signal goes into flight — the single stop condition every block
// (program, function body, if/for/while/try body) shares.
func (it *Interpreter) evalStatements(stmts []ast.Node) value.Value {
	var result value.Value = value.Nil{}
	for _, stmt := range stmts {
		result = it.Eval(stmt)
		if it.Signal.Kind != SigNone {
			return result
		}
	}
	return result
}

// bindFunctionValue wraps an ast.Fn into a runtime *callable.Function
// closing over env.
func bindFunctionValue(fn *ast.Fn, env *environment.Environment) *callable.Function {
	return &callable.Function{Name: fn.Name, Params: fn.Params, Body: fn.Body, Env: env}
}
