package parser

import (
	"testing"

	"github.com/akashmaji946/veureka/ast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseOne(t *testing.T, src string) ast.Node {
	t.Helper()
	p := New(src)
	prog := p.Parse()
	require.False(t, p.HasErrors(), "unexpected parse errors for %q: %v", src, p.Errors)
	require.Len(t, prog.Statements, 1, "expected exactly one statement for %q", src)
	return prog.Statements[0]
}

func TestParser_BinaryPrecedence(t *testing.T) {
	stmt := parseOne(t, "1 + 2 * 3")
	bin, ok := stmt.(*ast.BinaryOp)
	require.True(t, ok)
	assert.Equal(t, "+", bin.Op)

	right, ok := bin.Right.(*ast.BinaryOp)
	require.True(t, ok)
	assert.Equal(t, "*", right.Op)
}

func TestParser_PowerIsRightAssociative(t *testing.T) {
	// 2 ** 3 ** 2 should parse as 2 ** (3 ** 2), not (2 ** 3) ** 2.
	stmt := parseOne(t, "2 ** 3 ** 2")
	outer, ok := stmt.(*ast.BinaryOp)
	require.True(t, ok)
	assert.Equal(t, "**", outer.Op)

	left, ok := outer.Left.(*ast.Literal)
	require.True(t, ok)
	assert.Equal(t, float64(2), left.Number)

	right, ok := outer.Right.(*ast.BinaryOp)
	require.True(t, ok)
	assert.Equal(t, "**", right.Op)
}

func TestParser_GroupedExpression(t *testing.T) {
	stmt := parseOne(t, "(1 + 2) * 3")
	bin, ok := stmt.(*ast.BinaryOp)
	require.True(t, ok)
	assert.Equal(t, "*", bin.Op)
	_, ok = bin.Left.(*ast.BinaryOp)
	assert.True(t, ok, "left side should still be the grouped addition")
}

func TestParser_LetAndConst(t *testing.T) {
	stmt := parseOne(t, "let x = 1")
	let, ok := stmt.(*ast.Let)
	require.True(t, ok)
	assert.Equal(t, "x", let.Name)
	assert.False(t, let.Const)

	stmt = parseOne(t, "const K = 1")
	let, ok = stmt.(*ast.Let)
	require.True(t, ok)
	assert.True(t, let.Const)
}

func TestParser_IfElifElseDesugarsToNestedIf(t *testing.T) {
	src := "if a\nprint(1)\nelif b\nprint(2)\nelse\nprint(3)\nend"
	stmt := parseOne(t, src)
	outer, ok := stmt.(*ast.If)
	require.True(t, ok)

	elif, ok := outer.Else.(*ast.If)
	require.True(t, ok, "elif should desugar to a nested If")

	elseBlock, ok := elif.Else.(*ast.Program)
	require.True(t, ok, "trailing else should be a Program")
	assert.Len(t, elseBlock.Statements, 1)
}

func TestParser_ForLoop(t *testing.T) {
	stmt := parseOne(t, "for i in range(3)\nprint(i)\nend")
	forNode, ok := stmt.(*ast.For)
	require.True(t, ok)
	assert.Equal(t, "i", forNode.Var)
	assert.Len(t, forNode.Body, 1)
}

func TestParser_TryCatchFinallyAsThreeLists(t *testing.T) {
	src := "try\nthrow \"e\"\ncatch err\nprint(err)\nfinally\nprint(\"done\")\nend"
	stmt := parseOne(t, src)
	tryNode, ok := stmt.(*ast.Try)
	require.True(t, ok)
	assert.Equal(t, "err", tryNode.CatchVar)
	assert.Len(t, tryNode.Body, 1)
	assert.Len(t, tryNode.Catch, 1)
	assert.Len(t, tryNode.Finally, 1)
}

func TestParser_FunctionLiteralBlockForm(t *testing.T) {
	stmt := parseOne(t, "fn add(a, b)\nreturn a + b\nend")
	fn, ok := stmt.(*ast.Fn)
	require.True(t, ok)
	assert.Equal(t, "add", fn.Name)
	assert.Equal(t, []string{"a", "b"}, fn.Params)
	assert.Len(t, fn.Body, 1)
}

func TestParser_FunctionLiteralArrowForm(t *testing.T) {
	stmt := parseOne(t, "fn(n) => n * n")
	fn, ok := stmt.(*ast.Fn)
	require.True(t, ok)
	require.Len(t, fn.Body, 1)
	_, ok = fn.Body[0].(*ast.Return)
	assert.True(t, ok, "arrow form should wrap the expression in a Return")
}

func TestParser_ClassWithMethods(t *testing.T) {
	src := "class P\nfn __init__(n) self.n = n end\nfn g() return self.n end\nend"
	stmt := parseOne(t, src)
	cls, ok := stmt.(*ast.Class)
	require.True(t, ok)
	assert.Equal(t, "P", cls.Name)
	require.Len(t, cls.Methods, 2)
	assert.Equal(t, "__init__", cls.Methods[0].Name)
	assert.Equal(t, "g", cls.Methods[1].Name)
}

func TestParser_AssignmentAndCompoundAssignment(t *testing.T) {
	stmt := parseOne(t, "x = 1")
	assign, ok := stmt.(*ast.Assign)
	require.True(t, ok)
	assert.Equal(t, "x", assign.Name)

	stmt = parseOne(t, "x += 1")
	compound, ok := stmt.(*ast.CompoundAssign)
	require.True(t, ok)
	assert.Equal(t, "x", compound.Name)
	assert.Equal(t, "+", compound.Op)
}

func TestParser_ListAndMapLiterals(t *testing.T) {
	stmt := parseOne(t, "[1, 2, 3]")
	list, ok := stmt.(*ast.List)
	require.True(t, ok)
	assert.Len(t, list.Elements, 3)

	stmt = parseOne(t, "{a: 1, b: 2}")
	m, ok := stmt.(*ast.Map)
	require.True(t, ok)
	require.Len(t, m.Entries, 2)
	assert.Equal(t, "a", m.Entries[0].Key)
	assert.Equal(t, "b", m.Entries[1].Key)
}

func TestParser_MatchStatement(t *testing.T) {
	src := "match n\ncase 0\nprint(\"zero\")\ncase 1\nprint(\"one\")\nelse\nprint(\"many\")\nend"
	stmt := parseOne(t, src)
	m, ok := stmt.(*ast.Match)
	require.True(t, ok)
	require.Len(t, m.Cases, 3)
	assert.NotNil(t, m.Cases[0].Pattern)
	assert.Nil(t, m.Cases[2].Pattern, "the trailing else arm has no pattern")
}

func TestParser_IncludeStatement(t *testing.T) {
	stmt := parseOne(t, `include "util"`)
	inc, ok := stmt.(*ast.Include)
	require.True(t, ok)
	assert.Equal(t, "util", inc.Name)
}

func TestParser_PostfixAndPrefixIncrement(t *testing.T) {
	stmt := parseOne(t, "i++")
	inc, ok := stmt.(*ast.Increment)
	require.True(t, ok)
	assert.True(t, inc.Postfix)
	assert.Equal(t, "++", inc.Op)

	stmt = parseOne(t, "--i")
	inc, ok = stmt.(*ast.Increment)
	require.True(t, ok)
	assert.False(t, inc.Postfix)
	assert.Equal(t, "--", inc.Op)
}

func TestParser_UnrecognizedTokenCollectsError(t *testing.T) {
	p := New("let = 1")
	p.Parse()
	assert.True(t, p.HasErrors())
}
