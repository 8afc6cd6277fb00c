package interp

import (
	"bytes"
	"testing"

	"github.com/akashmaji946/veureka/parser"
	"github.com/akashmaji946/veureka/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runSource parses and evaluates src against a fresh interpreter, capturing
// anything written to stdout via print.
func runSource(t *testing.T, src string) (value.Value, string) {
	t.Helper()
	p := parser.New(src)
	prog := p.Parse()
	require.False(t, p.HasErrors(), "parse errors: %v", p.Errors)

	var out bytes.Buffer
	it := New()
	it.SetWriter(&out)
	result := it.Run(prog)
	return result, out.String()
}

func TestInterp_Arithmetic(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
	}{
		{"1 + 1", 2},
		{"2 * 15", 30},
		{"15 / 3", 5},
		{"1 + 2 * 3", 7},
		{"(1 + 2) * 3", 9},
		{"2 ** 10", 1024},
		{"7 % 3", 1},
		{"-5 + 2", -3},
	}
	for _, tt := range tests {
		result, _ := runSource(t, tt.input)
		num, ok := result.(value.Number)
		require.True(t, ok, "input %q: expected number, got %T", tt.input, result)
		assert.Equal(t, tt.expected, float64(num), "input: %q", tt.input)
	}
}

func TestInterp_StringConcat(t *testing.T) {
	result, _ := runSource(t, `"caught " + "bad"`)
	assert.Equal(t, value.String("caught bad"), result)
}

// A closure captures an enclosing let-binding.
func TestInterp_ClosureCapture(t *testing.T) {
	_, out := runSource(t, "let x = 10\nfn f() => x + 1\nprint(f())\n")
	assert.Equal(t, "11\n", out)
}

// Scenario 2: map() over a list with a lambda.
func TestInterp_MapBuiltin(t *testing.T) {
	_, out := runSource(t, "let a = [1, 2, 3]\nprint(map(a, fn(n) => n * n))\n")
	assert.Equal(t, "[1, 4, 9]\n", out)
}

// Scenario 3: straightforward recursion.
func TestInterp_Recursion(t *testing.T) {
	src := "fn fib(n)\n" +
		"  if n < 2 return n end\n" +
		"  return fib(n - 1) + fib(n - 2)\n" +
		"end\n" +
		"print(fib(10))\n"
	_, out := runSource(t, src)
	assert.Equal(t, "55\n", out)
}

// Scenario 4: classes, __init__, self, method binding.
func TestInterp_ClassesAndMethods(t *testing.T) {
	src := "class P\n" +
		"  fn __init__(n) self.n = n end\n" +
		"  fn g() return self.n end\n" +
		"end\n" +
		"let p = new P(7)\n" +
		"print(p.g())\n"
	_, out := runSource(t, src)
	assert.Equal(t, "7\n", out)
}

// Scenario 5: try/catch, thrown value bound by name.
func TestInterp_TryCatch(t *testing.T) {
	src := `try throw "bad" catch e print("caught " + e) end` + "\n"
	_, out := runSource(t, src)
	assert.Equal(t, "caught bad\n", out)
}

// Scenario 6: const assignment is diagnosed and the binding is unchanged.
func TestInterp_ConstViolationLeavesBindingUnchanged(t *testing.T) {
	src := "const K = 1\nK = 2\nprint(K)\n"
	_, out := runSource(t, src)
	assert.Equal(t, "1\n", out)
}

// Scenario 7: range direction auto-detected when step is omitted.
func TestInterp_RangeDirection(t *testing.T) {
	_, out := runSource(t, "for i in range(3) print(i) end\n")
	assert.Equal(t, "0\n1\n2\n", out)

	_, out = runSource(t, "for i in range(3, 0) print(i) end\n")
	assert.Equal(t, "3\n2\n1\n", out)
}

func TestInterp_WhileLoopWithBreakAndContinue(t *testing.T) {
	src := "let i = 0\n" +
		"let total = 0\n" +
		"while i < 10\n" +
		"  i = i + 1\n" +
		"  if i == 5 break end\n" +
		"  if i % 2 == 0 continue end\n" +
		"  total = total + i\n" +
		"end\n" +
		"print(total)\n"
	_, out := runSource(t, src)
	assert.Equal(t, "4\n", out) // i reaches 1 and 3 before breaking at i == 5
}

func TestInterp_TryFinallyAlwaysRuns(t *testing.T) {
	src := "try\n" +
		"  throw \"oops\"\n" +
		"catch e\n" +
		"  print(\"caught \" + e)\n" +
		"finally\n" +
		"  print(\"cleanup\")\n" +
		"end\n"
	_, out := runSource(t, src)
	assert.Equal(t, "caught oops\ncleanup\n", out)
}

func TestInterp_MatchStatement(t *testing.T) {
	src := "fn describe(n)\n" +
		"  match n\n" +
		"    case 0 return \"zero\"\n" +
		"    case 1 return \"one\"\n" +
		"    else return \"many\"\n" +
		"  end\n" +
		"end\n" +
		"print(describe(0))\nprint(describe(1))\nprint(describe(9))\n"
	_, out := runSource(t, src)
	assert.Equal(t, "zero\none\nmany\n", out)
}

func TestInterp_StringIndexing(t *testing.T) {
	result, _ := runSource(t, `"hello"[1]`)
	assert.Equal(t, value.String("e"), result)
}

func TestInterp_ListAndMapLiterals(t *testing.T) {
	result, _ := runSource(t, "[1, 2, 3]")
	list, ok := result.(*value.List)
	require.True(t, ok)
	assert.Len(t, list.Elements, 3)

	result, _ = runSource(t, `{a: 1, b: 2}`)
	m, ok := result.(*value.Map)
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, m.Keys())
}
