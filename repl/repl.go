// Package repl implements Veureka's interactive Read-Eval-Print Loop:
// readline for line editing, fatih/color for feedback, one long-lived
// interpreter across the session, with selective printing of top-level
// results rather than echoing every statement.
package repl

import (
	"fmt"
	"io"
	"strings"

	"github.com/akashmaji946/veureka/ast"
	"github.com/akashmaji946/veureka/interp"
	"github.com/akashmaji946/veureka/parser"
	"github.com/akashmaji946/veureka/value"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Prompt is the REPL's command prompt.
const Prompt = "ver> "

const separator = "----------------------------------------"

// Start runs the REPL loop against writer for output, until exit/quit
// or EOF (Ctrl+D).
func Start(writer io.Writer) {
	printBanner(writer)

	rl, err := readline.New(Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	it := interp.New()
	it.SetWriter(writer)

	for {
		input, err := rl.Readline()
		if err != nil {
			fmt.Fprintln(writer, "Good bye!")
			return
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		switch input {
		case "exit", "quit":
			fmt.Fprintln(writer, "Good bye!")
			return
		case "help":
			printHelp(writer)
			continue
		case "vars":
			printVars(writer, it)
			continue
		}

		rl.SaveHistory(input)
		evalLine(writer, it, input)
	}
}

func evalLine(writer io.Writer, it *interp.Interpreter, src string) {
	p := parser.New(src)
	prog := p.Parse()

	if p.HasErrors() {
		for _, e := range p.Errors {
			redColor.Fprintf(writer, "%s\n", e)
		}
		return
	}

	result := it.Run(prog)

	if !shouldPrint(prog) {
		return
	}
	if _, isNil := result.(value.Nil); isNil {
		return
	}
	yellowColor.Fprintf(writer, "%s\n", result.String())
}

// shouldPrint reports whether the REPL should echo a result: only when
// the last top-level statement entered is not a let, fn, or class
// declaration.
func shouldPrint(prog *ast.Program) bool {
	if len(prog.Statements) == 0 {
		return false
	}
	switch prog.Statements[len(prog.Statements)-1].(type) {
	case *ast.Let, *ast.Fn, *ast.Class:
		return false
	default:
		return true
	}
}

func printBanner(w io.Writer) {
	blueColor.Fprintf(w, "%s\n", separator)
	greenColor.Fprintln(w, "Veureka")
	blueColor.Fprintf(w, "%s\n", separator)
	cyanColor.Fprintln(w, "Type an expression and press enter.")
	cyanColor.Fprintln(w, "Commands: exit, quit, help, vars")
	blueColor.Fprintf(w, "%s\n", separator)
}

func printHelp(w io.Writer) {
	cyanColor.Fprintln(w, "exit, quit  - leave the REPL")
	cyanColor.Fprintln(w, "help        - show this message")
	cyanColor.Fprintln(w, "vars        - list global bindings")
}

func printVars(w io.Writer, it *interp.Interpreter) {
	names := it.Global.Names()
	if len(names) == 0 {
		cyanColor.Fprintln(w, "(no bindings)")
		return
	}
	for _, n := range names {
		v, _ := it.Global.Get(n)
		yellowColor.Fprintf(w, "%s = %s\n", n, v.String())
	}
}
