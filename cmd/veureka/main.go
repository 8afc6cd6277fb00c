// Command veureka is the entry point for the Veureka interpreter: a
// flag-free argv dispatch (REPL with no args, file path to execute,
// --help, --examples) with panic recovery around file execution.
package main

import (
	"fmt"
	"os"

	"github.com/akashmaji946/veureka/examples"
	"github.com/akashmaji946/veureka/interp"
	"github.com/akashmaji946/veureka/parser"
	"github.com/akashmaji946/veureka/repl"
	"github.com/akashmaji946/veureka/value"
	"github.com/fatih/color"
)

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

func main() {
	if len(os.Args) == 1 {
		repl.Start(os.Stdout)
		return
	}

	arg := os.Args[1]
	switch arg {
	case "--help", "-h":
		showHelp()
		os.Exit(0)
	case "--examples":
		examples.RunAll(os.Stdout)
		os.Exit(0)
	}

	if len(arg) > 0 && arg[0] == '-' {
		redColor.Fprintf(os.Stderr, "!! unrecognized flag: %s\n", arg)
		os.Exit(1)
	}

	runFile(arg)
}

// runFile reads and executes a Veureka source file.
func runFile(fileName string) {
	source, err := os.ReadFile(fileName)
	if err != nil {
		redColor.Fprintf(os.Stderr, "!! could not read file %q: %v\n", fileName, err)
		os.Exit(1)
	}
	executeWithRecovery(string(source))
}

// executeWithRecovery parses and runs source, recovering from any
// internal panic so a single malformed program can't crash the whole
// process.
func executeWithRecovery(source string) {
	defer func() {
		if r := recover(); r != nil {
			redColor.Fprintf(os.Stderr, "!! internal error: %v\n", r)
			os.Exit(1)
		}
	}()

	p := parser.New(source)
	prog := p.Parse()

	if p.HasErrors() {
		for _, e := range p.Errors {
			redColor.Fprintf(os.Stderr, "!! %s\n", e)
		}
		os.Exit(1)
	}

	it := interp.New()
	result := it.Run(prog)
	if _, isNil := result.(value.Nil); !isNil {
		yellowColor.Fprintln(os.Stdout, result.String())
	}
}

func showHelp() {
	cyanColor.Println("Veureka - An Interpreted Programming Language")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	fmt.Println("  veureka                   Start interactive REPL mode")
	fmt.Println("  veureka <path-to-file>    Execute a Veureka file (.ver)")
	fmt.Println("  veureka --examples        Run the bundled demo programs")
	fmt.Println("  veureka --help            Display this help message")
}
