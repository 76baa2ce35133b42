// Command goscheme is a thin driver around the scheme package: it reads
// whole balanced expressions from stdin or a file, hands them to an
// Interpreter turn by turn, and prints each result or error.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	scheme "github.com/m0r0zk01/scheme-interpreter"
	"github.com/rs/zerolog"
)

type args struct {
	inputPath *string
	verbose   *bool
}

func readArgs() *args {
	a := &args{
		inputPath: flag.String("input", "", "Path to a file of expressions to evaluate turn by turn"),
		verbose:   flag.Bool("verbose", false, "Log collector sweeps and turn transitions to stderr"),
	}
	flag.Parse()
	return a
}

func main() {
	a := readArgs()

	logger := zerolog.Nop()
	if *a.verbose {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	}
	interp := scheme.New(scheme.Options{Logger: logger})

	if *a.inputPath != "" {
		runFile(interp, *a.inputPath)
		return
	}
	repl(interp)
}

func runFile(interp *scheme.Interpreter, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Unknown:", err)
		os.Exit(1)
	}
	for _, expr := range splitExpressions(string(data)) {
		report(interp, expr)
	}
}

// repl balances parentheses across lines before handing a whole
// expression to the interpreter.
func repl(interp *scheme.Interpreter) {
	scanner := bufio.NewScanner(os.Stdin)
	var pending strings.Builder
	depth := 0

	fmt.Print("> ")
	for scanner.Scan() {
		line := scanner.Text()
		pending.WriteString(line)
		pending.WriteByte('\n')
		depth += strings.Count(line, "(") - strings.Count(line, ")")

		if depth <= 0 && strings.TrimSpace(pending.String()) != "" {
			report(interp, pending.String())
			pending.Reset()
			depth = 0
			fmt.Print("> ")
			continue
		}
	}
	fmt.Println("Bye.")
}

func report(interp *scheme.Interpreter, expr string) {
	out, err := interp.Run(expr)
	if err != nil {
		fmt.Println(err.Error())
		return
	}
	fmt.Println("==>", out)
}

// splitExpressions breaks a file into whole top-level balanced
// expressions, the same accumulation repl does for stdin.
func splitExpressions(src string) []string {
	var out []string
	var cur strings.Builder
	depth := 0
	for _, r := range src {
		cur.WriteRune(r)
		switch r {
		case '(':
			depth++
		case ')':
			depth--
		}
		// A top-level expression ends at the ")" that balances it, or at
		// whitespace after a top-level atom.
		ended := r == ')' || strings.ContainsRune(" \t\r\n", r)
		if depth <= 0 && ended && strings.TrimSpace(cur.String()) != "" {
			out = append(out, cur.String())
			cur.Reset()
			depth = 0
		}
	}
	if strings.TrimSpace(cur.String()) != "" {
		out = append(out, cur.String())
	}
	return out
}
