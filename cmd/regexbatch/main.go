// Command regexbatch runs a declarative script of pattern/accept/reject
// statements against the compiler and reports every mismatch.
package main

import (
	"fmt"
	"os"

	"regexcore/cmd/regexbatch/script"
	"regexcore/regexlib"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: regexbatch <script-file>")
		os.Exit(2)
	}

	data, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot read %s: %v\n", os.Args[1], err)
		os.Exit(1)
	}

	suite, err := script.Parse(string(data))
	if err != nil {
		fmt.Fprintf(os.Stderr, "script error: %v\n", err)
		os.Exit(1)
	}

	var (
		current *regexlib.Regex
		checked int
		failed  int
	)

	for _, stmt := range suite.Statements {
		switch {
		case stmt.Pattern != nil:
			re, err := regexlib.Compile(stmt.Pattern.Value)
			if err != nil {
				fmt.Fprintf(os.Stderr, "pattern %q: %v\n", stmt.Pattern.Value, err)
				os.Exit(1)
			}
			current = re

		case stmt.Accept != nil:
			checked++
			if current == nil {
				fmt.Fprintln(os.Stderr, "accept statement with no preceding pattern")
				os.Exit(1)
			}
			if !current.Matches(stmt.Accept.Value) {
				failed++
				fmt.Printf("FAIL: pattern %q should accept %q\n", current.Pattern(), stmt.Accept.Value)
			}

		case stmt.Reject != nil:
			checked++
			if current == nil {
				fmt.Fprintln(os.Stderr, "reject statement with no preceding pattern")
				os.Exit(1)
			}
			if current.Matches(stmt.Reject.Value) {
				failed++
				fmt.Printf("FAIL: pattern %q should reject %q\n", current.Pattern(), stmt.Reject.Value)
			}
		}
	}

	fmt.Printf("%d checked, %d failed\n", checked, failed)
	if failed > 0 {
		os.Exit(1)
	}
}
