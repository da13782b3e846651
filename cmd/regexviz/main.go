// Command regexviz compiles a pattern and writes its automaton as Graphviz
// DOT source, optionally rendering it to PNG via the dot binary.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"os/exec"

	"regexcore/internal/dotgraph"
	"regexcore/regexlib"
)

func main() {
	pattern := flag.String("re", "", "pattern to compile (required)")
	nfaFlag := flag.Bool("nfa", false, "export the Thompson NFA instead of the DFA")
	outFile := flag.String("o", "graph.dot", "output file (\"-\" for stdout)")
	pngFlag := flag.Bool("png", false, "render PNG via dot -Tpng instead of writing DOT")
	flag.Parse()

	if *pattern == "" {
		fmt.Fprintln(os.Stderr, "usage: regexviz -re <pattern> [-nfa] [-o file] [-png]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	re, err := regexlib.Compile(*pattern)
	if err != nil {
		fmt.Fprintf(os.Stderr, "compile error: %v\n", err)
		os.Exit(1)
	}

	var buf bytes.Buffer
	if *nfaFlag {
		dotgraph.WriteNFA(&buf, re.NFA())
	} else {
		dotgraph.WriteDFA(&buf, re.DFA())
	}

	if *pngFlag {
		cmd := exec.Command("dot", "-Tpng", "-o", *outFile)
		cmd.Stdin = bytes.NewReader(buf.Bytes())
		cmd.Stderr = os.Stderr
		if err := cmd.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "dot failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("PNG written to %s\n", *outFile)
		return
	}

	var w io.Writer
	if *outFile == "-" {
		w = os.Stdout
	} else {
		f, err := os.Create(*outFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "cannot create %s: %v\n", *outFile, err)
			os.Exit(1)
		}
		defer f.Close()
		w = f
	}
	if _, err := io.Copy(w, &buf); err != nil {
		fmt.Fprintf(os.Stderr, "write failed: %v\n", err)
		os.Exit(1)
	}
	if *outFile != "-" {
		fmt.Printf("DOT written to %s\n", *outFile)
	}
}
