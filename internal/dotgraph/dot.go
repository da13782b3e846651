// Package dotgraph renders compiled automata as Graphviz DOT source, using
// only the public accessor surface of regexcore/regexlib rather than its
// internal state representation.
package dotgraph

import (
	"fmt"
	"io"

	"regexcore/regexlib"
)

// WriteDFA emits a DOT digraph for d: one node per state, doublecircle for
// accepting states, one labeled edge per transition, and a synthetic point
// node marking the start state.
func WriteDFA(w io.Writer, d *regexlib.DFA) {
	fmt.Fprintln(w, "digraph DFA {")
	fmt.Fprintln(w, "    rankdir=LR;")
	for id := 0; id < d.StateCount(); id++ {
		shape := "circle"
		if d.IsAccepting(id) {
			shape = "doublecircle"
		}
		fmt.Fprintf(w, "    q%d [shape=%s];\n", id, shape)
	}
	for id := 0; id < d.StateCount(); id++ {
		for _, c := range d.Alphabet() {
			if to, ok := d.Step(id, c); ok {
				fmt.Fprintf(w, "    q%d -> q%d [label=%q];\n", id, to, string(c))
			}
		}
	}
	fmt.Fprintf(w, "    _start [shape=point]; _start -> q%d;\n", d.Start())
	fmt.Fprintln(w, "}")
}

// WriteNFA emits a DOT digraph for n, labeling epsilon transitions with the
// Greek letter directly since the package's alphabet never contains it.
func WriteNFA(w io.Writer, n *regexlib.NFA) {
	fmt.Fprintln(w, "digraph NFA {")
	fmt.Fprintln(w, "    rankdir=LR;")
	for id := 0; id < n.StateCount(); id++ {
		shape := "circle"
		if id == n.Accept() {
			shape = "doublecircle"
		}
		fmt.Fprintf(w, "    n%d [shape=%s];\n", id, shape)
	}
	for _, edge := range n.Edges() {
		label := "ε"
		if edge.Symbol != regexlib.Epsilon {
			label = string(edge.Symbol)
		}
		fmt.Fprintf(w, "    n%d -> n%d [label=%q];\n", edge.From, edge.To, label)
	}
	fmt.Fprintf(w, "    _start [shape=point]; _start -> n%d;\n", n.Start())
	fmt.Fprintln(w, "}")
}
