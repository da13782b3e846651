package regexlib

import "strings"

// ToPattern reconstructs a pattern in the package's concrete syntax whose
// language equals d's, by state elimination (Brzozowski-McNaughton-Yamada):
// intermediate states are removed one at a time, folding their self-loops
// into a starred term and their pass-through paths into concatenations.
func (d *DFA) ToPattern() string {
	n := d.StateCount()
	if n == 0 {
		return ""
	}

	r := make([][]string, n)
	for i := range r {
		r[i] = make([]string, n)
	}
	for _, s := range d.states {
		for c, to := range s.trans {
			lit := string(c)
			if r[s.id][to] == "" {
				r[s.id][to] = lit
			} else {
				r[s.id][to] += "|" + lit
			}
		}
	}

	var finals []int
	for _, s := range d.states {
		if s.accept {
			finals = append(finals, s.id)
		}
	}

	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			if i == k || r[i][k] == "" {
				continue
			}
			for j := 0; j < n; j++ {
				if j == k || r[k][j] == "" {
					continue
				}
				middle := ""
				if r[k][k] != "" {
					middle = "(" + r[k][k] + ")*"
				}
				expr := parenAlt(r[i][k]) + middle + parenAlt(r[k][j])
				if r[i][j] == "" {
					r[i][j] = expr
				} else {
					r[i][j] += "|" + expr
				}
			}
		}
		if r[k][k] != "" {
			loop := "(" + r[k][k] + ")*"
			for x := 0; x < n; x++ {
				if x != k && r[x][k] != "" {
					r[x][k] = parenAlt(r[x][k]) + loop
				}
				if x != k && r[k][x] != "" {
					r[k][x] = loop + parenAlt(r[k][x])
				}
			}
		}
	}

	// r[start][start] accumulates every loop back to the start state as
	// intermediate states are eliminated — direct self-loops plus any
	// path that leaves start and returns through now-eliminated states.
	// When the start state is itself accepting, starring that whole term
	// folds the empty string in alongside every such loop, which is what
	// "language contains epsilon" means for a DFA reachable from this
	// package's Thompson construction.
	var parts []string
	for _, f := range finals {
		if f == d.start {
			if r[d.start][d.start] != "" {
				parts = append(parts, "("+r[d.start][d.start]+")*")
			}
			continue
		}
		if part := r[d.start][f]; part != "" {
			parts = append(parts, part)
		}
	}
	if len(parts) == 0 {
		// The only remaining possibility is a language containing exactly
		// the empty string and nothing else, which this package's concrete
		// syntax has no literal for. "" is returned as a best-effort
		// sentinel; it is not itself a compilable pattern.
		return ""
	}
	return strings.Join(parts, "|")
}

// parenAlt wraps s in parentheses if it is a top-level alternation, so that
// concatenating it with an adjacent term does not change its meaning.
func parenAlt(s string) string {
	if strings.ContainsRune(s, '|') {
		return "(" + s + ")"
	}
	return s
}

// ToPattern returns a pattern equivalent to the regex, synthesized from its
// DFA. Compiling the result reproduces an automaton accepting the same
// language, though not necessarily the same automaton structure.
func (r *Regex) ToPattern() string {
	return r.DFA().ToPattern()
}
