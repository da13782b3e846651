package regexlib

// Complement builds a DFA over the same alphabet whose language is the
// complement of d's, by flipping every state's acceptance. This assumes d's
// transition function is total; DFAs from subsetConstruct are not, in
// general, so Complement first completes d with an explicit sink state.
func (d *DFA) Complement() *DFA {
	total := completeSink(d)

	out := &DFA{alpha: append([]rune(nil), total.alpha...), start: total.start}
	out.states = make([]*dfaState, len(total.states))
	for i, s := range total.states {
		trans := make(map[rune]int, len(s.trans))
		for c, to := range s.trans {
			trans[c] = to
		}
		out.states[i] = &dfaState{id: i, accept: !s.accept, subset: s.subset, trans: trans}
	}
	return out
}

// completeSink returns a DFA equivalent to d but with an explicit sink state
// so that every state has an outgoing transition for every alphabet symbol.
func completeSink(d *DFA) *DFA {
	out := &DFA{alpha: append([]rune(nil), d.alpha...), start: d.start}
	for _, s := range d.states {
		trans := make(map[rune]int, len(d.alpha))
		for c, to := range s.trans {
			trans[c] = to
		}
		out.states = append(out.states, &dfaState{id: s.id, accept: s.accept, subset: s.subset, trans: trans})
	}
	sinkID := len(out.states)
	needsSink := false
	sink := &dfaState{id: sinkID, accept: false, trans: map[rune]int{}}
	for _, c := range d.alpha {
		sink.trans[c] = sinkID
	}
	for _, s := range out.states {
		for _, c := range d.alpha {
			if _, ok := s.trans[c]; !ok {
				s.trans[c] = sinkID
				needsSink = true
			}
		}
	}
	if needsSink {
		out.states = append(out.states, sink)
	}
	return out
}

// product builds the DFA over the union of a's and b's alphabets whose
// acceptance at each reachable pair of states is combine(a-accepts,
// b-accepts). It is the shared core of Intersect and Union.
func product(a, b *DFA, combine func(bool, bool) bool) *DFA {
	alpha := unionAlphabet(a.alpha, b.alpha)
	a = completeSink(&DFA{states: a.states, start: a.start, alpha: alpha})
	b = completeSink(&DFA{states: b.states, start: b.start, alpha: alpha})

	type pair struct{ i, j int }
	index := map[pair]int{}
	out := &DFA{alpha: alpha}

	newState := func(p pair) int {
		id := len(out.states)
		out.states = append(out.states, &dfaState{
			id:     id,
			accept: combine(a.states[p.i].accept, b.states[p.j].accept),
			trans:  map[rune]int{},
		})
		index[p] = id
		return id
	}

	start := pair{a.start, b.start}
	out.start = newState(start)
	worklist := []pair{start}

	for len(worklist) > 0 {
		p := worklist[0]
		worklist = worklist[1:]
		fromID := index[p]

		for _, c := range alpha {
			ta, oka := a.states[p.i].trans[c]
			tb, okb := b.states[p.j].trans[c]
			if !oka || !okb {
				continue
			}
			np := pair{ta, tb}
			toID, exists := index[np]
			if !exists {
				toID = newState(np)
				worklist = append(worklist, np)
			}
			out.states[fromID].trans[c] = toID
		}
	}
	return out
}

func unionAlphabet(a, b []rune) []rune {
	seen := map[rune]bool{}
	var out []rune
	for _, c := range a {
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	for _, c := range b {
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	return out
}

// Intersect builds a DFA accepting the intersection of a's and b's
// languages.
func Intersect(a, b *DFA) *DFA {
	return product(a, b, func(x, y bool) bool { return x && y })
}

// UnionDFA builds a DFA accepting the union of a's and b's languages. It is
// named to avoid colliding with the AST's union node.
func UnionDFA(a, b *DFA) *DFA {
	return product(a, b, func(x, y bool) bool { return x || y })
}

// Reverse builds a DFA accepting the reversal of every string in d's
// language, by reversing the transition relation into an NFA rooted at a
// fresh start state epsilon-connected to d's accepting states, then
// determinizing.
func Reverse(d *DFA) *DFA {
	n := newNFA()
	nodeFor := make([]int, len(d.states))
	for i := range d.states {
		nodeFor[i] = n.newState()
	}
	start := n.newState()
	accept := n.newState()
	n.states[accept].accept = true

	for _, s := range d.states {
		if s.accept {
			n.addEdge(start, Epsilon, nodeFor[s.id])
		}
	}
	n.addEdge(nodeFor[d.start], Epsilon, accept)
	for _, s := range d.states {
		for c, to := range s.trans {
			n.addEdge(nodeFor[to], c, nodeFor[s.id])
		}
	}

	n.start = start
	n.accept = accept
	n.alpha = append([]rune(nil), d.alpha...)
	return subsetConstruct(n)
}

// Intersect returns a Regex accepting the intersection of r's and other's
// languages.
func (r *Regex) Intersect(other *Regex) *Regex {
	return fromDFA(Intersect(r.DFA(), other.DFA()))
}

// Union returns a Regex accepting the union of r's and other's languages.
func (r *Regex) Union(other *Regex) *Regex {
	return fromDFA(UnionDFA(r.DFA(), other.DFA()))
}

// Complement returns a Regex accepting every string r does not.
func (r *Regex) Complement() *Regex {
	return fromDFA(r.DFA().Complement())
}

// Reverse returns a Regex accepting the reversal of every string r accepts.
func (r *Regex) Reverse() *Regex {
	return fromDFA(Reverse(r.DFA()))
}
