package regexlib

// dfaState is one state of a DFA. subset records the sorted NFA state ids it
// represents, kept around because the data model requires the subset be
// recoverable for debugging even though it is not part of the public
// contract.
type dfaState struct {
	id     int
	accept bool
	subset stateSet
	trans  map[rune]int
}

// DFA is a deterministic finite automaton produced by subset construction
// from an NFA. It has no epsilon-transitions and its transition function is
// total on the reachable subset of Q x Sigma; unrepresented transitions
// reject. It is read-only after construction.
type DFA struct {
	states []*dfaState
	start  int
	alpha  []rune
}

// StateCount returns the number of states in the automaton.
func (d *DFA) StateCount() int { return len(d.states) }

// Start returns the id of the unique start state.
func (d *DFA) Start() int { return d.start }

// Alphabet returns the input alphabet the automaton was built over.
func (d *DFA) Alphabet() []rune { return d.alpha }

// IsAccepting reports whether state id is one of F'.
func (d *DFA) IsAccepting(id int) bool { return d.states[id].accept }

// Step returns the destination of the transition out of state id on c, and
// whether that transition exists.
func (d *DFA) Step(id int, c rune) (int, bool) {
	to, ok := d.states[id].trans[c]
	return to, ok
}

// Subset returns the sorted NFA state ids that DFA state id represents.
// Exposed for debugging and visualization only; not part of the automaton's
// semantic contract.
func (d *DFA) Subset(id int) []int { return append([]int(nil), d.states[id].subset...) }

// subsetConstruct determinizes n via the powerset construction: the DFA
// start state is epsilon-closure({n.start}); each unprocessed DFA state is
// expanded over every symbol in the alphabet, using the sorted-subset key as
// the canonical identity for deduplication. No minimization is performed —
// two subset-equivalent DFAs necessarily produce identical state counts.
func subsetConstruct(n *NFA) *DFA {
	d := &DFA{alpha: append([]rune(nil), n.alpha...)}

	indexOf := map[string]int{}
	newDFAState := func(subset stateSet) int {
		id := len(d.states)
		d.states = append(d.states, &dfaState{
			id:     id,
			accept: n.hasAccept(subset),
			subset: subset,
			trans:  map[rune]int{},
		})
		indexOf[subset.key()] = id
		return id
	}

	startSubset := n.epsilonClosure(newStateSet(n.start))
	d.start = newDFAState(startSubset)

	worklist := []stateSet{startSubset}
	for len(worklist) > 0 {
		subset := worklist[0]
		worklist = worklist[1:]
		fromID := indexOf[subset.key()]

		for _, c := range d.alpha {
			moved := n.move(subset, c)
			if len(moved) == 0 {
				continue
			}
			closure := n.epsilonClosure(moved)
			toID, exists := indexOf[closure.key()]
			if !exists {
				toID = newDFAState(closure)
				worklist = append(worklist, closure)
			}
			d.states[fromID].trans[c] = toID
		}
	}
	return d
}

// Accepts decides whether input lies in the language of the DFA. Starting
// at the start state, it consumes one character at a time; a character with
// no matching transition — including any character outside the alphabet —
// rejects immediately.
func (d *DFA) Accepts(input string) bool {
	cur := d.start
	for _, c := range input {
		next, ok := d.Step(cur, c)
		if !ok {
			return false
		}
		cur = next
	}
	return d.IsAccepting(cur)
}
