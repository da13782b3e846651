package regexlib

import "unicode/utf8"

// AST is an opaque handle to a parsed syntax tree. Its shape is not part of
// the public contract; callers thread it from Parse to BuildNFA.
type AST struct {
	root *astNode
}

// Tokenize is the standalone lexer entry point (see the package-level
// Compile for the composed pipeline).
func Tokenize(source string) ([]Token, error) {
	return tokenize(source)
}

// Parse is the standalone parser entry point.
func Parse(tokens []Token) (*AST, error) {
	root, err := parse(tokens)
	if err != nil {
		return nil, err
	}
	return &AST{root: root}, nil
}

// BuildNFA runs Thompson's construction over a parsed AST.
func BuildNFA(tree *AST) *NFA {
	return buildNFA(tree.root)
}

// ToDFA determinizes an NFA via subset construction. No minimization is
// performed.
func ToDFA(n *NFA) *DFA {
	return subsetConstruct(n)
}

// SimulateNFA decides acceptance by tracking the epsilon-closed set of live
// NFA states as input is consumed.
func SimulateNFA(n *NFA, input string) bool {
	return n.Accepts(input)
}

// SimulateDFA decides acceptance by following the DFA's transition function
// one character at a time.
func SimulateDFA(d *DFA, input string) bool {
	return d.Accepts(input)
}

// Regex is a compiled regular expression: the pattern it was compiled from
// (when known — a Regex produced by a set operation has no single source
// pattern) together with both automaton representations. The DFA is built
// lazily on first use since not every caller needs determinization.
type Regex struct {
	pattern string
	nfa     *NFA
	dfa     *DFA
}

// Compile runs tokenize, parse and build_nfa over pattern; to_dfa is not run
// here but on the first call to the Regex's DFA (or Matches, FindAll and the
// set operations, which use it). Any failure in an earlier phase is
// wrapped in a CompilationError naming the phase and short-circuits the
// remaining phases.
func Compile(pattern string) (*Regex, error) {
	toks, err := Tokenize(pattern)
	if err != nil {
		return nil, wrapPhase("lexing", err)
	}
	tree, err := Parse(toks)
	if err != nil {
		return nil, wrapPhase("parsing", err)
	}
	nfa := BuildNFA(tree)
	return &Regex{pattern: pattern, nfa: nfa}, nil
}

// MustCompile is like Compile but panics on error; intended for tests and
// for patterns known at compile time to be valid.
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return re
}

// fromDFA wraps a DFA produced by a set operation as a Regex. Its NFA is
// derived directly from the DFA (see nfaFromDFA) rather than by
// synthesizing and recompiling a pattern, since the language of a derived
// DFA is not always one this package's concrete syntax can express (see
// ToPattern's {ε} sentinel) — recompiling would panic on exactly the
// derived Regex values this function exists to construct correctly.
func fromDFA(d *DFA) *Regex {
	re := &Regex{dfa: d, nfa: nfaFromDFA(d)}
	re.pattern = re.ToPattern()
	return re
}

// NFA returns the Thompson-constructed (or, for a Regex derived from a set
// operation, DFA-derived) automaton backing the regex.
func (r *Regex) NFA() *NFA {
	return r.nfa
}

// DFA returns the determinized automaton, building it on first access and
// caching the result.
func (r *Regex) DFA() *DFA {
	if r.dfa == nil {
		r.dfa = ToDFA(r.NFA())
	}
	return r.dfa
}

// Pattern returns the source pattern the Regex was compiled from, or a
// pattern synthesized from the DFA (see ToPattern) for a Regex produced by a
// set operation.
func (r *Regex) Pattern() string { return r.pattern }

// Matches reports whether the whole of s is in the language of the regex.
// It uses the DFA, building it lazily.
func (r *Regex) Matches(s string) bool {
	return r.DFA().Accepts(s)
}

// Match is a single non-overlapping substring match found by FindAll.
type Match struct {
	Start, End int
}

// FindAll returns every non-overlapping, leftmost-longest substring of text
// that lies in the language of the regex, as byte offsets into text. At each
// starting position it advances the DFA as far as possible while tracking
// the last point at which it passed through an accepting state; a position
// with no match at all steps forward by one rune.
func (r *Regex) FindAll(text string) []Match {
	d := r.DFA()
	var out []Match

	i := 0
	for i < len(text) {
		state := d.Start()
		lastAccept := -1
		if d.IsAccepting(state) {
			lastAccept = i
		}
		j := i
		for j < len(text) {
			c, size := utf8.DecodeRuneInString(text[j:])
			next, ok := d.Step(state, c)
			if !ok {
				break
			}
			state = next
			j += size
			if d.IsAccepting(state) {
				lastAccept = j
			}
		}
		if lastAccept == -1 {
			_, size := utf8.DecodeRuneInString(text[i:])
			i += size
			continue
		}
		out = append(out, Match{Start: i, End: lastAccept})
		if lastAccept == i {
			_, size := utf8.DecodeRuneInString(text[i:])
			i += size
		} else {
			i = lastAccept
		}
	}
	return out
}
