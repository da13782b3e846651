package regexlib

import "testing"

func TestIntersect(t *testing.T) {
	a := MustCompile("(a|b)*")
	b := MustCompile("(b|c)*")
	got := Intersect(a.DFA(), b.DFA())
	for _, s := range []string{"", "b", "bbb"} {
		if !got.Accepts(s) {
			t.Errorf("intersection: expected to accept %q", s)
		}
	}
	for _, s := range []string{"a", "c", "ab", "abc"} {
		if got.Accepts(s) {
			t.Errorf("intersection: expected to reject %q", s)
		}
	}
}

func TestUnionDFA(t *testing.T) {
	a := MustCompile("a")
	b := MustCompile("b")
	got := UnionDFA(a.DFA(), b.DFA())
	for _, s := range []string{"a", "b"} {
		if !got.Accepts(s) {
			t.Errorf("union: expected to accept %q", s)
		}
	}
	for _, s := range []string{"", "ab", "c"} {
		if got.Accepts(s) {
			t.Errorf("union: expected to reject %q", s)
		}
	}
}

func TestComplement(t *testing.T) {
	re := MustCompile("a")
	comp := re.DFA().Complement()
	if comp.Accepts("a") {
		t.Error("complement of 'a' should reject \"a\"")
	}
	for _, s := range []string{"", "aa", "aaa"} {
		if !comp.Accepts(s) {
			t.Errorf("complement of 'a' should accept %q", s)
		}
	}
	// The complement is taken over the alphabet {'a'}; strings using any
	// other symbol are rejected like any out-of-alphabet input.
	for _, s := range []string{"b", "ab"} {
		if comp.Accepts(s) {
			t.Errorf("complement of 'a' should reject %q, which is outside its alphabet", s)
		}
	}
}

func TestComplementIsInvolutive(t *testing.T) {
	re := MustCompile("(a|b)*abb")
	twice := re.DFA().Complement().Complement()
	for _, s := range []string{"", "a", "abb", "aabb", "ab"} {
		if got, want := twice.Accepts(s), re.DFA().Accepts(s); got != want {
			t.Errorf("input %q: double complement gave %v, want %v", s, got, want)
		}
	}
}

func TestReverse(t *testing.T) {
	re := MustCompile("ab")
	rev := Reverse(re.DFA())
	if !rev.Accepts("ba") {
		t.Error("reverse of 'ab' should accept \"ba\"")
	}
	if rev.Accepts("ab") {
		t.Error("reverse of 'ab' should reject \"ab\"")
	}
}

func TestNFAOnDerivedSingletonEmptyLanguageRegex(t *testing.T) {
	// a* and b* share only the empty string. ToPattern's synthesized
	// pattern for that {ε}-only language is a documented, non-compilable
	// sentinel, so NFA() must not go through it.
	onlyEpsilon := MustCompile("a*").Intersect(MustCompile("b*"))
	n := onlyEpsilon.NFA()
	if n == nil {
		t.Fatal("NFA() returned nil for a derived Regex")
	}
	if !n.Accepts("") {
		t.Error("expected the derived NFA to accept the empty string")
	}
	if n.Accepts("a") || n.Accepts("b") {
		t.Error("expected the derived NFA to reject any nonempty string")
	}
}

func TestRegexLevelSetOperations(t *testing.T) {
	a := MustCompile("a*")
	b := MustCompile("b*")
	if !a.Union(b).Matches("bbb") {
		t.Error("union should match 'bbb'")
	}
	if a.Intersect(b).Matches("a") {
		t.Error("intersection of a* and b* should reject 'a'")
	}
	if !a.Intersect(b).Matches("") {
		t.Error("intersection of a* and b* should accept the empty string")
	}
	if a.Complement().Matches("b") {
		t.Error("complement of a* is taken over the alphabet {'a'}, so it should reject 'b'")
	}
}
