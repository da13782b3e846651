package regexlib

import "testing"

func mustParse(t *testing.T, pattern string) *astNode {
	t.Helper()
	toks, err := tokenize(pattern)
	if err != nil {
		t.Fatalf("tokenize(%q): %v", pattern, err)
	}
	root, err := parse(toks)
	if err != nil {
		t.Fatalf("parse(%q): %v", pattern, err)
	}
	return root
}

func TestParseSingleSymbol(t *testing.T) {
	root := mustParse(t, "a")
	if root.typ != nSymbol || root.ch != 'a' {
		t.Fatalf("got %+v, want a bare symbol node for 'a'", root)
	}
}

func TestParseConcat(t *testing.T) {
	root := mustParse(t, "ab")
	if root.typ != nConcat {
		t.Fatalf("got %+v, want a concat node", root)
	}
	if root.left.typ != nSymbol || root.left.ch != 'a' {
		t.Errorf("left child is %+v, want symbol 'a'", root.left)
	}
	if root.right.typ != nSymbol || root.right.ch != 'b' {
		t.Errorf("right child is %+v, want symbol 'b'", root.right)
	}
}

func TestParseUnionPrecedence(t *testing.T) {
	// a|bc should parse as Union(a, Concat(b, c)): concat binds tighter.
	root := mustParse(t, "a|bc")
	if root.typ != nUnion {
		t.Fatalf("got %+v, want a union at the root", root)
	}
	if root.left.typ != nSymbol || root.left.ch != 'a' {
		t.Errorf("left child of union is %+v, want symbol 'a'", root.left)
	}
	if root.right.typ != nConcat {
		t.Errorf("right child of union is %+v, want a concat", root.right)
	}
}

func TestParseStarBindsTighterThanConcat(t *testing.T) {
	// ab* should parse as Concat(a, Star(b)), not Star(Concat(a, b)).
	root := mustParse(t, "ab*")
	if root.typ != nConcat {
		t.Fatalf("got %+v, want a concat at the root", root)
	}
	if root.right.typ != nStar {
		t.Fatalf("right child is %+v, want a star", root.right)
	}
	if root.right.left.ch != 'b' {
		t.Errorf("starred child is %+v, want symbol 'b'", root.right.left)
	}
}

func TestParseChainedStar(t *testing.T) {
	// a** is legal and equivalent to a single Star(a); the parser still
	// produces two nested Star nodes.
	root := mustParse(t, "a**")
	if root.typ != nStar || root.left.typ != nStar || root.left.left.typ != nSymbol {
		t.Fatalf("got %+v, want Star(Star(Symbol))", root)
	}
}

func TestParseGroupingOverridesPrecedence(t *testing.T) {
	// (a|b)c should parse as Concat(Union(a, b), c).
	root := mustParse(t, "(a|b)c")
	if root.typ != nConcat {
		t.Fatalf("got %+v, want a concat at the root", root)
	}
	if root.left.typ != nUnion {
		t.Errorf("left child is %+v, want a union", root.left)
	}
}

func parseErr(t *testing.T, pattern string) error {
	t.Helper()
	toks, err := tokenize(pattern)
	if err != nil {
		return err
	}
	_, err = parse(toks)
	return err
}

func TestParseEmptyExpressionIsSyntaxError(t *testing.T) {
	err := parseErr(t, "")
	if _, ok := err.(*SyntaxError); !ok {
		t.Fatalf("got %T (%v), want *SyntaxError", err, err)
	}
}

func TestParseWhitespaceOnlyIsSyntaxError(t *testing.T) {
	err := parseErr(t, "   ")
	if _, ok := err.(*SyntaxError); !ok {
		t.Fatalf("got %T (%v), want *SyntaxError", err, err)
	}
}

func TestParseUnbalancedOpenParen(t *testing.T) {
	err := parseErr(t, "(a")
	if _, ok := err.(*SyntaxError); !ok {
		t.Fatalf("got %T (%v), want *SyntaxError", err, err)
	}
}

func TestParseUnbalancedCloseParen(t *testing.T) {
	err := parseErr(t, "a)")
	if _, ok := err.(*SyntaxError); !ok {
		t.Fatalf("got %T (%v), want *SyntaxError", err, err)
	}
}

func TestParseLeadingUnion(t *testing.T) {
	err := parseErr(t, "|a")
	if _, ok := err.(*SyntaxError); !ok {
		t.Fatalf("got %T (%v), want *SyntaxError", err, err)
	}
}

func TestParseLeadingStar(t *testing.T) {
	err := parseErr(t, "*a")
	if _, ok := err.(*SyntaxError); !ok {
		t.Fatalf("got %T (%v), want *SyntaxError", err, err)
	}
}

func TestParseTrailingUnion(t *testing.T) {
	err := parseErr(t, "a|")
	if _, ok := err.(*SyntaxError); !ok {
		t.Fatalf("got %T (%v), want *SyntaxError", err, err)
	}
}

func TestParseEmptyParens(t *testing.T) {
	err := parseErr(t, "()")
	if _, ok := err.(*SyntaxError); !ok {
		t.Fatalf("got %T (%v), want *SyntaxError", err, err)
	}
}
