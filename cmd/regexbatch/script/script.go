// Package script defines a small declarative test-suite language for
// exercising compiled patterns in bulk:
//
//	pattern "a(b|c)*d";
//	accept "abcbcd";
//	reject "abcbce";
//
//	pattern "a|b";
//	accept "a";
//	accept "b";
//	reject "ab";
//
// Each pattern statement starts a new group; the accept/reject statements
// that follow it are checked against that group's pattern.
package script

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Suite is a full parsed script: a sequence of statements in source order.
type Suite struct {
	Statements []*Statement `parser:"@@*"`
}

// Statement is one line of the script.
type Statement struct {
	Pattern *PatternStmt `parser:"( @@ ';'"`
	Accept  *CheckStmt   `parser:"| 'accept' @@ ';'"`
	Reject  *CheckStmt   `parser:"| 'reject' @@ ';' )"`
}

// PatternStmt begins a new group, compiling Value as the pattern that
// subsequent accept/reject statements are checked against.
type PatternStmt struct {
	Value string `parser:"'pattern' @String"`
}

// CheckStmt names a single input string to check against the current
// pattern.
type CheckStmt struct {
	Value string `parser:"@String"`
}

var scriptLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "String", Pattern: `"(\\.|[^"])*"`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Punct", Pattern: `[;]`},
	{Name: "whitespace", Pattern: `\s+`},
})

var parser = participle.MustBuild[Suite](
	participle.Lexer(scriptLexer),
	participle.Unquote("String"),
)

// Parse compiles a batch script's source text into a Suite.
func Parse(source string) (*Suite, error) {
	return parser.ParseString("", source)
}
