package regexlib

import (
	"fmt"
	"sync"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// The token grammar is small and fixed, so a single compiled lexmachine
// automaton is built once and reused across calls to tokenize.
var (
	tokenLexer     *lexmachine.Lexer
	tokenLexerOnce sync.Once
	tokenLexerErr  error
)

func getTokenLexer() (*lexmachine.Lexer, error) {
	tokenLexerOnce.Do(func() {
		lex := lexmachine.NewLexer()
		lex.Add([]byte(`[ \t\n\r]`), skipMatch)
		lex.Add([]byte(`[A-Za-z0-9]`), tokenAction(Symbol))
		lex.Add([]byte(`\|`), tokenAction(Union))
		lex.Add([]byte(`\*`), tokenAction(Star))
		lex.Add([]byte(`\(`), tokenAction(LParen))
		lex.Add([]byte(`\)`), tokenAction(RParen))
		if err := lex.Compile(); err != nil {
			tokenLexerErr = fmt.Errorf("lexer: failed to compile token grammar: %w", err)
			return
		}
		tokenLexer = lex
	})
	return tokenLexer, tokenLexerErr
}

func skipMatch(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

func tokenAction(kind Kind) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return Token{Kind: kind, Lexeme: string(m.Bytes), Position: m.TC}, nil
	}
}

// legalChar reports whether c may appear, bare, in a regex source string:
// alphanumeric symbols, the four metacharacters, or whitespace (space, tab,
// newline, carriage return).
func legalChar(c rune) bool {
	switch {
	case c == ' ' || c == '\t' || c == '\n' || c == '\r':
		return true
	case ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9'):
		return true
	case c == '|' || c == '*' || c == '(' || c == ')':
		return true
	default:
		return false
	}
}

// tokenize segments src into a token sequence terminated by a single End
// token. Whitespace is skipped between tokens; the position recorded on
// each token is the byte offset of its first character in src, counting
// every character including skipped whitespace. The first illegal
// character encountered aborts tokenization with a LexicalError.
func tokenize(src string) ([]Token, error) {
	for i, c := range src {
		if !legalChar(c) {
			return nil, &LexicalError{Char: c, Position: i}
		}
	}

	lex, err := getTokenLexer()
	if err != nil {
		return nil, err
	}

	scanner, err := lex.Scanner([]byte(src))
	if err != nil {
		return nil, fmt.Errorf("lexer: cannot start scanner: %w", err)
	}

	var toks []Token
	for {
		tok, err, eof := scanner.Next()
		if eof {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("lexer: %w", err)
		}
		toks = append(toks, tok.(Token))
	}
	toks = append(toks, Token{Kind: End, Position: len(src)})
	return toks, nil
}
