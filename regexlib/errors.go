package regexlib

import "fmt"

// LexicalError is raised by the lexer on an illegal character. It is not
// recoverable: the first illegal character aborts tokenization.
type LexicalError struct {
	Char     rune
	Position int
}

func (e *LexicalError) Error() string {
	return fmt.Sprintf("lexical error: illegal character %q at position %d", e.Char, e.Position)
}

// SyntaxError is raised by the parser on a grammar violation.
type SyntaxError struct {
	Message  string
	Position int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at position %d: %s", e.Position, e.Message)
}

// CompilationError is the umbrella error surfaced by Compile. It wraps the
// originating LexicalError or SyntaxError with the phase in which it occurred.
type CompilationError struct {
	Phase string
	Err   error
}

func (e *CompilationError) Error() string {
	return fmt.Sprintf("compilation failed in phase %s: %v", e.Phase, e.Err)
}

func (e *CompilationError) Unwrap() error { return e.Err }

func wrapPhase(phase string, err error) error {
	if err == nil {
		return nil
	}
	return &CompilationError{Phase: phase, Err: err}
}
