package regexlib

import (
	"errors"
	"strings"
	"testing"
)

func TestLexicalErrorMessage(t *testing.T) {
	err := &LexicalError{Char: '#', Position: 3}
	if !strings.Contains(err.Error(), "#") {
		t.Errorf("error message %q does not mention the offending character", err.Error())
	}
}

func TestCompilationErrorUnwraps(t *testing.T) {
	inner := &SyntaxError{Message: "bad", Position: 0}
	wrapped := wrapPhase("parsing", inner)
	var target *SyntaxError
	if !errors.As(wrapped, &target) {
		t.Fatalf("errors.As failed to find *SyntaxError inside %v", wrapped)
	}
	if target != inner {
		t.Errorf("unwrapped error is not the original SyntaxError")
	}
}

func TestWrapPhaseNilIsNil(t *testing.T) {
	if err := wrapPhase("lexing", nil); err != nil {
		t.Errorf("wrapPhase(_, nil) = %v, want nil", err)
	}
}
