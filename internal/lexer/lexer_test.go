package lexer

import (
	"testing"

	"github.com/cwbudde/go-texmath/internal/perr"
	"github.com/cwbudde/go-texmath/internal/token"
)

func TestNextTokenCharacter(t *testing.T) {
	c := NewCursor("a")
	tok, err := c.NextToken()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok.Kind != token.Character || tok.Char != 'a' {
		t.Errorf("got %+v, want Character 'a'", tok)
	}
	if !c.Done() {
		t.Errorf("expected cursor to be exhausted")
	}
}

func TestNextTokenControlSequenceLetters(t *testing.T) {
	c := NewCursor(`\alpha x`)
	tok, err := c.NextToken()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok.Kind != token.ControlSequence || tok.Name != "alpha" {
		t.Errorf("got %+v, want ControlSequence alpha", tok)
	}
	// trailing space after a letter-run control sequence is consumed.
	tok2, err := c.NextToken()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok2.Kind != token.Character || tok2.Char != 'x' {
		t.Errorf("got %+v, want Character 'x'", tok2)
	}
}

func TestNextTokenControlSequenceSingleChar(t *testing.T) {
	c := NewCursor(`\{`)
	tok, err := c.NextToken()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok.Kind != token.ControlSequence || tok.Name != "{" {
		t.Errorf("got %+v, want ControlSequence {", tok)
	}
}

func TestNextTokenEndOfInput(t *testing.T) {
	c := NewCursor("")
	_, err := c.NextToken()
	perrErr, ok := err.(*perr.Error)
	if !ok || perrErr.Kind != perr.EndOfInput {
		t.Fatalf("got %v, want EndOfInput", err)
	}
}

func TestNextTokenSkipsLeadingSpace(t *testing.T) {
	c := NewCursor("   x")
	tok, err := c.NextToken()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok.Char != 'x' {
		t.Errorf("got %+v, want 'x'", tok)
	}
}

func TestArgumentSingleToken(t *testing.T) {
	c := NewCursor("x")
	arg, err := c.Argument()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if arg.Kind != token.ArgToken || arg.Token.Char != 'x' {
		t.Errorf("got %+v, want single token 'x'", arg)
	}
}

func TestArgumentGroup(t *testing.T) {
	c := NewCursor("{ab}c")
	arg, err := c.Argument()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if arg.Kind != token.ArgGroup || arg.Group != "ab" {
		t.Errorf("got %+v, want group 'ab'", arg)
	}
	if c.Rest() != "c" {
		t.Errorf("rest = %q, want 'c'", c.Rest())
	}
}

func TestArgumentGroupNested(t *testing.T) {
	c := NewCursor("{a{b}c}d")
	arg, err := c.Argument()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if arg.Group != "a{b}c" {
		t.Errorf("got %q, want 'a{b}c'", arg.Group)
	}
	if c.Rest() != "d" {
		t.Errorf("rest = %q, want 'd'", c.Rest())
	}
}

func TestArgumentGroupUnbalanced(t *testing.T) {
	c := NewCursor("{ab")
	_, err := c.Argument()
	perrErr, ok := err.(*perr.Error)
	if !ok || perrErr.Kind != perr.UnbalancedGroup {
		t.Fatalf("got %v, want UnbalancedGroup", err)
	}
}

func TestOptionalArgumentPresent(t *testing.T) {
	c := NewCursor("[3]{x}")
	body, ok, err := c.OptionalArgument()
	if err != nil || !ok || body != "3" {
		t.Fatalf("got %q, %v, %v, want '3', true, nil", body, ok, err)
	}
	if c.Rest() != "{x}" {
		t.Errorf("rest = %q", c.Rest())
	}
}

func TestOptionalArgumentAbsentLeavesCursorUntouched(t *testing.T) {
	c := NewCursor("  {x}")
	_, ok, err := c.OptionalArgument()
	if err != nil || ok {
		t.Fatalf("got ok=%v err=%v, want false, nil", ok, err)
	}
	if c.Pos() != 0 {
		t.Errorf("cursor moved to %d, want 0 (untouched)", c.Pos())
	}
}

func TestGroupContentSimpleBraces(t *testing.T) {
	c := NewCursor("inner}rest")
	body, err := c.GroupContent("{", "}")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if body != "inner" {
		t.Errorf("got %q, want 'inner'", body)
	}
	if c.Rest() != "rest" {
		t.Errorf("rest = %q, want 'rest'", c.Rest())
	}
}

func TestGroupContentEnvironmentMarkers(t *testing.T) {
	c := NewCursor(`a & b \\ c & d\end{matrix}tail`)
	body, err := c.GroupContent(`\begin{matrix}`, `\end{matrix}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if body != `a & b \\ c & d` {
		t.Errorf("got %q", body)
	}
	if c.Rest() != "tail" {
		t.Errorf("rest = %q, want 'tail'", c.Rest())
	}
}

func TestGroupContentNestedEnvironment(t *testing.T) {
	c := NewCursor(`\begin{matrix}x\end{matrix}\end{matrix}tail`)
	body, err := c.GroupContent(`\begin{matrix}`, `\end{matrix}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if body != `\begin{matrix}x\end{matrix}` {
		t.Errorf("got %q", body)
	}
	if c.Rest() != "tail" {
		t.Errorf("rest = %q, want 'tail'", c.Rest())
	}
}

func TestGroupContentUnbalanced(t *testing.T) {
	c := NewCursor("a{b")
	_, err := c.GroupContent("{", "}")
	perrErr, ok := err.(*perr.Error)
	if !ok || perrErr.Kind != perr.UnbalancedGroup {
		t.Fatalf("got %v, want UnbalancedGroup", err)
	}
}

func TestUnsignedInteger(t *testing.T) {
	c := NewCursor("123abc")
	v, err := c.UnsignedInteger()
	if err != nil || v != 123 {
		t.Fatalf("got %v, %v, want 123, nil", v, err)
	}
	if c.Rest() != "abc" {
		t.Errorf("rest = %q", c.Rest())
	}
}

func TestUnsignedIntegerRequiresDigit(t *testing.T) {
	c := NewCursor("abc")
	_, err := c.UnsignedInteger()
	perrErr, ok := err.(*perr.Error)
	if !ok || perrErr.Kind != perr.Number {
		t.Fatalf("got %v, want Number", err)
	}
}
