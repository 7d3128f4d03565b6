package engine

import (
	"strings"
	"testing"
)

// TestParseErrorFormat mirrors the teacher's CompilerError.Format tests: a
// message line, a source-context window, and a caret pointing at the
// failing byte, with and without ANSI coloring.
func TestParseErrorFormat(t *testing.T) {
	d := New(`x^`)
	_, _, err := drainUntilError(t, d)
	if err == nil {
		t.Fatal("expected a ParseError")
	}
	pe, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("expected *ParseError, got %T", err)
	}

	t.Run("plain", func(t *testing.T) {
		out := pe.Format(false)
		if !strings.Contains(out, pe.Context) {
			t.Errorf("expected context %q in output %q", pe.Context, out)
		}
		if !strings.Contains(out, "^") {
			t.Errorf("expected a caret in output %q", out)
		}
		if strings.Contains(out, "\033[") {
			t.Errorf("expected no ANSI codes in plain output %q", out)
		}
	})

	t.Run("color", func(t *testing.T) {
		out := pe.Format(true)
		if !strings.Contains(out, "\033[1;31m") || !strings.Contains(out, "\033[0m") {
			t.Errorf("expected ANSI bold-red caret in colored output %q", out)
		}
	})

	t.Run("Error() is single-line", func(t *testing.T) {
		if strings.Contains(pe.Error(), "\n") {
			t.Errorf("Error() should be single-line, got %q", pe.Error())
		}
	})
}

// TestParseErrorFormatNoContext checks the degenerate case where Context
// is empty (e.g. a synthetic error never routed through buildParseError).
func TestParseErrorFormatNoContext(t *testing.T) {
	pe := &ParseError{Kind: 0}
	if got, want := pe.Format(false), pe.Error(); got != want {
		t.Errorf("Format with empty Context should equal Error(), got %q want %q", got, want)
	}
}

func drainUntilError(t *testing.T, d *Driver) (bool, bool, error) {
	t.Helper()
	for {
		_, ok, err := d.Next()
		if err != nil {
			return false, false, err
		}
		if !ok {
			return false, false, nil
		}
	}
}
