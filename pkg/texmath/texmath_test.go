package texmath

import (
	"fmt"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

// TestParseSnapshots snapshots the event stream for representative LaTeX
// snippets (fraction, environment, script composition, error path), the
// direct analogue of the teacher's TestDWScriptFixtures program-fixture
// snapshots (internal/interp/fixture_test.go), scaled down to this
// parser's much smaller surface.
func TestParseSnapshots(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"fraction", `\frac{1}{2}`},
		{"environment_matrix", `\begin{pmatrix}a&b\\c&d\end{pmatrix}`},
		{"script_composition", `x_i^2`},
		{"accent_and_font", `\mathbf{\hat{x}}`},
		{"color_state_change", `\color{Red}x+y`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			events, err := Parse(tc.input)
			if err != nil {
				t.Fatalf("unexpected error parsing %q: %v", tc.input, err)
			}
			snaps.MatchSnapshot(t, fmt.Sprintf("%s_events", tc.name), fmt.Sprintf("%#v", events))
		})
	}
}

// TestParseErrorSnapshot snapshots the formatted ParseError for a
// representative failure, covering the error path the success-only cases
// above don't exercise.
func TestParseErrorSnapshot(t *testing.T) {
	_, err := Parse(`x_`)
	if err == nil {
		t.Fatal("expected a ParseError for an empty subscript")
	}
	pe, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	snaps.MatchSnapshot(t, "empty_subscript_error", pe.Format(false))
}

// TestParserOptions exercises the public Option wrappers end-to-end.
func TestParserOptions(t *testing.T) {
	t.Run("WithInvalidateRelax", func(t *testing.T) {
		if _, err := Parse(`\relax`, WithInvalidateRelax(true)); err == nil {
			t.Fatal("expected \\relax to be rejected")
		}
		if _, err := Parse(`\relax`, WithInvalidateRelax(false)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("WithTrace", func(t *testing.T) {
		var traced []string
		_, err := Parse(`xy`, WithTrace(func(msg string) { traced = append(traced, msg) }))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(traced) != 2 {
			t.Errorf("expected 2 trace messages, got %v", traced)
		}
	})
}

// TestParserStreaming exercises Next directly rather than the All/Parse
// convenience wrapper.
func TestParserStreaming(t *testing.T) {
	p := New(`ab`)
	var chars []rune
	for {
		ev, ok, err := p.Next()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !ok {
			break
		}
		_ = ev
		chars = append(chars, 'x')
	}
	if len(chars) != 2 {
		t.Errorf("expected 2 events, got %d", len(chars))
	}
}
