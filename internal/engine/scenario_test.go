package engine

import (
	"reflect"
	"testing"

	"github.com/cwbudde/go-texmath/internal/perr"
	"github.com/cwbudde/go-texmath/pkg/event"
)

// drainAll runs a Driver to completion and returns every event it
// produced, or the terminal error if it failed.
func drainAll(t *testing.T, d *Driver) ([]event.Event, error) {
	t.Helper()
	var evs []event.Event
	for {
		ev, ok, err := d.Next()
		if err != nil {
			return evs, err
		}
		if !ok {
			return evs, nil
		}
		evs = append(evs, ev)
	}
}

func mustParse(t *testing.T, input string) []event.Event {
	t.Helper()
	evs, err := drainAll(t, New(input))
	if err != nil {
		t.Fatalf("parsing %q: unexpected error: %v", input, err)
	}
	return evs
}

// TestScenarioBarAccent is end-to-end scenario 1 of spec §8: the accent
// family composes as a Script(Superscript, AboveBelow) pair, base first
// (group-wrapped), the combining glyph bare and second.
func TestScenarioBarAccent(t *testing.T) {
	got := mustParse(t, `\bar{y}`)
	want := []event.Event{
		event.Script{Type: event.Superscript, Position: event.AboveBelow},
		event.Begin{Kind: event.GroupNormal},
		event.Content{Role: event.RoleIdentifier, Char: 'y'},
		event.End{},
		event.Content{Role: event.RoleOrdinary, Char: '̄'},
	}
	assertEventsEqual(t, got, want)
}

// TestScenarioSubSuperscriptCanonicalOrder is scenario 2: regardless of
// which suffix the source wrote first, the emitted child order is always
// base, subscript, superscript (invariant 4, spec §8).
func TestScenarioSubSuperscriptCanonicalOrder(t *testing.T) {
	got := mustParse(t, `a^{1+3}_2`)
	want := []event.Event{
		event.Script{Type: event.SubSuperscript, Position: event.Adjacent},
		event.Content{Role: event.RoleIdentifier, Char: 'a'},
		event.Content{Role: event.RoleNumber, View: "2"},
		event.Begin{Kind: event.GroupNormal},
		event.Content{Role: event.RoleNumber, View: "1"},
		event.Content{Role: event.RoleBinaryOp, Char: '+'},
		event.Content{Role: event.RoleNumber, View: "3"},
		event.End{},
	}
	assertEventsEqual(t, got, want)
}

// TestScenarioFractionWithScripts is scenario 3: a fraction's own
// sub/superscript composes around the whole Visual, and each fraction
// argument is its own group-wrapped child.
func TestScenarioFractionWithScripts(t *testing.T) {
	got := mustParse(t, `\frac{1}{2}_2^4`)
	want := []event.Event{
		event.Script{Type: event.SubSuperscript, Position: event.Adjacent},
		event.Visual{Kind: event.VisualFraction},
		event.Begin{Kind: event.GroupNormal},
		event.Content{Role: event.RoleNumber, View: "1"},
		event.End{},
		event.Begin{Kind: event.GroupNormal},
		event.Content{Role: event.RoleNumber, View: "2"},
		event.End{},
		event.Content{Role: event.RoleNumber, View: "2"},
		event.Content{Role: event.RoleNumber, View: "4"},
	}
	assertEventsEqual(t, got, want)
}

// TestScenarioNumber is scenario 4: a maximal digit run is one Number leaf.
func TestScenarioNumber(t *testing.T) {
	got := mustParse(t, `123`)
	want := []event.Event{event.Content{Role: event.RoleNumber, View: "123"}}
	assertEventsEqual(t, got, want)
}

// TestScenarioNestedSubscript is scenario 5: a subscript argument is
// itself a group whose body can carry its own atom-with-subscript.
func TestScenarioNestedSubscript(t *testing.T) {
	got := mustParse(t, `a_{5_5}`)
	want := []event.Event{
		event.Script{Type: event.Subscript, Position: event.Adjacent},
		event.Content{Role: event.RoleIdentifier, Char: 'a'},
		event.Begin{Kind: event.GroupNormal},
		event.Script{Type: event.Subscript, Position: event.Adjacent},
		event.Content{Role: event.RoleNumber, View: "5"},
		event.Content{Role: event.RoleNumber, View: "5"},
		event.End{},
	}
	assertEventsEqual(t, got, want)
}

// TestScenarioLeftRight is scenario 6: \left(...\right) wraps its body in
// a single LeftRight group carrying both delimiters.
func TestScenarioLeftRight(t *testing.T) {
	got := mustParse(t, `\left( x \right)`)
	want := []event.Event{
		event.Begin{Kind: event.GroupLeftRight, Open: '(', Close: ')', HasOpen: true, HasClose: true},
		event.Content{Role: event.RoleIdentifier, Char: 'x'},
		event.End{},
	}
	assertEventsEqual(t, got, want)
}

func TestScenarioNegatives(t *testing.T) {
	cases := []struct {
		name  string
		input string
		kind  perr.Kind
	}{
		{"double subscript", `a__b`, perr.DoubleSubscript},
		{"stray closing brace", `}`, perr.UnbalancedGroup},
		{"unknown primitive", `\unknown`, perr.UnknownPrimitive},
		{"unknown color", `\color{not-a-color}x`, perr.UnknownColor},
		{"control sequence as glue argument", `\hspace\quad`, perr.ControlSequenceAsArgument},
		{"control sequence as genfrac thickness", `\genfrac{(}{)}\quad{0}{1}{2}`, perr.ControlSequenceAsArgument},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := drainAll(t, New(tc.input))
			if err == nil {
				t.Fatalf("expected an error parsing %q", tc.input)
			}
			pe, ok := err.(*ParseError)
			if !ok {
				t.Fatalf("expected *ParseError, got %T", err)
			}
			if pe.Kind != tc.kind {
				t.Errorf("parsing %q: got kind %v, want %v", tc.input, pe.Kind, tc.kind)
			}
		})
	}
}

// TestGroupBalanceSurvivesSyntheticWrappers guards against a regression
// where a primitive's own Begin/End pair (one it stages itself, not one
// owned by a captured pending-text fragment — e.g. a scoped font command
// or a multi-glyph relation) leaves its level on the driver's group stack
// forever, corrupting every balance check for the rest of the document.
func TestGroupBalanceSurvivesSyntheticWrappers(t *testing.T) {
	cases := []string{
		`\mathbf{x}y{z}`,
		`\mathbf{x}{y}`,
		`\coloneqq y{z}`,
		`\textcolor{Red}{x}{y}`,
		`\tfrac{1}{2}{y}`,
		`\not{x}{y}`,
		`\bar{x}{y}`,
	}
	for _, in := range cases {
		t.Run(in, func(t *testing.T) {
			d := New(in)
			_, err := drainAll(t, d)
			if err != nil {
				t.Fatalf("parsing %q: unexpected error: %v", in, err)
			}
			if len(d.groups) != 1 {
				t.Errorf("parsing %q left %d group levels open, want 1 (the implicit outer level)", in, len(d.groups))
			}
		})
	}
}

// TestLargeOperatorStacksLimits checks that a large operator whose
// above-below-default flag is set composes a following suffix with
// ScriptPosition AboveBelow, while one without it stays Adjacent.
func TestLargeOperatorStacksLimits(t *testing.T) {
	got := mustParse(t, `\sum_0^n`)
	want := []event.Event{
		event.Script{Type: event.SubSuperscript, Position: event.AboveBelow},
		event.Content{Role: event.RoleLargeOp, Char: '∑'},
		event.Content{Role: event.RoleNumber, View: "0"},
		event.Content{Role: event.RoleIdentifier, Char: 'n'},
	}
	assertEventsEqual(t, got, want)

	got = mustParse(t, `\int_0^1`)
	want = []event.Event{
		event.Script{Type: event.SubSuperscript, Position: event.Adjacent},
		event.Content{Role: event.RoleLargeOp, Char: '∫'},
		event.Content{Role: event.RoleNumber, View: "0"},
		event.Content{Role: event.RoleNumber, View: "1"},
	}
	assertEventsEqual(t, got, want)
}

func assertEventsEqual(t *testing.T, got, want []event.Event) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d events, want %d\n got: %#v\nwant: %#v", len(got), len(want), got, want)
	}
	for i := range got {
		if !reflect.DeepEqual(got[i], want[i]) {
			t.Errorf("event %d: got %#v, want %#v", i, got[i], want[i])
		}
	}
}
