package lexer

import (
	"testing"

	"github.com/cwbudde/go-texmath/internal/perr"
	"github.com/cwbudde/go-texmath/pkg/event"
)

func TestDimensionForms(t *testing.T) {
	cases := []struct {
		in     string
		value  float64
		unit   event.Unit
		rest   string
	}{
		{"3pt", 3, event.UnitPt, ""},
		{"3.5em", 3.5, event.UnitEm, ""},
		{"-2.ex", -2, event.UnitEx, ""},
		{".5mu rest", 0.5, event.UnitMu, "rest"},
		{"+1in", 1, event.UnitIn, ""},
	}
	for _, c := range cases {
		cur := NewCursor(c.in)
		amt, err := cur.Dimension()
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", c.in, err)
		}
		if amt.Value != c.value || amt.Unit != c.unit {
			t.Errorf("%q: got %+v, want {%v %v}", c.in, amt, c.value, c.unit)
		}
		if cur.Rest() != c.rest {
			t.Errorf("%q: rest = %q, want %q", c.in, cur.Rest(), c.rest)
		}
	}
}

func TestDimensionMissingUnit(t *testing.T) {
	c := NewCursor("3")
	_, err := c.Dimension()
	perrErr, ok := err.(*perr.Error)
	if !ok || perrErr.Kind != perr.DimensionUnit {
		t.Fatalf("got %v, want DimensionUnit", err)
	}
}

func TestDimensionMissingNumber(t *testing.T) {
	c := NewCursor("pt")
	_, err := c.Dimension()
	perrErr, ok := err.(*perr.Error)
	if !ok || perrErr.Kind != perr.Dimension {
		t.Fatalf("got %v, want Dimension", err)
	}
}

func TestGlueWithPlusMinus(t *testing.T) {
	c := NewCursor("3pt plus 1pt minus 2pt")
	amt, plus, minus, hasPlus, hasMinus, err := c.Glue()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if amt.Value != 3 || !hasPlus || plus.Value != 1 || !hasMinus || minus.Value != 2 {
		t.Errorf("got amt=%+v plus=%+v(%v) minus=%+v(%v)", amt, plus, hasPlus, minus, hasMinus)
	}
}

func TestGlueWithoutPlusMinus(t *testing.T) {
	c := NewCursor("3pt")
	_, _, _, hasPlus, hasMinus, err := c.Glue()
	if err != nil || hasPlus || hasMinus {
		t.Fatalf("got hasPlus=%v hasMinus=%v err=%v", hasPlus, hasMinus, err)
	}
}
