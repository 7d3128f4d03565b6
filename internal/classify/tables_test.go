package classify

import (
	"testing"
	"unicode"
)

func TestIsOperator(t *testing.T) {
	cases := []struct {
		r    rune
		want bool
	}{
		{'!', true},
		{'a', false},
		{'0', false},
		{0x2248, false}, // ≈ is a relation, not in the generic operator table
	}
	for _, c := range cases {
		if got := IsOperator(c.r); got != c.want {
			t.Errorf("IsOperator(%q) = %v, want %v", c.r, got, c.want)
		}
	}
}

func TestIsBinaryRelationDisjointFromLetters(t *testing.T) {
	for _, r := range []rune{'a', 'Z', 'α'} {
		if IsBinary(r) {
			t.Errorf("IsBinary(%q) = true, want false", r)
		}
		if IsRelation(r) {
			t.Errorf("IsRelation(%q) = true, want false", r)
		}
	}
}

func TestIsRelation(t *testing.T) {
	for _, r := range []rune{'=', '<', '>', 0x2264, 0x2208} {
		if !IsRelation(r) {
			t.Errorf("IsRelation(%q) = false, want true", r)
		}
	}
}

func TestIsDelimiterChar(t *testing.T) {
	for _, r := range []rune{'(', ')', '[', ']', '|', 0x27E8, 0x27E9} {
		if !IsDelimiterChar(r) {
			t.Errorf("IsDelimiterChar(%q) = false, want true", r)
		}
	}
	if IsDelimiterChar('a') {
		t.Errorf("IsDelimiterChar('a') = true, want false")
	}
}

func TestDelimiterRole(t *testing.T) {
	role, ok := DelimiterRole('(')
	if !ok {
		t.Fatalf("expected '(' to be a known delimiter")
	}
	if role != 0 { // DelimiterOpen
		t.Errorf("DelimiterRole('(') = %v, want DelimiterOpen", role)
	}
	if _, ok := DelimiterRole('a'); ok {
		t.Errorf("expected 'a' to not be a delimiter")
	}
}

func TestDelimiterByName(t *testing.T) {
	c, ok := DelimiterByName("langle")
	if !ok || c != 0x27E8 {
		t.Errorf("DelimiterByName(langle) = %q, %v, want ⟨, true", c, ok)
	}
	if _, ok := DelimiterByName("notadelim"); ok {
		t.Errorf("expected notadelim to be unknown")
	}
}

func TestIsPrimitiveColor(t *testing.T) {
	for _, name := range []string{"red", "Red", "RED", "blue"} {
		if !IsPrimitiveColor(name) {
			t.Errorf("IsPrimitiveColor(%q) = false, want true", name)
		}
	}
	if IsPrimitiveColor("not-a-color") {
		t.Errorf("IsPrimitiveColor(not-a-color) = true, want false")
	}
}

func TestSymbolIsUnionOfTables(t *testing.T) {
	for _, r := range []rune{'!', '+', '=', '('} {
		if !unicode.Is(Symbol, r) {
			t.Errorf("Symbol does not contain %q, expected union membership", r)
		}
	}
}
