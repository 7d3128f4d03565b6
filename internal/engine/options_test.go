package engine

import "testing"

// TestOptions exercises each functional option's effect on Driver
// behavior, the same "build with option, assert the switched behavior"
// shape the teacher uses in lexer_options_test.go.
func TestOptions(t *testing.T) {
	t.Run("default configuration", func(t *testing.T) {
		d := New(`\relax`)
		checkBoolField(t, d.opts.invalidateRelax, false, "invalidateRelax")
		checkBoolField(t, d.opts.allowAlignmentInLeftRight, false, "allowAlignmentInLeftRight")
		if d.opts.trace != nil {
			t.Error("trace should be nil by default")
		}
	})

	t.Run("WithInvalidateRelax(false) is a no-op", func(t *testing.T) {
		d := New(`\relax`, WithInvalidateRelax(false))
		_, ok, err := d.Next()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ok {
			t.Fatal("expected \\relax to produce no event")
		}
	})

	t.Run("WithInvalidateRelax(true) rejects \\relax", func(t *testing.T) {
		d := New(`\relax`, WithInvalidateRelax(true))
		_, ok, err := d.Next()
		if ok {
			t.Fatal("expected no event")
		}
		if err == nil {
			t.Fatal("expected an error")
		}
	})

	t.Run("WithAlignmentInLeftRight(true) permits & inside \\left\\right", func(t *testing.T) {
		d := New(`\left(a&b\right)`, WithAlignmentInLeftRight(true))
		if err := drainToEnd(t, d); err != nil {
			t.Fatalf("unexpected error with alignment enabled: %v", err)
		}
	})

	t.Run("WithAlignmentInLeftRight(false) rejects & inside \\left\\right", func(t *testing.T) {
		d := New(`\left(a&b\right)`, WithAlignmentInLeftRight(false))
		if err := drainToEnd(t, d); err == nil {
			t.Fatal("expected an error with alignment disabled")
		}
	})

	t.Run("WithTrace records one message per atom", func(t *testing.T) {
		var traced []string
		d := New(`ab`, WithTrace(func(msg string) { traced = append(traced, msg) }))
		if err := drainToEnd(t, d); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(traced) != 2 || traced[0] != "a" || traced[1] != "b" {
			t.Errorf("unexpected trace sequence: %v", traced)
		}
	})
}

func checkBoolField(t *testing.T, actual, expected bool, fieldName string) {
	t.Helper()
	if actual != expected {
		t.Errorf("%s should be %v, got %v", fieldName, expected, actual)
	}
}

// drainToEnd pulls every event from d until exhaustion or error, discarding
// the events themselves: callers here only care whether parsing succeeded.
func drainToEnd(t *testing.T, d *Driver) error {
	t.Helper()
	for {
		_, ok, err := d.Next()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}
}
