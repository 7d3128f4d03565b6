package engine

import (
	"testing"

	"github.com/cwbudde/go-texmath/pkg/event"
)

// TestNewLine exercises the \\ row-separator primitive: permitted inside
// an alignment-enabled group (invariant 3, spec §3), rejected elsewhere.
func TestNewLine(t *testing.T) {
	t.Run("inside matrix environment", func(t *testing.T) {
		d := New(`\begin{matrix}a\\b\end{matrix}`)
		events, err := collectEvents(t, d)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !containsNewLine(events) {
			t.Errorf("expected a NewLine event, got %#v", events)
		}
	})

	t.Run("rejected at top level", func(t *testing.T) {
		d := New(`a\\b`)
		if _, err := collectEvents(t, d); err == nil {
			t.Fatal("expected an error for \\\\ outside an alignment group")
		}
	})

	t.Run("optional star and dimension argument are consumed", func(t *testing.T) {
		d := New(`\begin{matrix}a\\*[2pt]b\end{matrix}`)
		events, err := collectEvents(t, d)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !containsNewLine(events) {
			t.Errorf("expected a NewLine event, got %#v", events)
		}
	})
}

func collectEvents(t *testing.T, d *Driver) ([]event.Event, error) {
	t.Helper()
	var events []event.Event
	for {
		ev, ok, err := d.Next()
		if err != nil {
			return events, err
		}
		if !ok {
			return events, nil
		}
		events = append(events, ev)
	}
}

func containsNewLine(events []event.Event) bool {
	for _, ev := range events {
		if _, ok := ev.(event.NewLine); ok {
			return true
		}
	}
	return false
}
