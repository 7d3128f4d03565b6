// Package engine implements the parser driver of spec §4.4: a lazy,
// pull-based state machine that turns a math-mode input string into a flat
// event.Event stream, one item per call to Next.
//
// The driver mirrors the teacher's cursor-based combinator style
// (internal/parser/cursor.go in the source this was adapted from): no
// recursive-descent call stack models nesting, because nesting is
// unbounded and the stream is produced lazily. Instead two explicit
// stacks carry the state a recursive implementation would keep on the Go
// call stack: the instruction stack (what still needs to be produced) and
// the group stack (which structural groups are currently open).
package engine

import (
	"github.com/cwbudde/go-texmath/internal/perr"
	"github.com/cwbudde/go-texmath/pkg/event"
)

// Driver is the engine's pull-based state machine. The zero value is not
// usable; build one with New.
type Driver struct {
	input string

	instructions *stack

	// groups tracks the kind of every structural group currently open, so
	// that an End's sibling is known and so that exhausted pending
	// fragments can be checked for balance (spec §4.5).
	groups []event.GroupKind

	// staging accumulates the events/pending-fragments for the atom
	// currently under construction, before checkSuffixes decides how
	// they attach to the instruction stack (spec §4.4, "staging buffer").
	staging []instruction

	// failed is set once the driver has yielded its terminal ParseError;
	// every subsequent Next call returns (nil, false, nil).
	failed bool

	// allowAlign mirrors the current fragment's allowAlign flag for the
	// duration of one stepAtom call, so primitive handlers that are not
	// passed it directly (e.g. the row separator \\) can still honor
	// invariant 3 (spec §3) without threading an extra parameter through
	// every handler signature.
	allowAlign bool

	// aboveBelowDefault is the "above-below-default" state flag of spec §3:
	// set by the atom just staged (large operators with stacked limits by
	// default; accent-family primitives compose their own Script directly
	// and never consult this), consumed by checkSuffixes to decide whether
	// a following sub/superscript gets ScriptPosition AboveBelow or
	// Adjacent. Reset at the start of every stepAtom call.
	aboveBelowDefault bool

	// opts holds the functional-option configuration this Driver was built
	// with (spec §9, ambient "Configuration" convention).
	opts Options
}

// New constructs a Driver over input, ready to produce the event for a
// single top-level math expression.
func New(input string, opts ...Option) *Driver {
	d := &Driver{
		input:        input,
		instructions: newStack(16),
		groups:       make([]event.GroupKind, 0, 8),
	}
	for _, opt := range opts {
		opt(&d.opts)
	}
	d.groups = append(d.groups, event.GroupNormal)
	d.instructions.push(pendingInstr(input, 0, false))
	return d
}

// Next produces the next event in the stream. ok is false once the
// sequence is exhausted; a non-nil err is always the single terminal
// *ParseError the driver ever yields, after which ok is false on every
// later call too.
func (d *Driver) Next() (event.Event, bool, error) {
	if d.failed {
		return nil, false, nil
	}

	ev, ok, err := d.advance()
	if err != nil {
		d.failed = true
		return nil, false, err
	}
	if !ok {
		return nil, false, nil
	}
	return ev, true, nil
}

// advance drains exhausted pending fragments (checking group balance as it
// goes) until the instruction stack's top is an event to emit, or parses
// the next atom from the current pending fragment and emits its first
// produced event.
func (d *Driver) advance() (event.Event, bool, error) {
	for {
		top, ok := d.instructions.top()
		if !ok {
			return nil, false, nil
		}
		if top.isEvent {
			d.instructions.pop()
			switch ev := top.ev.(type) {
			case event.Begin:
				d.pushGroup(ev.Kind)
			case event.End:
				d.popGroup()
			}
			return top.ev, true, nil
		}
		if top.pending == "" {
			if err := d.closeFragment(top); err != nil {
				return nil, false, err
			}
			d.instructions.pop()
			continue
		}

		// Parse one atom's worth of instructions from the current
		// fragment, stage them, then splice the staged instructions onto
		// the instruction stack (suffix.go) and loop back around.
		if err := d.stepAtom(); err != nil {
			return nil, false, err
		}
	}
}

// closeFragment validates that a pending fragment, now exhausted, does not
// leave an unmatched structural group still open (spec §4.5): the group
// stack must still be sitting at exactly the level this fragment's own
// enclosing Begin pushed, i.e. top-of-stack must still be wantGroup. The
// level itself is popped later, when the matching End event is produced
// (see popGroup) — not here, since a fragment's body may legitimately
// contain zero pending-text owners of its own (e.g. a run of leaf events)
// between a Begin and its End.
func (d *Driver) closeFragment(top instruction) error {
	if !top.hasGroup {
		return nil
	}
	if len(d.groups) == 0 || d.groups[len(d.groups)-1] != top.wantGroup {
		expect := ""
		if len(d.groups) > 0 {
			expect = expectedCloser(d.groups[len(d.groups)-1])
		} else {
			expect = expectedCloser(top.wantGroup)
		}
		return buildParseError(d.input, top.base, perr.Newf(perr.UnbalancedGroup, expect))
	}
	return nil
}

// pushGroup opens a structural group: records it on the group stack.
func (d *Driver) pushGroup(kind event.GroupKind) {
	d.groups = append(d.groups, kind)
}

// popGroup closes the structural group most recently pushed, when its
// matching End event is produced. Every End the dispatcher ever stages is
// paired with exactly one earlier Begin by construction, so this never
// underflows in practice; the outermost implicit group pushed by New is
// never targeted by an End (spec §4.5) and is left untouched until the
// Driver itself is dropped.
func (d *Driver) popGroup() {
	if len(d.groups) > 1 {
		d.groups = d.groups[:len(d.groups)-1]
	}
}

// fail is a convenience for handlers to build a terminal error at a given
// absolute byte offset.
func (d *Driver) fail(at int, err error) error {
	return buildParseError(d.input, at, err)
}
