package engine

import "github.com/cwbudde/go-texmath/pkg/event"

// instruction is the sum type described in spec §3: either an event ready
// to be emitted, or a fragment of input still waiting to be parsed. The
// instruction stack and the staging buffer are both built from these.
type instruction struct {
	isEvent bool
	ev      event.Event

	// pending and base are valid when !isEvent: pending is the unparsed
	// remainder of this fragment, and base is its absolute byte offset
	// into the original input (tracked explicitly, rather than via
	// pointer arithmetic, because Go string slices already share the
	// backing array with their parent — no unsafe is needed, just
	// bookkeeping).
	pending string
	base    int

	// allowAlign is true when this fragment is the body of a group whose
	// kind permits Alignment/NewLine events (spec invariant 3).
	allowAlign bool

	// hasGroup marks a pending fragment as "owning" one group-stack level:
	// when its text is fully consumed, the top group-stack entry must still
	// equal wantGroup, or the input is unbalanced (spec §4.5). The entry
	// itself is popped later, by the matching End event.
	hasGroup  bool
	wantGroup event.GroupKind
}

func eventInstr(ev event.Event) instruction {
	return instruction{isEvent: true, ev: ev}
}

func pendingInstr(text string, base int, allowAlign bool) instruction {
	return instruction{pending: text, base: base, allowAlign: allowAlign}
}

// stack is a simple LIFO of instructions; the top (last element) is the
// next thing to produce.
type stack struct {
	items []instruction
}

func newStack(capacity int) *stack {
	return &stack{items: make([]instruction, 0, capacity)}
}

func (s *stack) push(i instruction) { s.items = append(s.items, i) }

func (s *stack) pop() (instruction, bool) {
	if len(s.items) == 0 {
		return instruction{}, false
	}
	i := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return i, true
}

// top returns a copy of the topmost instruction and whether the stack is
// non-empty. Callers must use setTop to write back any change, and must
// not retain a pointer into the stack across a push/pushAll (which may
// reallocate the backing array).
func (s *stack) top() (instruction, bool) {
	if len(s.items) == 0 {
		return instruction{}, false
	}
	return s.items[len(s.items)-1], true
}

// setTop overwrites the topmost instruction in place.
func (s *stack) setTop(i instruction) {
	s.items[len(s.items)-1] = i
}

func (s *stack) len() int { return len(s.items) }

// pushAll pushes items so that items[0] becomes the new top (i.e. the
// next one produced), matching the teacher/original's
// "extend(buffer.drain(..).rev())" staging-to-stack transfer.
func (s *stack) pushAll(items []instruction) {
	for i := len(items) - 1; i >= 0; i-- {
		s.push(items[i])
	}
}
