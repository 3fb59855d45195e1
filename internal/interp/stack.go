package interp

import "github.com/birdiescript/birdie/internal/value"

// Stack is the operand stack shared by a Context and every subcontext it
// spawns for a block invocation (spec §4.4: "operand stack (grows at the
// right)"). It is a pointer-held slice so that a block body's subcontext
// and its caller observe the same pushes/pops — core.py achieves the same
// aliasing for free because Python lists are reference types.
type Stack struct {
	items    []value.Value
	listMark []int // spec §4.4: "list-mark stack recording positions where [ was executed"
}

func newStack() *Stack { return &Stack{} }

func (s *Stack) Push(v value.Value) { s.items = append(s.items, v) }

// Queue prepends, used by the Shelve shuffle (spec §4.4: "queue(v)
// prepends").
func (s *Stack) Queue(v value.Value) {
	s.items = append([]value.Value{v}, s.items...)
}

// Pop removes and returns the top; popping empty returns Int(0)
// (spec §4.4). No warning is emitted.
func (s *Stack) Pop() (value.Value, error) {
	n := len(s.items)
	if n == 0 {
		return value.NewInt(0), nil
	}
	v := s.items[n-1]
	s.items = s.items[:n-1]
	s.adjustListMarks(n)
	return v, nil
}

// Dequeue pops from the front (core.py: BContext.dequeue / pop(0)).
func (s *Stack) Dequeue() (value.Value, error) {
	n := len(s.items)
	if n == 0 {
		return value.NewInt(0), nil
	}
	v := s.items[0]
	s.items = s.items[1:]
	s.adjustListMarks(n)
	return v, nil
}

// Peek reads by index; k=-1 is the top, and negative/large indices wrap
// modulo stack size (spec §4.4).
func (s *Stack) Peek(k int) (value.Value, error) {
	if len(s.items) == 0 {
		s.Push(value.NewInt(0))
	}
	n := len(s.items)
	idx := ((k % n) + n) % n
	return s.items[idx], nil
}

func (s *Stack) Depth() int { return len(s.items) }

// PopTill removes all items above index n, returning them in original
// order (spec §4.4: "removes all items above index n").
func (s *Stack) PopTill(n int) []value.Value {
	if n < 0 {
		n += len(s.items)
	}
	if n < 0 {
		n = 0
	}
	if n >= len(s.items) {
		return nil
	}
	popped := append([]value.Value(nil), s.items[n:]...)
	s.items = s.items[:n]
	s.adjustListMarks(n + len(popped))
	return popped
}

// ReplaceAll swaps the stack contents wholesale (used by sort/shuffle
// style builtins that want to rewrite the whole stack).
func (s *Stack) ReplaceAll(items []value.Value) {
	old := len(s.items)
	s.items = items
	s.adjustListMarks(old)
}

func (s *Stack) Items() []value.Value { return append([]value.Value(nil), s.items...) }

// PushListMark records the stack depth at the moment `[` executed.
func (s *Stack) PushListMark() { s.listMark = append(s.listMark, len(s.items)) }

// PopListMark removes and returns the most recent list mark; ok is false
// when no mark is set. The stack items above the mark are left in place.
func (s *Stack) PopListMark() (int, bool) {
	n := len(s.listMark)
	if n == 0 {
		return 0, false
	}
	m := s.listMark[n-1]
	s.listMark = s.listMark[:n-1]
	return m, true
}

// adjustListMarks decrements every list-mark at or above the old stack
// length whenever the stack shortens (spec §4.4: adjust_leftbs).
func (s *Stack) adjustListMarks(oldLen int) {
	d := oldLen - len(s.items)
	if d <= 0 {
		return
	}
	for i := len(s.listMark) - 1; i >= 0; i-- {
		if s.listMark[i] < oldLen {
			break
		}
		s.listMark[i] -= d
	}
}
