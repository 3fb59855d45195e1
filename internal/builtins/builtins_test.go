package builtins

import (
	"github.com/birdiescript/birdie/internal/token"
	"github.com/birdiescript/birdie/internal/value"
)

// fakeMachine is a minimal value.Machine standing in for interp.Context,
// enough to drive builtins handlers in isolation (grounded on the same
// technique internal/ops/arith_test.go uses for the Operator Table).
type fakeMachine struct {
	stack []value.Value
	vars  map[string]value.Value
}

func newFakeMachine(vs ...value.Value) *fakeMachine {
	return &fakeMachine{stack: append([]value.Value(nil), vs...), vars: map[string]value.Value{}}
}

func (f *fakeMachine) Push(v value.Value) { f.stack = append(f.stack, v) }

func (f *fakeMachine) Pop() (value.Value, error) {
	n := len(f.stack)
	if n == 0 {
		return value.NewInt(0), nil
	}
	v := f.stack[n-1]
	f.stack = f.stack[:n-1]
	return v, nil
}

func (f *fakeMachine) Peek() (value.Value, error) { return f.PeekAt(-1) }

func (f *fakeMachine) PeekAt(k int) (value.Value, error) {
	n := len(f.stack)
	if n == 0 {
		return value.NewInt(0), nil
	}
	idx := ((k % n) + n) % n
	return f.stack[idx], nil
}

func (f *fakeMachine) Depth() int { return len(f.stack) }

func (f *fakeMachine) Queue(v value.Value) { f.stack = append([]value.Value{v}, f.stack...) }

func (f *fakeMachine) Dequeue() (value.Value, error) {
	if len(f.stack) == 0 {
		return value.NewInt(0), nil
	}
	v := f.stack[0]
	f.stack = f.stack[1:]
	return v, nil
}

func (f *fakeMachine) PopTill(n int) []value.Value {
	if n < 0 || n >= len(f.stack) {
		return nil
	}
	popped := append([]value.Value(nil), f.stack[n:]...)
	f.stack = f.stack[:n]
	return popped
}

func (f *fakeMachine) Items() []value.Value { return append([]value.Value(nil), f.stack...) }

func (f *fakeMachine) ReplaceAll(items []value.Value) { f.stack = items }

func (f *fakeMachine) PushListMark()            {}
func (f *fakeMachine) PopListMark() (int, bool) { return 0, false }

func (f *fakeMachine) Define(name string, _ token.Tier, v value.Value) { f.vars[name] = v }
func (f *fakeMachine) Undefine(name string, _ token.Tier)              { delete(f.vars, name) }

func (f *fakeMachine) Dereference(name string, _ token.Tier) (value.Value, error) {
	if v, ok := f.vars[name]; ok {
		return v, nil
	}
	return nil, nil
}

func (f *fakeMachine) Apply(v value.Value) error {
	if b, ok := v.(*value.Builtin); ok {
		return b.Handler(f)
	}
	f.Push(v)
	return nil
}

func (f *fakeMachine) LoopBody(v value.Value) (bool, error) {
	if err := f.Apply(v); err != nil {
		return false, err
	}
	return false, nil
}

func (f *fakeMachine) BreakLoops(n int64) {}
func (f *fakeMachine) ExitScript()        {}
func (f *fakeMachine) Return()            {}
func (f *fakeMachine) Goto(n int64)       {}
func (f *fakeMachine) Label() int64       { return 0 }

func (f *fakeMachine) top() value.Value {
	if len(f.stack) == 0 {
		return nil
	}
	return f.stack[len(f.stack)-1]
}
