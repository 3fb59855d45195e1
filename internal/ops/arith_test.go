package ops

import (
	"testing"

	"github.com/birdiescript/birdie/internal/token"
	"github.com/birdiescript/birdie/internal/value"
)

// fakeMachine is a minimal value.Machine standing in for interp.Context,
// enough to drive the Operator Table's handlers without pulling in the
// dispatch loop (grounded on the teacher's vm_ops_test.go helper stack
// used to exercise bytecode ops in isolation).
type fakeMachine struct {
	stack    []value.Value
	vars     map[string]value.Value
	listMark []int

	label    int64
	gotoArg  int64
	breakN   int64
	exited   bool
	returned bool
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

func (f *fakeMachine) PushListMark() { f.listMark = append(f.listMark, len(f.stack)) }

func (f *fakeMachine) PopListMark() (int, bool) {
	n := len(f.listMark)
	if n == 0 {
		return 0, false
	}
	mark := f.listMark[n-1]
	f.listMark = f.listMark[:n-1]
	return mark, true
}

func (f *fakeMachine) Define(name string, _ token.Tier, v value.Value) { f.vars[name] = v }
func (f *fakeMachine) Undefine(name string, _ token.Tier)              { delete(f.vars, name) }

func (f *fakeMachine) Dereference(name string, _ token.Tier) (value.Value, error) {
	if v, ok := f.vars[name]; ok {
		return v, nil
	}
	return nil, nil
}

// Apply invokes a Builtin's handler directly (no Block support needed by
// the arithmetic/bitset tests that exercise it).
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

func (f *fakeMachine) BreakLoops(n int64) { f.breakN = n }
func (f *fakeMachine) ExitScript()        { f.exited = true }
func (f *fakeMachine) Return()            { f.returned = true }
func (f *fakeMachine) Goto(n int64)       { f.gotoArg = n }
func (f *fakeMachine) Label() int64       { return f.label }

func (f *fakeMachine) top() value.Value {
	if len(f.stack) == 0 {
		return nil
	}
	return f.stack[len(f.stack)-1]
}

func TestAddNum(t *testing.T) {
	m := newFakeMachine(value.NewInt(2), value.NewInt(3))
	if err := Add(m); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if got := m.top().String(); got != "5" {
		t.Fatalf("top = %q, want 5", got)
	}
}

func TestAddIntFloatCommonizes(t *testing.T) {
	m := newFakeMachine(value.NewInt(2), value.NewFloat(0.5))
	if err := Add(m); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if got := m.top().String(); got != "2.5" {
		t.Fatalf("top = %q, want 2.5", got)
	}
}

func TestAddListConcat(t *testing.T) {
	a := value.NewList([]value.Value{value.NewInt(1), value.NewInt(2)})
	b := value.NewList([]value.Value{value.NewInt(3)})
	m := newFakeMachine(a, b)
	if err := Add(m); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if got := m.top().String(); got != "[1 2 3]" {
		t.Fatalf("top = %q, want [1 2 3]", got)
	}
}

func TestAddStrConcat(t *testing.T) {
	m := newFakeMachine(value.NewStr("foo"), value.NewStr("bar"))
	if err := Add(m); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if got := m.top().String(); got != "foobar" {
		t.Fatalf("top = %q, want foobar", got)
	}
}

func TestAddTypeMismatch(t *testing.T) {
	m := newFakeMachine(value.NewInt(1), value.NewList(nil))
	if err := Add(m); err == nil {
		t.Fatalf("expected type error, got nil")
	}
}

func TestSubNum(t *testing.T) {
	m := newFakeMachine(value.NewInt(5), value.NewInt(3))
	if err := Sub(m); err != nil {
		t.Fatalf("Sub: %v", err)
	}
	if got := m.top().String(); got != "2" {
		t.Fatalf("top = %q, want 2", got)
	}
}

func TestSubSeqDifferencePreservesOrderAndDupes(t *testing.T) {
	a := value.NewList([]value.Value{value.NewInt(1), value.NewInt(2), value.NewInt(1), value.NewInt(3)})
	b := value.NewList([]value.Value{value.NewInt(2)})
	m := newFakeMachine(a, b)
	if err := Sub(m); err != nil {
		t.Fatalf("Sub: %v", err)
	}
	if got := m.top().String(); got != "[1 1 3]" {
		t.Fatalf("top = %q, want [1 1 3]", got)
	}
}

func TestMulNum(t *testing.T) {
	m := newFakeMachine(value.NewInt(6), value.NewInt(7))
	if err := Mul(m); err != nil {
		t.Fatalf("Mul: %v", err)
	}
	if got := m.top().String(); got != "42" {
		t.Fatalf("top = %q, want 42", got)
	}
}

func TestMulSeqRepeat(t *testing.T) {
	a := value.NewList([]value.Value{value.NewInt(1), value.NewInt(2)})
	m := newFakeMachine(a, value.NewInt(3))
	if err := Mul(m); err != nil {
		t.Fatalf("Mul: %v", err)
	}
	if got := m.top().String(); got != "[1 2 1 2 1 2]" {
		t.Fatalf("top = %q, want [1 2 1 2 1 2]", got)
	}
}

func TestMulFuncSeqFoldsLeft(t *testing.T) {
	mulBuiltin := value.NewBuiltin(Mul, "*")
	seq := value.NewList([]value.Value{value.NewInt(1), value.NewInt(2), value.NewInt(3), value.NewInt(4)})
	m := newFakeMachine(mulBuiltin, seq)
	if err := Mul(m); err != nil {
		t.Fatalf("Mul: %v", err)
	}
	if got := m.top().String(); got != "24" {
		t.Fatalf("top = %q, want 24", got)
	}
}

func TestDivIntExact(t *testing.T) {
	m := newFakeMachine(value.NewInt(10), value.NewInt(2))
	if err := Div(m); err != nil {
		t.Fatalf("Div: %v", err)
	}
	if got := m.top().String(); got != "5" {
		t.Fatalf("top = %q, want 5", got)
	}
}

func TestDivIntInexactYieldsFloat(t *testing.T) {
	m := newFakeMachine(value.NewInt(1), value.NewInt(4))
	if err := Div(m); err != nil {
		t.Fatalf("Div: %v", err)
	}
	if got := m.top().String(); got != "0.25" {
		t.Fatalf("top = %q, want 0.25", got)
	}
}

func TestDivByZeroYieldsNaN(t *testing.T) {
	m := newFakeMachine(value.NewInt(1), value.NewInt(0))
	if err := Div(m); err != nil {
		t.Fatalf("Div: %v", err)
	}
	f, ok := m.top().(*value.Float)
	if !ok {
		t.Fatalf("top = %T, want *value.Float", m.top())
	}
	if f.V == f.V { // NaN never equals itself
		t.Fatalf("expected NaN, got %v", f.V)
	}
}

func TestDivSeqChunk(t *testing.T) {
	a := value.NewList([]value.Value{value.NewInt(1), value.NewInt(2), value.NewInt(3), value.NewInt(4), value.NewInt(5)})
	m := newFakeMachine(a, value.NewInt(2))
	if err := Div(m); err != nil {
		t.Fatalf("Div: %v", err)
	}
	if got := m.top().String(); got != "[[1 2] [3 4] [5]]" {
		t.Fatalf("top = %q, want [[1 2] [3 4] [5]]", got)
	}
}

func TestModInt(t *testing.T) {
	m := newFakeMachine(value.NewInt(7), value.NewInt(3))
	if err := Mod(m); err != nil {
		t.Fatalf("Mod: %v", err)
	}
	if got := m.top().String(); got != "1" {
		t.Fatalf("top = %q, want 1", got)
	}
}

func TestModSeqStride(t *testing.T) {
	a := value.NewList([]value.Value{value.NewInt(0), value.NewInt(1), value.NewInt(2), value.NewInt(3), value.NewInt(4)})
	m := newFakeMachine(a, value.NewInt(2))
	if err := Mod(m); err != nil {
		t.Fatalf("Mod: %v", err)
	}
	if got := m.top().String(); got != "[0 2 4]" {
		t.Fatalf("top = %q, want [0 2 4]", got)
	}
}

// TestDivSeqSplit exercises spec §8 scenario 5: splitting a Str around
// another Str, dropping the leading empty a literal builtins.py:566 port
// would otherwise produce (see DESIGN.md).
func TestDivSeqSplit(t *testing.T) {
	m := newFakeMachine(value.NewStr("ababab"), value.NewStr("a"))
	if err := Div(m); err != nil {
		t.Fatalf("Div: %v", err)
	}
	if got := m.top().String(); got != "[b b b]" {
		t.Fatalf("top = %q, want [b b b]", got)
	}
}

// TestDivSeqSplitKeepsExactTrailingSeparatorEmpty exercises the one case
// builtins.py:566's Div and builtins.py:660's Mod genuinely diverge on: an
// exact trailing separator match appends a trailing empty for Div.
func TestDivSeqSplitKeepsExactTrailingSeparatorEmpty(t *testing.T) {
	m := newFakeMachine(value.NewStr("abab"), value.NewStr("ab"))
	if err := Div(m); err != nil {
		t.Fatalf("Div: %v", err)
	}
	got, ok := m.top().(*value.List)
	if !ok {
		t.Fatalf("top = %T, want *value.List", m.top())
	}
	if len(got.Items) != 1 || got.Items[0].String() != "" {
		t.Fatalf("items = %v, want a single trailing-empty subsequence", got.Items)
	}
}

// TestModSeqSplitNoEmptyDropsTrailingEmpty exercises Mod's
// "SplitNoEmpty" on the same input Div keeps a trailing empty for.
func TestModSeqSplitNoEmptyDropsTrailingEmpty(t *testing.T) {
	m := newFakeMachine(value.NewStr("abab"), value.NewStr("ab"))
	if err := Mod(m); err != nil {
		t.Fatalf("Mod: %v", err)
	}
	got, ok := m.top().(*value.List)
	if !ok {
		t.Fatalf("top = %T, want *value.List", m.top())
	}
	if len(got.Items) != 0 {
		t.Fatalf("items = %v, want none (SplitNoEmpty drops the trailing empty too)", got.Items)
	}
}
