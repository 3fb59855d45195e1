package ops

import (
	"testing"

	"github.com/birdiescript/birdie/internal/value"
)

func TestIfTakesThenBranchWhenTruthy(t *testing.T) {
	then := value.NewBuiltin(func(m value.Machine) error {
		m.Push(value.NewInt(10))
		return nil
	}, "then")
	els := value.NewBuiltin(func(m value.Machine) error {
		m.Push(value.NewInt(20))
		return nil
	}, "else")
	m := newFakeMachine(value.NewInt(1), then, els)
	if err := If(m); err != nil {
		t.Fatalf("If: %v", err)
	}
	if got := m.top().String(); got != "10" {
		t.Fatalf("top = %q, want 10", got)
	}
}

func TestIfTakesElseBranchWhenFalsy(t *testing.T) {
	then := value.NewBuiltin(func(m value.Machine) error {
		m.Push(value.NewInt(10))
		return nil
	}, "then")
	els := value.NewBuiltin(func(m value.Machine) error {
		m.Push(value.NewInt(20))
		return nil
	}, "else")
	m := newFakeMachine(value.NewInt(0), then, els)
	if err := If(m); err != nil {
		t.Fatalf("If: %v", err)
	}
	if got := m.top().String(); got != "20" {
		t.Fatalf("top = %q, want 20", got)
	}
}

// TestWhileLoopsUntilCondFalse exercises "W" against a cond that turns
// falsy after a fixed number of iterations, confirming the body runs
// exactly once per truthy cond check.
func TestWhileLoopsUntilCondFalse(t *testing.T) {
	remaining := 3
	runs := 0
	cond := value.NewBuiltin(func(m value.Machine) error {
		if remaining > 0 {
			m.Push(value.NewInt(1))
		} else {
			m.Push(value.NewInt(0))
		}
		return nil
	}, "cond")
	body := value.NewBuiltin(func(m value.Machine) error {
		remaining--
		runs++
		return nil
	}, "body")
	m := newFakeMachine(cond, body)
	if err := While(m); err != nil {
		t.Fatalf("While: %v", err)
	}
	if runs != 3 {
		t.Fatalf("runs = %d, want 3", runs)
	}
}

// TestDoWhileRunsBodyBeforeFirstCondCheck confirms "D" always runs its
// body once even though cond would be falsy from the very start.
func TestDoWhileRunsBodyBeforeFirstCondCheck(t *testing.T) {
	remaining := 2
	runs := 0
	cond := value.NewBuiltin(func(m value.Machine) error {
		if remaining > 0 {
			m.Push(value.NewInt(1))
		} else {
			m.Push(value.NewInt(0))
		}
		return nil
	}, "cond")
	body := value.NewBuiltin(func(m value.Machine) error {
		remaining--
		runs++
		return nil
	}, "body")
	m := newFakeMachine(cond, body)
	if err := DoWhile(m); err != nil {
		t.Fatalf("DoWhile: %v", err)
	}
	if runs != 2 {
		t.Fatalf("runs = %d, want 2", runs)
	}
}

func TestBreakPopsCountAndCallsBreakLoops(t *testing.T) {
	m := newFakeMachine(value.NewInt(3))
	if err := Break(m); err != nil {
		t.Fatalf("Break: %v", err)
	}
	if m.breakN != 3 {
		t.Fatalf("breakN = %d, want 3", m.breakN)
	}
}

func TestBreakOneCallsBreakLoopsWithOne(t *testing.T) {
	m := newFakeMachine()
	if err := BreakOne(m); err != nil {
		t.Fatalf("BreakOne: %v", err)
	}
	if m.breakN != 1 {
		t.Fatalf("breakN = %d, want 1", m.breakN)
	}
}

func TestExitCallsExitScript(t *testing.T) {
	m := newFakeMachine()
	if err := Exit(m); err != nil {
		t.Fatalf("Exit: %v", err)
	}
	if !m.exited {
		t.Fatalf("exited = false, want true")
	}
}

func TestReturnOpCallsReturn(t *testing.T) {
	m := newFakeMachine()
	if err := ReturnOp(m); err != nil {
		t.Fatalf("ReturnOp: %v", err)
	}
	if !m.returned {
		t.Fatalf("returned = false, want true")
	}
}

func TestGotoPopsTargetAndJumps(t *testing.T) {
	m := newFakeMachine(value.NewInt(7))
	if err := Goto(m); err != nil {
		t.Fatalf("Goto: %v", err)
	}
	if m.gotoArg != 7 {
		t.Fatalf("gotoArg = %d, want 7", m.gotoArg)
	}
}

func TestLabelPushesCurrentLabel(t *testing.T) {
	m := newFakeMachine()
	m.label = 42
	if err := Label(m); err != nil {
		t.Fatalf("Label: %v", err)
	}
	if got := m.top().String(); got != "42" {
		t.Fatalf("top = %q, want 42", got)
	}
}
