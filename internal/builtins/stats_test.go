package builtins

import (
	"math"
	"testing"

	"github.com/birdiescript/birdie/internal/value"
)

func TestSinOp(t *testing.T) {
	m := newFakeMachine(value.NewFloat(0))
	if err := sinOp(m); err != nil {
		t.Fatalf("sinOp: %v", err)
	}
	if got := m.top().(*value.Float).V; got != 0 {
		t.Fatalf("sin(0) = %v, want 0", got)
	}
}

func TestCosOp(t *testing.T) {
	m := newFakeMachine(value.NewFloat(0))
	if err := cosOp(m); err != nil {
		t.Fatalf("cosOp: %v", err)
	}
	if got := m.top().(*value.Float).V; got != 1 {
		t.Fatalf("cos(0) = %v, want 1", got)
	}
}

func TestTanOp(t *testing.T) {
	m := newFakeMachine(value.NewFloat(0))
	if err := tanOp(m); err != nil {
		t.Fatalf("tanOp: %v", err)
	}
	if got := m.top().(*value.Float).V; got != 0 {
		t.Fatalf("tan(0) = %v, want 0", got)
	}
}

func TestMeanOpAveragesElements(t *testing.T) {
	m := newFakeMachine(items(2, 4, 6))
	if err := meanOp(m); err != nil {
		t.Fatalf("meanOp: %v", err)
	}
	got := m.top().String()
	if got != "4" {
		t.Fatalf("mean = %q, want 4", got)
	}
}

func TestMeanOpRejectsEmptyList(t *testing.T) {
	m := newFakeMachine(items())
	if err := meanOp(m); err == nil {
		t.Fatalf("expected error for empty list")
	}
}

func TestStdevOpOfConstantListIsZero(t *testing.T) {
	m := newFakeMachine(items(5, 5, 5))
	if err := stdevOp(m); err != nil {
		t.Fatalf("stdevOp: %v", err)
	}
	if got := m.top().(*value.Float).V; got != 0 {
		t.Fatalf("stdev(constant) = %v, want 0", got)
	}
}

func TestStdevOpKnownSample(t *testing.T) {
	m := newFakeMachine(items(2, 4, 4, 4, 5, 5, 7, 9))
	if err := stdevOp(m); err != nil {
		t.Fatalf("stdevOp: %v", err)
	}
	got := m.top().(*value.Float).V
	if math.Abs(got-2) > 1e-9 {
		t.Fatalf("stdev = %v, want 2", got)
	}
}
