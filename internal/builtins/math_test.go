package builtins

import (
	"testing"

	"github.com/birdiescript/birdie/internal/value"
)

func TestRoundOp(t *testing.T) {
	m := newFakeMachine(value.NewFloat(2.6))
	if err := roundOp(m); err != nil {
		t.Fatalf("roundOp: %v", err)
	}
	if got := m.top().String(); got != "3" {
		t.Fatalf("round = %q, want 3", got)
	}
}

func TestFloorOp(t *testing.T) {
	m := newFakeMachine(value.NewFloat(2.9))
	if err := floorOp(m); err != nil {
		t.Fatalf("floorOp: %v", err)
	}
	if got := m.top().String(); got != "2" {
		t.Fatalf("floor = %q, want 2", got)
	}
}

func TestCeilOp(t *testing.T) {
	m := newFakeMachine(value.NewFloat(2.1))
	if err := ceilOp(m); err != nil {
		t.Fatalf("ceilOp: %v", err)
	}
	if got := m.top().String(); got != "3" {
		t.Fatalf("ceil = %q, want 3", got)
	}
}

func TestSqrtOpPositive(t *testing.T) {
	m := newFakeMachine(value.NewFloat(9))
	if err := sqrtOp(m); err != nil {
		t.Fatalf("sqrtOp: %v", err)
	}
	if got := m.top().String(); got != "3" {
		t.Fatalf("sqrt = %q, want 3", got)
	}
}

func TestSqrtOpNegativeYieldsComplex(t *testing.T) {
	m := newFakeMachine(value.NewFloat(-4))
	if err := sqrtOp(m); err != nil {
		t.Fatalf("sqrtOp: %v", err)
	}
	if _, ok := m.top().(*value.Complex); !ok {
		t.Fatalf("sqrt(-4) = %T, want *value.Complex", m.top())
	}
}

func TestGcdOp(t *testing.T) {
	m := newFakeMachine(value.NewInt(12), value.NewInt(18))
	if err := gcdOp(m); err != nil {
		t.Fatalf("gcdOp: %v", err)
	}
	if got := m.top().String(); got != "6" {
		t.Fatalf("gcd = %q, want 6", got)
	}
}

func TestIsPrimeOpTrue(t *testing.T) {
	m := newFakeMachine(value.NewInt(17))
	if err := isPrimeOp(m); err != nil {
		t.Fatalf("isPrimeOp: %v", err)
	}
	if got := m.top().String(); got != "1" {
		t.Fatalf("isprime(17) = %q, want 1", got)
	}
}

func TestIsPrimeOpFalse(t *testing.T) {
	m := newFakeMachine(value.NewInt(18))
	if err := isPrimeOp(m); err != nil {
		t.Fatalf("isPrimeOp: %v", err)
	}
	if got := m.top().String(); got != "0" {
		t.Fatalf("isprime(18) = %q, want 0", got)
	}
}

func TestBaseOpConvertsToBase16(t *testing.T) {
	m := newFakeMachine(value.NewInt(255), value.NewInt(16))
	if err := baseOp(m); err != nil {
		t.Fatalf("baseOp: %v", err)
	}
	if got := m.top().(*value.Str).V; got != "FF" {
		t.Fatalf("base(255,16) = %q, want FF", got)
	}
}

func TestBaseOpNegativeNumber(t *testing.T) {
	m := newFakeMachine(value.NewInt(-255), value.NewInt(16))
	if err := baseOp(m); err != nil {
		t.Fatalf("baseOp: %v", err)
	}
	if got := m.top().(*value.Str).V; got != "-FF" {
		t.Fatalf("base(-255,16) = %q, want -FF", got)
	}
}

func TestBaseOpRejectsOutOfRangeBase(t *testing.T) {
	m := newFakeMachine(value.NewInt(10), value.NewInt(1))
	if err := baseOp(m); err == nil {
		t.Fatalf("expected error for base < 2")
	}
}
