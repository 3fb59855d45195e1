package builtins

import (
	"testing"

	"github.com/birdiescript/birdie/internal/value"
)

func TestAscPushesCodePoint(t *testing.T) {
	m := newFakeMachine(value.NewStr("A"))
	if err := asc(m); err != nil {
		t.Fatalf("asc: %v", err)
	}
	if got := m.top().String(); got != "65" {
		t.Fatalf("asc(A) = %q, want 65", got)
	}
}

func TestAscRejectsEmptyString(t *testing.T) {
	m := newFakeMachine(value.NewStr(""))
	if err := asc(m); err == nil {
		t.Fatalf("expected error for empty string")
	}
}

func TestChrPushesOneRuneStr(t *testing.T) {
	m := newFakeMachine(value.NewInt(65))
	if err := chr(m); err != nil {
		t.Fatalf("chr: %v", err)
	}
	if got := m.top().(*value.Str).V; got != "A" {
		t.Fatalf("chr(65) = %q, want A", got)
	}
}

func TestSuccIncrementsInt(t *testing.T) {
	m := newFakeMachine(value.NewInt(9))
	if err := succ(m); err != nil {
		t.Fatalf("succ: %v", err)
	}
	if got := m.top().String(); got != "10" {
		t.Fatalf("succ(9) = %q, want 10", got)
	}
}

func TestPredDecrementsInt(t *testing.T) {
	m := newFakeMachine(value.NewInt(9))
	if err := pred(m); err != nil {
		t.Fatalf("pred: %v", err)
	}
	if got := m.top().String(); got != "8" {
		t.Fatalf("pred(9) = %q, want 8", got)
	}
}
