package builtins

import (
	"testing"

	"github.com/birdiescript/birdie/internal/value"
)

func TestUpperOp(t *testing.T) {
	m := newFakeMachine(value.NewStr("AbC"))
	if err := upper(m); err != nil {
		t.Fatalf("upper: %v", err)
	}
	if got := m.top().(*value.Str).V; got != "ABC" {
		t.Fatalf("upper = %q, want ABC", got)
	}
}

func TestLowerOp(t *testing.T) {
	m := newFakeMachine(value.NewStr("AbC"))
	if err := lower(m); err != nil {
		t.Fatalf("lower: %v", err)
	}
	if got := m.top().(*value.Str).V; got != "abc" {
		t.Fatalf("lower = %q, want abc", got)
	}
}

func TestTrimOp(t *testing.T) {
	m := newFakeMachine(value.NewStr("  hi  "))
	if err := trim(m); err != nil {
		t.Fatalf("trim: %v", err)
	}
	if got := m.top().(*value.Str).V; got != "hi" {
		t.Fatalf("trim = %q, want hi", got)
	}
}

func TestLtrimOp(t *testing.T) {
	m := newFakeMachine(value.NewStr("  hi  "))
	if err := ltrim(m); err != nil {
		t.Fatalf("ltrim: %v", err)
	}
	if got := m.top().(*value.Str).V; got != "hi  " {
		t.Fatalf("ltrim = %q, want %q", got, "hi  ")
	}
}

func TestRtrimOp(t *testing.T) {
	m := newFakeMachine(value.NewStr("  hi  "))
	if err := rtrim(m); err != nil {
		t.Fatalf("rtrim: %v", err)
	}
	if got := m.top().(*value.Str).V; got != "  hi" {
		t.Fatalf("rtrim = %q, want %q", got, "  hi")
	}
}

func TestFindsubStrLocatesSubstring(t *testing.T) {
	m := newFakeMachine(value.NewStr("hello world"), value.NewStr("world"))
	if err := findsub(m); err != nil {
		t.Fatalf("findsub: %v", err)
	}
	if got := m.top().String(); got != "6" {
		t.Fatalf("findsub = %q, want 6", got)
	}
}

func TestFindsubStrMissingReturnsNegativeOne(t *testing.T) {
	m := newFakeMachine(value.NewStr("hello"), value.NewStr("xyz"))
	if err := findsub(m); err != nil {
		t.Fatalf("findsub: %v", err)
	}
	if got := m.top().String(); got != "-1" {
		t.Fatalf("findsub(missing) = %q, want -1", got)
	}
}

func TestContainsStrTrue(t *testing.T) {
	m := newFakeMachine(value.NewStr("hello world"), value.NewStr("wor"))
	if err := contains(m); err != nil {
		t.Fatalf("contains: %v", err)
	}
	if got := m.top().String(); got != "1" {
		t.Fatalf("contains = %q, want 1", got)
	}
}

func TestContainsListFalse(t *testing.T) {
	hay := value.NewList([]value.Value{value.NewInt(1), value.NewInt(2)})
	m := newFakeMachine(hay, value.NewInt(9))
	if err := contains(m); err != nil {
		t.Fatalf("contains: %v", err)
	}
	if got := m.top().String(); got != "0" {
		t.Fatalf("contains = %q, want 0", got)
	}
}
