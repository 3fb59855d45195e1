package builtins

import (
	"testing"

	"github.com/birdiescript/birdie/internal/value"
)

func items(vs ...int64) *value.List {
	out := make([]value.Value, len(vs))
	for i, v := range vs {
		out[i] = value.NewInt(v)
	}
	return value.NewList(out)
}

func TestSortListAscending(t *testing.T) {
	m := newFakeMachine(items(3, 1, 2))
	if err := sortList(m); err != nil {
		t.Fatalf("sortList: %v", err)
	}
	if got := m.top().String(); got != "[1 2 3]" {
		t.Fatalf("sort = %q, want [1 2 3]", got)
	}
}

func TestUniqueListDropsDuplicatesPreservingOrder(t *testing.T) {
	m := newFakeMachine(items(1, 2, 1, 3, 2))
	if err := uniqueList(m); err != nil {
		t.Fatalf("uniqueList: %v", err)
	}
	if got := m.top().String(); got != "[1 2 3]" {
		t.Fatalf("unique = %q, want [1 2 3]", got)
	}
}

func TestSumListAddsElements(t *testing.T) {
	m := newFakeMachine(items(1, 2, 3))
	if err := sumList(m); err != nil {
		t.Fatalf("sumList: %v", err)
	}
	if got := m.top().String(); got != "6" {
		t.Fatalf("sum = %q, want 6", got)
	}
}

func TestMaxListReturnsLargest(t *testing.T) {
	m := newFakeMachine(items(3, 7, 2))
	if err := maxList(m); err != nil {
		t.Fatalf("maxList: %v", err)
	}
	if got := m.top().String(); got != "7" {
		t.Fatalf("max = %q, want 7", got)
	}
}

func TestMinListReturnsSmallest(t *testing.T) {
	m := newFakeMachine(items(3, 7, 2))
	if err := minList(m); err != nil {
		t.Fatalf("minList: %v", err)
	}
	if got := m.top().String(); got != "2" {
		t.Fatalf("min = %q, want 2", got)
	}
}

func TestExtremumRejectsEmptyList(t *testing.T) {
	m := newFakeMachine(items())
	if err := maxList(m); err == nil {
		t.Fatalf("expected error for empty list")
	}
}

func TestZipTwoPairsElementwise(t *testing.T) {
	m := newFakeMachine(items(1, 2, 3), items(10, 20))
	if err := zipTwo(m); err != nil {
		t.Fatalf("zipTwo: %v", err)
	}
	if got := m.top().String(); got != "[[1 10] [2 20]]" {
		t.Fatalf("zip = %q, want [[1 10] [2 20]]", got)
	}
}

func TestZipThreeTriplesElementwise(t *testing.T) {
	m := newFakeMachine(items(1, 2), items(10, 20), items(100, 200))
	if err := zipThree(m); err != nil {
		t.Fatalf("zipThree: %v", err)
	}
	if got := m.top().String(); got != "[[1 10 100] [2 20 200]]" {
		t.Fatalf("zipthree = %q, want [[1 10 100] [2 20 200]]", got)
	}
}
