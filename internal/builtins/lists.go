package builtins

import (
	"sort"

	berrors "github.com/birdiescript/birdie/internal/errors"
	"github.com/birdiescript/birdie/internal/value"
)

// listBuiltins groups named List helpers: sorting, de-duplication,
// reduction, and the zip family. Grounded on
// original_source/birdiescript/builtins.py's list section (builtin_sort,
// builtin_zip_three/four/five/six and friends).
func listBuiltins() []*value.Builtin {
	return []*value.Builtin{
		value.NewBuiltin(sortList, "St", "Sort"),
		value.NewBuiltin(uniqueList, "Un", "Unique"),
		value.NewBuiltin(sumList, "Sm", "Sum"),
		value.NewBuiltin(maxList, "Mx", "Max"),
		value.NewBuiltin(minList, "Mn", "Min"),
		value.NewBuiltin(zipTwo, "Zv", "Zip"),
		value.NewBuiltin(zipThree, "Zx", "Zipthree"),
	}
}

func popList(m value.Machine, op string) (*value.List, error) {
	v, err := m.Pop()
	if err != nil {
		return nil, err
	}
	l, ok := v.(*value.List)
	if !ok {
		return nil, berrors.Type(op, v.Rank().String())
	}
	return l, nil
}

func sortList(m value.Machine) error {
	l, err := popList(m, "Sort")
	if err != nil {
		return err
	}
	items := append([]value.Value(nil), l.Items...)
	var sortErr error
	sort.SliceStable(items, func(i, j int) bool {
		if sortErr != nil {
			return false
		}
		less, err := value.Less(items[i], items[j])
		if err != nil {
			sortErr = err
			return false
		}
		return less
	})
	if sortErr != nil {
		return sortErr
	}
	m.Push(value.NewList(items))
	return nil
}

func uniqueList(m value.Machine) error {
	l, err := popList(m, "Unique")
	if err != nil {
		return err
	}
	var out []value.Value
	for _, it := range l.Items {
		dup := false
		for _, seen := range out {
			if value.Equal(it, seen) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, it)
		}
	}
	m.Push(value.NewList(out))
	return nil
}

func sumList(m value.Machine) error {
	l, err := popList(m, "Sum")
	if err != nil {
		return err
	}
	var acc value.Value = value.NewInt(0)
	for _, it := range l.Items {
		acc, err = addNum(acc, it)
		if err != nil {
			return err
		}
	}
	m.Push(acc.Simplify())
	return nil
}

// addNum adds two Num-group values after commonizing them to the higher
// rank, mirroring ops.Add's (Num, Num) arm without importing ops (would
// cycle back into interp through value.Machine's users).
func addNum(a, b value.Value) (value.Value, error) {
	r := a.Rank()
	if b.Rank() > r {
		r = b.Rank()
	}
	ca, err := value.Convert(a, r)
	if err != nil {
		return nil, err
	}
	cb, err := value.Convert(b, r)
	if err != nil {
		return nil, err
	}
	switch x := ca.(type) {
	case *value.Int:
		return x.Add(cb.(*value.Int)), nil
	case *value.Float:
		return value.NewFloat(x.V + cb.(*value.Float).V), nil
	case *value.Complex:
		y := cb.(*value.Complex)
		return value.NewComplex(x.Re+y.Re, x.Im+y.Im), nil
	}
	return nil, berrors.Type("Sum", a.Rank().String())
}

func maxList(m value.Machine) error {
	return extremum(m, "Max", true)
}

func minList(m value.Machine) error {
	return extremum(m, "Min", false)
}

func extremum(m value.Machine, op string, wantMax bool) error {
	l, err := popList(m, op)
	if err != nil {
		return err
	}
	if len(l.Items) == 0 {
		return berrors.Valuef("%s: empty list", op)
	}
	best := l.Items[0]
	for _, it := range l.Items[1:] {
		less, err := value.Less(it, best)
		if err != nil {
			return err
		}
		if wantMax {
			less, err = value.Less(best, it)
			if err != nil {
				return err
			}
		}
		if less {
			best = it
		}
	}
	m.Push(best)
	return nil
}

// zipTwo/zipThree implement `Zv`/`Zx` (spec §9 Open Question (b): "reuse
// a single source array when they should read distinct ones" — each
// input List is indexed independently here, so zipping a list against
// itself behaves the same as zipping two independent copies).
func zipTwo(m value.Machine) error {
	b, err := popList(m, "Zip")
	if err != nil {
		return err
	}
	a, err := popList(m, "Zip")
	if err != nil {
		return err
	}
	n := len(a.Items)
	if len(b.Items) < n {
		n = len(b.Items)
	}
	out := make([]value.Value, n)
	for i := 0; i < n; i++ {
		out[i] = value.NewList([]value.Value{a.Items[i], b.Items[i]})
	}
	m.Push(value.NewList(out))
	return nil
}

func zipThree(m value.Machine) error {
	c, err := popList(m, "Zipthree")
	if err != nil {
		return err
	}
	b, err := popList(m, "Zipthree")
	if err != nil {
		return err
	}
	a, err := popList(m, "Zipthree")
	if err != nil {
		return err
	}
	n := len(a.Items)
	if len(b.Items) < n {
		n = len(b.Items)
	}
	if len(c.Items) < n {
		n = len(c.Items)
	}
	out := make([]value.Value, n)
	for i := 0; i < n; i++ {
		out[i] = value.NewList([]value.Value{a.Items[i], b.Items[i], c.Items[i]})
	}
	m.Push(value.NewList(out))
	return nil
}
