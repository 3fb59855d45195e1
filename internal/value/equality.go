package value

import (
	"fmt"
	"math/big"
)

// Equal implements spec §4.3: "a == b iff simplify(a).value == simplify(b).value"
// — structural for sequences, pattern+flags for Regex.
func Equal(a, b Value) bool {
	sa, sb := a.Simplify(), b.Simplify()
	switch x := sa.(type) {
	case *Int:
		switch y := sb.(type) {
		case *Int:
			return x.V.Cmp(y.V) == 0
		case *Float:
			return bigToFloat(x.V) == y.V
		case *Complex:
			return y.Im == 0 && bigToFloat(x.V) == y.Re
		}
		return false
	case *Float:
		switch y := sb.(type) {
		case *Int:
			return x.V == bigToFloat(y.V)
		case *Float:
			return x.V == y.V
		case *Complex:
			return y.Im == 0 && x.V == y.Re
		}
		return false
	case *Complex:
		switch y := sb.(type) {
		case *Int:
			return x.Im == 0 && x.Re == bigToFloat(y.V)
		case *Float:
			return x.Im == 0 && x.Re == y.V
		case *Complex:
			return x.Re == y.Re && x.Im == y.Im
		}
		return false
	case *List:
		y, ok := sb.(*List)
		if !ok || len(x.Items) != len(y.Items) {
			return false
		}
		for i := range x.Items {
			if !Equal(x.Items[i], y.Items[i]) {
				return false
			}
		}
		return true
	case *Str:
		y, ok := sb.(*Str)
		return ok && x.V == y.V
	case *Regex:
		y, ok := sb.(*Regex)
		return ok && x.Pattern == y.Pattern && x.Flags == y.Flags
	case *Block:
		y, ok := sb.(*Block)
		return ok && x.String() == y.String()
	case *Builtin:
		y, ok := sb.(*Builtin)
		return ok && len(x.Names) > 0 && len(y.Names) > 0 && x.Names[0] == y.Names[0]
	}
	return false
}

// StrictEqual additionally requires equal ranks before the value
// comparison above (spec §4.3: "Strict equality additionally requires
// equal ranks").
func StrictEqual(a, b Value) bool {
	return a.Rank() == b.Rank() && Equal(a, b)
}

func bigToFloat(v *big.Int) float64 {
	f := new(big.Float).SetInt(v)
	x, _ := f.Float64()
	return x
}

// Less implements spec §4.3 ordering: numeric within Num, lexicographic
// within Seq, textual within Block; cross-group comparisons are a
// TypeError surfaced by the caller (ops), not here.
func Less(a, b Value) (bool, error) {
	if NumGroup(a) && NumGroup(b) {
		return lessNum(a, b)
	}
	if SeqGroup(a) && SeqGroup(b) {
		return lessSeq(a, b)
	}
	if a.Rank() == RankBlock && b.Rank() == RankBlock {
		return a.String() < b.String(), nil
	}
	return false, fmt.Errorf("cannot order %s against %s", a.Rank(), b.Rank())
}

func lessNum(a, b Value) (bool, error) {
	af, err := toFloat(a)
	if err != nil {
		return false, err
	}
	bf, err := toFloat(b)
	if err != nil {
		return false, err
	}
	return af < bf, nil
}

func toFloat(v Value) (float64, error) {
	switch x := v.(type) {
	case *Int:
		return bigToFloat(x.V), nil
	case *Float:
		return x.V, nil
	case *Complex:
		if x.Im != 0 {
			return 0, fmt.Errorf("cannot order Complex with nonzero imaginary part")
		}
		return x.Re, nil
	}
	return 0, fmt.Errorf("not a Num: %s", v.Rank())
}

func lessSeq(a, b Value) (bool, error) {
	if a.Rank() == RankRegex && b.Rank() == RankRegex {
		ra, rb := a.(*Regex), b.(*Regex)
		if ra.Pattern != rb.Pattern {
			return ra.Pattern < rb.Pattern, nil
		}
		return ra.Flags < rb.Flags, nil
	}
	la, err := toItems(a)
	if err != nil {
		return false, err
	}
	lb, err := toItems(b)
	if err != nil {
		return false, err
	}
	for i := 0; i < len(la) && i < len(lb); i++ {
		if !Equal(la[i], lb[i]) {
			return Less(la[i], lb[i])
		}
	}
	return len(la) < len(lb), nil
}

func toItems(v Value) ([]Value, error) {
	switch x := v.(type) {
	case *List:
		return x.Items, nil
	case *Str:
		items := make([]Value, 0, len(x.V))
		for _, r := range x.V {
			items = append(items, NewInt(int64(r)))
		}
		return items, nil
	}
	return nil, fmt.Errorf("not orderable as Seq: %s", v.Rank())
}
