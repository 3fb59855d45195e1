package ops

import (
	"math/big"

	berrors "github.com/birdiescript/birdie/internal/errors"
	"github.com/birdiescript/birdie/internal/value"
)

// dedupOrdered removes later duplicates, keeping first-seen order (spec
// §8: "Set &, |, ^ on two Seq preserve left-first order and remove
// duplicates").
func dedupOrdered(items []value.Value) []value.Value {
	var out []value.Value
	for _, it := range items {
		dup := false
		for _, o := range out {
			if value.Equal(it, o) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, it)
		}
	}
	return out
}

func containsEqual(items []value.Value, v value.Value) bool {
	for _, it := range items {
		if value.Equal(it, v) {
			return true
		}
	}
	return false
}

func setIntersect(a, b []value.Value) []value.Value {
	var out []value.Value
	for _, it := range dedupOrdered(a) {
		if containsEqual(b, it) {
			out = append(out, it)
		}
	}
	return out
}

func setUnion(a, b []value.Value) []value.Value {
	return dedupOrdered(append(append([]value.Value(nil), a...), b...))
}

func setSymDiff(a, b []value.Value) []value.Value {
	da, db := dedupOrdered(a), dedupOrdered(b)
	var out []value.Value
	for _, it := range da {
		if !containsEqual(db, it) {
			out = append(out, it)
		}
	}
	for _, it := range db {
		if !containsEqual(da, it) {
			out = append(out, it)
		}
	}
	return out
}

// And implements "&": bitwise And / set intersection / filter / compose
// (spec §4.6).
func And(m value.Machine) error {
	return bitsetOp(m, "&", func(x, y *big.Int) *big.Int { return new(big.Int).And(x, y) },
		setIntersect, filterSeq, func(a, b value.Value) (value.Value, error) { return funcCompose(a, b) })
}

// Or implements "|": bitwise Or / set union / map / compose.
func Or(m value.Machine) error {
	return bitsetOp(m, "|", func(x, y *big.Int) *big.Int { return new(big.Int).Or(x, y) },
		setUnion, mapSeq, func(a, b value.Value) (value.Value, error) { return funcCompose(a, b) })
}

// Xor implements "^": bitwise Xor / symmetric difference / filter-indices
// / compose.
func Xor(m value.Machine) error {
	return bitsetOp(m, "^", func(x, y *big.Int) *big.Int { return new(big.Int).Xor(x, y) },
		setSymDiff, filterIndices, func(a, b value.Value) (value.Value, error) { return funcCompose(a, b) })
}

func bitsetOp(
	m value.Machine,
	name string,
	intOp func(x, y *big.Int) *big.Int,
	seqOp func(a, b []value.Value) []value.Value,
	funcSeqOp func(m value.Machine, fn, seq value.Value) error,
	funcFuncOp func(a, b value.Value) (value.Value, error),
) error {
	a, b, err := popTwo(m)
	if err != nil {
		return err
	}
	switch {
	case a.Rank() == value.RankInt && b.Rank() == value.RankInt:
		r := intOp(a.(*value.Int).V, b.(*value.Int).V)
		m.Push(value.NewIntFromBig(r))
		return nil
	case value.SeqGroup(a) && value.SeqGroup(b):
		ca, cb, err := commonizeSeq(a, b)
		if err != nil {
			return err
		}
		la, err := seqItems(ca)
		if err != nil {
			return err
		}
		lb, err := seqItems(cb)
		if err != nil {
			return err
		}
		v, err := seqRebuild(ca, seqOp(la, lb))
		if err != nil {
			return err
		}
		m.Push(v)
		return nil
	case value.FuncGroup(a) && value.SeqGroup(b):
		return funcSeqOp(m, a, b)
	case value.SeqGroup(a) && value.FuncGroup(b):
		return funcSeqOp(m, b, a)
	case value.FuncGroup(a) && value.FuncGroup(b):
		v, err := funcFuncOp(a, b)
		if err != nil {
			return err
		}
		m.Push(v)
		return nil
	}
	return berrors.Type(name, a.Rank().String(), b.Rank().String())
}
