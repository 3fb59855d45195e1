package ops

import (
	"math"
	"math/big"

	berrors "github.com/birdiescript/birdie/internal/errors"
	"github.com/birdiescript/birdie/internal/value"
)

// Div implements "/": Divide/Chunk/Split/Partition/Unfold (spec §4.6).
func Div(m value.Machine) error {
	a, b, err := popTwo(m)
	if err != nil {
		return err
	}
	switch {
	case value.NumGroup(a) && value.NumGroup(b):
		v, err := numDiv(a, b)
		if err != nil {
			return err
		}
		m.Push(v)
		return nil
	case value.SeqGroup(a) && b.Rank() == value.RankInt:
		v, err := seqChunk(a, b.(*value.Int))
		if err != nil {
			return err
		}
		m.Push(v)
		return nil
	case value.SeqGroup(a) && value.SeqGroup(b):
		v, err := seqSplit(a, b)
		if err != nil {
			return err
		}
		m.Push(v)
		return nil
	case value.FuncGroup(a) && value.SeqGroup(b):
		return partition(m, a, b)
	case value.SeqGroup(a) && value.FuncGroup(b):
		return partition(m, b, a)
	}
	return berrors.Type("/", a.Rank().String(), b.Rank().String())
}

func numDiv(a, b value.Value) (value.Value, error) {
	if ai, ok := a.(*value.Int); ok {
		if bi, ok := b.(*value.Int); ok {
			if bi.V.Sign() == 0 {
				return value.NewFloat(math.NaN()), nil
			}
			rat := new(big.Rat).SetFrac(ai.V, bi.V)
			if rat.IsInt() {
				return value.NewIntFromBig(new(big.Int).Set(rat.Num())), nil
			}
			f, _ := rat.Float64()
			return value.NewFloat(f), nil
		}
	}
	ca, cb, err := commonNum(a, b)
	if err != nil {
		return nil, err
	}
	switch x := ca.(type) {
	case *value.Float:
		return value.NewFloat(x.V / cb.(*value.Float).V), nil
	case *value.Complex:
		return complexDiv(x, cb.(*value.Complex)), nil
	}
	return nil, berrors.Type("/", a.Rank().String(), b.Rank().String())
}

func complexDiv(x, y *value.Complex) value.Value {
	denom := y.Re*y.Re + y.Im*y.Im
	if denom == 0 {
		return value.NewFloat(math.NaN())
	}
	re := (x.Re*y.Re + x.Im*y.Im) / denom
	im := (x.Im*y.Re - x.Re*y.Im) / denom
	return value.NewComplex(re, im)
}

// seqChunk implements the (Seq, Num) "/" case: fixed-size chunks,
// reversed chunk order when n is negative (spec §4.6).
func seqChunk(seq value.Value, n *value.Int) (value.Value, error) {
	size := n.Int64()
	neg := size < 0
	if neg {
		size = -size
	}
	if size == 0 {
		return nil, berrors.Valuef("chunk size must be nonzero")
	}
	items, err := seqItems(seq)
	if err != nil {
		return nil, err
	}
	var chunks []value.Value
	for i := 0; i < len(items); i += int(size) {
		end := i + int(size)
		if end > len(items) {
			end = len(items)
		}
		sub, err := seqRebuild(seq, items[i:end])
		if err != nil {
			return nil, err
		}
		chunks = append(chunks, sub)
	}
	if neg {
		for i, j := 0, len(chunks)-1; i < j; i, j = i+1, j-1 {
			chunks[i], chunks[j] = chunks[j], chunks[i]
		}
	}
	return value.NewList(chunks), nil
}

// partition implements the (Func, Seq) "/" case: split into [pass, fail]
// by fn's truthiness.
func partition(m value.Machine, fn, seq value.Value) error {
	items, err := seqItems(seq)
	if err != nil {
		return err
	}
	var pass, fail []value.Value
	for _, it := range items {
		m.Push(it)
		if err := m.Apply(fn); err != nil {
			return err
		}
		r, err := m.Pop()
		if err != nil {
			return err
		}
		if r.Truthy() {
			pass = append(pass, it)
		} else {
			fail = append(fail, it)
		}
	}
	pl, err := seqRebuild(seq, pass)
	if err != nil {
		return err
	}
	fl, err := seqRebuild(seq, fail)
	if err != nil {
		return err
	}
	m.Push(value.NewList([]value.Value{pl, fl}))
	return nil
}

// Mod implements "%": Modulo/Step/SplitNoEmpty/Scan (spec §4.6).
func Mod(m value.Machine) error {
	a, b, err := popTwo(m)
	if err != nil {
		return err
	}
	switch {
	case value.NumGroup(a) && value.NumGroup(b):
		v, err := numMod(a, b)
		if err != nil {
			return err
		}
		m.Push(v)
		return nil
	case value.SeqGroup(a) && b.Rank() == value.RankInt:
		v, err := seqStride(a, b.(*value.Int))
		if err != nil {
			return err
		}
		m.Push(v)
		return nil
	case value.SeqGroup(a) && value.SeqGroup(b):
		v, err := seqSplitNoEmpty(a, b)
		if err != nil {
			return err
		}
		m.Push(v)
		return nil
	case value.FuncGroup(a) && value.SeqGroup(b):
		return scan(m, a, b)
	case value.SeqGroup(a) && value.FuncGroup(b):
		return scan(m, b, a)
	}
	return berrors.Type("%", a.Rank().String(), b.Rank().String())
}

func numMod(a, b value.Value) (value.Value, error) {
	if ai, ok := a.(*value.Int); ok {
		if bi, ok := b.(*value.Int); ok {
			if bi.V.Sign() == 0 {
				return value.NewFloat(math.NaN()), nil
			}
			r := new(big.Int).Mod(ai.V, bi.V)
			return value.NewIntFromBig(r), nil
		}
	}
	ca, cb, err := commonNum(a, b)
	if err != nil {
		return nil, err
	}
	switch x := ca.(type) {
	case *value.Float:
		return value.NewFloat(math.Mod(x.V, cb.(*value.Float).V)), nil
	case *value.Complex:
		// Complex has no natural modulo; degrade to magnitude modulo.
		y := cb.(*value.Complex)
		return value.NewFloat(math.Mod(math.Hypot(x.Re, x.Im), math.Hypot(y.Re, y.Im))), nil
	}
	return nil, berrors.Type("%", a.Rank().String(), b.Rank().String())
}

// seqStride implements the (Seq, Num) "%" case: take every nth element,
// walking backward when n is negative.
func seqStride(seq value.Value, n *value.Int) (value.Value, error) {
	step := n.Int64()
	if step == 0 {
		return nil, berrors.Valuef("stride must be nonzero")
	}
	items, err := seqItems(seq)
	if err != nil {
		return nil, err
	}
	var out []value.Value
	if step > 0 {
		for i := 0; i < len(items); i += int(step) {
			out = append(out, items[i])
		}
	} else {
		for i := len(items) - 1; i >= 0; i += int(step) {
			out = append(out, items[i])
		}
	}
	return seqRebuild(seq, out)
}

// scan implements the (Func, Seq) "%" case: a fold that yields every
// intermediate accumulator, not just the final one.
func scan(m value.Machine, fn, seq value.Value) error {
	items, err := seqItems(seq)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		m.Push(value.NewList(nil))
		return nil
	}
	acc := items[0]
	results := []value.Value{acc}
	for _, it := range items[1:] {
		m.Push(acc)
		m.Push(it)
		if err := m.Apply(fn); err != nil {
			return err
		}
		acc, err = m.Pop()
		if err != nil {
			return err
		}
		results = append(results, acc)
	}
	m.Push(value.NewList(results))
	return nil
}

// seqSplit implements the (Seq, Seq) "/" case: keep the original's
// trailing-empty special case (builtins.py:566's "if av == bv") but drop
// every other empty subsequence, including a leading one produced when a
// matches start at position 0 — a literal port of builtins.py:566 emits
// that leading empty for `ababab` `a` /, which spec §8 scenario 5 documents
// as `[b b b]` with no such entry (see DESIGN.md).
func seqSplit(a, b value.Value) (value.Value, error) {
	return seqSplitImpl(a, b, true)
}

// seqSplitNoEmpty implements the (Seq, Seq) "%" case: the same split,
// dropping every empty subsequence, including a trailing one
// (builtins.py:660's "if xv: cv.append(...)").
func seqSplitNoEmpty(a, b value.Value) (value.Value, error) {
	return seqSplitImpl(a, b, false)
}

// seqSplitImpl walks a, accumulating a run of elements that don't match b
// as a subsequence, until it finds a prefix equal to b or runs out of
// elements; keepTrailingEmpty controls whether an explicit empty
// subsequence is appended when the remaining tail is exactly b.
func seqSplitImpl(a, b value.Value, keepTrailingEmpty bool) (value.Value, error) {
	ca, cb, err := commonizeSeq(a, b)
	if err != nil {
		return nil, err
	}
	av, err := seqItems(ca)
	if err != nil {
		return nil, err
	}
	bv, err := seqItems(cb)
	if err != nil {
		return nil, err
	}

	var chunks []value.Value
	switch {
	case len(av) == 0:
		// no input: cv stays empty
	case len(bv) == 0:
		for _, it := range av {
			sub, err := seqRebuild(ca, []value.Value{it})
			if err != nil {
				return nil, err
			}
			chunks = append(chunks, sub)
		}
	default:
		n := len(bv)
		var xv []value.Value
		for len(av) > 0 {
			for len(av) > 0 && !seqItemsEqual(av[:min(n, len(av))], bv) {
				xv = append(xv, av[0])
				av = av[1:]
			}
			if len(xv) > 0 {
				sub, err := seqRebuild(ca, xv)
				if err != nil {
					return nil, err
				}
				chunks = append(chunks, sub)
			}
			if keepTrailingEmpty && seqItemsEqual(av, bv) {
				sub, err := seqRebuild(ca, nil)
				if err != nil {
					return nil, err
				}
				chunks = append(chunks, sub)
			}
			if len(av) >= n {
				av = av[n:]
			} else {
				av = nil
			}
			xv = nil
		}
	}
	return value.NewList(chunks), nil
}

// seqItemsEqual reports whether x and y hold the same elements in the same
// order, used to test a subsequence against the separator.
func seqItemsEqual(x, y []value.Value) bool {
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		if !value.Equal(x[i], y[i]) {
			return false
		}
	}
	return true
}
