package ops

import (
	"strings"

	berrors "github.com/birdiescript/birdie/internal/errors"
	"github.com/birdiescript/birdie/internal/value"
)

// Add implements "+": Add/Concat/Compose (spec §4.6).
func Add(m value.Machine) error {
	a, b, err := popTwo(m)
	if err != nil {
		return err
	}
	v, err := addValues(a, b)
	if err != nil {
		return err
	}
	m.Push(v)
	return nil
}

func addValues(a, b value.Value) (value.Value, error) {
	if value.NumGroup(a) && value.NumGroup(b) {
		return numAdd(a, b)
	}
	if value.SeqGroup(a) && value.SeqGroup(b) {
		return seqConcat(a, b)
	}
	if value.FuncGroup(a) && value.FuncGroup(b) {
		return funcCompose(a, b)
	}
	return nil, berrors.Type("+", a.Rank().String(), b.Rank().String())
}

func numAdd(a, b value.Value) (value.Value, error) {
	ca, cb, err := commonNum(a, b)
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
	return nil, berrors.Type("+", a.Rank().String(), b.Rank().String())
}

// seqConcat implements same-concrete-kind concatenation after commonize,
// including the Regex+Regex flag-merge case (spec §4.6, §3 invariant).
func seqConcat(a, b value.Value) (value.Value, error) {
	ca, cb, err := commonizeSeq(a, b)
	if err != nil {
		return nil, err
	}
	switch x := ca.(type) {
	case *value.List:
		y := cb.(*value.List)
		items := append(append([]value.Value(nil), x.Items...), y.Items...)
		return value.NewList(items), nil
	case *value.Str:
		y := cb.(*value.Str)
		return value.NewStr(x.V + y.V), nil
	case *value.Regex:
		y := cb.(*value.Regex)
		return value.NewRegex(x.Pattern+y.Pattern, mergeRegexFlags(x.Flags, y.Flags))
	}
	return nil, berrors.Type("+", a.Rank().String(), b.Rank().String())
}

// Sub implements "-": Subtract/EachOnSequence (spec §4.6).
func Sub(m value.Machine) error {
	a, b, err := popTwo(m)
	if err != nil {
		return err
	}
	switch {
	case value.NumGroup(a) && value.NumGroup(b):
		v, err := numSub(a, b)
		if err != nil {
			return err
		}
		m.Push(v)
		return nil
	case value.SeqGroup(a) && value.SeqGroup(b):
		v, err := seqDifference(a, b)
		if err != nil {
			return err
		}
		m.Push(v)
		return nil
	case value.FuncGroup(a) && value.SeqGroup(b):
		return eachOnSequence(m, a, b)
	case value.SeqGroup(a) && value.FuncGroup(b):
		return eachOnSequence(m, b, a)
	}
	return berrors.Type("-", a.Rank().String(), b.Rank().String())
}

func numSub(a, b value.Value) (value.Value, error) {
	ca, cb, err := commonNum(a, b)
	if err != nil {
		return nil, err
	}
	switch x := ca.(type) {
	case *value.Int:
		return x.Sub(cb.(*value.Int)), nil
	case *value.Float:
		return value.NewFloat(x.V - cb.(*value.Float).V), nil
	case *value.Complex:
		y := cb.(*value.Complex)
		return value.NewComplex(x.Re-y.Re, x.Im-y.Im), nil
	}
	return nil, berrors.Type("-", a.Rank().String(), b.Rank().String())
}

// seqDifference implements "asymmetric set difference preserving left
// order" (spec §4.6): every left element not equal to any right element,
// keeping left's own order and duplicates (the dedup-bearing set ops are
// "&"/"|"/"^", not this one — logged in DESIGN.md).
func seqDifference(a, b value.Value) (value.Value, error) {
	ca, cb, err := commonizeSeq(a, b)
	if err != nil {
		return nil, err
	}
	left, err := seqItems(ca)
	if err != nil {
		return nil, err
	}
	right, err := seqItems(cb)
	if err != nil {
		return nil, err
	}
	var out []value.Value
	for _, l := range left {
		found := false
		for _, r := range right {
			if value.Equal(l, r) {
				found = true
				break
			}
		}
		if !found {
			out = append(out, l)
		}
	}
	return seqRebuild(ca, out)
}

// Mul implements "*": Mul/Rep/Join/Times/Fold/Combine (spec §4.6).
func Mul(m value.Machine) error {
	a, b, err := popTwo(m)
	if err != nil {
		return err
	}
	switch {
	case value.NumGroup(a) && value.NumGroup(b):
		v, err := numMul(a, b)
		if err != nil {
			return err
		}
		m.Push(v)
		return nil
	case value.SeqGroup(a) && value.SeqGroup(b):
		v, err := seqJoin(a, b)
		if err != nil {
			return err
		}
		m.Push(v)
		return nil
	case value.SeqGroup(a) && b.Rank() == value.RankInt:
		v, err := seqRepeat(a, b.(*value.Int))
		if err != nil {
			return err
		}
		m.Push(v)
		return nil
	case a.Rank() == value.RankInt && value.SeqGroup(b):
		v, err := seqRepeat(b, a.(*value.Int))
		if err != nil {
			return err
		}
		m.Push(v)
		return nil
	case value.FuncGroup(a) && b.Rank() == value.RankInt:
		return timesApply(m, a, b.(*value.Int))
	case a.Rank() == value.RankInt && value.FuncGroup(b):
		return timesApply(m, b, a.(*value.Int))
	case value.FuncGroup(a) && value.SeqGroup(b):
		return foldLeft(m, a, b)
	case value.SeqGroup(a) && value.FuncGroup(b):
		return foldLeft(m, b, a)
	case value.FuncGroup(a) && value.FuncGroup(b):
		v, err := funcZipApply(a, b)
		if err != nil {
			return err
		}
		m.Push(v)
		return nil
	}
	return berrors.Type("*", a.Rank().String(), b.Rank().String())
}

func numMul(a, b value.Value) (value.Value, error) {
	ca, cb, err := commonNum(a, b)
	if err != nil {
		return nil, err
	}
	switch x := ca.(type) {
	case *value.Int:
		return x.Mul(cb.(*value.Int)), nil
	case *value.Float:
		return value.NewFloat(x.V * cb.(*value.Float).V), nil
	case *value.Complex:
		y := cb.(*value.Complex)
		return value.NewComplex(x.Re*y.Re-x.Im*y.Im, x.Re*y.Im+x.Im*y.Re), nil
	}
	return nil, berrors.Type("*", a.Rank().String(), b.Rank().String())
}

func seqRepeat(seq value.Value, n *value.Int) (value.Value, error) {
	count := n.Int64()
	if count < 0 {
		count = 0
	}
	if r, ok := seq.(*value.Regex); ok {
		return value.NewRegex(strings.Repeat(r.Pattern, int(count)), r.Flags)
	}
	items, err := seqItems(seq)
	if err != nil {
		return nil, err
	}
	out := make([]value.Value, 0, len(items)*int(count))
	for i := int64(0); i < count; i++ {
		out = append(out, items...)
	}
	return seqRebuild(seq, out)
}

// seqJoin implements the Seq,Seq "*" case: intersperse b between a's
// elements. The result's concrete kind is the higher of the two
// operands' ranks (spec's 3x3 sub-table collapses to exactly that rule
// since List < Str < Regex already orders the three Seq kinds).
func seqJoin(a, b value.Value) (value.Value, error) {
	left, err := seqItems(a)
	if err != nil {
		return nil, err
	}
	sep, err := seqItems(b)
	if err != nil {
		return nil, err
	}
	var out []value.Value
	for i, it := range left {
		if i > 0 {
			out = append(out, sep...)
		}
		out = append(out, it)
	}
	proto := a
	if b.Rank() > a.Rank() {
		proto = b
	}
	if proto.Rank() == value.RankRegex {
		proto = regexProto(a, b)
	}
	return seqRebuild(proto, out)
}

func regexProto(a, b value.Value) value.Value {
	if r, ok := a.(*value.Regex); ok {
		return r
	}
	if r, ok := b.(*value.Regex); ok {
		return r
	}
	return &value.Regex{}
}

func timesApply(m value.Machine, fn value.Value, n *value.Int) error {
	count := n.Int64()
	for i := int64(0); i < count; i++ {
		if err := m.Apply(fn); err != nil {
			return err
		}
	}
	return nil
}

// funcZipApply implements the (Func, Func) "*" case: compose a into a
// block expecting two args and applying each function to one.
func funcZipApply(a, b value.Value) (value.Value, error) {
	return value.NewBuiltin(func(m value.Machine) error {
		y, err := m.Pop()
		if err != nil {
			return err
		}
		x, err := m.Pop()
		if err != nil {
			return err
		}
		m.Push(x)
		if err := m.Apply(a); err != nil {
			return err
		}
		m.Push(y)
		return m.Apply(b)
	}, "*zipped*"), nil
}
