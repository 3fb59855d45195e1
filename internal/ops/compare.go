package ops

import (
	berrors "github.com/birdiescript/birdie/internal/errors"
	"github.com/birdiescript/birdie/internal/value"
)

// Lt implements "<": LessThan/Take/TakeWhile (spec §4.6).
func Lt(m value.Machine) error {
	return orderedOp(m, "<", true)
}

// Gt implements ">": GreaterThan/Drop/DropWhile (spec §4.6).
func Gt(m value.Machine) error {
	return orderedOp(m, ">", false)
}

func orderedOp(m value.Machine, name string, lt bool) error {
	a, b, err := popTwo(m)
	if err != nil {
		return err
	}
	switch {
	case value.NumGroup(a) && value.NumGroup(b), value.SeqGroup(a) && value.SeqGroup(b):
		less, err := value.Less(a, b)
		if err != nil {
			return err
		}
		if !lt {
			less, err = value.Less(b, a)
			if err != nil {
				return err
			}
		}
		m.Push(boolValue(less))
		return nil
	case value.SeqGroup(a) && b.Rank() == value.RankInt:
		items, err := seqItems(a)
		if err != nil {
			return err
		}
		n := int(b.(*value.Int).Int64())
		var sub []value.Value
		if lt {
			sub = takeN(items, n)
		} else {
			sub = dropN(items, n)
		}
		v, err := seqRebuild(a, sub)
		if err != nil {
			return err
		}
		m.Push(v)
		return nil
	case value.FuncGroup(a) && value.SeqGroup(b):
		return whileSlice(m, a, b, lt)
	case value.SeqGroup(a) && value.FuncGroup(b):
		return whileSlice(m, b, a, lt)
	}
	return berrors.Type(name, a.Rank().String(), b.Rank().String())
}
