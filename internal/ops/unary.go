package ops

import (
	"math"

	berrors "github.com/birdiescript/birdie/internal/errors"
	"github.com/birdiescript/birdie/internal/value"
)

// Underscore implements "_": Negate/DumpSequence/Execute (spec §4.6).
func Underscore(m value.Machine) error {
	a, err := m.Pop()
	if err != nil {
		return err
	}
	switch x := a.(type) {
	case *value.Int:
		m.Push(x.Neg())
		return nil
	case *value.Float:
		m.Push(value.NewFloat(-x.V))
		return nil
	case *value.Complex:
		m.Push(value.NewComplex(-x.Re, -x.Im))
		return nil
	case *value.List, *value.Str, *value.Regex:
		items, err := seqItems(a)
		if err != nil {
			return err
		}
		for _, it := range items {
			m.Push(it)
		}
		return nil
	case *value.Block, *value.Builtin:
		return m.Apply(a)
	}
	return berrors.Type("_", a.Rank().String())
}

// Tilde implements "~": BitwiseNegate/Conjugate/Reverse/DeferredSwap
// (spec §4.6: "bitwise-negate/conjugate/reverse/prepend-swap" — Int and
// Complex split the Num group since a bitwise-negate has no Float
// analogue; Float conjugates to itself).
func Tilde(m value.Machine) error {
	a, err := m.Pop()
	if err != nil {
		return err
	}
	switch x := a.(type) {
	case *value.Int:
		m.Push(x.Not())
		return nil
	case *value.Float:
		m.Push(x)
		return nil
	case *value.Complex:
		m.Push(value.NewComplex(x.Re, -x.Im))
		return nil
	case *value.List:
		m.Push(value.NewList(reverseItems(x.Items)))
		return nil
	case *value.Str:
		m.Push(value.NewStr(reverseString(x.V)))
		return nil
	case *value.Regex:
		r, err := value.NewRegex(reverseString(x.Pattern), x.Flags)
		if err != nil {
			return err
		}
		m.Push(r)
		return nil
	case *value.Block, *value.Builtin:
		v, err := swapArgsFunc(a)
		if err != nil {
			return err
		}
		m.Push(v)
		return nil
	}
	return berrors.Type("~", a.Rank().String())
}

// Hash implements "#": AbsoluteOrLength/Commute (spec §4.6).
func Hash(m value.Machine) error {
	a, err := m.Pop()
	if err != nil {
		return err
	}
	switch x := a.(type) {
	case *value.Int:
		m.Push(x.Abs())
		return nil
	case *value.Float:
		m.Push(value.NewFloat(absFloat(x.V)))
		return nil
	case *value.Complex:
		m.Push(value.NewFloat(hypot(x.Re, x.Im)))
		return nil
	case *value.List, *value.Str, *value.Regex:
		items, err := seqItems(a)
		if err != nil {
			return err
		}
		m.Push(value.NewInt(int64(len(items))))
		return nil
	case *value.Block, *value.Builtin:
		return swapArgsApply(m, a)
	}
	return berrors.Type("#", a.Rank().String())
}

// U implements "U"/"Up"/"Upto": the half-open integer interval [0, N) for
// a Num operand, every permutation of a Seq operand, and an "until" loop
// for a Func operand — pop a second Func (the loop condition), run it
// once, then alternate body/condition while the popped result stays
// falsy (spec §8 scenario 4; original builtins.py:1205).
func U(m value.Machine) error {
	a, err := m.Pop()
	if err != nil {
		return err
	}
	switch a.(type) {
	case *value.Int, *value.Float, *value.Complex:
		items, err := upto(a)
		if err != nil {
			return err
		}
		m.Push(value.NewList(items))
		return nil
	case *value.List, *value.Str, *value.Regex:
		items, err := seqItems(a)
		if err != nil {
			return err
		}
		perms := permutationsOf(items)
		out := make([]value.Value, len(perms))
		for i, p := range perms {
			v, err := seqRebuild(a, p)
			if err != nil {
				return err
			}
			out[i] = v
		}
		m.Push(value.NewList(out))
		return nil
	case *value.Block, *value.Builtin:
		cond, err := m.Pop()
		if err != nil {
			return err
		}
		return untilLoop(m, a, cond)
	}
	return berrors.Type("U", a.Rank().String())
}

// upto converts a Num operand to its truncated Int count and returns
// [0, count) as Ints.
func upto(a value.Value) ([]value.Value, error) {
	iv, err := value.Convert(a, value.RankInt)
	if err != nil {
		return nil, err
	}
	count := iv.(*value.Int).Int64()
	if count < 0 {
		count = 0
	}
	out := make([]value.Value, count)
	for i := int64(0); i < count; i++ {
		out[i] = value.NewInt(i)
	}
	return out, nil
}

// permutationsOf returns every permutation of items in the same order
// Python's itertools.permutations produces them (by remaining index, not
// by value), matching the original's "Permutations" branch.
func permutationsOf(items []value.Value) [][]value.Value {
	n := len(items)
	if n == 0 {
		return [][]value.Value{{}}
	}
	var result [][]value.Value
	used := make([]bool, n)
	path := make([]value.Value, 0, n)
	var rec func()
	rec = func() {
		if len(path) == n {
			result = append(result, append([]value.Value(nil), path...))
			return
		}
		for i := 0; i < n; i++ {
			if used[i] {
				continue
			}
			used[i] = true
			path = append(path, items[i])
			rec()
			path = path[:len(path)-1]
			used[i] = false
		}
	}
	rec()
	return result
}

// untilLoop implements "U"'s Func branch: body is the first-popped (top)
// operand, cond the second (spec §9; original builtins.py:1205's
// a=body/b=cond naming).
func untilLoop(m value.Machine, body, cond value.Value) error {
	stop, err := m.LoopBody(cond)
	if err != nil {
		return err
	}
	if stop {
		return nil
	}
	c, err := m.Pop()
	if err != nil {
		return err
	}
	for !c.Truthy() {
		stop, err = m.LoopBody(body)
		if err != nil {
			return err
		}
		if stop {
			return nil
		}
		stop, err = m.LoopBody(cond)
		if err != nil {
			return err
		}
		if stop {
			return nil
		}
		c, err = m.Pop()
		if err != nil {
			return err
		}
	}
	return nil
}

func absFloat(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

func hypot(re, im float64) float64 {
	return math.Hypot(re, im)
}

// LeftParen implements "(": Decrement/First/MutateFunctionPrepend (spec
// §4.6): on a Func operand, a second stack value is popped as the
// constant the new function will push before running fn's own body.
func LeftParen(m value.Machine) error {
	a, err := m.Pop()
	if err != nil {
		return err
	}
	switch x := a.(type) {
	case *value.Int:
		m.Push(x.Sub(value.NewInt(1)))
		return nil
	case *value.Float:
		m.Push(value.NewFloat(x.V - 1))
		return nil
	case *value.Complex:
		m.Push(value.NewComplex(x.Re-1, x.Im))
		return nil
	case *value.List, *value.Str, *value.Regex:
		items, err := seqItems(a)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			return berrors.Valuef("( of empty sequence")
		}
		m.Push(items[0])
		return nil
	case *value.Block, *value.Builtin:
		c, err := m.Pop()
		if err != nil {
			return err
		}
		v, err := prependConst(c, a)
		if err != nil {
			return err
		}
		m.Push(v)
		return nil
	}
	return berrors.Type("(", a.Rank().String())
}

// RightParen implements ")": Increment/Last/MutateFunctionAppend.
func RightParen(m value.Machine) error {
	a, err := m.Pop()
	if err != nil {
		return err
	}
	switch x := a.(type) {
	case *value.Int:
		m.Push(x.Add(value.NewInt(1)))
		return nil
	case *value.Float:
		m.Push(value.NewFloat(x.V + 1))
		return nil
	case *value.Complex:
		m.Push(value.NewComplex(x.Re+1, x.Im))
		return nil
	case *value.List, *value.Str, *value.Regex:
		items, err := seqItems(a)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			return berrors.Valuef(") of empty sequence")
		}
		m.Push(items[len(items)-1])
		return nil
	case *value.Block, *value.Builtin:
		c, err := m.Pop()
		if err != nil {
			return err
		}
		v, err := appendConst(a, c)
		if err != nil {
			return err
		}
		m.Push(v)
		return nil
	}
	return berrors.Type(")", a.Rank().String())
}
